// Package buffer holds the logical editing state and the action
// reducer at the heart of the engine.
//
// State is a value: Apply never modifies the state it is given, every
// transition produces a new value, and line slices are copied before
// mutation. A renderer holding a previous State keeps seeing that
// snapshot unchanged while new actions are applied.
//
// Actions form a closed set. Mutating actions push a pre-action
// snapshot onto the bounded undo stack and invalidate the redo stack;
// pure navigation and view actions touch neither. Boundary conditions
// (backspace at the buffer start, delete at the buffer end, an invalid
// replace range) are silent no-ops, never errors.
//
// All column arithmetic is in Unicode code points. After any action
// the cursor invariants hold: 0 <= Row < len(Lines) and
// 0 <= Col <= code-point length of Lines[Row]. The reducer clamps
// rather than failing.
//
// Basic usage:
//
//	st := buffer.NewFromString("hello", 80)
//	var r buffer.Reducer
//	st = r.Apply(st, buffer.Insert{Text: " world"})
//	st = r.Apply(st, buffer.Undo{})
package buffer
