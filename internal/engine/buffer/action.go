package buffer

// Action is one step of the editing state machine. The set of
// implementations is closed; Reducer.Apply is exhaustive over it.
type Action interface {
	isAction()
}

// Direction names a cursor motion. Left, right, up, down, home and end
// operate in visual space so wrapped lines behave like separate screen
// lines; the word motions operate in logical space.
type Direction uint8

// Motion directions.
const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	DirWordLeft
	DirWordRight
	DirHome
	DirEnd
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirWordLeft:
		return "wordLeft"
	case DirWordRight:
		return "wordRight"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	default:
		return "unknown"
	}
}

// SetText replaces the whole buffer from a raw string (CRLF/CR
// normalized to LF) and moves the cursor to the end. PushUndo controls
// whether the previous content is snapshotted; full reloads that are
// already bracketed by an explicit snapshot leave it false.
type SetText struct {
	Text     string
	PushUndo bool
}

// Insert inserts text at the cursor. Unsafe control and escape
// sequences are stripped first; embedded newlines split the insertion
// across lines.
type Insert struct {
	Text string
}

// Backspace deletes one code point before the cursor, joining with the
// previous line at column 0. No-op at the buffer start.
type Backspace struct{}

// Delete deletes the code point at the cursor, joining with the next
// line at end of line. No-op at the buffer end.
type Delete struct{}

// DeleteWordLeft deletes the word run (and adjacent whitespace) before
// the cursor. Degrades to Backspace at a line start.
type DeleteWordLeft struct{}

// DeleteWordRight deletes the word run after the cursor. Degrades to
// Delete at a line end.
type DeleteWordRight struct{}

// KillLineRight deletes from the cursor to end of line; at end of line
// it joins with the next line instead.
type KillLineRight struct{}

// KillLineLeft deletes from start of line to the cursor.
type KillLineLeft struct{}

// Move repositions the cursor. Navigation only: history is untouched.
type Move struct {
	Dir Direction
}

// Undo restores the most recent undo snapshot, pushing the current
// state onto the redo stack. No-op when the stack is empty.
type Undo struct{}

// Redo restores the most recent redo snapshot, pushing the current
// state onto the undo stack. No-op when the stack is empty.
type Redo struct{}

// ReplaceRange replaces the span from (StartRow, StartCol) to
// (EndRow, EndCol) with Text, which may contain newlines. The cursor
// relocates to the end of the inserted text. An inverted or
// out-of-bounds range is a no-op.
type ReplaceRange struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
	Text     string
}

// MoveToOffset repositions the cursor from a flat code-point offset
// into the joined text.
type MoveToOffset struct {
	Offset int
}

// CreateUndoSnapshot pushes the current state onto the undo stack
// without otherwise mutating, used to bracket an external-editor round
// trip as a single undo step.
type CreateUndoSnapshot struct{}

// SetViewportWidth updates the width used by visual motions and
// layout. No-op when unchanged.
type SetViewportWidth struct {
	Width int
}

// Vim delegates a vim-mode action to the attached handler.
type Vim struct {
	Act VimAction
}

func (SetText) isAction()            {}
func (Insert) isAction()             {}
func (Backspace) isAction()          {}
func (Delete) isAction()             {}
func (DeleteWordLeft) isAction()     {}
func (DeleteWordRight) isAction()    {}
func (KillLineRight) isAction()      {}
func (KillLineLeft) isAction()       {}
func (Move) isAction()               {}
func (Undo) isAction()               {}
func (Redo) isAction()               {}
func (ReplaceRange) isAction()       {}
func (MoveToOffset) isAction()       {}
func (CreateUndoSnapshot) isAction() {}
func (SetViewportWidth) isAction()   {}
func (Vim) isAction()                {}
