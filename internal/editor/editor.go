package editor

import (
	"context"
	"strings"

	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/engine/codepoint"
	"github.com/dshills/linewise/internal/engine/layout"
	"github.com/dshills/linewise/internal/engine/linemap"
	"github.com/dshills/linewise/internal/input/key"
	"github.com/dshills/linewise/internal/integration/extedit"
)

// Editor wraps a buffer state and its reducer behind named operations.
type Editor struct {
	reducer   buffer.Reducer
	state     buffer.State
	scroll    int
	shellMode bool
	validPath func(string) bool
	ext       extedit.Runner

	// Layout memo. Valid while the line slice identity, cursor, and
	// width are unchanged; line slices are copy-on-write so identity
	// implies content equality.
	cached      *layout.Visual
	cachedLines []string
	cachedRow   int
	cachedCol   int
	cachedWidth int
}

// Option configures an Editor.
type Option func(*Editor)

// WithVimHandler attaches a vim action handler to the reducer.
func WithVimHandler(h buffer.VimHandler) Option {
	return func(e *Editor) { e.reducer.Vim = h }
}

// WithPathValidator injects the predicate the paste heuristic uses to
// decide whether pasted text names an existing path. Without one the
// heuristic is disabled.
func WithPathValidator(f func(string) bool) Option {
	return func(e *Editor) { e.validPath = f }
}

// WithExternalEditor sets the runner used by OpenExternalEditor.
func WithExternalEditor(r extedit.Runner) Option {
	return func(e *Editor) { e.ext = r }
}

// New returns an empty editor with the given viewport width.
func New(width int, opts ...Option) *Editor {
	e := &Editor{state: buffer.New(width)}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Editor) dispatch(a buffer.Action) {
	e.state = e.reducer.Apply(e.state, a)
}

// State returns the current buffer state value.
func (e *Editor) State() buffer.State { return e.state }

// Text returns the buffer content.
func (e *Editor) Text() string { return e.state.Text() }

// Lines returns the logical lines. Callers must not modify the slice.
func (e *Editor) Lines() []string { return e.state.Lines }

// Cursor returns the logical cursor position.
func (e *Editor) Cursor() linemap.Position { return e.state.Cursor() }

// SetShellMode toggles shell mode, which disables the paste path
// heuristic.
func (e *Editor) SetShellMode(on bool) { e.shellMode = on }

// SetText replaces the whole buffer, optionally recording an undo
// snapshot of the previous content.
func (e *Editor) SetText(text string, pushUndo bool) {
	e.dispatch(buffer.SetText{Text: text, PushUndo: pushUndo})
}

// Insert inserts text at the cursor.
func (e *Editor) Insert(text string) { e.dispatch(buffer.Insert{Text: text}) }

// Backspace deletes the character before the cursor.
func (e *Editor) Backspace() { e.dispatch(buffer.Backspace{}) }

// Delete deletes the character at the cursor.
func (e *Editor) Delete() { e.dispatch(buffer.Delete{}) }

// DeleteWordLeft deletes back to the previous word boundary.
func (e *Editor) DeleteWordLeft() { e.dispatch(buffer.DeleteWordLeft{}) }

// DeleteWordRight deletes forward to the next word boundary.
func (e *Editor) DeleteWordRight() { e.dispatch(buffer.DeleteWordRight{}) }

// KillLineRight deletes from the cursor to the end of the line.
func (e *Editor) KillLineRight() { e.dispatch(buffer.KillLineRight{}) }

// KillLineLeft deletes from the start of the line to the cursor.
func (e *Editor) KillLineLeft() { e.dispatch(buffer.KillLineLeft{}) }

// Move applies a cursor motion.
func (e *Editor) Move(dir buffer.Direction) { e.dispatch(buffer.Move{Dir: dir}) }

// MoveToOffset places the cursor at a flat code-point offset.
func (e *Editor) MoveToOffset(offset int) { e.dispatch(buffer.MoveToOffset{Offset: offset}) }

// Undo reverts to the most recent snapshot.
func (e *Editor) Undo() { e.dispatch(buffer.Undo{}) }

// Redo re-applies the most recently undone change.
func (e *Editor) Redo() { e.dispatch(buffer.Redo{}) }

// CanUndo reports whether Undo would change the state.
func (e *Editor) CanUndo() bool { return e.state.CanUndo() }

// CanRedo reports whether Redo would change the state.
func (e *Editor) CanRedo() bool { return e.state.CanRedo() }

// CreateUndoSnapshot records the current content as an undo point.
func (e *Editor) CreateUndoSnapshot() { e.dispatch(buffer.CreateUndoSnapshot{}) }

// SetViewportWidth updates the wrap width.
func (e *Editor) SetViewportWidth(width int) { e.dispatch(buffer.SetViewportWidth{Width: width}) }

// ReplaceRange replaces the text between two logical positions. An
// invalid range leaves the buffer unchanged.
func (e *Editor) ReplaceRange(startRow, startCol, endRow, endCol int, text string) {
	e.dispatch(buffer.ReplaceRange{
		StartRow: startRow, StartCol: startCol,
		EndRow: endRow, EndCol: endCol,
		Text: text,
	})
}

// ReplaceRangeByOffset replaces the text between two flat code-point
// offsets.
func (e *Editor) ReplaceRangeByOffset(start, end int, text string) {
	from, to := linemap.RangeForOffsets(e.state.Text(), start, end)
	e.ReplaceRange(from.Row, from.Col, to.Row, to.Col, text)
}

// ApplyVim dispatches a vim action to the attached handler. Without a
// handler it is a no-op.
func (e *Editor) ApplyVim(act buffer.VimAction) { e.dispatch(buffer.Vim{Act: act}) }

// HandleKey routes a decoded key event: paste bursts go through the
// paste heuristics, bound chords become actions, and remaining literal
// input is inserted.
func (e *Editor) HandleKey(ev key.Event) {
	if ev.Paste {
		e.insertInput(ev.Sequence, true)
		return
	}
	if act, ok := key.Translate(ev); ok {
		e.dispatch(act)
		return
	}
	if ev.IsLiteral() {
		e.insertInput(ev.Sequence, false)
	}
}

// insertInput feeds raw input text into the buffer. Pasted bursts may
// be rewritten to an @path reference; embedded DEL bytes become
// backspaces interleaved with the surrounding inserts.
func (e *Editor) insertInput(text string, paste bool) {
	if paste {
		if ref, ok := e.pathReference(text); ok {
			e.dispatch(buffer.Insert{Text: ref})
			return
		}
	}
	var seg strings.Builder
	for _, r := range text {
		if r == 0x7f {
			if seg.Len() > 0 {
				e.dispatch(buffer.Insert{Text: seg.String()})
				seg.Reset()
			}
			e.dispatch(buffer.Backspace{})
			continue
		}
		seg.WriteRune(r)
	}
	if seg.Len() > 0 {
		e.dispatch(buffer.Insert{Text: seg.String()})
	}
}

// pathReference reports whether pasted text names a valid path and, if
// so, returns the @path reference to insert instead. Bursts shorter
// than 3 code points and anything pasted in shell mode are left alone.
func (e *Editor) pathReference(text string) (string, bool) {
	if e.shellMode || e.validPath == nil {
		return "", false
	}
	if codepoint.Count(text) < 3 {
		return "", false
	}
	candidate := trimQuotes(strings.TrimSpace(text))
	if candidate == "" || strings.ContainsRune(candidate, '\n') {
		return "", false
	}
	if !e.validPath(candidate) {
		return "", false
	}
	return "@" + candidate + " ", true
}

// trimQuotes strips one pair of matching surrounding quotes.
func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// OpenExternalEditor runs the configured external editor on the
// current content and replaces the buffer with the result. The whole
// round trip records exactly one undo snapshot; on failure the buffer
// is left untouched and the error returned.
func (e *Editor) OpenExternalEditor(ctx context.Context) error {
	result, err := e.ext.Edit(ctx, e.state.Text())
	if err != nil {
		return err
	}
	e.dispatch(buffer.SetText{Text: result, PushUndo: true})
	return nil
}

// Visual returns the wrapped layout for the current state, reusing the
// previous computation when nothing layout-relevant changed.
func (e *Editor) Visual() *layout.Visual {
	if e.cached != nil &&
		sameLines(e.cachedLines, e.state.Lines) &&
		e.cachedRow == e.state.Row && e.cachedCol == e.state.Col &&
		e.cachedWidth == e.state.Width {
		return e.cached
	}
	e.cached = layout.Compute(e.state.Lines, e.state.Cursor(), e.state.Width)
	e.cachedLines = e.state.Lines
	e.cachedRow = e.state.Row
	e.cachedCol = e.state.Col
	e.cachedWidth = e.state.Width
	return e.cached
}

// VisualCursor returns the cursor position in visual coordinates.
func (e *Editor) VisualCursor() layout.Point {
	return e.Visual().Cursor
}

// ScrollRow returns the current scroll offset into the visual lines.
func (e *Editor) ScrollRow() int { return e.scroll }

// VisibleLines returns the height-bounded window of visual lines,
// adjusting the scroll offset just enough to keep the cursor inside
// it.
func (e *Editor) VisibleLines(height int) []layout.Line {
	if height <= 0 {
		return nil
	}
	v := e.Visual()

	maxScroll := len(v.Lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.scroll > maxScroll {
		e.scroll = maxScroll
	}
	if e.scroll < 0 {
		e.scroll = 0
	}
	if v.Cursor.Row < e.scroll {
		e.scroll = v.Cursor.Row
	} else if v.Cursor.Row >= e.scroll+height {
		e.scroll = v.Cursor.Row - height + 1
	}

	end := e.scroll + height
	if end > len(v.Lines) {
		end = len(v.Lines)
	}
	return v.Lines[e.scroll:end]
}

// sameLines reports slice identity, which for copy-on-write line
// slices implies content equality.
func sameLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
