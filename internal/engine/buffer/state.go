package buffer

import (
	"strings"

	"github.com/dshills/linewise/internal/engine/codepoint"
	"github.com/dshills/linewise/internal/engine/history"
	"github.com/dshills/linewise/internal/engine/linemap"
)

// State is the complete logical editing state.
type State struct {
	// Lines are the logical lines. Never empty: an empty buffer is a
	// single empty line. No line contains a newline.
	Lines []string

	// Row and Col are the logical cursor. Col is a code-point column
	// and may equal the line length (cursor after the last character).
	Row int
	Col int

	// PreferredCol remembers the visual column during vertical motion
	// through lines of varying length. -1 means unset; any non-vertical
	// motion or edit clears it.
	PreferredCol int

	// SelectionAnchor marks the non-moving end of a selection. Its
	// lifecycle is independent of the cursor.
	SelectionAnchor *linemap.Position

	// Clipboard holds the last killed text.
	Clipboard string

	// Width is the viewport width in display columns, used by the
	// visual motions.
	Width int

	// Undo and Redo are the bounded content-history stacks.
	Undo history.Stack
	Redo history.Stack
}

// New returns an empty single-line state with the given viewport
// width.
func New(width int) State {
	return State{
		Lines:        []string{""},
		PreferredCol: -1,
		Width:        width,
	}
}

// NewFromString returns a state holding text (newline-normalized),
// cursor at the end.
func NewFromString(text string, width int) State {
	st := New(width)
	lines := splitLines(normalizeNewlines(text))
	st.Lines = lines
	st.Row = len(lines) - 1
	st.Col = codepoint.Count(lines[st.Row])
	return st
}

// Text returns the buffer content with lines joined by \n.
func (s State) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Line returns logical line row, or "" when row is out of range.
func (s State) Line(row int) string {
	if row < 0 || row >= len(s.Lines) {
		return ""
	}
	return s.Lines[row]
}

// LineCount returns the number of logical lines.
func (s State) LineCount() int {
	return len(s.Lines)
}

// Cursor returns the logical cursor position.
func (s State) Cursor() linemap.Position {
	return linemap.Position{Row: s.Row, Col: s.Col}
}

// CanUndo reports whether an undo snapshot is available.
func (s State) CanUndo() bool { return !s.Undo.IsEmpty() }

// CanRedo reports whether a redo snapshot is available.
func (s State) CanRedo() bool { return !s.Redo.IsEmpty() }

// WithUndoSnapshot returns s with its current content pushed onto the
// undo stack and the redo stack cleared. Apply calls this before each
// built-in mutating action; vim handlers call it before their own
// mutations.
func (s State) WithUndoSnapshot() State {
	s.Undo = s.Undo.Push(s.snapshot())
	s.Redo = history.Stack{}
	return s
}

// snapshot captures the undoable portion of the state with its own
// copy of the line slice.
func (s State) snapshot() history.Snapshot {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	return history.Snapshot{Lines: lines, Row: s.Row, Col: s.Col}
}

// cloneLines returns a fresh copy of the line slice. Every mutating
// transition operates on a copy so earlier State values stay intact.
func (s State) cloneLines() []string {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	return lines
}

// clamped returns s with the cursor forced into the buffer invariants.
func (s State) clamped() State {
	if len(s.Lines) == 0 {
		s.Lines = []string{""}
	}
	if s.Row < 0 {
		s.Row = 0
	}
	if s.Row >= len(s.Lines) {
		s.Row = len(s.Lines) - 1
	}
	if s.Col < 0 {
		s.Col = 0
	}
	if n := codepoint.Count(s.Lines[s.Row]); s.Col > n {
		s.Col = n
	}
	return s
}

// lineRunes returns line row as code points.
func (s State) lineRunes(row int) []rune {
	return []rune(s.Line(row))
}

// normalizeNewlines converts CRLF and bare CR to LF.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// splitLines splits normalized text into logical lines, always
// returning at least one line.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
