// Package vim implements the pluggable vim-mode action handler. The
// reducer delegates the vim action family here unchanged; the handler
// owns mode bookkeeping (normal vs. insert), repeat counts, and the
// undo-snapshotting of its own mutations.
//
// Word motions here use the script-aware, cross-line boundary search
// from the word package — unlike the reducer's own word motions, which
// keep the legacy simple classifier. The divergence is deliberate.
package vim

import (
	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/engine/codepoint"
	"github.com/dshills/linewise/internal/engine/linemap"
	"github.com/dshills/linewise/internal/engine/word"
)

// Mode is the vim editing mode.
type Mode uint8

// Modes the handler tracks.
const (
	ModeNormal Mode = iota
	ModeInsert
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeInsert {
		return "insert"
	}
	return "normal"
}

// Handler applies vim actions to buffer states. It satisfies
// buffer.VimHandler.
type Handler struct {
	mode Mode
}

// NewHandler returns a handler in normal mode.
func NewHandler() *Handler {
	return &Handler{}
}

// Mode returns the current editing mode.
func (h *Handler) Mode() Mode {
	return h.mode
}

// Apply executes one vim action. Motions and mode transitions never
// touch history; edits snapshot exactly once.
func (h *Handler) Apply(st buffer.State, act buffer.VimAction) buffer.State {
	count := act.Count
	if count <= 0 {
		count = 1
	}

	switch act.Kind {
	// Motions
	case buffer.VimMoveLeft:
		st.Col -= count
		st.PreferredCol = -1
	case buffer.VimMoveRight:
		st.Col += count
		if limit := h.colLimit(st, st.Row); st.Col > limit {
			st.Col = limit
		}
		st.PreferredCol = -1
	case buffer.VimMoveUp:
		st = h.vertical(st, -count)
	case buffer.VimMoveDown:
		st = h.vertical(st, count)
	case buffer.VimWordForward:
		st = h.motion(st, count, func(p linemap.Position) (linemap.Position, bool) {
			return word.NextWordAcross(st.Lines, p.Row, p.Col)
		})
	case buffer.VimWordBackward:
		st = h.motion(st, count, func(p linemap.Position) (linemap.Position, bool) {
			return word.PrevWordAcross(st.Lines, p.Row, p.Col)
		})
	case buffer.VimWordEnd:
		st = h.motion(st, count, func(p linemap.Position) (linemap.Position, bool) {
			return word.WordEndAcross(st.Lines, p.Row, p.Col)
		})
	case buffer.VimLineStart:
		st.Col = 0
		st.PreferredCol = -1
	case buffer.VimLineEnd:
		st.Col = h.colLimit(st, st.Row)
		st.PreferredCol = -1
	case buffer.VimFirstNonBlank:
		st.Col = firstNonBlank(st.Line(st.Row))
		st.PreferredCol = -1
	case buffer.VimBufferStart:
		st.Row = 0
		st.Col = firstNonBlank(st.Line(0))
		st.PreferredCol = -1
	case buffer.VimBufferEnd:
		st.Row = len(st.Lines) - 1
		st.Col = firstNonBlank(st.Line(st.Row))
		st.PreferredCol = -1
	case buffer.VimGotoLine:
		st.Row = count - 1
		if st.Row >= len(st.Lines) {
			st.Row = len(st.Lines) - 1
		}
		if st.Row < 0 {
			st.Row = 0
		}
		st.Col = firstNonBlank(st.Line(st.Row))
		st.PreferredCol = -1

	// Edits
	case buffer.VimDeleteWordForward:
		st = h.deleteSpan(st, st.Cursor(), h.wordForwardTarget(st, count))
	case buffer.VimDeleteWordBackward:
		st = h.deleteSpan(st, h.wordBackwardTarget(st, count), st.Cursor())
	case buffer.VimDeleteToWordEnd:
		st = h.deleteSpan(st, st.Cursor(), h.wordEndTarget(st, count))
	case buffer.VimChangeWordForward:
		st = h.deleteSpan(st, st.Cursor(), h.wordEndTarget(st, count))
		h.mode = ModeInsert
	case buffer.VimChangeWordBackward:
		st = h.deleteSpan(st, h.wordBackwardTarget(st, count), st.Cursor())
		h.mode = ModeInsert
	case buffer.VimChangeToWordEnd:
		st = h.deleteSpan(st, st.Cursor(), h.wordEndTarget(st, count))
		h.mode = ModeInsert
	case buffer.VimDeleteLine:
		st = h.deleteLines(st, count)
	case buffer.VimChangeLine:
		st = h.changeLines(st, count)
		h.mode = ModeInsert
	case buffer.VimDeleteToLineEnd:
		st = h.deleteToLineEnd(st)
	case buffer.VimChangeToLineEnd:
		st = h.deleteToLineEnd(st)
		h.mode = ModeInsert

	// Mode transitions
	case buffer.VimInsert:
		h.mode = ModeInsert
	case buffer.VimAppend:
		h.mode = ModeInsert
		if st.Col < codepoint.Count(st.Line(st.Row)) {
			st.Col++
		}
	case buffer.VimAppendEnd:
		h.mode = ModeInsert
		st.Col = codepoint.Count(st.Line(st.Row))
	case buffer.VimInsertStart:
		h.mode = ModeInsert
		st.Col = firstNonBlank(st.Line(st.Row))
	case buffer.VimOpenBelow:
		h.mode = ModeInsert
		end := codepoint.Count(st.Line(st.Row))
		st = h.replace(st, buffer.ReplaceRange{
			StartRow: st.Row, StartCol: end,
			EndRow: st.Row, EndCol: end,
			Text: "\n",
		})
	case buffer.VimOpenAbove:
		h.mode = ModeInsert
		row := st.Row
		st = h.replace(st, buffer.ReplaceRange{
			StartRow: row, StartCol: 0,
			EndRow: row, EndCol: 0,
			Text: "\n",
		})
		st.Row = row
		st.Col = 0
	case buffer.VimEscape:
		h.mode = ModeNormal
		if limit := normalColLimit(st.Line(st.Row)); st.Col > limit {
			st.Col = limit
		}
		st.PreferredCol = -1
	}

	return clampState(st)
}

// vertical moves the cursor by delta logical rows, remembering the
// column across shorter lines.
func (h *Handler) vertical(st buffer.State, delta int) buffer.State {
	pref := st.PreferredCol
	if pref < 0 {
		pref = st.Col
	}
	st.Row += delta
	if st.Row < 0 {
		st.Row = 0
	}
	if st.Row >= len(st.Lines) {
		st.Row = len(st.Lines) - 1
	}
	st.Col = pref
	if limit := h.colLimit(st, st.Row); st.Col > limit {
		st.Col = limit
	}
	st.PreferredCol = pref
	return st
}

// motion repeats a cross-line boundary search count times, stopping at
// the last reachable position.
func (h *Handler) motion(st buffer.State, count int, step func(linemap.Position) (linemap.Position, bool)) buffer.State {
	pos := st.Cursor()
	for i := 0; i < count; i++ {
		next, ok := step(pos)
		if !ok {
			break
		}
		pos = next
	}
	st.Row, st.Col = pos.Row, pos.Col
	st.PreferredCol = -1
	return st
}

// wordForwardTarget is where a count-repeated w motion lands; when no
// further word exists the target extends to the end of the current
// line so dw at the last word still deletes it.
func (h *Handler) wordForwardTarget(st buffer.State, count int) linemap.Position {
	pos := st.Cursor()
	for i := 0; i < count; i++ {
		next, ok := word.NextWordAcross(st.Lines, pos.Row, pos.Col)
		if !ok {
			return linemap.Position{Row: pos.Row, Col: codepoint.Count(st.Line(pos.Row))}
		}
		pos = next
	}
	return pos
}

func (h *Handler) wordBackwardTarget(st buffer.State, count int) linemap.Position {
	pos := st.Cursor()
	for i := 0; i < count; i++ {
		next, ok := word.PrevWordAcross(st.Lines, pos.Row, pos.Col)
		if !ok {
			break
		}
		pos = next
	}
	return pos
}

// wordEndTarget is one past the count-repeated e motion, making the
// deletion span inclusive of the end character.
func (h *Handler) wordEndTarget(st buffer.State, count int) linemap.Position {
	pos := st.Cursor()
	found := false
	for i := 0; i < count; i++ {
		next, ok := word.WordEndAcross(st.Lines, pos.Row, pos.Col)
		if !ok {
			break
		}
		pos = next
		found = true
	}
	if !found {
		return st.Cursor()
	}
	return linemap.Position{Row: pos.Row, Col: pos.Col + 1}
}

// deleteSpan removes [start, end) via the reducer's range replace,
// which performs the single undo snapshot for the edit.
func (h *Handler) deleteSpan(st buffer.State, start, end linemap.Position) buffer.State {
	if !start.Before(end) {
		return st
	}
	st.Clipboard = spanText(st, start, end)
	return h.replace(st, buffer.ReplaceRange{
		StartRow: start.Row, StartCol: start.Col,
		EndRow: end.Row, EndCol: end.Col,
		Text: "",
	})
}

// deleteLines removes count whole lines starting at the cursor row.
func (h *Handler) deleteLines(st buffer.State, count int) buffer.State {
	row := st.Row
	endRow := row + count - 1
	if endRow >= len(st.Lines) {
		endRow = len(st.Lines) - 1
	}
	st.Clipboard = spanText(st,
		linemap.Position{Row: row},
		linemap.Position{Row: endRow, Col: codepoint.Count(st.Line(endRow))})

	var rng buffer.ReplaceRange
	switch {
	case endRow < len(st.Lines)-1:
		// Swallow the trailing newline.
		rng = buffer.ReplaceRange{StartRow: row, StartCol: 0, EndRow: endRow + 1, EndCol: 0}
	case row > 0:
		// Last line(s): swallow the leading newline instead.
		prevLen := codepoint.Count(st.Line(row - 1))
		rng = buffer.ReplaceRange{StartRow: row - 1, StartCol: prevLen, EndRow: endRow, EndCol: codepoint.Count(st.Line(endRow))}
	default:
		// The whole buffer.
		rng = buffer.ReplaceRange{StartRow: 0, StartCol: 0, EndRow: endRow, EndCol: codepoint.Count(st.Line(endRow))}
	}
	st = h.replace(st, rng)
	if st.Row >= len(st.Lines) {
		st.Row = len(st.Lines) - 1
	}
	st.Col = firstNonBlank(st.Line(st.Row))
	return st
}

// changeLines clears count whole lines into a single empty line and
// leaves the cursor on it.
func (h *Handler) changeLines(st buffer.State, count int) buffer.State {
	row := st.Row
	endRow := row + count - 1
	if endRow >= len(st.Lines) {
		endRow = len(st.Lines) - 1
	}
	st = h.replace(st, buffer.ReplaceRange{
		StartRow: row, StartCol: 0,
		EndRow: endRow, EndCol: codepoint.Count(st.Line(endRow)),
		Text: "",
	})
	st.Row = row
	st.Col = 0
	return st
}

func (h *Handler) deleteToLineEnd(st buffer.State) buffer.State {
	end := codepoint.Count(st.Line(st.Row))
	if st.Col >= end {
		return st
	}
	st.Clipboard = codepoint.Slice(st.Line(st.Row), st.Col, end)
	return h.replace(st, buffer.ReplaceRange{
		StartRow: st.Row, StartCol: st.Col,
		EndRow: st.Row, EndCol: end,
		Text: "",
	})
}

// replace routes a range replace through the base reducer so the edit
// carries exactly one undo snapshot.
func (h *Handler) replace(st buffer.State, rng buffer.ReplaceRange) buffer.State {
	var r buffer.Reducer
	return r.Apply(st, rng)
}

// colLimit is the rightmost cursor column for a row: past the last
// character in insert mode, on it in normal mode.
func (h *Handler) colLimit(st buffer.State, row int) int {
	n := codepoint.Count(st.Line(row))
	if h.mode == ModeInsert {
		return n
	}
	return normalColLimit(st.Line(row))
}

func normalColLimit(line string) int {
	n := codepoint.Count(line)
	if n == 0 {
		return 0
	}
	return n - 1
}

func firstNonBlank(line string) int {
	for i, r := range []rune(line) {
		if !word.IsSpaceRune(r) {
			return i
		}
	}
	return 0
}

// spanText extracts the text of [start, end) including joining
// newlines.
func spanText(st buffer.State, start, end linemap.Position) string {
	so := linemap.OffsetForPosition(st.Lines, start.Row, start.Col)
	eo := linemap.OffsetForPosition(st.Lines, end.Row, end.Col)
	return codepoint.Slice(st.Text(), so, eo)
}

func clampState(st buffer.State) buffer.State {
	if len(st.Lines) == 0 {
		st.Lines = []string{""}
	}
	if st.Row < 0 {
		st.Row = 0
	}
	if st.Row >= len(st.Lines) {
		st.Row = len(st.Lines) - 1
	}
	if st.Col < 0 {
		st.Col = 0
	}
	if n := codepoint.Count(st.Lines[st.Row]); st.Col > n {
		st.Col = n
	}
	return st
}
