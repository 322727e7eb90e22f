package buffer

import (
	"fmt"
	"strings"

	"github.com/dshills/linewise/internal/engine/codepoint"
	"github.com/dshills/linewise/internal/engine/linemap"
	"github.com/dshills/linewise/internal/logger"
)

// Reducer applies actions to states: a pure (state, action) -> state
// function. The zero value is usable; Vim actions are no-ops until a
// handler is attached.
type Reducer struct {
	Vim VimHandler
}

// Apply returns the state produced by applying a to st. st itself is
// never modified.
func (r Reducer) Apply(st State, a Action) State {
	switch act := a.(type) {
	case SetText:
		return applySetText(st, act)
	case Insert:
		return applyInsert(st, act.Text)
	case Backspace:
		return applyBackspace(st)
	case Delete:
		return applyDelete(st)
	case DeleteWordLeft:
		return applyDeleteWordLeft(st)
	case DeleteWordRight:
		return applyDeleteWordRight(st)
	case KillLineRight:
		return applyKillLineRight(st)
	case KillLineLeft:
		return applyKillLineLeft(st)
	case Move:
		return applyMove(st, act.Dir)
	case Undo:
		return applyUndo(st)
	case Redo:
		return applyRedo(st)
	case ReplaceRange:
		return applyReplaceRange(st, act)
	case MoveToOffset:
		pos := linemap.PositionForOffset(st.Text(), act.Offset)
		st.Row, st.Col = pos.Row, pos.Col
		st.PreferredCol = -1
		return st.clamped()
	case CreateUndoSnapshot:
		return st.WithUndoSnapshot()
	case SetViewportWidth:
		if act.Width == st.Width {
			return st
		}
		st.Width = act.Width
		return st
	case Vim:
		if r.Vim == nil {
			return st
		}
		return r.Vim.Apply(st, act.Act).clamped()
	default:
		// Unreachable for in-package callers; the action set is closed.
		logger.Error("unknown buffer action", "action", fmt.Sprintf("%T", a))
		return st
	}
}

func applySetText(st State, act SetText) State {
	if act.PushUndo {
		st = st.WithUndoSnapshot()
	}
	lines := splitLines(normalizeNewlines(act.Text))
	st.Lines = lines
	st.Row = len(lines) - 1
	st.Col = codepoint.Count(lines[st.Row])
	st.PreferredCol = -1
	return st
}

func applyInsert(st State, text string) State {
	text = normalizeNewlines(sanitizeInsert(text))
	if text == "" {
		return st
	}
	st = st.WithUndoSnapshot().clamped()

	parts := strings.Split(text, "\n")
	line := st.lineRunes(st.Row)
	before := string(line[:st.Col])
	after := string(line[st.Col:])

	lines := st.cloneLines()
	if len(parts) == 1 {
		lines[st.Row] = before + parts[0] + after
		st.Col += codepoint.Count(parts[0])
	} else {
		merged := make([]string, 0, len(lines)+len(parts)-1)
		merged = append(merged, lines[:st.Row]...)
		merged = append(merged, before+parts[0])
		merged = append(merged, parts[1:len(parts)-1]...)
		last := parts[len(parts)-1]
		merged = append(merged, last+after)
		merged = append(merged, lines[st.Row+1:]...)
		lines = merged
		st.Row += len(parts) - 1
		st.Col = codepoint.Count(last)
	}
	st.Lines = lines
	st.PreferredCol = -1
	return st
}

func applyBackspace(st State) State {
	st = st.clamped()
	if st.Col == 0 && st.Row == 0 {
		return st
	}
	st = st.WithUndoSnapshot()

	lines := st.cloneLines()
	if st.Col > 0 {
		line := st.lineRunes(st.Row)
		lines[st.Row] = string(line[:st.Col-1]) + string(line[st.Col:])
		st.Col--
	} else {
		prev := lines[st.Row-1]
		newCol := codepoint.Count(prev)
		lines[st.Row-1] = prev + lines[st.Row]
		lines = append(lines[:st.Row], lines[st.Row+1:]...)
		st.Row--
		st.Col = newCol
	}
	st.Lines = lines
	st.PreferredCol = -1
	return st
}

func applyDelete(st State) State {
	st = st.clamped()
	line := st.lineRunes(st.Row)
	atLineEnd := st.Col >= len(line)
	if atLineEnd && st.Row == len(st.Lines)-1 {
		return st
	}
	st = st.WithUndoSnapshot()

	lines := st.cloneLines()
	if !atLineEnd {
		lines[st.Row] = string(line[:st.Col]) + string(line[st.Col+1:])
	} else {
		lines[st.Row] = lines[st.Row] + lines[st.Row+1]
		lines = append(lines[:st.Row+1], lines[st.Row+2:]...)
	}
	st.Lines = lines
	st.PreferredCol = -1
	return st
}

func applyDeleteWordLeft(st State) State {
	st = st.clamped()
	if st.Col == 0 {
		// At a line start the word delete degrades to a backspace,
		// joining with the previous line.
		return applyBackspace(st)
	}
	st = st.WithUndoSnapshot()

	line := st.lineRunes(st.Row)
	target := prevWordBoundary(line, st.Col)
	lines := st.cloneLines()
	st.Clipboard = string(line[target:st.Col])
	lines[st.Row] = string(line[:target]) + string(line[st.Col:])
	st.Col = target
	st.Lines = lines
	st.PreferredCol = -1
	return st
}

func applyDeleteWordRight(st State) State {
	st = st.clamped()
	line := st.lineRunes(st.Row)
	if st.Col >= len(line) {
		// At a line end the word delete degrades to a delete, joining
		// with the next line.
		return applyDelete(st)
	}
	st = st.WithUndoSnapshot()

	target := nextWordBoundary(line, st.Col)
	lines := st.cloneLines()
	st.Clipboard = string(line[st.Col:target])
	lines[st.Row] = string(line[:st.Col]) + string(line[target:])
	st.Lines = lines
	st.PreferredCol = -1
	return st
}

func applyKillLineRight(st State) State {
	st = st.clamped()
	line := st.lineRunes(st.Row)
	if st.Col >= len(line) {
		// Kill at end of line joins with the next line, like delete.
		return applyDelete(st)
	}
	st = st.WithUndoSnapshot()

	lines := st.cloneLines()
	st.Clipboard = string(line[st.Col:])
	lines[st.Row] = string(line[:st.Col])
	st.Lines = lines
	st.PreferredCol = -1
	return st
}

func applyKillLineLeft(st State) State {
	st = st.clamped()
	if st.Col == 0 {
		return st
	}
	st = st.WithUndoSnapshot()

	line := st.lineRunes(st.Row)
	lines := st.cloneLines()
	st.Clipboard = string(line[:st.Col])
	lines[st.Row] = string(line[st.Col:])
	st.Col = 0
	st.Lines = lines
	st.PreferredCol = -1
	return st
}

func applyUndo(st State) State {
	snap, rest, ok := st.Undo.Pop()
	if !ok {
		return st
	}
	st.Redo = st.Redo.Push(st.snapshot())
	st.Undo = rest
	restored := snap.Clone()
	st.Lines = restored.Lines
	st.Row = restored.Row
	st.Col = restored.Col
	st.PreferredCol = -1
	return st.clamped()
}

func applyRedo(st State) State {
	snap, rest, ok := st.Redo.Pop()
	if !ok {
		return st
	}
	st.Undo = st.Undo.Push(st.snapshot())
	st.Redo = rest
	restored := snap.Clone()
	st.Lines = restored.Lines
	st.Row = restored.Row
	st.Col = restored.Col
	st.PreferredCol = -1
	return st.clamped()
}

func applyReplaceRange(st State, act ReplaceRange) State {
	if !validRange(st, act) {
		// Programmatic callers may compute ranges speculatively; an
		// invalid range returns the state unchanged.
		return st
	}
	st = st.WithUndoSnapshot()

	prefix := codepoint.Slice(st.Line(act.StartRow), 0, act.StartCol)
	endLineLen := codepoint.Count(st.Line(act.EndRow))
	suffix := codepoint.Slice(st.Line(act.EndRow), act.EndCol, endLineLen)

	parts := strings.Split(normalizeNewlines(act.Text), "\n")
	lines := st.cloneLines()

	merged := make([]string, 0, act.StartRow+len(parts)+len(lines)-act.EndRow-1)
	merged = append(merged, lines[:act.StartRow]...)
	if len(parts) == 1 {
		merged = append(merged, prefix+parts[0]+suffix)
		st.Row = act.StartRow
		st.Col = codepoint.Count(prefix) + codepoint.Count(parts[0])
	} else {
		merged = append(merged, prefix+parts[0])
		merged = append(merged, parts[1:len(parts)-1]...)
		last := parts[len(parts)-1]
		merged = append(merged, last+suffix)
		st.Row = act.StartRow + len(parts) - 1
		st.Col = codepoint.Count(last)
	}
	merged = append(merged, lines[act.EndRow+1:]...)

	st.Lines = merged
	st.PreferredCol = -1
	return st.clamped()
}

// validRange reports whether the range is ordered and inside the
// buffer.
func validRange(st State, act ReplaceRange) bool {
	if act.StartRow < 0 || act.EndRow >= len(st.Lines) {
		return false
	}
	start := linemap.Position{Row: act.StartRow, Col: act.StartCol}
	end := linemap.Position{Row: act.EndRow, Col: act.EndCol}
	if end.Before(start) {
		return false
	}
	if act.StartCol < 0 || act.StartCol > codepoint.Count(st.Line(act.StartRow)) {
		return false
	}
	if act.EndCol < 0 || act.EndCol > codepoint.Count(st.Line(act.EndRow)) {
		return false
	}
	return true
}
