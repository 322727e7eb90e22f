package buffer

import (
	"github.com/dshills/linewise/internal/engine/codepoint"
	"github.com/dshills/linewise/internal/engine/layout"
	"github.com/dshills/linewise/internal/engine/linemap"
	"github.com/dshills/linewise/internal/engine/word"
)

// applyMove repositions the cursor. Left/right/up/down/home/end work
// in visual space so wrapped lines behave like separate screen lines;
// the word motions work in logical space. Up and down use and set
// PreferredCol; every other direction clears it. History is never
// touched.
func applyMove(st State, dir Direction) State {
	st = st.clamped()
	switch dir {
	case DirWordLeft:
		pos := wordLeftPos(st.Lines, st.Row, st.Col)
		st.Row, st.Col = pos.Row, pos.Col
		st.PreferredCol = -1
		return st
	case DirWordRight:
		pos := wordRightPos(st.Lines, st.Row, st.Col)
		st.Row, st.Col = pos.Row, pos.Col
		st.PreferredCol = -1
		return st
	}

	v := layout.Compute(st.Lines, st.Cursor(), st.Width)
	vc := v.Cursor

	var target layout.Point
	switch dir {
	case DirLeft:
		st.PreferredCol = -1
		switch {
		case vc.Col > 0:
			target = layout.Point{Row: vc.Row, Col: vc.Col - 1}
		case vc.Row > 0:
			target = layout.Point{Row: vc.Row - 1, Col: v.SegmentLength(vc.Row - 1)}
		default:
			return st
		}
	case DirRight:
		st.PreferredCol = -1
		switch {
		case vc.Col < v.SegmentLength(vc.Row):
			target = layout.Point{Row: vc.Row, Col: vc.Col + 1}
		case vc.Row < len(v.Lines)-1:
			target = layout.Point{Row: vc.Row + 1, Col: 0}
		default:
			return st
		}
	case DirUp:
		if vc.Row == 0 {
			return st
		}
		pref := st.PreferredCol
		if pref < 0 {
			pref = vc.Col
		}
		st.PreferredCol = pref
		target = layout.Point{Row: vc.Row - 1, Col: minInt(pref, v.SegmentLength(vc.Row-1))}
	case DirDown:
		if vc.Row >= len(v.Lines)-1 {
			return st
		}
		pref := st.PreferredCol
		if pref < 0 {
			pref = vc.Col
		}
		st.PreferredCol = pref
		target = layout.Point{Row: vc.Row + 1, Col: minInt(pref, v.SegmentLength(vc.Row+1))}
	case DirHome:
		st.PreferredCol = -1
		target = layout.Point{Row: vc.Row, Col: 0}
	case DirEnd:
		st.PreferredCol = -1
		target = layout.Point{Row: vc.Row, Col: v.SegmentLength(vc.Row)}
	default:
		return st
	}

	pos := v.LogicalFor(target.Row, target.Col)
	st.Row, st.Col = pos.Row, pos.Col
	return st.clamped()
}

// wordLeftPos moves to the start of the previous word using the simple
// classifier, crossing to the end of the previous line at column 0.
func wordLeftPos(lines []string, row, col int) linemap.Position {
	if col == 0 {
		if row == 0 {
			return linemap.Position{}
		}
		return linemap.Position{Row: row - 1, Col: codepoint.Count(lines[row-1])}
	}
	runes := []rune(lines[row])
	return linemap.Position{Row: row, Col: prevWordBoundary(runes, col)}
}

// wordRightPos moves to the end of the next word using the simple
// classifier, crossing to the start of the next line at end of line.
func wordRightPos(lines []string, row, col int) linemap.Position {
	runes := []rune(lines[row])
	if col >= len(runes) {
		if row >= len(lines)-1 {
			return linemap.Position{Row: row, Col: len(runes)}
		}
		return linemap.Position{Row: row + 1, Col: 0}
	}
	return linemap.Position{Row: row, Col: nextWordBoundary(runes, col)}
}

// prevWordBoundary scans left from col: first over whitespace and
// separators, then over word characters, returning the word start.
func prevWordBoundary(line []rune, col int) int {
	i := col
	for i > 0 && !word.IsSimpleWordRune(line[i-1]) {
		i--
	}
	for i > 0 && word.IsSimpleWordRune(line[i-1]) {
		i--
	}
	return i
}

// nextWordBoundary scans right from col: first over whitespace and
// separators, then over word characters, returning the position just
// past the word end.
func nextWordBoundary(line []rune, col int) int {
	i := col
	for i < len(line) && !word.IsSimpleWordRune(line[i]) {
		i++
	}
	for i < len(line) && word.IsSimpleWordRune(line[i]) {
		i++
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
