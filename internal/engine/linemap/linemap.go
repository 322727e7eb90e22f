// Package linemap converts between flat code-point offsets into the
// joined buffer text (logical lines joined by \n) and (row, column)
// logical positions. Each joining newline costs exactly one code
// point. All conversions are total: out-of-range inputs clamp.
package linemap

import (
	"fmt"
	"strings"

	"github.com/dshills/linewise/internal/engine/codepoint"
)

// Position is a logical buffer position. Row indexes the line, Col is
// a code-point column within it.
type Position struct {
	Row int
	Col int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if equal, 1 if p > other in
// document order.
func (p Position) Compare(other Position) int {
	if p.Row != other.Row {
		if p.Row < other.Row {
			return -1
		}
		return 1
	}
	if p.Col != other.Col {
		if p.Col < other.Col {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// PositionForOffset maps an absolute code-point offset within text to
// a logical position. An offset landing exactly on a joining newline
// resolves to the start of the following line; at the very end of the
// text it resolves to the end of the last line. Offsets beyond the
// text clamp to the end of the last line.
func PositionForOffset(text string, offset int) Position {
	lines := strings.Split(text, "\n")
	if offset < 0 {
		offset = 0
	}

	pos := 0
	for row, line := range lines {
		n := codepoint.Count(line)
		if row == len(lines)-1 {
			if offset <= pos+n {
				return Position{Row: row, Col: offset - pos}
			}
			break
		}
		if offset < pos+n {
			return Position{Row: row, Col: offset - pos}
		}
		if offset == pos+n {
			// On the newline itself: end of this line is position
			// (row+1, 0) of the joined text.
			return Position{Row: row + 1, Col: 0}
		}
		pos += n + 1
	}

	last := len(lines) - 1
	return Position{Row: last, Col: codepoint.Count(lines[last])}
}

// OffsetForPosition is the inverse of PositionForOffset. The row
// clamps to the valid line range and the column to that line's length.
func OffsetForPosition(lines []string, row, col int) int {
	if len(lines) == 0 {
		return 0
	}
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}

	offset := 0
	for r := 0; r < row; r++ {
		offset += codepoint.Count(lines[r]) + 1
	}

	n := codepoint.Count(lines[row])
	if col < 0 {
		col = 0
	}
	if col > n {
		col = n
	}
	return offset + col
}

// RangeForOffsets converts a flat (start, end) offset pair into start
// and end positions. The pair is normalized so start <= end.
func RangeForOffsets(text string, start, end int) (Position, Position) {
	if end < start {
		start, end = end, start
	}
	return PositionForOffset(text, start), PositionForOffset(text, end)
}

// LineRangeOffsets returns the offset span covering the logical lines
// startRow through endRow inclusive: from the start of startRow to the
// end of endRow. Rows clamp and are normalized so startRow <= endRow.
func LineRangeOffsets(lines []string, startRow, endRow int) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	start := OffsetForPosition(lines, startRow, 0)
	if endRow >= len(lines) {
		endRow = len(lines) - 1
	}
	if endRow < 0 {
		endRow = 0
	}
	end := OffsetForPosition(lines, endRow, codepoint.Count(lines[endRow]))
	return start, end
}
