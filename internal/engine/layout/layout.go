// Package layout computes the wrapped visual rendering of logical
// lines for a given viewport width, together with bidirectional maps
// between logical and visual coordinates.
//
// Wrapping is greedy over code points measured in display columns
// (wide CJK glyphs cost two, combining marks cost zero). Word wrap
// breaks at the last space inside the current chunk when possible; a
// space that itself overflows is consumed as the break point rather
// than carried to the next visual line. When no usable break exists
// the line hard-breaks, emitting at least one code point per visual
// line, so the computation terminates for any width including 0.
package layout

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/linewise/internal/engine/linemap"
)

// Line is one wrapped visual line and its origin in logical space.
type Line struct {
	Text string
	// Row is the index of the logical line this segment came from.
	Row int
	// StartCol is the code-point column in the logical line where this
	// segment starts.
	StartCol int
}

// Point is a position in visual space: a visual line index and a
// code-point column within it.
type Point struct {
	Row int
	Col int
}

// Break records one visual segment of a logical line.
type Break struct {
	VisualRow int
	StartCol  int
}

// Visual is the derived wrapped view of the buffer. It is recomputed
// from (lines, cursor, width) and never mutated in place.
type Visual struct {
	Lines  []Line
	Cursor Point
	// Breaks holds, per logical line, the visual segments it produced.
	// Every logical line has at least one.
	Breaks [][]Break
}

// SegmentLength returns the code-point length of visual line row.
func (v *Visual) SegmentLength(row int) int {
	if row < 0 || row >= len(v.Lines) {
		return 0
	}
	return len([]rune(v.Lines[row].Text))
}

// LogicalFor maps a visual position back to logical coordinates. The
// column clamps into the segment.
func (v *Visual) LogicalFor(row, col int) linemap.Position {
	if len(v.Lines) == 0 {
		return linemap.Position{}
	}
	if row < 0 {
		row = 0
	}
	if row >= len(v.Lines) {
		row = len(v.Lines) - 1
	}
	l := v.Lines[row]
	n := len([]rune(l.Text))
	if col < 0 {
		col = 0
	}
	if col > n {
		col = n
	}
	return linemap.Position{Row: l.Row, Col: l.StartCol + col}
}

// Compute lays out lines at the given viewport width and maps the
// logical cursor into visual space. The cursor clamps into the buffer
// first. The result always contains at least one visual line: wholly
// empty text yields a single empty visual line with the cursor at
// (0,0).
func Compute(lines []string, cur linemap.Position, width int) *Visual {
	if len(lines) == 0 {
		lines = []string{""}
	}
	if cur.Row < 0 {
		cur.Row = 0
	}
	if cur.Row >= len(lines) {
		cur.Row = len(lines) - 1
	}
	if n := len([]rune(lines[cur.Row])); cur.Col > n {
		cur.Col = n
	}
	if cur.Col < 0 {
		cur.Col = 0
	}

	v := &Visual{Breaks: make([][]Break, len(lines))}
	for row, line := range lines {
		for _, sg := range wrapLine(line, width) {
			v.Breaks[row] = append(v.Breaks[row], Break{
				VisualRow: len(v.Lines),
				StartCol:  sg.start,
			})
			v.Lines = append(v.Lines, Line{
				Text:     string(sg.runes),
				Row:      row,
				StartCol: sg.start,
			})
		}
	}
	v.Cursor = locateCursor(v, cur)
	return v
}

type segment struct {
	runes []rune
	start int
}

// wrapLine splits one logical line into visual segments. start values
// are code-point columns into the logical line; spaces consumed as
// break points leave gaps between consecutive segments.
func wrapLine(line string, width int) []segment {
	runes := []rune(line)
	if len(runes) == 0 {
		return []segment{{}}
	}

	var segs []segment
	var chunk []rune
	chunkWidth := 0
	lastSpace := -1 // index within chunk of the most recent space
	start := 0      // logical column of chunk[0]

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		w := runewidth.RuneWidth(r)

		if len(chunk) > 0 && chunkWidth+w > width {
			if r == ' ' {
				// The overflowing space is itself the break point; it
				// is consumed, not carried.
				segs = append(segs, segment{runes: chunk, start: start})
				start = i + 1
				chunk, chunkWidth, lastSpace = nil, 0, -1
				continue
			}
			if lastSpace > 0 {
				// Wrap at the last space strictly inside the chunk.
				// A space at chunk index 0 would emit an empty
				// segment, so it is not a usable break.
				rest := append([]rune(nil), chunk[lastSpace+1:]...)
				segs = append(segs, segment{runes: chunk[:lastSpace], start: start})
				start += lastSpace + 1
				chunk = rest
				chunkWidth = runesWidth(chunk)
				lastSpace = -1
			} else {
				// Hard break: emit what fits.
				segs = append(segs, segment{runes: chunk, start: start})
				start += len(chunk)
				chunk, chunkWidth, lastSpace = nil, 0, -1
			}
			i--
			continue
		}

		if len(chunk) == 0 && w > width {
			// A single character wider than the viewport is emitted
			// alone; consuming it guarantees forward progress.
			segs = append(segs, segment{runes: []rune{r}, start: start})
			start = i + 1
			continue
		}

		chunk = append(chunk, r)
		if r == ' ' {
			lastSpace = len(chunk) - 1
		}
		chunkWidth += w
	}

	if len(chunk) > 0 {
		segs = append(segs, segment{runes: chunk, start: start})
	}
	if len(segs) == 0 {
		segs = []segment{{}}
	}
	return segs
}

func runesWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// locateCursor maps the clamped logical cursor into visual space: the
// segment whose range contains it, or the exact end of a segment when
// the cursor sits on that boundary (a cursor at end of line stays on
// the final segment rather than jumping to a non-existent next one).
func locateCursor(v *Visual, cur linemap.Position) Point {
	breaks := v.Breaks[cur.Row]
	idx := 0
	for i, b := range breaks {
		if b.StartCol <= cur.Col {
			idx = i
		} else {
			break
		}
	}
	b := breaks[idx]
	col := cur.Col - b.StartCol
	if n := v.SegmentLength(b.VisualRow); col > n {
		// Cursor sits on a consumed break space; clamp to segment end.
		col = n
	}
	return Point{Row: b.VisualRow, Col: col}
}
