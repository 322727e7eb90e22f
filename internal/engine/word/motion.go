package word

import "github.com/dshills/linewise/internal/engine/linemap"

// Line-local boundary search. Columns are code-point indices. The ok
// result is false when no further boundary exists on the line; callers
// fall through to the cross-line variants.

// NextWordStart returns the column of the next word start after col.
// The current run (word, stopping early at a script boundary, or
// punctuation) is skipped, then any whitespace.
func NextWordStart(line []rune, col int) (int, bool) {
	n := len(line)
	if col < 0 {
		col = 0
	}
	if col >= n {
		return 0, false
	}

	i := col
	switch {
	case IsWordOrCombining(line[i]):
		for i+1 < n && continuesRun(line[i], line[i+1]) {
			i++
		}
		i++
	case !IsSpaceRune(line[i]):
		for i < n && !IsSpaceRune(line[i]) && !IsWordOrCombining(line[i]) {
			i++
		}
	}
	for i < n && IsSpaceRune(line[i]) {
		i++
	}
	if i >= n {
		return 0, false
	}
	return i, true
}

// PrevWordStart returns the column of the word start at or before col,
// mirroring NextWordStart: whitespace is skipped leftward, then the
// run it lands in is walked back to its start.
func PrevWordStart(line []rune, col int) (int, bool) {
	if col > len(line) {
		col = len(line)
	}
	i := col - 1
	for i >= 0 && IsSpaceRune(line[i]) {
		i--
	}
	if i < 0 {
		return 0, false
	}
	if IsWordOrCombining(line[i]) {
		for i > 0 && continuesRun(line[i-1], line[i]) {
			i--
		}
	} else {
		for i > 0 && !IsSpaceRune(line[i-1]) && !IsWordOrCombining(line[i-1]) {
			i--
		}
	}
	return i, true
}

// WordEnd returns the column of the next word or punctuation run end
// after col. It advances one position before scanning, so a cursor
// already sitting on a run end progresses to the next one instead of
// sticking.
func WordEnd(line []rune, col int) (int, bool) {
	n := len(line)
	i := col + 1
	if i < 0 {
		i = 0
	}
	for i < n && IsSpaceRune(line[i]) {
		i++
	}
	if i >= n {
		return 0, false
	}
	if IsWordOrCombining(line[i]) {
		for i+1 < n && continuesRun(line[i], line[i+1]) {
			i++
		}
	} else {
		for i+1 < n && !IsSpaceRune(line[i+1]) && !IsWordOrCombining(line[i+1]) {
			i++
		}
	}
	return i, true
}

// Cross-line search. A blank line is itself a stopping point only when
// every remaining line in the search direction is also blank, so
// motions do not jump past intentionally empty lines when nothing else
// remains; otherwise blank lines are skipped to the first
// non-whitespace run.

// NextWordAcross finds the next word start at or after (row, col),
// scanning forward through subsequent lines on a miss.
func NextWordAcross(lines []string, row, col int) (linemap.Position, bool) {
	if row < 0 || row >= len(lines) {
		return linemap.Position{}, false
	}
	if c, ok := NextWordStart([]rune(lines[row]), col); ok {
		return linemap.Position{Row: row, Col: c}, true
	}
	for r := row + 1; r < len(lines); r++ {
		runes := []rune(lines[r])
		if isBlank(runes) {
			if allBlankFrom(lines, r+1, +1) {
				return linemap.Position{Row: r, Col: 0}, true
			}
			continue
		}
		i := 0
		for i < len(runes) && IsSpaceRune(runes[i]) {
			i++
		}
		return linemap.Position{Row: r, Col: i}, true
	}
	return linemap.Position{}, false
}

// PrevWordAcross finds the previous word start before (row, col),
// scanning backward through preceding lines on a miss.
func PrevWordAcross(lines []string, row, col int) (linemap.Position, bool) {
	if row < 0 || row >= len(lines) {
		return linemap.Position{}, false
	}
	if c, ok := PrevWordStart([]rune(lines[row]), col); ok {
		return linemap.Position{Row: row, Col: c}, true
	}
	for r := row - 1; r >= 0; r-- {
		runes := []rune(lines[r])
		if isBlank(runes) {
			if allBlankFrom(lines, r-1, -1) {
				return linemap.Position{Row: r, Col: 0}, true
			}
			continue
		}
		if c, ok := PrevWordStart(runes, len(runes)); ok {
			return linemap.Position{Row: r, Col: c}, true
		}
		return linemap.Position{Row: r, Col: 0}, true
	}
	return linemap.Position{}, false
}

// WordEndAcross finds the next word end after (row, col), scanning
// forward through subsequent lines on a miss.
func WordEndAcross(lines []string, row, col int) (linemap.Position, bool) {
	if row < 0 || row >= len(lines) {
		return linemap.Position{}, false
	}
	if c, ok := WordEnd([]rune(lines[row]), col); ok {
		return linemap.Position{Row: row, Col: c}, true
	}
	for r := row + 1; r < len(lines); r++ {
		if c, ok := WordEnd([]rune(lines[r]), -1); ok {
			return linemap.Position{Row: r, Col: c}, true
		}
	}
	return linemap.Position{}, false
}

func isBlank(runes []rune) bool {
	for _, r := range runes {
		if !IsSpaceRune(r) {
			return false
		}
	}
	return true
}

// allBlankFrom reports whether every line from start onward (in the
// given direction) is blank.
func allBlankFrom(lines []string, start, dir int) bool {
	for r := start; r >= 0 && r < len(lines); r += dir {
		if !isBlank([]rune(lines[r])) {
			return false
		}
	}
	return true
}
