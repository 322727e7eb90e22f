package buffer

import (
	"regexp"
	"strings"
	"unicode"
)

// ansiPattern matches ANSI/VT escape sequences: CSI sequences, OSC
// sequences (BEL- or ST-terminated), and lone two-character escapes.
var ansiPattern = regexp.MustCompile(`\x1b(?:\[[0-9;:?]*[@-~]|\][^\x07\x1b]*(?:\x07|\x1b\\)?|[@-Z\\-_])`)

// sanitizeInsert strips characters that must never enter the buffer
// as content: ANSI/VT escape sequences and control characters. CR and
// LF survive (they become line splits), DEL survives (the facade
// splits it into backspaces before the reducer normally sees it), and
// all printable Unicode including emoji passes through.
func sanitizeInsert(text string) string {
	text = ansiPattern.ReplaceAllString(text, "")
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == 0x7f:
			b.WriteRune(r)
		case unicode.IsControl(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
