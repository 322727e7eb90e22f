// Package word provides word-character classification, script
// identification, and word-motion boundary search for the editing
// engine.
//
// Two classifiers live here on purpose. The script-aware classifier
// (IsWordRune, ScriptOf, IsScriptBoundary) drives the cross-line vim
// motions: a transition between scripts inside a contiguous
// word-character run, such as Latin directly followed by Han, counts as
// a word break. The simple classifier (IsSimpleWordRune) drives the
// reducer's own word motions and word deletions. The two are kept as
// distinct strategies; unifying them would change observable motion
// behavior.
package word

import "unicode"

// Script identifies the writing system of a code point, to the
// granularity word motion cares about.
type Script uint8

// Scripts distinguished for boundary detection.
const (
	ScriptOther Script = iota
	ScriptLatin
	ScriptHan
	ScriptArabic
	ScriptHiragana
	ScriptKatakana
	ScriptCyrillic
)

// String returns the script name.
func (s Script) String() string {
	switch s {
	case ScriptLatin:
		return "latin"
	case ScriptHan:
		return "han"
	case ScriptArabic:
		return "arabic"
	case ScriptHiragana:
		return "hiragana"
	case ScriptKatakana:
		return "katakana"
	case ScriptCyrillic:
		return "cyrillic"
	default:
		return "other"
	}
}

// ScriptOf classifies r. Code points outside the distinguished scripts
// report ScriptOther.
func ScriptOf(r rune) Script {
	switch {
	case unicode.In(r, unicode.Hiragana):
		return ScriptHiragana
	case unicode.In(r, unicode.Katakana):
		return ScriptKatakana
	case unicode.In(r, unicode.Han):
		return ScriptHan
	case unicode.In(r, unicode.Arabic):
		return ScriptArabic
	case unicode.In(r, unicode.Cyrillic):
		return ScriptCyrillic
	case unicode.In(r, unicode.Latin):
		return ScriptLatin
	default:
		return ScriptOther
	}
}

// IsWordRune reports whether r is a word constituent: a letter, digit,
// or underscore in any script.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsSpaceRune reports whether r is whitespace.
func IsSpaceRune(r rune) bool {
	return unicode.IsSpace(r)
}

// IsCombiningMark reports whether r is a combining mark. Combining
// marks attach to the preceding base character and never begin a new
// word.
func IsCombiningMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me)
}

// IsWordOrCombining reports whether r continues a word run: either a
// word constituent or a combining mark.
func IsWordOrCombining(r rune) bool {
	return IsWordRune(r) || IsCombiningMark(r)
}

// IsScriptBoundary reports whether a and b are both word constituents
// written in different scripts.
func IsScriptBoundary(a, b rune) bool {
	return IsWordRune(a) && IsWordRune(b) && ScriptOf(a) != ScriptOf(b)
}

// IsSimpleWordRune is the legacy word test used by the reducer's word
// motions and word deletions: anything that is neither whitespace nor
// one of a small set of separator punctuation. Deliberately cruder than
// IsWordRune.
func IsSimpleWordRune(r rune) bool {
	if IsSpaceRune(r) {
		return false
	}
	switch r {
	case ',', '.', ';', '!', '?':
		return false
	}
	return true
}

// continuesRun reports whether cur extends the word run ending at
// prev. A script change breaks the run unless cur is a combining mark,
// which always attaches to its base.
func continuesRun(prev, cur rune) bool {
	if !IsWordOrCombining(prev) || !IsWordOrCombining(cur) {
		return false
	}
	if IsCombiningMark(cur) {
		return true
	}
	return !IsScriptBoundary(prev, cur)
}
