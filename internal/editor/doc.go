// Package editor is the public face of the editing engine. It wraps
// the buffer reducer behind named operations, tracks the viewport
// scroll offset, applies the paste heuristics, and runs the external
// editor round trip.
//
// An Editor owns one buffer state and mutates it serially; it is not
// safe for concurrent use. Hosts feed it decoded key events and paint
// the visual lines it exposes:
//
//	ed := editor.New(80)
//	ed.HandleKey(key.Event{Sequence: "h"})
//	ed.HandleKey(key.Event{Sequence: "i"})
//	for _, ln := range ed.VisibleLines(24) {
//	    // paint ln.Text
//	}
package editor
