// Package key defines the decoded key-event descriptor delivered by
// the host input layer and the Emacs-style binding table that maps
// events to editing actions. The engine never decodes raw terminal
// byte sequences itself; hosts hand it Events.
package key

import "github.com/dshills/linewise/internal/engine/buffer"

// Event is a decoded key press. Name identifies non-printable keys
// ("left", "return", "backspace", ...); Sequence carries the raw text
// payload for literal and paste input. For ctrl/meta chords on
// letters, Name holds the letter.
type Event struct {
	Name     string
	Ctrl     bool
	Meta     bool
	Shift    bool
	Paste    bool
	Sequence string
}

// IsLiteral reports whether the event is plain text input rather than
// a command chord.
func (e Event) IsLiteral() bool {
	return e.Sequence != "" && !e.Ctrl && !e.Meta
}

// Translate maps a command key event to a buffer action. The table
// encodes the Emacs-style terminal conventions: ctrl+b/f/p/n mirror
// the arrows, ctrl+a/e are home/end, meta+b/f and ctrl+arrows are word
// motions, ctrl+w and meta+backspace delete a word left, meta+d a word
// right, ctrl+k and ctrl+u kill to end and start of line. ok is false
// for events the table does not cover (literal input included).
func Translate(ev Event) (buffer.Action, bool) {
	if ev.Paste {
		return nil, false
	}

	switch {
	// Word motions take precedence over the plain arrows.
	case ev.Meta && ev.Name == "b",
		ev.Meta && ev.Name == "left",
		ev.Ctrl && ev.Name == "left":
		return buffer.Move{Dir: buffer.DirWordLeft}, true
	case ev.Meta && ev.Name == "f",
		ev.Meta && ev.Name == "right",
		ev.Ctrl && ev.Name == "right":
		return buffer.Move{Dir: buffer.DirWordRight}, true

	case ev.Ctrl && ev.Name == "w",
		ev.Meta && ev.Name == "backspace",
		ev.Ctrl && ev.Name == "backspace":
		return buffer.DeleteWordLeft{}, true
	case ev.Meta && ev.Name == "d",
		ev.Meta && ev.Name == "delete",
		ev.Ctrl && ev.Name == "delete":
		return buffer.DeleteWordRight{}, true

	case ev.Ctrl && ev.Name == "a",
		plain(ev, "home"):
		return buffer.Move{Dir: buffer.DirHome}, true
	case ev.Ctrl && ev.Name == "e",
		plain(ev, "end"):
		return buffer.Move{Dir: buffer.DirEnd}, true

	case ev.Ctrl && ev.Name == "b",
		plain(ev, "left"):
		return buffer.Move{Dir: buffer.DirLeft}, true
	case ev.Ctrl && ev.Name == "f",
		plain(ev, "right"):
		return buffer.Move{Dir: buffer.DirRight}, true
	case ev.Ctrl && ev.Name == "p",
		plain(ev, "up"):
		return buffer.Move{Dir: buffer.DirUp}, true
	case ev.Ctrl && ev.Name == "n",
		plain(ev, "down"):
		return buffer.Move{Dir: buffer.DirDown}, true

	case ev.Ctrl && ev.Name == "h",
		plain(ev, "backspace"):
		return buffer.Backspace{}, true
	case ev.Ctrl && ev.Name == "d",
		plain(ev, "delete"):
		return buffer.Delete{}, true

	case ev.Ctrl && ev.Name == "k":
		return buffer.KillLineRight{}, true
	case ev.Ctrl && ev.Name == "u":
		return buffer.KillLineLeft{}, true

	case plain(ev, "return"):
		return buffer.Insert{Text: "\n"}, true
	}

	return nil, false
}

// plain reports a named key with no modifiers.
func plain(ev Event, name string) bool {
	return ev.Name == name && !ev.Ctrl && !ev.Meta
}
