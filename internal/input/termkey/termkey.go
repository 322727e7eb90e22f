// Package termkey converts tcell key events into the engine's key
// descriptors. It is the only package that knows about tcell key
// codes; the engine consumes key.Event values and stays host-neutral.
package termkey

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/linewise/internal/input/key"
)

var named = map[tcell.Key]string{
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyEnter:      "return",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyTab:        "tab",
	tcell.KeyEscape:     "escape",
}

// FromTcell translates a tcell key event. ok is false for keys the
// engine has no representation for (function keys and the like).
func FromTcell(ev *tcell.EventKey) (key.Event, bool) {
	mod := ev.Modifiers()
	out := key.Event{
		Ctrl:  mod&tcell.ModCtrl != 0,
		Meta:  mod&(tcell.ModAlt|tcell.ModMeta) != 0,
		Shift: mod&tcell.ModShift != 0,
	}

	k := ev.Key()
	if name, found := named[k]; found {
		out.Name = name
		return out, true
	}

	// tcell folds ctrl+letter into dedicated key codes.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		out.Ctrl = true
		out.Name = string(rune('a' + (k - tcell.KeyCtrlA)))
		return out, true
	}

	if k == tcell.KeyRune {
		r := ev.Rune()
		if out.Ctrl || out.Meta {
			out.Name = string(r)
		} else {
			out.Sequence = string(r)
		}
		return out, true
	}

	return key.Event{}, false
}
