package vim

import (
	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/input/key"
)

// Parser accumulates normal-mode keystrokes into vim actions. It
// tracks a count prefix and a pending operator or g prefix across
// calls; hosts feed it events only while the handler is in normal
// mode.
type Parser struct {
	count   int
	pending rune // 'd', 'c', or 'g'; 0 when none
}

// Feed consumes one key event. ok is true when a complete action is
// ready; count prefixes and operator halves consume the event without
// producing an action. Unrecognized input resets the parser.
func (p *Parser) Feed(ev key.Event) (buffer.VimAction, bool) {
	if ev.Name == "escape" {
		p.reset()
		return p.emit(buffer.VimEscape)
	}
	if !ev.IsLiteral() {
		p.reset()
		return buffer.VimAction{}, false
	}

	r := []rune(ev.Sequence)[0]

	if r >= '0' && r <= '9' {
		if r == '0' && p.count == 0 {
			return p.emit(buffer.VimLineStart)
		}
		p.count = p.count*10 + int(r-'0')
		return buffer.VimAction{}, false
	}

	switch p.pending {
	case 'g':
		p.pending = 0
		if r == 'g' {
			if p.count > 0 {
				return p.emit(buffer.VimGotoLine)
			}
			return p.emit(buffer.VimBufferStart)
		}
		p.reset()
		return buffer.VimAction{}, false
	case 'd':
		p.pending = 0
		switch r {
		case 'w':
			return p.emit(buffer.VimDeleteWordForward)
		case 'b':
			return p.emit(buffer.VimDeleteWordBackward)
		case 'e':
			return p.emit(buffer.VimDeleteToWordEnd)
		case 'd':
			return p.emit(buffer.VimDeleteLine)
		case '$':
			return p.emit(buffer.VimDeleteToLineEnd)
		}
		p.reset()
		return buffer.VimAction{}, false
	case 'c':
		p.pending = 0
		switch r {
		case 'w':
			return p.emit(buffer.VimChangeWordForward)
		case 'b':
			return p.emit(buffer.VimChangeWordBackward)
		case 'e':
			return p.emit(buffer.VimChangeToWordEnd)
		case 'c':
			return p.emit(buffer.VimChangeLine)
		case '$':
			return p.emit(buffer.VimChangeToLineEnd)
		}
		p.reset()
		return buffer.VimAction{}, false
	}

	switch r {
	case 'h':
		return p.emit(buffer.VimMoveLeft)
	case 'l':
		return p.emit(buffer.VimMoveRight)
	case 'k':
		return p.emit(buffer.VimMoveUp)
	case 'j':
		return p.emit(buffer.VimMoveDown)
	case 'w':
		return p.emit(buffer.VimWordForward)
	case 'b':
		return p.emit(buffer.VimWordBackward)
	case 'e':
		return p.emit(buffer.VimWordEnd)
	case '$':
		return p.emit(buffer.VimLineEnd)
	case '^':
		return p.emit(buffer.VimFirstNonBlank)
	case 'G':
		if p.count > 0 {
			return p.emit(buffer.VimGotoLine)
		}
		return p.emit(buffer.VimBufferEnd)
	case 'D':
		return p.emit(buffer.VimDeleteToLineEnd)
	case 'C':
		return p.emit(buffer.VimChangeToLineEnd)
	case 'i':
		return p.emit(buffer.VimInsert)
	case 'a':
		return p.emit(buffer.VimAppend)
	case 'A':
		return p.emit(buffer.VimAppendEnd)
	case 'I':
		return p.emit(buffer.VimInsertStart)
	case 'o':
		return p.emit(buffer.VimOpenBelow)
	case 'O':
		return p.emit(buffer.VimOpenAbove)
	case 'g', 'd', 'c':
		p.pending = r
		return buffer.VimAction{}, false
	}

	p.reset()
	return buffer.VimAction{}, false
}

func (p *Parser) emit(kind buffer.VimKind) (buffer.VimAction, bool) {
	count := p.count
	if count < 1 {
		count = 1
	}
	p.reset()
	return buffer.VimAction{Kind: kind, Count: count}, true
}

func (p *Parser) reset() {
	p.count = 0
	p.pending = 0
}
