package vim

import (
	"testing"

	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/input/key"
)

func feed(t *testing.T, p *Parser, keys string) (buffer.VimAction, bool) {
	t.Helper()
	var act buffer.VimAction
	var ok bool
	for _, r := range keys {
		act, ok = p.Feed(key.Event{Sequence: string(r)})
	}
	return act, ok
}

func TestParserSingleKeys(t *testing.T) {
	tests := []struct {
		keys string
		want buffer.VimAction
	}{
		{"h", buffer.VimAction{Kind: buffer.VimMoveLeft, Count: 1}},
		{"l", buffer.VimAction{Kind: buffer.VimMoveRight, Count: 1}},
		{"j", buffer.VimAction{Kind: buffer.VimMoveDown, Count: 1}},
		{"k", buffer.VimAction{Kind: buffer.VimMoveUp, Count: 1}},
		{"w", buffer.VimAction{Kind: buffer.VimWordForward, Count: 1}},
		{"b", buffer.VimAction{Kind: buffer.VimWordBackward, Count: 1}},
		{"e", buffer.VimAction{Kind: buffer.VimWordEnd, Count: 1}},
		{"0", buffer.VimAction{Kind: buffer.VimLineStart, Count: 1}},
		{"$", buffer.VimAction{Kind: buffer.VimLineEnd, Count: 1}},
		{"^", buffer.VimAction{Kind: buffer.VimFirstNonBlank, Count: 1}},
		{"G", buffer.VimAction{Kind: buffer.VimBufferEnd, Count: 1}},
		{"D", buffer.VimAction{Kind: buffer.VimDeleteToLineEnd, Count: 1}},
		{"C", buffer.VimAction{Kind: buffer.VimChangeToLineEnd, Count: 1}},
		{"i", buffer.VimAction{Kind: buffer.VimInsert, Count: 1}},
		{"A", buffer.VimAction{Kind: buffer.VimAppendEnd, Count: 1}},
		{"o", buffer.VimAction{Kind: buffer.VimOpenBelow, Count: 1}},
	}
	for _, tt := range tests {
		var p Parser
		got, ok := feed(t, &p, tt.keys)
		if !ok {
			t.Errorf("%q: no action", tt.keys)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %+v, want %+v", tt.keys, got, tt.want)
		}
	}
}

func TestParserMultiKey(t *testing.T) {
	tests := []struct {
		keys string
		want buffer.VimAction
	}{
		{"gg", buffer.VimAction{Kind: buffer.VimBufferStart, Count: 1}},
		{"dw", buffer.VimAction{Kind: buffer.VimDeleteWordForward, Count: 1}},
		{"db", buffer.VimAction{Kind: buffer.VimDeleteWordBackward, Count: 1}},
		{"de", buffer.VimAction{Kind: buffer.VimDeleteToWordEnd, Count: 1}},
		{"dd", buffer.VimAction{Kind: buffer.VimDeleteLine, Count: 1}},
		{"d$", buffer.VimAction{Kind: buffer.VimDeleteToLineEnd, Count: 1}},
		{"cw", buffer.VimAction{Kind: buffer.VimChangeWordForward, Count: 1}},
		{"cc", buffer.VimAction{Kind: buffer.VimChangeLine, Count: 1}},
		{"3w", buffer.VimAction{Kind: buffer.VimWordForward, Count: 3}},
		{"12j", buffer.VimAction{Kind: buffer.VimMoveDown, Count: 12}},
		{"5G", buffer.VimAction{Kind: buffer.VimGotoLine, Count: 5}},
		{"7gg", buffer.VimAction{Kind: buffer.VimGotoLine, Count: 7}},
		{"2dw", buffer.VimAction{Kind: buffer.VimDeleteWordForward, Count: 2}},
	}
	for _, tt := range tests {
		var p Parser
		got, ok := feed(t, &p, tt.keys)
		if !ok {
			t.Errorf("%q: no action", tt.keys)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %+v, want %+v", tt.keys, got, tt.want)
		}
	}
}

func TestParserPendingConsumesEvent(t *testing.T) {
	var p Parser
	if _, ok := p.Feed(key.Event{Sequence: "d"}); ok {
		t.Error("operator half should not produce an action")
	}
	if _, ok := p.Feed(key.Event{Sequence: "2"}); ok {
		t.Error("count digit should not produce an action")
	}
}

func TestParserResetOnUnknown(t *testing.T) {
	var p Parser
	p.Feed(key.Event{Sequence: "3"})
	p.Feed(key.Event{Sequence: "z"}) // unknown, resets count
	got, ok := p.Feed(key.Event{Sequence: "j"})
	if !ok || got.Count != 1 {
		t.Errorf("after reset: got %+v ok=%v, want count 1", got, ok)
	}
}

func TestParserEscape(t *testing.T) {
	var p Parser
	p.Feed(key.Event{Sequence: "d"})
	got, ok := p.Feed(key.Event{Name: "escape"})
	if !ok || got.Kind != buffer.VimEscape {
		t.Errorf("escape: got %+v ok=%v", got, ok)
	}
	if _, ok := p.Feed(key.Event{Sequence: "w"}); !ok {
		t.Error("escape should clear the pending operator")
	}
}
