package vim

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/linewise/internal/engine/buffer"
)

func state(text string, row, col int) buffer.State {
	st := buffer.NewFromString(text, 80)
	st.Row, st.Col = row, col
	return st
}

func act(kind buffer.VimKind, count int) buffer.VimAction {
	return buffer.VimAction{Kind: kind, Count: count}
}

func TestModeTransitions(t *testing.T) {
	h := NewHandler()
	if h.Mode() != ModeNormal {
		t.Fatal("handler should start in normal mode")
	}
	st := state("abc", 0, 1)
	st = h.Apply(st, act(buffer.VimInsert, 1))
	if h.Mode() != ModeInsert {
		t.Fatal("i should enter insert mode")
	}
	st.Col = 3
	st = h.Apply(st, act(buffer.VimEscape, 1))
	if h.Mode() != ModeNormal {
		t.Fatal("escape should return to normal mode")
	}
	if st.Col != 2 {
		t.Errorf("escape at EOL: col = %d, want 2 (on the last character)", st.Col)
	}
}

func TestHorizontalMotion(t *testing.T) {
	h := NewHandler()
	st := state("abcde", 0, 0)

	st = h.Apply(st, act(buffer.VimMoveRight, 3))
	if st.Col != 3 {
		t.Errorf("3l: col = %d, want 3", st.Col)
	}
	// Normal mode stops on the last character.
	st = h.Apply(st, act(buffer.VimMoveRight, 10))
	if st.Col != 4 {
		t.Errorf("10l: col = %d, want 4", st.Col)
	}
	st = h.Apply(st, act(buffer.VimMoveLeft, 2))
	if st.Col != 2 {
		t.Errorf("2h: col = %d, want 2", st.Col)
	}
	st = h.Apply(st, act(buffer.VimMoveLeft, 10))
	if st.Col != 0 {
		t.Errorf("10h: col = %d, want 0", st.Col)
	}
}

func TestInsertModeColumnLimit(t *testing.T) {
	h := NewHandler()
	st := state("abc", 0, 0)
	h.Apply(st, act(buffer.VimInsert, 1))
	st = h.Apply(st, act(buffer.VimMoveRight, 10))
	if st.Col != 3 {
		t.Errorf("insert-mode l: col = %d, want 3 (past the last character)", st.Col)
	}
}

func TestVerticalMotionPreferredColumn(t *testing.T) {
	h := NewHandler()
	st := state("abcde\nxy\npqrst", 0, 4)

	st = h.Apply(st, act(buffer.VimMoveDown, 1))
	if st.Row != 1 || st.Col != 1 {
		t.Fatalf("j onto short line = (%d,%d), want (1,1)", st.Row, st.Col)
	}
	st = h.Apply(st, act(buffer.VimMoveDown, 1))
	if st.Row != 2 || st.Col != 4 {
		t.Errorf("j onto long line = (%d,%d), want (2,4)", st.Row, st.Col)
	}
	st = h.Apply(st, act(buffer.VimMoveUp, 2))
	if st.Row != 0 || st.Col != 4 {
		t.Errorf("2k = (%d,%d), want (0,4)", st.Row, st.Col)
	}
}

func TestWordMotions(t *testing.T) {
	h := NewHandler()
	st := state("foo bar baz", 0, 0)

	st = h.Apply(st, act(buffer.VimWordForward, 2))
	if st.Col != 8 {
		t.Errorf("2w: col = %d, want 8", st.Col)
	}
	st = h.Apply(st, act(buffer.VimWordBackward, 1))
	if st.Col != 4 {
		t.Errorf("b: col = %d, want 4", st.Col)
	}
	st = h.Apply(st, act(buffer.VimWordEnd, 1))
	if st.Col != 6 {
		t.Errorf("e: col = %d, want 6", st.Col)
	}
}

func TestWordMotionScriptBoundary(t *testing.T) {
	h := NewHandler()
	st := state("helloこんにちは", 0, 0)
	st = h.Apply(st, act(buffer.VimWordForward, 1))
	if st.Col != 5 {
		t.Errorf("w at script boundary: col = %d, want 5", st.Col)
	}
}

func TestWordMotionAcrossLines(t *testing.T) {
	h := NewHandler()
	st := state("foo\nbar", 0, 0)
	st = h.Apply(st, act(buffer.VimWordForward, 1))
	if st.Row != 1 || st.Col != 0 {
		t.Errorf("w across lines = (%d,%d), want (1,0)", st.Row, st.Col)
	}
	st = h.Apply(st, act(buffer.VimWordBackward, 1))
	if st.Row != 0 || st.Col != 0 {
		t.Errorf("b across lines = (%d,%d), want (0,0)", st.Row, st.Col)
	}
}

func TestLineMotions(t *testing.T) {
	h := NewHandler()
	st := state("  hello", 0, 6)

	st = h.Apply(st, act(buffer.VimLineStart, 1))
	if st.Col != 0 {
		t.Errorf("0: col = %d", st.Col)
	}
	st = h.Apply(st, act(buffer.VimLineEnd, 1))
	if st.Col != 6 {
		t.Errorf("$: col = %d, want 6", st.Col)
	}
	st = h.Apply(st, act(buffer.VimFirstNonBlank, 1))
	if st.Col != 2 {
		t.Errorf("^: col = %d, want 2", st.Col)
	}
}

func TestBufferMotions(t *testing.T) {
	h := NewHandler()
	st := state("one\ntwo\n  three", 1, 0)

	st = h.Apply(st, act(buffer.VimBufferEnd, 1))
	if st.Row != 2 || st.Col != 2 {
		t.Errorf("G = (%d,%d), want (2,2)", st.Row, st.Col)
	}
	st = h.Apply(st, act(buffer.VimBufferStart, 1))
	if st.Row != 0 || st.Col != 0 {
		t.Errorf("gg = (%d,%d), want (0,0)", st.Row, st.Col)
	}
	st = h.Apply(st, act(buffer.VimGotoLine, 2))
	if st.Row != 1 {
		t.Errorf("2G: row = %d, want 1", st.Row)
	}
	st = h.Apply(st, act(buffer.VimGotoLine, 99))
	if st.Row != 2 {
		t.Errorf("99G clamps: row = %d, want 2", st.Row)
	}
}

func TestDeleteWordForward(t *testing.T) {
	h := NewHandler()
	st := state("foo bar baz", 0, 0)
	st = h.Apply(st, act(buffer.VimDeleteWordForward, 1))
	if st.Text() != "bar baz" {
		t.Errorf("dw: Text = %q, want %q", st.Text(), "bar baz")
	}
	if st.Clipboard != "foo " {
		t.Errorf("dw: Clipboard = %q, want %q", st.Clipboard, "foo ")
	}

	// dw on the last word extends to end of line.
	st = state("foo bar", 0, 4)
	st = h.Apply(st, act(buffer.VimDeleteWordForward, 1))
	if st.Text() != "foo " {
		t.Errorf("dw on last word: Text = %q, want %q", st.Text(), "foo ")
	}
}

func TestDeleteWordBackward(t *testing.T) {
	h := NewHandler()
	st := state("foo bar", 0, 4)
	st = h.Apply(st, act(buffer.VimDeleteWordBackward, 1))
	if st.Text() != "bar" || st.Col != 0 {
		t.Errorf("db: Text = %q col = %d", st.Text(), st.Col)
	}
}

func TestDeleteToWordEnd(t *testing.T) {
	h := NewHandler()
	st := state("foo bar", 0, 0)
	st = h.Apply(st, act(buffer.VimDeleteToWordEnd, 1))
	if st.Text() != " bar" {
		t.Errorf("de: Text = %q, want %q", st.Text(), " bar")
	}
	if st.Clipboard != "foo" {
		t.Errorf("de: Clipboard = %q, want foo", st.Clipboard)
	}
}

func TestChangeWordEntersInsert(t *testing.T) {
	h := NewHandler()
	st := state("foo bar", 0, 0)
	st = h.Apply(st, act(buffer.VimChangeWordForward, 1))
	if st.Text() != " bar" {
		t.Errorf("cw: Text = %q, want %q", st.Text(), " bar")
	}
	if h.Mode() != ModeInsert {
		t.Error("cw should enter insert mode")
	}
}

func TestDeleteLine(t *testing.T) {
	h := NewHandler()

	// Middle line: the trailing newline goes with it.
	st := state("a\nb\nc", 1, 0)
	st = h.Apply(st, act(buffer.VimDeleteLine, 1))
	if diff := cmp.Diff([]string{"a", "c"}, st.Lines); diff != "" {
		t.Fatalf("dd middle (-want +got):\n%s", diff)
	}
	if st.Row != 1 || st.Col != 0 {
		t.Errorf("dd middle cursor = (%d,%d), want (1,0)", st.Row, st.Col)
	}
	if st.Clipboard != "b" {
		t.Errorf("dd clipboard = %q, want b", st.Clipboard)
	}

	// Last line: the leading newline goes instead.
	st = state("a\nb\nc", 2, 0)
	st = h.Apply(st, act(buffer.VimDeleteLine, 1))
	if diff := cmp.Diff([]string{"a", "b"}, st.Lines); diff != "" {
		t.Fatalf("dd last (-want +got):\n%s", diff)
	}
	if st.Row != 1 {
		t.Errorf("dd last cursor row = %d, want 1", st.Row)
	}

	// Counted: 2dd from the top.
	st = state("a\nb\nc", 0, 0)
	st = h.Apply(st, act(buffer.VimDeleteLine, 2))
	if diff := cmp.Diff([]string{"c"}, st.Lines); diff != "" {
		t.Fatalf("2dd (-want +got):\n%s", diff)
	}

	// The only line: buffer becomes a single empty line.
	st = state("x", 0, 0)
	st = h.Apply(st, act(buffer.VimDeleteLine, 1))
	if diff := cmp.Diff([]string{""}, st.Lines); diff != "" {
		t.Fatalf("dd sole line (-want +got):\n%s", diff)
	}
}

func TestChangeLine(t *testing.T) {
	h := NewHandler()
	st := state("aaa\nbbb", 0, 2)
	st = h.Apply(st, act(buffer.VimChangeLine, 1))
	if diff := cmp.Diff([]string{"", "bbb"}, st.Lines); diff != "" {
		t.Fatalf("cc (-want +got):\n%s", diff)
	}
	if st.Row != 0 || st.Col != 0 {
		t.Errorf("cc cursor = (%d,%d), want (0,0)", st.Row, st.Col)
	}
	if h.Mode() != ModeInsert {
		t.Error("cc should enter insert mode")
	}
}

func TestDeleteToLineEnd(t *testing.T) {
	h := NewHandler()
	st := state("hello", 0, 2)
	st = h.Apply(st, act(buffer.VimDeleteToLineEnd, 1))
	if st.Text() != "he" {
		t.Errorf("D: Text = %q, want he", st.Text())
	}
	if st.Clipboard != "llo" {
		t.Errorf("D: Clipboard = %q, want llo", st.Clipboard)
	}

	// At EOL, D is a no-op and takes no snapshot.
	st = state("he", 0, 2)
	st = h.Apply(st, act(buffer.VimDeleteToLineEnd, 1))
	if st.Text() != "he" || st.CanUndo() {
		t.Errorf("D at EOL: Text = %q canUndo = %v", st.Text(), st.CanUndo())
	}
}

func TestOpenLines(t *testing.T) {
	h := NewHandler()
	st := state("ab", 0, 1)
	st = h.Apply(st, act(buffer.VimOpenBelow, 1))
	if diff := cmp.Diff([]string{"ab", ""}, st.Lines); diff != "" {
		t.Fatalf("o (-want +got):\n%s", diff)
	}
	if st.Row != 1 || st.Col != 0 || h.Mode() != ModeInsert {
		t.Errorf("o cursor = (%d,%d) mode = %v", st.Row, st.Col, h.Mode())
	}

	h = NewHandler()
	st = state("ab", 0, 1)
	st = h.Apply(st, act(buffer.VimOpenAbove, 1))
	if diff := cmp.Diff([]string{"", "ab"}, st.Lines); diff != "" {
		t.Fatalf("O (-want +got):\n%s", diff)
	}
	if st.Row != 0 || st.Col != 0 || h.Mode() != ModeInsert {
		t.Errorf("O cursor = (%d,%d) mode = %v", st.Row, st.Col, h.Mode())
	}
}

func TestAppendVariants(t *testing.T) {
	h := NewHandler()
	st := state("  hey", 0, 3)

	got := h.Apply(st, act(buffer.VimAppend, 1))
	if got.Col != 4 {
		t.Errorf("a: col = %d, want 4", got.Col)
	}
	got = h.Apply(st, act(buffer.VimAppendEnd, 1))
	if got.Col != 5 {
		t.Errorf("A: col = %d, want 5", got.Col)
	}
	got = h.Apply(st, act(buffer.VimInsertStart, 1))
	if got.Col != 2 {
		t.Errorf("I: col = %d, want 2", got.Col)
	}
}

func TestEditUndoGranularity(t *testing.T) {
	h := NewHandler()
	st := state("foo bar baz", 0, 0)
	st = h.Apply(st, act(buffer.VimDeleteWordForward, 2))
	if st.Text() != "baz" {
		t.Fatalf("2dw: Text = %q, want baz", st.Text())
	}

	var r buffer.Reducer
	st = r.Apply(st, buffer.Undo{})
	if st.Text() != "foo bar baz" {
		t.Errorf("undo after 2dw = %q, want the original line", st.Text())
	}
	if st.CanUndo() {
		t.Error("2dw should have recorded exactly one snapshot")
	}
}
