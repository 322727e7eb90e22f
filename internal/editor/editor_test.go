package editor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/input/key"
	"github.com/dshills/linewise/internal/integration/extedit"
)

func TestTypingAndChords(t *testing.T) {
	ed := New(80)
	for _, r := range "hello world" {
		ed.HandleKey(key.Event{Sequence: string(r)})
	}
	ed.HandleKey(key.Event{Name: "return"})
	for _, r := range "second" {
		ed.HandleKey(key.Event{Sequence: string(r)})
	}
	if got := ed.Text(); got != "hello world\nsecond" {
		t.Fatalf("Text = %q", got)
	}

	ed.HandleKey(key.Event{Name: "a", Ctrl: true}) // home
	if got := ed.Cursor(); got.Row != 1 || got.Col != 0 {
		t.Errorf("cursor after ctrl+a = %+v", got)
	}
	ed.HandleKey(key.Event{Name: "k", Ctrl: true}) // kill right
	if got := ed.Text(); got != "hello world\n" {
		t.Errorf("Text after ctrl+k = %q", got)
	}
	ed.HandleKey(key.Event{Name: "backspace"})
	if got := ed.Text(); got != "hello world" {
		t.Errorf("Text after backspace = %q", got)
	}
}

func TestHandleKeyIgnoresUnbound(t *testing.T) {
	ed := New(80)
	ed.Insert("abc")
	ed.HandleKey(key.Event{Name: "q", Ctrl: true})
	if got := ed.Text(); got != "abc" {
		t.Errorf("unbound chord changed buffer: %q", got)
	}
}

func TestPasteHeuristic(t *testing.T) {
	valid := func(p string) bool { return p == "cmd/main.go" }

	ed := New(80, WithPathValidator(valid))
	ed.HandleKey(key.Event{Paste: true, Sequence: `"cmd/main.go"`})
	if got := ed.Text(); got != "@cmd/main.go " {
		t.Errorf("pasted path = %q, want @cmd/main.go ", got)
	}

	// Non-path pastes insert literally.
	ed = New(80, WithPathValidator(valid))
	ed.HandleKey(key.Event{Paste: true, Sequence: "not a path"})
	if got := ed.Text(); got != "not a path" {
		t.Errorf("literal paste = %q", got)
	}

	// Shell mode disables the rewrite.
	ed = New(80, WithPathValidator(valid))
	ed.SetShellMode(true)
	ed.HandleKey(key.Event{Paste: true, Sequence: "cmd/main.go"})
	if got := ed.Text(); got != "cmd/main.go" {
		t.Errorf("shell-mode paste = %q", got)
	}

	// Bursts under 3 code points are never rewritten.
	ed = New(80, WithPathValidator(func(string) bool { return true }))
	ed.HandleKey(key.Event{Paste: true, Sequence: "ab"})
	if got := ed.Text(); got != "ab" {
		t.Errorf("short paste = %q", got)
	}
}

func TestDelSplitting(t *testing.T) {
	ed := New(80)
	ed.HandleKey(key.Event{Paste: true, Sequence: "abc\x7f\x7fXY"})
	if got := ed.Text(); got != "aXY" {
		t.Errorf("Text = %q, want aXY", got)
	}
}

func TestReplaceRangeByOffset(t *testing.T) {
	ed := New(80)
	ed.SetText("foo\nbar", false)
	ed.ReplaceRangeByOffset(1, 5, "X")
	if got := ed.Text(); got != "fXar" {
		t.Errorf("Text = %q, want fXar", got)
	}
	if got := ed.Cursor(); got.Row != 0 || got.Col != 2 {
		t.Errorf("cursor = %+v, want (0,2)", got)
	}
}

func TestVisibleLinesScroll(t *testing.T) {
	ed := New(5)
	for i := 0; i < 10; i++ {
		if i > 0 {
			ed.Insert("\n")
		}
		ed.Insert("aaaa")
	}

	vis := ed.VisibleLines(3)
	if len(vis) != 3 {
		t.Fatalf("len(vis) = %d", len(vis))
	}
	if ed.ScrollRow() != 7 {
		t.Errorf("scroll = %d, want 7 (cursor on row 9, height 3)", ed.ScrollRow())
	}

	ed.MoveToOffset(0)
	ed.VisibleLines(3)
	if ed.ScrollRow() != 0 {
		t.Errorf("scroll after jump to start = %d, want 0", ed.ScrollRow())
	}

	// Moving within the window must not scroll.
	ed.Move(buffer.DirDown)
	ed.VisibleLines(3)
	if ed.ScrollRow() != 0 {
		t.Errorf("scroll after in-window move = %d, want 0", ed.ScrollRow())
	}
}

func TestVisualMemoization(t *testing.T) {
	ed := New(10)
	ed.Insert("hello")
	first := ed.Visual()
	if again := ed.Visual(); again != first {
		t.Error("unchanged state should reuse the cached layout")
	}
	ed.Insert("!")
	if after := ed.Visual(); after == first {
		t.Error("edit should invalidate the cached layout")
	}
}

func TestOpenExternalEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script editor stub")
	}
	script := filepath.Join(t.TempDir(), "fake-editor")
	body := "#!/bin/sh\nprintf 'edited text' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}

	ed := New(80, WithExternalEditor(extedit.Runner{Command: script}))
	ed.SetText("original", false)
	if err := ed.OpenExternalEditor(context.Background()); err != nil {
		t.Fatalf("OpenExternalEditor: %v", err)
	}
	if got := ed.Text(); got != "edited text" {
		t.Fatalf("Text = %q", got)
	}

	// The whole round trip is one undo step.
	ed.Undo()
	if got := ed.Text(); got != "original" {
		t.Errorf("Text after undo = %q, want original", got)
	}
}

func TestOpenExternalEditorFailureLeavesBuffer(t *testing.T) {
	ed := New(80, WithExternalEditor(extedit.Runner{Command: "false"}))
	ed.SetText("kept", false)
	if err := ed.OpenExternalEditor(context.Background()); err == nil {
		t.Fatal("expected error from failing editor")
	}
	if got := ed.Text(); got != "kept" {
		t.Errorf("Text = %q, want kept", got)
	}
	if ed.CanUndo() {
		t.Error("failed round trip must not record an undo snapshot")
	}
}
