package extedit

import (
	"context"
	"testing"
)

func TestResolvePrecedence(t *testing.T) {
	t.Setenv("VISUAL", "visual-editor")
	t.Setenv("EDITOR", "plain-editor")
	if got := Resolve(); got != "visual-editor" {
		t.Errorf("Resolve() = %q, want visual-editor", got)
	}

	t.Setenv("VISUAL", "")
	if got := Resolve(); got != "plain-editor" {
		t.Errorf("Resolve() = %q, want plain-editor", got)
	}

	t.Setenv("EDITOR", "")
	if got := Resolve(); got == "" {
		t.Error("Resolve() should fall back to a platform default")
	}
}

func TestEditNoopEditor(t *testing.T) {
	// "true" exits immediately without touching the file, so Edit
	// returns the initial text unchanged.
	r := Runner{Command: "true"}
	got, err := r.Edit(context.Background(), "hello\nworld")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got != "hello\nworld" {
		t.Errorf("Edit = %q, want initial text back", got)
	}
}

func TestEditFailingEditor(t *testing.T) {
	r := Runner{Command: "false"}
	if _, err := r.Edit(context.Background(), "x"); err == nil {
		t.Error("Edit should report a failing editor")
	}
}

func TestEditSuspendResume(t *testing.T) {
	var suspended, resumed bool
	r := Runner{
		Command: "true",
		Suspend: func() error { suspended = true; return nil },
		Resume:  func() error { resumed = true; return nil },
	}
	if _, err := r.Edit(context.Background(), ""); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if !suspended || !resumed {
		t.Errorf("suspend=%v resume=%v, want both true", suspended, resumed)
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	if got := normalizeLineEndings("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Errorf("normalizeLineEndings = %q", got)
	}
}
