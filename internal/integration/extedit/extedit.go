// Package extedit runs the user's $EDITOR on a temporary file and
// returns the edited text. The terminal state is captured before the
// child runs and restored afterwards, so a crashed or misbehaving
// editor cannot leave the host terminal raw.
package extedit

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/term"

	"github.com/dshills/linewise/internal/logger"
)

// Resolve picks the editor command: $VISUAL, then $EDITOR, then a
// platform default.
func Resolve() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// Runner launches an external editor session. Suspend and Resume let
// a screen-owning host release and reacquire the terminal around the
// child process; both are optional.
type Runner struct {
	Command string
	Suspend func() error
	Resume  func() error
}

// Edit writes initial to a temp file, runs the editor on it, and
// returns the file's contents afterwards. Line endings in the result
// are normalized to LF. The temp file is removed and the terminal
// state restored on every path, including editor failure.
func (r Runner) Edit(ctx context.Context, initial string) (string, error) {
	cmd := r.Command
	if cmd == "" {
		cmd = Resolve()
	}

	dir, err := os.MkdirTemp("", "linewise-edit-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "buffer.txt")
	if err := os.WriteFile(path, []byte(initial), 0o600); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}

	if r.Suspend != nil {
		if err := r.Suspend(); err != nil {
			return "", fmt.Errorf("suspend screen: %w", err)
		}
	}
	if r.Resume != nil {
		defer func() {
			if err := r.Resume(); err != nil {
				logger.Error("resume screen after editor", "error", err)
			}
		}()
	}

	fd := int(os.Stdin.Fd())
	var saved *term.State
	if term.IsTerminal(fd) {
		if saved, err = term.GetState(fd); err != nil {
			logger.Warn("capture terminal state", "error", err)
			saved = nil
		}
	}

	runErr := runEditor(ctx, cmd, path)

	if saved != nil {
		if err := term.Restore(fd, saved); err != nil {
			logger.Error("restore terminal state", "error", err)
		}
	}
	if runErr != nil {
		logger.Error("external editor failed", "command", cmd, "error", runErr)
		return "", fmt.Errorf("run editor %q: %w", cmd, runErr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read temp file: %w", err)
	}
	return normalizeLineEndings(string(data)), nil
}

// runEditor executes the editor command with the buffer path appended.
// The command may carry its own arguments ("code --wait").
func runEditor(ctx context.Context, command, path string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}
	args := append(parts[1:], path)

	c := exec.CommandContext(ctx, parts[0], args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
