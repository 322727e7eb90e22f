// Package main is a terminal host for the linewise editing engine. It
// owns the tcell screen and the event loop; all editing semantics live
// in the engine packages.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/dshills/linewise/internal/config"
	"github.com/dshills/linewise/internal/editor"
	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/input/key"
	"github.com/dshills/linewise/internal/input/termkey"
	"github.com/dshills/linewise/internal/input/vim"
	"github.com/dshills/linewise/internal/integration/extedit"
	"github.com/dshills/linewise/internal/logger"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cfgPath     string
		vimMode     bool
		debug       bool
		showVersion bool
	)
	flag.StringVar(&cfgPath, "config", "", "path to configuration file")
	flag.BoolVar(&vimMode, "vim", false, "enable vim mode")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("linewise %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if vimMode {
		cfg.VimMode = true
	}
	if debug {
		cfg.Debug = true
	}

	if err := logger.Init(cfg.Debug, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: linewise requires a terminal")
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnablePaste()

	width, height := screen.Size()

	var handler *vim.Handler
	opts := []editor.Option{
		editor.WithPathValidator(pathExists),
		editor.WithExternalEditor(extedit.Runner{
			Command: cfg.Editor,
			Suspend: screen.Suspend,
			Resume:  screen.Resume,
		}),
	}
	if cfg.VimMode {
		handler = vim.NewHandler()
		opts = append(opts, editor.WithVimHandler(handler))
	}
	ed := editor.New(width, opts...)
	logger.Info("started", "version", version, "vim", cfg.VimMode)

	var parser vim.Parser
	var paste strings.Builder
	pasting := false
	pendingCtrlX := false

	for {
		paint(screen, ed, height)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			width, height = ev.Size()
			ed.SetViewportWidth(width)
			screen.Sync()

		case *tcell.EventPaste:
			if ev.Start() {
				pasting = true
				paste.Reset()
			} else {
				pasting = false
				ed.HandleKey(key.Event{Paste: true, Sequence: paste.String()})
			}

		case *tcell.EventKey:
			if pasting {
				if ev.Key() == tcell.KeyRune {
					paste.WriteRune(ev.Rune())
				} else if ev.Key() == tcell.KeyEnter {
					paste.WriteByte('\n')
				}
				continue
			}

			if ev.Key() == tcell.KeyCtrlC {
				return 0
			}

			kev, ok := termkey.FromTcell(ev)
			if !ok {
				continue
			}

			if pendingCtrlX {
				pendingCtrlX = false
				if kev.Ctrl && kev.Name == "e" {
					if err := ed.OpenExternalEditor(context.Background()); err != nil {
						logger.Error("external editor", "error", err)
					}
					screen.Sync()
					continue
				}
			}
			if kev.Ctrl && kev.Name == "x" {
				pendingCtrlX = true
				continue
			}

			if handler != nil {
				if handler.Mode() == vim.ModeNormal {
					if act, ready := parser.Feed(kev); ready {
						ed.ApplyVim(act)
					}
					continue
				}
				if kev.Name == "escape" {
					ed.ApplyVim(buffer.VimAction{Kind: buffer.VimEscape, Count: 1})
					continue
				}
			}

			ed.HandleKey(kev)
		}
	}
}

func paint(s tcell.Screen, ed *editor.Editor, height int) {
	s.Clear()
	style := tcell.StyleDefault

	vis := ed.VisibleLines(height)
	for y, ln := range vis {
		x := 0
		for _, r := range ln.Text {
			s.SetContent(x, y, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}

	cur := ed.VisualCursor()
	v := ed.Visual()
	col := 0
	if cur.Row < len(v.Lines) {
		runes := []rune(v.Lines[cur.Row].Text)
		n := cur.Col
		if n > len(runes) {
			n = len(runes)
		}
		col = runewidth.StringWidth(string(runes[:n]))
	}
	s.ShowCursor(col, cur.Row-ed.ScrollRow())
	s.Show()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
