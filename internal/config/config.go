// Package config loads user settings from a TOML file. A missing file
// is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds the user-tunable options.
type Settings struct {
	VimMode bool   `toml:"vim_mode"`
	Editor  string `toml:"editor"`
	Debug   bool   `toml:"debug"`
	LogFile string `toml:"log_file"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{}
}

// Load reads settings from path, or from the default location when
// path is empty ($LINEWISE_CONFIG, then $XDG_CONFIG_HOME/linewise/
// config.toml, then ~/.config/linewise/config.toml). A missing file
// yields Default with no error.
func Load(path string) (Settings, error) {
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return Default(), err
		}
		path = p
	}

	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

func defaultPath() (string, error) {
	if v := os.Getenv("LINEWISE_CONFIG"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "linewise", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "linewise", "config.toml"), nil
}
