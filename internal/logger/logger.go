// Package logger holds the process-wide zap logger. Logging goes to a
// file rather than the terminal, which the editor owns while running.
// All helpers are safe to call before Init: they simply drop the
// message, so library code can log unconditionally.
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log     *zap.SugaredLogger
	logFile *os.File
)

// Init opens the log file and installs the global logger. The path
// defaults to $LINEWISE_LOG_FILE, then $XDG_CONFIG_HOME/linewise/
// linewise.log, then ~/.config/linewise/linewise.log.
func Init(debug bool, path string) error {
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logFile = f

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), level)

	log = zap.New(core, zap.AddCaller()).Sugar()
	log.Debugw("logger initialized", "path", path)
	return nil
}

// Close flushes and closes the log file.
func Close() {
	if log != nil {
		_ = log.Sync()
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	log = nil
}

func defaultPath() (string, error) {
	if v := os.Getenv("LINEWISE_LOG_FILE"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "linewise", "linewise.log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "linewise", "linewise.log"), nil
}

// Debug logs at debug level with key-value pairs.
func Debug(msg string, keysAndValues ...any) {
	if log != nil {
		log.Debugw(msg, keysAndValues...)
	}
}

// Info logs at info level with key-value pairs.
func Info(msg string, keysAndValues ...any) {
	if log != nil {
		log.Infow(msg, keysAndValues...)
	}
}

// Warn logs at warn level with key-value pairs.
func Warn(msg string, keysAndValues ...any) {
	if log != nil {
		log.Warnw(msg, keysAndValues...)
	}
}

// Error logs at error level with key-value pairs.
func Error(msg string, keysAndValues ...any) {
	if log != nil {
		log.Errorw(msg, keysAndValues...)
	}
}
