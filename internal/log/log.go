// Package log is the application's logging façade: package-level helpers over
// a zap.SugaredLogger. The UI owns the terminal, so logs go to a file under
// the state directory, never to stdout or stderr.
//
// Before Init is called the package logs nowhere, which keeps library tests
// quiet without any setup.
package log

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// DefaultPath resolves the log file location: $XDG_STATE_HOME/neptunics/
// neptunics.log, falling back to ~/.local/state/neptunics/neptunics.log.
func DefaultPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "neptunics", "neptunics.log")
}

// Init routes all subsequent logging to the file at path, creating parent
// directories as needed. An empty path leaves the no-op logger in place.
func Init(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l.Sugar()
	return nil
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = logger.Sync()
}

func Debug(msg string, kv ...any) {
	logger.Debugw(msg, kv...)
}

func Info(msg string, kv ...any) {
	logger.Infow(msg, kv...)
}

// Error logs msg with err attached under the "err" key.
func Error(msg string, err error, kv ...any) {
	logger.Errorw(msg, append([]any{"err", err}, kv...)...)
}
