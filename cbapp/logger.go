package cbapp

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var logger *slog.Logger

func Logger() *slog.Logger {
	return logger
}

type setLoggerFunc = func(*slog.Logger)

var setLoggerFuncs = make([]setLoggerFunc, 0)

// RegisterSetLoggerFunc lets a package receive the process logger once
// SetLogger is called, without plumbing a logger into every constructor.
func RegisterSetLoggerFunc(fn setLoggerFunc) {
	setLoggerFuncs = append(setLoggerFuncs, fn)
}

func SetLogger(l *slog.Logger) {
	logger = l
	for _, fn := range setLoggerFuncs {
		fn(logger)
	}
}

func EnsureLogger() *slog.Logger {
	if logger == nil {
		panic("Must call cbapp.SetLogger() with a *slog.Logger before reaching this check.")
	}
	return logger
}

// NullLogger discards everything. Used when the log file cannot be opened;
// a TUI owns the terminal so there is nowhere else sensible to log.
var NullLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewFileLogger creates a JSON logger appending to LogFile under the user
// config directory, creating the directory if needed.
func NewFileLogger() (lgr *slog.Logger, err error) {
	var dir string
	var f *os.File

	dir, err = os.UserConfigDir()
	if err != nil {
		goto end
	}
	dir = filepath.Join(dir, ConfigSlug)
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		goto end
	}
	f, err = os.OpenFile(filepath.Join(dir, LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		goto end
	}
	lgr = slog.New(slog.NewJSONHandler(f, nil))
end:
	return lgr, err
}
