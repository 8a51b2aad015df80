package cbtui

import (
	"log/slog"

	"github.com/mikeschinkel/codebrowse/cbapp"
)

// logger is the package-level logger instance, used by tea.Cmd closures
// that run outside any model.
var logger = cbapp.NullLogger

func init() {
	cbapp.RegisterSetLoggerFunc(func(l *slog.Logger) {
		logger = l
	})
}
