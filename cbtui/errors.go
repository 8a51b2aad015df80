package cbtui

import (
	"errors"
)

var (
	// ErrStartDir represents problems with the requested browse root
	ErrStartDir = errors.New("invalid start directory")

	// ErrProgram represents failures of the terminal program itself
	ErrProgram = errors.New("terminal program error")
)
