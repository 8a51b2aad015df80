package bubbletree

import (
	"errors"
)

var (
	ErrEntryStat    = errors.New("unable to stat entry")
	ErrReadDir      = errors.New("unable to read directory")
	ErrNotDirectory = errors.New("not a directory")
)
