package cbcfg

import (
	"errors"
)

var (
	// ErrParsingFlags represents command line parsing errors
	ErrParsingFlags = errors.New("error parsing flags")
)
