package session

import (
	"errors"
)

var (
	// ErrUnreadable covers every failure to load a selected file.
	// Permission errors, I/O errors, and undecodable content are
	// deliberately one error kind; callers must not depend on the cause.
	ErrUnreadable = errors.New("file is unreadable")

	// ErrUnwritable represents a failure to persist the buffer to disk.
	ErrUnwritable = errors.New("file could not be written")
)
