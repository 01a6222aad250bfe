package common

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrBadMagic      = errors.New("muggle iNES file, wrong magic number")
	ErrTruncated     = errors.New("truncated")
	ErrTooLarge      = errors.New("too large")
	ErrDisplayClosed = errors.New("display closed")
)

// LoadError is returned for anything that goes wrong while ingesting a
// cartridge, before a single instruction runs.
type LoadError struct {
	What    string // what was being loaded
	Details string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("load %s: %v", e.What, e.Err)
	}
	return fmt.Sprintf("load %s: %v: %s", e.What, e.Err, e.Details)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ResourceError reports an unavailable or closed display surface. The core
// treats it as a request to stop, not as a crash.
type ResourceError struct {
	Backend string
	Err     error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("display %s: %v", e.Backend, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func DisplayClosed(backend string) error {
	return &ResourceError{Backend: backend, Err: ErrDisplayClosed}
}
