package overlay

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingGlobal is wrapped by MissingGlobalError.
	ErrMissingGlobal = errors.New("required protocol interface not advertised by compositor")

	// ErrNoSurface is returned by operations that need the overlay
	// surface after it has been destroyed.
	ErrNoSurface = errors.New("overlay surface does not exist")
)

// MissingGlobalError is returned by Open when the compositor does not
// provide one of the interfaces that an overlay can't work without.
type MissingGlobalError struct {
	Interface string
}

func (err *MissingGlobalError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMissingGlobal, err.Interface)
}

func (err *MissingGlobalError) Unwrap() error {
	return ErrMissingGlobal
}
