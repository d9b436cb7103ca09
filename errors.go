package pixedit

import (
	"errors"
	"fmt"
)

var (
	// ErrSuperseded is returned by a render pass whose result was discarded
	// because a newer pass was requested before it completed.
	ErrSuperseded = errors.New("render superseded by a newer request")
	// ErrNoImage is returned when an operation needs a loaded image.
	ErrNoImage = errors.New("no image loaded")
	// ErrUnknownPreset is returned for a preset name that does not exist.
	ErrUnknownPreset = errors.New("unknown preset")
)

// DecodeError reports an unreadable, corrupt or unsupported source image.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s image: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RenderError reports a failure while producing a buffer.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// BoundsError is the panic value of an out-of-range pixel access.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("pixel (%d,%d) out of bounds %dx%d", e.X, e.Y, e.Width, e.Height)
}
