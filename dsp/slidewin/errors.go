package slidewin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions reports an image or window size outside the
	// supported range.
	ErrInvalidDimensions = errors.New("slidewin: invalid dimensions")
	// ErrInvalidCenter reports a center offset that moves the window center
	// outside the window.
	ErrInvalidCenter = errors.New("slidewin: invalid window center")
)

// MaxImageSize is the largest image width or height; coordinates travel as uint16.
const MaxImageSize = 1 << 16

func validateImage(width, height int) error {
	if width < 1 || width > MaxImageSize {
		return fmt.Errorf("%w: image width must be in [1,%d]: %d", ErrInvalidDimensions, MaxImageSize, width)
	}
	if height < 1 || height > MaxImageSize {
		return fmt.Errorf("%w: image height must be in [1,%d]: %d", ErrInvalidDimensions, MaxImageSize, height)
	}
	return nil
}

func validateWindow(width, height int) error {
	if width < 1 {
		return fmt.Errorf("%w: window width must be >= 1: %d", ErrInvalidDimensions, width)
	}
	if height < 1 {
		return fmt.Errorf("%w: window height must be >= 1: %d", ErrInvalidDimensions, height)
	}
	return nil
}
