package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrKernelShape reports kernel dimensions that do not match the taps or
	// the window the kernel is applied to.
	ErrKernelShape = errors.New("kernel: invalid shape")

	errZeroSum = errors.New("kernel: taps sum to zero")
)

func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size must be > 0: %dx%d", ErrKernelShape, width, height)
	}
	return nil
}
