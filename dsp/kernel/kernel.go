package kernel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-slidewin/dsp/slidewin"
)

// Kernel is a height x width tap matrix stored row-major.
type Kernel struct {
	width  int
	height int
	taps   []float64
}

// New returns a kernel holding a copy of taps.
func New(width, height int, taps []float64) (*Kernel, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	if len(taps) != width*height {
		return nil, fmt.Errorf("%w: %dx%d kernel needs %d taps, got %d", ErrKernelShape, width, height, width*height, len(taps))
	}
	t := make([]float64, len(taps))
	copy(t, taps)
	return &Kernel{width: width, height: height, taps: t}, nil
}

func mustNew(width, height int, taps []float64) *Kernel {
	k, err := New(width, height, taps)
	if err != nil {
		panic(err)
	}
	return k
}

// Box returns a normalized moving-average kernel.
func Box(width, height int) (*Kernel, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	taps := make([]float64, width*height)
	v := 1 / float64(len(taps))
	for i := range taps {
		taps[i] = v
	}
	return New(width, height, taps)
}

// Separable returns the outer product col ⊗ row: tap (r, c) = col[r]*row[c].
func Separable(col, row []float64) (*Kernel, error) {
	if err := validateSize(len(row), len(col)); err != nil {
		return nil, err
	}
	taps := make([]float64, 0, len(col)*len(row))
	for _, cv := range col {
		for _, rv := range row {
			taps = append(taps, cv*rv)
		}
	}
	return New(len(row), len(col), taps)
}

// Binomial returns the normalized size x size binomial smoothing kernel,
// the discrete approximation of a Gaussian.
func Binomial(size int) (*Kernel, error) {
	if err := validateSize(size, size); err != nil {
		return nil, err
	}
	row := make([]float64, size)
	row[0] = 1
	for n := 1; n < size; n++ {
		for i := n; i > 0; i-- {
			row[i] += row[i-1]
		}
	}
	scale := math.Ldexp(1, -(size - 1))
	for i := range row {
		row[i] *= scale
	}
	return Separable(row, row)
}

// Gaussian returns a normalized size x size Gaussian kernel.
func Gaussian(size int, sigma float64) (*Kernel, error) {
	if err := validateSize(size, size); err != nil {
		return nil, err
	}
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("kernel: gaussian sigma must be > 0: %f", sigma)
	}
	row := make([]float64, size)
	mid := float64(size-1) / 2
	sum := 0.0
	for i := range row {
		d := float64(i) - mid
		row[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += row[i]
	}
	for i := range row {
		row[i] /= sum
	}
	return Separable(row, row)
}

// SobelX returns the horizontal-gradient Sobel kernel.
func SobelX() *Kernel {
	return mustNew(3, 3, []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	})
}

// SobelY returns the vertical-gradient Sobel kernel.
func SobelY() *Kernel {
	return mustNew(3, 3, []float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	})
}

// Laplacian returns the 4-neighbor Laplacian kernel.
func Laplacian() *Kernel {
	return mustNew(3, 3, []float64{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	})
}

// Width returns the number of columns.
func (k *Kernel) Width() int {
	return k.width
}

// Height returns the number of rows.
func (k *Kernel) Height() int {
	return k.height
}

// Center returns the center cell (col, row).
func (k *Kernel) Center() (col, row int) {
	return (k.width - 1) / 2, (k.height - 1) / 2
}

// At returns tap (row, col).
func (k *Kernel) At(row, col int) float64 {
	return k.taps[row*k.width+col]
}

// Taps returns a copy of the taps.
func (k *Kernel) Taps() []float64 {
	t := make([]float64, len(k.taps))
	copy(t, k.taps)
	return t
}

// Sum returns the sum of all taps.
func (k *Kernel) Sum() float64 {
	s := 0.0
	for _, v := range k.taps {
		s += v
	}
	return s
}

// Normalize scales the taps to unit sum.
func (k *Kernel) Normalize() error {
	s := k.Sum()
	if s == 0 {
		return errZeroSum
	}
	for i := range k.taps {
		k.taps[i] /= s
	}
	return nil
}

// Apply correlates w with the kernel: sum of w[r][c]*k[r][c].
// It panics if the window shape differs from the kernel.
func (k *Kernel) Apply(w slidewin.Window[float64]) float64 {
	if w.Width() != k.width || w.Height() != k.height {
		panic(fmt.Sprintf("kernel: window %dx%d does not match kernel %dx%d", w.Width(), w.Height(), k.width, k.height))
	}
	return vecmath.DotProduct(w.Cells(), k.taps)
}
