package buffer

import "fmt"

// Plane is a width x height frame stored row-major.
type Plane[T any] struct {
	width   int
	height  int
	samples []T
}

// New returns a zero-filled plane. Negative dimensions are treated as 0.
func New[T any](width, height int) *Plane[T] {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Plane[T]{width: width, height: height, samples: make([]T, width*height)}
}

// FromSlice wraps an existing row-major slice without copying.
// Mutations to the slice are visible through the Plane and vice versa.
func FromSlice[T any](width, height int, s []T) (*Plane[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("plane dimensions must be >= 0: %dx%d", width, height)
	}
	if len(s) != width*height {
		return nil, fmt.Errorf("plane %dx%d needs %d samples, got %d", width, height, width*height, len(s))
	}
	return &Plane[T]{width: width, height: height, samples: s}, nil
}

// Width returns the number of columns.
func (p *Plane[T]) Width() int {
	return p.width
}

// Height returns the number of rows.
func (p *Plane[T]) Height() int {
	return p.height
}

// Len returns width*height.
func (p *Plane[T]) Len() int {
	return len(p.samples)
}

// Samples returns the underlying row-major slice.
func (p *Plane[T]) Samples() []T {
	return p.samples
}

// At returns the sample at (col, row).
func (p *Plane[T]) At(col, row int) T {
	return p.samples[row*p.width+col]
}

// Set stores v at (col, row).
func (p *Plane[T]) Set(col, row int, v T) {
	p.samples[row*p.width+col] = v
}

// Row returns row as a subslice sharing memory with the plane.
func (p *Plane[T]) Row(row int) []T {
	return p.samples[row*p.width : (row+1)*p.width]
}

// SameSize reports whether p and o have identical dimensions.
func (p *Plane[T]) SameSize(o *Plane[T]) bool {
	return p.width == o.width && p.height == o.height
}

// Resize sets the dimensions, reusing existing capacity when possible.
// Contents are zeroed.
func (p *Plane[T]) Resize(width, height int) {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	n := width * height
	if n <= cap(p.samples) {
		p.samples = p.samples[:n]
	} else {
		p.samples = make([]T, n)
	}
	p.width = width
	p.height = height
	p.Zero()
}

// Fill sets every sample to v.
func (p *Plane[T]) Fill(v T) {
	for i := range p.samples {
		p.samples[i] = v
	}
}

// Zero sets every sample to the zero value.
func (p *Plane[T]) Zero() {
	clear(p.samples)
}

// Copy returns a deep copy of the plane.
func (p *Plane[T]) Copy() *Plane[T] {
	s := make([]T, len(p.samples))
	copy(s, p.samples)
	return &Plane[T]{width: p.width, height: p.height, samples: s}
}
