package delay

import (
	"fmt"
	"math/bits"
)

// Line is a fixed-capacity circular FIFO.
//
// Capacity is always a power of two so positions wrap with a mask. A Line
// never grows: pushing into a full line or popping an empty one is a sizing
// bug in the caller and panics.
type Line[T any] struct {
	buffer   []T
	mask     int
	readPos  int
	writePos int
	count    int
}

// New returns a line able to hold at least size elements.
func New[T any](size int) (*Line[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	n := 1 << bits.Len(uint(size-1))
	return &Line[T]{buffer: make([]T, n), mask: n - 1}, nil
}

// DepthFor returns the capacity used for a row of the given width: the next
// power of two >= width+3.
func DepthFor(width int) int {
	if width < 0 {
		width = 0
	}
	return 1 << bits.Len(uint(width+2))
}

// Cap returns the fixed capacity.
func (d *Line[T]) Cap() int {
	return len(d.buffer)
}

// Len returns the current occupancy.
func (d *Line[T]) Len() int {
	return d.count
}

// Push enqueues one element.
func (d *Line[T]) Push(v T) {
	if d.count == len(d.buffer) {
		panic(fmt.Sprintf("delay: push into full line (cap %d)", len(d.buffer)))
	}
	d.buffer[d.writePos] = v
	d.writePos = (d.writePos + 1) & d.mask
	d.count++
}

// Pop dequeues the oldest element.
func (d *Line[T]) Pop() T {
	if d.count == 0 {
		panic("delay: pop from empty line")
	}
	v := d.buffer[d.readPos]
	var zero T
	d.buffer[d.readPos] = zero
	d.readPos = (d.readPos + 1) & d.mask
	d.count--
	return v
}

// Peek returns the oldest element without removing it.
func (d *Line[T]) Peek() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.buffer[d.readPos], true
}

// Reset empties the line.
func (d *Line[T]) Reset() {
	clear(d.buffer)
	d.readPos = 0
	d.writePos = 0
	d.count = 0
}
