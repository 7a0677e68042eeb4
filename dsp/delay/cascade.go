package delay

import "fmt"

// Cascade chains one Line per buffered image row so that stage i reproduces
// the input stream delayed by (i+1)*width valid samples.
//
// Every stage is pushed on every valid tick. A shared separation counter
// lets the lines fill up to width-1 elements; from then on each tick also
// pops, and the popped value is held in a read register that becomes the
// stage output (and the next stage input) on the following tick. The read
// register supplies the last element of delay, so each stage is an exact
// delay line of depth width.
type Cascade[T any] struct {
	lines []*Line[T]
	outs  []T
	width int
	sep   int
}

// NewCascade returns a cascade of rows stages for an image of the given width.
// rows may be zero, in which case Step is a no-op.
func NewCascade[T any](rows, width int) (*Cascade[T], error) {
	if rows < 0 {
		return nil, fmt.Errorf("delay cascade rows must be >= 0: %d", rows)
	}
	if width <= 0 {
		return nil, fmt.Errorf("delay cascade width must be > 0: %d", width)
	}
	c := &Cascade[T]{
		lines: make([]*Line[T], rows),
		outs:  make([]T, rows),
		width: width,
	}
	for i := range c.lines {
		l, err := New[T](DepthFor(width))
		if err != nil {
			return nil, err
		}
		c.lines[i] = l
	}
	return c, nil
}

// Rows returns the number of stages.
func (c *Cascade[T]) Rows() int {
	return len(c.lines)
}

// Width returns the delay of a single stage in samples.
func (c *Cascade[T]) Width() int {
	return c.width
}

// Separation returns the current separation counter.
func (c *Cascade[T]) Separation() int {
	return c.sep
}

// Output returns the read register of stage i.
func (c *Cascade[T]) Output(i int) T {
	return c.outs[i]
}

// Outputs returns all read registers. The slice is owned by the cascade and
// changes on the next Step.
func (c *Cascade[T]) Outputs() []T {
	return c.outs
}

// Step advances the cascade by one valid sample.
func (c *Cascade[T]) Step(v T) {
	full := c.sep == c.width-1
	in := v
	for i, l := range c.lines {
		prev := c.outs[i]
		l.Push(in)
		if full {
			c.outs[i] = l.Pop()
		}
		in = prev
	}
	if !full {
		c.sep++
	}
}

// Reset empties every stage and clears the read registers.
func (c *Cascade[T]) Reset() {
	for _, l := range c.lines {
		l.Reset()
	}
	clear(c.outs)
	c.sep = 0
}
