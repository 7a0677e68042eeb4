package slidewin

// Sample is one input tick.
type Sample[T any] struct {
	Value T
	Col   uint16
	Row   uint16
	Valid bool
}

// StartOfFrame reports whether s is the first sample of a frame.
func (s Sample[T]) StartOfFrame() bool {
	return s.Valid && s.Col == 0 && s.Row == 0
}

// Output is one output tick. Col and Row are the image position the window
// is centered on.
type Output[T any] struct {
	Window Window[T]
	Col    uint16
	Row    uint16
	Valid  bool
}

// Window is a height x width neighborhood stored row-major, top-left first.
//
// Windows returned by an Engine alias engine memory that is overwritten by
// the next Step; use Clone to keep one.
type Window[T any] struct {
	width  int
	height int
	cells  []T
}

// NewWindow returns a zero-filled window.
func NewWindow[T any](width, height int) Window[T] {
	return Window[T]{width: width, height: height, cells: make([]T, width*height)}
}

// Width returns the number of columns.
func (w Window[T]) Width() int {
	return w.width
}

// Height returns the number of rows.
func (w Window[T]) Height() int {
	return w.height
}

// At returns cell (row, col).
func (w Window[T]) At(row, col int) T {
	return w.cells[row*w.width+col]
}

// Row returns window row r.
func (w Window[T]) Row(r int) []T {
	return w.cells[r*w.width : (r+1)*w.width]
}

// Cells returns all cells row-major.
func (w Window[T]) Cells() []T {
	return w.cells
}

// Clone returns a copy that does not alias w.
func (w Window[T]) Clone() Window[T] {
	c := make([]T, len(w.cells))
	copy(c, w.cells)
	return Window[T]{width: w.width, height: w.height, cells: c}
}
