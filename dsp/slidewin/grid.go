package slidewin

// grid is the shift-register window in mirrored orientation: row 0 holds
// the newest image row and column 0 the newest sample of each row.
type grid[T any] struct {
	width  int
	height int
	cells  []T
}

func newGrid[T any](width, height int) grid[T] {
	return grid[T]{width: width, height: height, cells: make([]T, width*height)}
}

// shift moves every row one column right and inserts newest into row 0 and
// taps[r-1] into row r.
func (g *grid[T]) shift(newest T, taps []T) {
	for r := range g.height {
		row := g.cells[r*g.width : (r+1)*g.width]
		copy(row[1:], row[:g.width-1])
		if r == 0 {
			row[0] = newest
		} else {
			row[0] = taps[r-1]
		}
	}
}

// correct writes the image-space window: window[r][c] is
// mirrored[height-1-r][width-1-c], which on the flat layout is a reversal.
func (g *grid[T]) correct(dst []T) {
	last := len(g.cells) - 1
	for i := range dst {
		dst[i] = g.cells[last-i]
	}
}

func (g *grid[T]) reset() {
	clear(g.cells)
}
