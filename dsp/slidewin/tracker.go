package slidewin

// tracker follows the image coordinate the assembled window is centered on.
type tracker struct {
	width    int
	height   int
	startCol int
	startRow int

	col int
	row int
	// initialStart latches once the center has passed the last image
	// position, i.e. the delay lines hold a full frame of history.
	initialStart bool
}

func newTracker(width, height, startCol, startRow int) tracker {
	t := tracker{width: width, height: height, startCol: startCol, startRow: startRow}
	t.reset()
	return t
}

func (t *tracker) reset() {
	t.col = t.startCol
	t.row = t.startRow
	t.initialStart = false
}

// advance moves (col, row) one raster step, wrapping at the image edges.
func (t *tracker) advance(col, row int) (int, int) {
	col++
	if col == t.width {
		col = 0
		row++
		if row == t.height {
			row = 0
		}
	}
	return col, row
}

// step consumes the latched sample coordinate.
func (t *tracker) step(col, row uint16, valid bool) {
	// The latch delays the sample by one tick, so a start of frame re-seeds
	// the tracker one step past the reset position.
	lookCol, lookRow := t.advance(t.startCol, t.startRow)
	if !valid {
		return
	}

	nextCol, nextRow := t.advance(t.col, t.row)
	if col == 0 && row == 0 {
		nextCol, nextRow = lookCol, lookRow
	}
	if t.col == t.width-1 && t.row == t.height-1 {
		t.initialStart = true
	}
	t.col, t.row = nextCol, nextRow
}
