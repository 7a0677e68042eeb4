package slidewin

// border is the optional masking stage. It registers the corrected window,
// the center and the validity bit, then replaces out-of-image cells.
type border[T any] struct {
	imageWidth  int
	imageHeight int
	centerCol   int
	centerRow   int
	constant    T

	cells []T
	col   int
	row   int
	valid bool
}

func newBorder[T any](cfg Config[T], geo Geometry) border[T] {
	return border[T]{
		imageWidth:  cfg.ImageWidth,
		imageHeight: cfg.ImageHeight,
		centerCol:   geo.CenterCol,
		centerRow:   geo.CenterRow,
		constant:    cfg.BorderConstant,
		cells:       make([]T, cfg.WindowWidth*cfg.WindowHeight),
	}
}

// load registers the previous stage.
func (b *border[T]) load(g *grid[T], col, row int, valid bool) {
	g.correct(b.cells)
	b.col = col
	b.row = row
	b.valid = valid
}

// mask writes the registered window into dst, substituting the constant for
// every cell whose image coordinate falls outside the frame.
func (b *border[T]) mask(dst Window[T]) {
	for r := range dst.height {
		imgRow := b.row + r - b.centerRow
		rowOut := imgRow < 0 || imgRow > b.imageHeight-1
		for c := range dst.width {
			i := r*dst.width + c
			imgCol := b.col + c - b.centerCol
			if rowOut || imgCol < 0 || imgCol > b.imageWidth-1 {
				dst.cells[i] = b.constant
				continue
			}
			dst.cells[i] = b.cells[i]
		}
	}
}

func (b *border[T]) reset() {
	clear(b.cells)
	b.col = 0
	b.row = 0
	b.valid = false
}
