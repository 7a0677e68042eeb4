package slidewin

import "log/slog"

// rasterCheck observes latched samples and counts raster-order violations.
// It resynchronizes to every observed position so one glitch is reported
// once.
type rasterCheck struct {
	width      int
	height     int
	logger     *slog.Logger
	wantCol    int
	wantRow    int
	violations int
}

func newRasterCheck(width, height int, logger *slog.Logger) *rasterCheck {
	return &rasterCheck{width: width, height: height, logger: logger}
}

func (r *rasterCheck) observe(col, row uint16, valid bool) {
	if !valid {
		return
	}
	c, w := int(col), int(row)
	if c != r.wantCol || w != r.wantRow || c >= r.width || w >= r.height {
		r.violations++
		r.logger.Warn("slidewin: raster order violation",
			"col", c,
			"row", w,
			"want_col", r.wantCol,
			"want_row", r.wantRow,
		)
	}

	c++
	if c >= r.width {
		c = 0
		w++
		if w >= r.height {
			w = 0
		}
	}
	r.wantCol, r.wantRow = c, w
}

func (r *rasterCheck) reset() {
	r.wantCol = 0
	r.wantRow = 0
	r.violations = 0
}
