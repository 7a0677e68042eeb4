package slidewin

import (
	"github.com/cwbudde/algo-slidewin/dsp/delay"
)

// Engine is a synchronous sliding-window pipeline for one sample stream.
// It is not safe for concurrent use; independent streams need independent
// engines.
type Engine[T any] struct {
	cfg Config[T]
	geo Geometry

	latch Sample[T]
	trk   tracker
	grid  grid[T]
	lines *delay.Cascade[T]
	// valid is the stage-two copy of the latched valid bit, aligned with
	// grid and tracker.
	valid bool

	bord border[T]
	out  Window[T]

	check *rasterCheck
}

// New validates cfg and returns an engine in its reset state.
func New[T any](cfg Config[T], opts ...Option) (*Engine[T], error) {
	geo, err := cfg.Geometry()
	if err != nil {
		return nil, err
	}
	lines, err := delay.NewCascade[T](geo.BufferedRows, cfg.ImageWidth)
	if err != nil {
		return nil, err
	}

	e := &Engine[T]{
		cfg:   cfg,
		geo:   geo,
		trk:   newTracker(cfg.ImageWidth, cfg.ImageHeight, geo.StartCol, geo.StartRow),
		grid:  newGrid[T](cfg.WindowWidth, cfg.WindowHeight),
		lines: lines,
		bord:  newBorder(cfg, geo),
		out:   NewWindow[T](cfg.WindowWidth, cfg.WindowHeight),
	}

	o := applyOptions(opts)
	if o.rasterCheck {
		e.check = newRasterCheck(cfg.ImageWidth, cfg.ImageHeight, o.logger)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine[T]) Config() Config[T] {
	return e.cfg
}

// Geometry returns the derived constants.
func (e *Engine[T]) Geometry() Geometry {
	return e.geo
}

// Latency returns the number of ticks between a sample entering Step and the
// window it completes leaving Step: 2, or 3 with the border stage.
func (e *Engine[T]) Latency() int {
	if e.cfg.BorderEnabled {
		return 3
	}
	return 2
}

// Tail returns how many samples must follow a frame's last sample before the
// window centered on it is assembled.
func (e *Engine[T]) Tail() int {
	return e.geo.ReverseCenterRow*e.cfg.ImageWidth + e.geo.ReverseCenterCol
}

// Center returns the coordinate the currently assembled window is centered on.
func (e *Engine[T]) Center() (col, row int) {
	return e.trk.col, e.trk.row
}

// HistoryComplete reports whether the tracker has passed the last image
// position since the last reset.
func (e *Engine[T]) HistoryComplete() bool {
	return e.trk.initialStart
}

// Violations returns the number of raster-order violations seen by the
// checker installed with WithRasterCheck, or 0 without one.
func (e *Engine[T]) Violations() int {
	if e.check == nil {
		return 0
	}
	return e.check.violations
}

// Step runs one tick: it returns the current output registers and then
// advances the pipeline with in. The returned Window is valid until the
// next call to Step or Reset.
func (e *Engine[T]) Step(in Sample[T]) Output[T] {
	out := e.emit()
	e.advance(in)
	return out
}

func (e *Engine[T]) emit() Output[T] {
	if e.cfg.BorderEnabled {
		e.bord.mask(e.out)
		return Output[T]{
			Window: e.out,
			Col:    uint16(e.bord.col),
			Row:    uint16(e.bord.row),
			Valid:  e.bord.valid,
		}
	}
	e.grid.correct(e.out.cells)
	return Output[T]{
		Window: e.out,
		Col:    uint16(e.trk.col),
		Row:    uint16(e.trk.row),
		Valid:  e.valid && e.trk.initialStart,
	}
}

// advance computes every register from the previous tick's state; the
// order below only matters in that each stage reads its upstream before
// the upstream is overwritten.
func (e *Engine[T]) advance(in Sample[T]) {
	if e.cfg.BorderEnabled {
		e.bord.load(&e.grid, e.trk.col, e.trk.row, e.valid && e.trk.initialStart)
	}

	s := e.latch
	if s.Valid {
		e.grid.shift(s.Value, e.lines.Outputs())
		e.lines.Step(s.Value)
	}
	e.trk.step(s.Col, s.Row, s.Valid)
	e.valid = s.Valid
	if e.check != nil {
		e.check.observe(s.Col, s.Row, s.Valid)
	}

	e.latch = in
}

// Reset returns every register to the reset baseline.
func (e *Engine[T]) Reset() {
	e.latch = Sample[T]{}
	e.trk.reset()
	e.grid.reset()
	e.lines.Reset()
	e.valid = false
	e.bord.reset()
	clear(e.out.cells)
	if e.check != nil {
		e.check.reset()
	}
}
