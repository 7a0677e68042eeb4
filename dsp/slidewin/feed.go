package slidewin

import (
	"fmt"

	"github.com/cwbudde/algo-slidewin/dsp/buffer"
)

// FeedPlane streams p through the engine in raster order, starting a new
// frame, and calls emit for every valid output. It does not reset or drain
// the engine, so consecutive calls behave like a continuous stream: the last
// Tail() centers of a frame are emitted while the next frame is fed.
func (e *Engine[T]) FeedPlane(p *buffer.Plane[T], emit func(Output[T])) error {
	if p.Width() != e.cfg.ImageWidth || p.Height() != e.cfg.ImageHeight {
		return fmt.Errorf("%w: plane %dx%d does not match image %dx%d",
			ErrInvalidDimensions, p.Width(), p.Height(), e.cfg.ImageWidth, e.cfg.ImageHeight)
	}
	for row := range p.Height() {
		for col, v := range p.Row(row) {
			e.tick(Sample[T]{Value: v, Col: uint16(col), Row: uint16(row), Valid: true}, emit)
		}
	}
	return nil
}

// Idle clocks n invalid ticks, calling emit for every valid output. Idle
// ticks drain the latch and border registers but never advance the center.
func (e *Engine[T]) Idle(n int, emit func(Output[T])) {
	for range n {
		e.tick(Sample[T]{}, emit)
	}
}

// Flush completes the frame fed last: it streams Tail() samples of a
// following frame carrying BorderConstant and then Latency() idle ticks, so
// every center of the previous frame has been emitted. The engine is left
// part way into that synthetic frame; call Reset before feeding an
// unrelated frame.
func (e *Engine[T]) Flush(emit func(Output[T])) {
	w := e.cfg.ImageWidth
	for i := range e.Tail() {
		e.tick(Sample[T]{
			Value: e.cfg.BorderConstant,
			Col:   uint16(i % w),
			Row:   uint16(i / w),
			Valid: true,
		}, emit)
	}
	e.Idle(e.Latency(), emit)
}

// ProcessFrame resets the engine, feeds p and flushes, so emit sees exactly
// one valid window per image position, in raster order of the centers.
func (e *Engine[T]) ProcessFrame(p *buffer.Plane[T], emit func(Output[T])) error {
	e.Reset()
	if err := e.FeedPlane(p, emit); err != nil {
		return err
	}
	e.Flush(emit)
	return nil
}

func (e *Engine[T]) tick(s Sample[T], emit func(Output[T])) {
	out := e.Step(s)
	if out.Valid && emit != nil {
		emit(out)
	}
}
