package kernel

import (
	"fmt"

	"github.com/cwbudde/algo-slidewin/dsp/buffer"
	"github.com/cwbudde/algo-slidewin/dsp/slidewin"
)

// Filter is a raster-streaming 2D FIR filter: a slidewin engine sized to
// the kernel, with the border stage padding out-of-image cells.
type Filter struct {
	k   *Kernel
	eng *slidewin.Engine[float64]
}

// NewFilter returns a filter for imageWidth x imageHeight frames. Cells
// outside the frame read as pad. k is not copied; several filters may share
// it and run concurrently.
func NewFilter(k *Kernel, imageWidth, imageHeight int, pad float64, opts ...slidewin.Option) (*Filter, error) {
	eng, err := slidewin.New(slidewin.Config[float64]{
		ImageWidth:     imageWidth,
		ImageHeight:    imageHeight,
		WindowWidth:    k.Width(),
		WindowHeight:   k.Height(),
		BorderEnabled:  true,
		BorderConstant: pad,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("kernel: filter: %w", err)
	}
	return &Filter{k: k, eng: eng}, nil
}

// Kernel returns the filter kernel.
func (f *Filter) Kernel() *Kernel {
	return f.k
}

// Engine returns the underlying window engine.
func (f *Filter) Engine() *slidewin.Engine[float64] {
	return f.eng
}

// Latency returns the ticks between an input sample and the filtered sample
// whose window it completes.
func (f *Filter) Latency() int {
	return f.eng.Latency()
}

// Process runs one tick. The returned sample is valid when the engine emits
// a valid window; its coordinate is the window center.
func (f *Filter) Process(s slidewin.Sample[float64]) slidewin.Sample[float64] {
	o := f.eng.Step(s)
	out := slidewin.Sample[float64]{Col: o.Col, Row: o.Row, Valid: o.Valid}
	if o.Valid {
		out.Value = f.k.Apply(o.Window)
	}
	return out
}

// ProcessPlane filters a whole frame into out. The filter is reset first
// and drained afterwards, so every position of out is written exactly once.
func (f *Filter) ProcessPlane(in, out *buffer.Plane[float64]) error {
	if !in.SameSize(out) {
		return fmt.Errorf("%w: output plane %dx%d, input %dx%d", ErrKernelShape, out.Width(), out.Height(), in.Width(), in.Height())
	}
	return f.eng.ProcessFrame(in, func(o slidewin.Output[float64]) {
		out.Set(int(o.Col), int(o.Row), f.k.Apply(o.Window))
	})
}

// Reset clears the engine state.
func (f *Filter) Reset() {
	f.eng.Reset()
}
