package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-slidewin/dsp/buffer"
)

// Ramp returns a plane whose samples count up from start in raster order.
func Ramp(width, height, start int) *buffer.Plane[int] {
	p := buffer.New[int](width, height)
	for i := range p.Samples() {
		p.Samples()[i] = start + i
	}
	return p
}

// RampFloat is Ramp with float64 samples.
func RampFloat(width, height int, start float64) *buffer.Plane[float64] {
	p := buffer.New[float64](width, height)
	for i := range p.Samples() {
		p.Samples()[i] = start + float64(i)
	}
	return p
}

// DeterministicNoise returns a plane of uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, width, height int) *buffer.Plane[float64] {
	p := buffer.New[float64](width, height)
	rng := rand.New(rand.NewSource(seed))
	for i := range p.Samples() {
		p.Samples()[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return p
}

// ReferenceWindow returns the winHeight x winWidth neighborhood of p centered
// on (col, row), row-major, with cells outside p set to pad. (centerCol,
// centerRow) locates the center cell inside the window.
func ReferenceWindow[T any](p *buffer.Plane[T], col, row, winWidth, winHeight, centerCol, centerRow int, pad T) []T {
	out := make([]T, 0, winWidth*winHeight)
	for r := range winHeight {
		y := row + r - centerRow
		for c := range winWidth {
			x := col + c - centerCol
			if x < 0 || y < 0 || x >= p.Width() || y >= p.Height() {
				out = append(out, pad)
				continue
			}
			out = append(out, p.At(x, y))
		}
	}
	return out
}
