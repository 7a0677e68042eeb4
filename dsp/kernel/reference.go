package kernel

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-slidewin/dsp/buffer"
)

// CorrelateDirect computes the "same"-size correlation of in with k, reading
// pad for every cell outside in. O(W*H*kw*kh).
func CorrelateDirect(in *buffer.Plane[float64], k *Kernel, pad float64) *buffer.Plane[float64] {
	out := buffer.New[float64](in.Width(), in.Height())
	cc, cr := k.Center()
	for y := range in.Height() {
		for x := range in.Width() {
			s := 0.0
			for r := range k.height {
				sy := y + r - cr
				for c := range k.width {
					sx := x + c - cc
					v := pad
					if sx >= 0 && sy >= 0 && sx < in.Width() && sy < in.Height() {
						v = in.At(sx, sy)
					}
					s += v * k.At(r, c)
				}
			}
			out.Set(x, y, s)
		}
	}
	return out
}

// CorrelateFFT computes the same result as CorrelateDirect with a
// zero-padded 2D FFT. The constant pad is handled by correlating in-pad and
// adding pad*Sum().
func CorrelateFFT(in *buffer.Plane[float64], k *Kernel, pad float64) (*buffer.Plane[float64], error) {
	w, h := in.Width(), in.Height()
	nw := nextPowerOf2(w + k.width - 1)
	nh := nextPowerOf2(h + k.height - 1)

	rowPlan, err := algofft.NewPlan64(nw)
	if err != nil {
		return nil, fmt.Errorf("kernel: failed to create FFT plan: %w", err)
	}
	colPlan, err := algofft.NewPlan64(nh)
	if err != nil {
		return nil, fmt.Errorf("kernel: failed to create FFT plan: %w", err)
	}
	t := &transform2D{rows: rowPlan, cols: colPlan, nw: nw, nh: nh}

	img := make([]complex128, nw*nh)
	for y := range h {
		for x, v := range in.Row(y) {
			img[y*nw+x] = complex(v-pad, 0)
		}
	}
	// Correlation is convolution with the point-reflected kernel.
	ker := make([]complex128, nw*nh)
	for r := range k.height {
		for c := range k.width {
			ker[(k.height-1-r)*nw+(k.width-1-c)] = complex(k.At(r, c), 0)
		}
	}

	if err := t.forward(img); err != nil {
		return nil, err
	}
	if err := t.forward(ker); err != nil {
		return nil, err
	}
	for i := range img {
		img[i] *= ker[i]
	}
	if err := t.inverse(img); err != nil {
		return nil, err
	}

	cc, cr := k.Center()
	offX := k.width - 1 - cc
	offY := k.height - 1 - cr
	dc := pad * k.Sum()
	out := buffer.New[float64](w, h)
	for y := range h {
		for x := range w {
			out.Set(x, y, real(img[(y+offY)*nw+x+offX])+dc)
		}
	}
	return out, nil
}

// transform2D runs row-column 2D transforms on an nh x nw row-major grid.
type transform2D struct {
	rows *algofft.Plan[complex128]
	cols *algofft.Plan[complex128]
	nw   int
	nh   int
}

func (t *transform2D) forward(data []complex128) error {
	return t.run(data, false)
}

func (t *transform2D) inverse(data []complex128) error {
	return t.run(data, true)
}

func (t *transform2D) run(data []complex128, inverse bool) error {
	tmp := make([]complex128, max(t.nw, t.nh))

	for y := range t.nh {
		row := data[y*t.nw : (y+1)*t.nw]
		if err := step(t.rows, tmp[:t.nw], row, inverse); err != nil {
			return err
		}
		copy(row, tmp[:t.nw])
	}

	col := make([]complex128, t.nh)
	for x := range t.nw {
		for y := range t.nh {
			col[y] = data[y*t.nw+x]
		}
		if err := step(t.cols, tmp[:t.nh], col, inverse); err != nil {
			return err
		}
		for y := range t.nh {
			data[y*t.nw+x] = tmp[y]
		}
	}
	return nil
}

func step(plan *algofft.Plan[complex128], dst, src []complex128, inverse bool) error {
	if inverse {
		return plan.Inverse(dst, src)
	}
	return plan.Forward(dst, src)
}

func nextPowerOf2(n int) int {
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}
