// Package kernel applies 2D filter kernels to the neighborhoods produced by
// package slidewin.
//
// A [Kernel] is a small row-major tap matrix whose center is the cell
// floor((size-1)/2) in each direction, the same default center slidewin
// uses. [Kernel.Apply] correlates a window with the taps. [Filter] wires a
// slidewin engine with the border stage enabled to a kernel and turns a
// raster sample stream into a filtered raster sample stream:
//
//	k, _ := kernel.Gaussian(5, 1.2)
//	f, _ := kernel.NewFilter(k, 640, 480, 0)
//	for _, s := range samples {
//		out := f.Process(s)
//		if out.Valid {
//			// out.Value is the filtered sample at (out.Col, out.Row)
//		}
//	}
//
// [CorrelateDirect] and [CorrelateFFT] compute the same "same"-size,
// constant-padded result over a whole frame and serve as offline references.
package kernel
