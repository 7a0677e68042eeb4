// Package slidewin extracts 2D neighborhoods from a raster-scanned sample
// stream.
//
// An [Engine] consumes one [Sample] per tick in row-major order (column
// fastest) and, once enough history has accumulated, emits for every image
// position the windowHeight x windowWidth neighborhood centered on it. No
// frame is ever buffered: a cascade of windowHeight-1 row delay lines
// (package delay) and a shift-register grid reconstruct the neighborhood
// from the 1D stream with constant latency.
//
// # Tick model
//
// [Engine.Step] behaves like a clocked pipeline. It returns the output
// registers as they are at the start of the tick and then advances every
// stage from the previous tick's state:
//
//	input latch -> delay cascade + shift grid + center tracker -> [border stage] -> output
//
// A sample passed to Step appears in an output two ticks later, or three
// ticks later with the border stage enabled. Invalid ticks (Valid == false)
// do not shift the grid or advance the tracker; they only move the latch and
// border registers.
//
// # Orientation
//
// Internally the newest sample sits at row 0, column 0 of the grid. The
// emitted [Window] is the 180° relabeling of that grid: cell (0,0) is the
// top-left (oldest) neighbor and the last cell is the newest sample. Center
// offsets in [Config] are expressed in this user-facing orientation.
//
// # Validity
//
// An output is valid once the tracked center has passed the last position
// of the image, i.e. from the window centered on (0,0) of the first frame
// onwards. With BorderEnabled every cell whose image coordinate is outside
// the frame is replaced by BorderConstant; without it such cells hold
// whatever the delay lines contain (previous rows or frames), which is left
// unmasked on purpose.
//
// # Preconditions
//
// The stream must follow raster order with every frame starting at (0,0).
// Violations are not detected by the pipeline and yield undefined windows;
// [WithRasterCheck] adds an observer that logs them without changing timing.
package slidewin
