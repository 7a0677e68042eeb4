package slidewin

import (
	"fmt"

	"github.com/cwbudde/algo-slidewin/dsp/delay"
)

// Config is the immutable engine configuration. Changing any dimension
// requires a new Engine.
type Config[T any] struct {
	ImageWidth  int
	ImageHeight int

	WindowWidth  int
	WindowHeight int

	// WidthCenterOffset and HeightCenterOffset move the window center away
	// from floor((size-1)/2). They may be negative.
	WidthCenterOffset  int
	HeightCenterOffset int

	// BorderEnabled adds one tick of latency and replaces every cell outside
	// the image with BorderConstant.
	BorderEnabled  bool
	BorderConstant T
}

// Geometry holds the constants derived from a Config.
type Geometry struct {
	// CenterCol and CenterRow locate the center cell inside the window.
	CenterCol int
	CenterRow int

	// ReverseCenterCol and ReverseCenterRow are the center distances from
	// the newest window column and row.
	ReverseCenterCol int
	ReverseCenterRow int

	// StartCol and StartRow are the center coordinate on reset: the window
	// center just before a frame's first sample becomes the newest cell.
	StartCol int
	StartRow int

	// BufferedRows is the number of row delay lines.
	BufferedRows int
	// LineDepth is the capacity of each delay line.
	LineDepth int
}

// Geometry validates the configuration and derives its constants.
func (c Config[T]) Geometry() (Geometry, error) {
	if err := validateImage(c.ImageWidth, c.ImageHeight); err != nil {
		return Geometry{}, err
	}
	if err := validateWindow(c.WindowWidth, c.WindowHeight); err != nil {
		return Geometry{}, err
	}

	g := Geometry{
		CenterCol:    (c.WindowWidth-1)/2 + c.WidthCenterOffset,
		CenterRow:    (c.WindowHeight-1)/2 + c.HeightCenterOffset,
		BufferedRows: c.WindowHeight - 1,
		LineDepth:    delay.DepthFor(c.ImageWidth),
	}
	if g.CenterCol < 0 || g.CenterCol >= c.WindowWidth {
		return Geometry{}, fmt.Errorf("%w: center column %d outside [0,%d)", ErrInvalidCenter, g.CenterCol, c.WindowWidth)
	}
	if g.CenterRow < 0 || g.CenterRow >= c.WindowHeight {
		return Geometry{}, fmt.Errorf("%w: center row %d outside [0,%d)", ErrInvalidCenter, g.CenterRow, c.WindowHeight)
	}

	g.ReverseCenterCol = (c.WindowWidth - 1) - g.CenterCol
	g.ReverseCenterRow = (c.WindowHeight - 1) - g.CenterRow
	g.StartCol = (c.ImageWidth - 1) - g.ReverseCenterCol
	g.StartRow = (c.ImageHeight - 1) - g.ReverseCenterRow

	// The reset center must be an image position, otherwise the tracker
	// would never reach (0,0) of the first frame.
	if g.StartCol < 0 {
		return Geometry{}, fmt.Errorf("%w: window reaches %d columns right of its center, image width is %d",
			ErrInvalidDimensions, g.ReverseCenterCol, c.ImageWidth)
	}
	if g.StartRow < 0 {
		return Geometry{}, fmt.Errorf("%w: window reaches %d rows below its center, image height is %d",
			ErrInvalidDimensions, g.ReverseCenterRow, c.ImageHeight)
	}
	return g, nil
}

// Validate reports whether the configuration can build an Engine.
func (c Config[T]) Validate() error {
	_, err := c.Geometry()
	return err
}
