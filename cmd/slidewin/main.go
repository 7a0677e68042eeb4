// Command slidewin streams image frames through a sliding-window engine and
// prints the extracted neighborhoods or a kernel-filtered frame.
//
// Usage:
//
//	slidewin [flags]
//
// Settings come from an optional YAML file (-config); flags given on the
// command line override it. Without -input, synthetic ramp frames are used.
//
// Examples:
//
//	slidewin -width 4 -height 3
//	slidewin -win-width 5 -win-height 3 -col-offset 1 -pad -1
//	slidewin -input photo.pgm -kernel gauss5 -verify
//	slidewin -config stream.yaml -v
//	slidewin -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-slidewin/dsp/buffer"
	"github.com/cwbudde/algo-slidewin/dsp/kernel"
	"github.com/cwbudde/algo-slidewin/dsp/slidewin"
)

const verifyTolerance = 1e-6

func main() {
	def := defaultConfig()
	configPath := flag.String("config", "", "YAML configuration file")
	width := flag.Int("width", def.Image.Width, "image width")
	height := flag.Int("height", def.Image.Height, "image height")
	winWidth := flag.Int("win-width", def.Window.Width, "window width")
	winHeight := flag.Int("win-height", def.Window.Height, "window height")
	colOffset := flag.Int("col-offset", 0, "window center column offset")
	rowOffset := flag.Int("row-offset", 0, "window center row offset")
	border := flag.Bool("border", def.Border.Enabled, "replace cells outside the image with -pad")
	pad := flag.Float64("pad", 0, "border constant")
	frames := flag.Int("frames", def.Frames, "number of synthetic frames")
	input := flag.String("input", "", "PGM (P2/P5) input frame")
	kernelName := flag.String("kernel", "", "filter kernel; empty prints windows")
	verify := flag.Bool("verify", false, "compare the streamed result with the FFT reference")
	list := flag.Bool("list", false, "list available kernels")
	verbose := flag.Bool("v", false, "debug logging and raster-order checking")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: slidewin [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Streams frames through a sliding-window engine.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  slidewin -width 4 -height 3\n")
		fmt.Fprintf(os.Stderr, "  slidewin -input photo.pgm -kernel gauss5 -verify\n")
		fmt.Fprintf(os.Stderr, "  slidewin -list\n")
	}
	flag.Parse()

	logger := newLogger(os.Stderr, *verbose)

	if *list {
		for _, n := range kernelNames() {
			fmt.Println(n)
		}
		return
	}

	cfg := def
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("config loaded", "path", *configPath)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Image.Width = *width
		case "height":
			cfg.Image.Height = *height
		case "win-width":
			cfg.Window.Width = *winWidth
		case "win-height":
			cfg.Window.Height = *winHeight
		case "col-offset":
			cfg.Window.ColOffset = *colOffset
		case "row-offset":
			cfg.Window.RowOffset = *rowOffset
		case "border":
			cfg.Border.Enabled = *border
		case "pad":
			cfg.Border.Constant = *pad
		case "frames":
			cfg.Frames = *frames
		case "input":
			cfg.Input = *input
		case "kernel":
			cfg.Kernel = *kernelName
		case "verify":
			cfg.Verify = *verify
		}
	})

	planes, err := loadFrames(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg, planes, logger, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadFrames reads the input file, which also fixes the image size, or
// builds cfg.Frames synthetic ramps.
func loadFrames(cfg *fileConfig) ([]*buffer.Plane[float64], error) {
	if cfg.Input != "" {
		p, err := readPGMFile(cfg.Input)
		if err != nil {
			return nil, err
		}
		cfg.Image.Width, cfg.Image.Height = p.Width(), p.Height()
		cfg.Frames = 1
		return []*buffer.Plane[float64]{p}, nil
	}
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("frames must be > 0: %d", cfg.Frames)
	}
	planes := make([]*buffer.Plane[float64], cfg.Frames)
	n := cfg.Image.Width * cfg.Image.Height
	for f := range planes {
		p := buffer.New[float64](cfg.Image.Width, cfg.Image.Height)
		for i := range p.Samples() {
			p.Samples()[i] = float64(f*n + i)
		}
		planes[f] = p
	}
	return planes, nil
}

func run(w io.Writer, cfg fileConfig, planes []*buffer.Plane[float64], logger *slog.Logger, check bool) error {
	var opts []slidewin.Option
	if check {
		opts = append(opts, slidewin.WithRasterCheck(logger))
	}
	if cfg.Kernel == "" {
		return printWindows(w, cfg, planes, logger, opts)
	}
	return printFiltered(w, cfg, planes, logger, opts)
}

func printWindows(w io.Writer, cfg fileConfig, planes []*buffer.Plane[float64], logger *slog.Logger, opts []slidewin.Option) error {
	e, err := slidewin.New(cfg.engineConfig(), opts...)
	if err != nil {
		return err
	}
	logger.Debug("engine ready",
		"image", fmt.Sprintf("%dx%d", cfg.Image.Width, cfg.Image.Height),
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"latency", e.Latency(),
		"tail", e.Tail(),
	)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	perFrame := cfg.Image.Width * cfg.Image.Height
	n := 0
	var werr error
	emit := func(o slidewin.Output[float64]) {
		if werr != nil {
			return
		}
		if _, werr = fmt.Fprintf(tw, "frame %d (%d,%d)\t\n", n/perFrame, o.Col, o.Row); werr != nil {
			return
		}
		for r := range o.Window.Height() {
			for _, v := range o.Window.Row(r) {
				if _, werr = fmt.Fprintf(tw, "%g\t", v); werr != nil {
					return
				}
			}
			if _, werr = fmt.Fprintln(tw); werr != nil {
				return
			}
		}
		n++
	}

	for _, p := range planes {
		if err := e.FeedPlane(p, emit); err != nil {
			return err
		}
	}
	e.Flush(emit)
	if werr != nil {
		return fmt.Errorf("failed to write output: %w", werr)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	logger.Debug("stream done", "windows", n, "raster_violations", e.Violations())
	return nil
}

func printFiltered(w io.Writer, cfg fileConfig, planes []*buffer.Plane[float64], logger *slog.Logger, opts []slidewin.Option) error {
	entry, ok := lookupKernel(cfg.Kernel)
	if !ok {
		return fmt.Errorf("unknown kernel %q", cfg.Kernel)
	}
	k, err := entry.make()
	if err != nil {
		return err
	}
	f, err := kernel.NewFilter(k, cfg.Image.Width, cfg.Image.Height, cfg.Border.Constant, opts...)
	if err != nil {
		return err
	}

	pool := buffer.NewPool[float64]()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, in := range planes {
		out := pool.Get(in.Width(), in.Height())
		if err := f.ProcessPlane(in, out); err != nil {
			return err
		}

		if cfg.Verify {
			ref, err := kernel.CorrelateFFT(in, k, cfg.Border.Constant)
			if err != nil {
				return err
			}
			d := 0.0
			for j, v := range out.Samples() {
				d = max(d, math.Abs(v-ref.Samples()[j]))
			}
			logger.Info("verified against FFT reference", "frame", i, "max_abs_diff", d)
			if d > verifyTolerance {
				return fmt.Errorf("frame %d: streamed result differs from reference by %g", i, d)
			}
		}

		if _, err := fmt.Fprintf(tw, "frame %d\t\n", i); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for row := range out.Height() {
			for _, v := range out.Row(row) {
				if _, err := fmt.Fprintf(tw, "%.4f\t", v); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			if _, err := fmt.Fprintln(tw); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		pool.Put(out)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
