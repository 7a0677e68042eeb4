package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/spakin/netpbm"

	"github.com/cwbudde/algo-slidewin/dsp/buffer"
	"github.com/cwbudde/algo-slidewin/dsp/slidewin"
)

// readPGMFile loads a P2 (ASCII) or P5 (binary) graymap.
func readPGMFile(path string) (*buffer.Plane[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readPGM(f)
}

// readPGM decodes a graymap into raw sample values in [0, maxval].
func readPGM(r io.Reader) (*buffer.Plane[float64], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pgm: %w", err)
	}

	// The header is checked before the decoder sizes its raster.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("pgm: header: %w", err)
	}
	if cfg.Width > slidewin.MaxImageSize || cfg.Height > slidewin.MaxImageSize {
		return nil, fmt.Errorf("pgm: %dx%d exceeds %d", cfg.Width, cfg.Height, slidewin.MaxImageSize)
	}

	img, err := netpbm.Decode(bytes.NewReader(data), &netpbm.DecodeOptions{
		Target: netpbm.PGM,
		Exact:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("pgm: %w", err)
	}
	if img.Format() != netpbm.PGM {
		return nil, fmt.Errorf("pgm: not a graymap")
	}

	b := img.Bounds()
	scale := float64(img.MaxValue()) / 0xffff
	p := buffer.New[float64](b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			p.Set(x-b.Min.X, y-b.Min.Y, math.Round(float64(g.Y)*scale))
		}
	}
	return p, nil
}
