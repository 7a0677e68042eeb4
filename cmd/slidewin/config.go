package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-slidewin/dsp/slidewin"
)

// fileConfig is the YAML configuration accepted by -config.
type fileConfig struct {
	Image  imageConfig  `yaml:"image"`
	Window windowConfig `yaml:"window"`
	Border borderConfig `yaml:"border"`
	Frames int          `yaml:"frames"` // synthetic frames when no input file is given
	Input  string       `yaml:"input"`  // PGM file (P2 or P5)
	Kernel string       `yaml:"kernel"` // empty: print windows
	Verify bool         `yaml:"verify"` // compare the streamed result with the FFT reference
}

type imageConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type windowConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	ColOffset int `yaml:"col_offset"`
	RowOffset int `yaml:"row_offset"`
}

type borderConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Constant float64 `yaml:"constant"`
}

func defaultConfig() fileConfig {
	return fileConfig{
		Image:  imageConfig{Width: 8, Height: 6},
		Window: windowConfig{Width: 3, Height: 3},
		Border: borderConfig{Enabled: true},
		Frames: 1,
	}
}

// loadConfig reads path over the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// validateConfig checks the fields the engine does not check itself.
func validateConfig(cfg fileConfig) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be > 0: %d", cfg.Frames)
	}
	if cfg.Kernel != "" {
		if _, ok := lookupKernel(cfg.Kernel); !ok {
			return fmt.Errorf("unknown kernel %q (use -list to see available)", cfg.Kernel)
		}
	}
	if cfg.Verify && cfg.Kernel == "" {
		return fmt.Errorf("verify needs a kernel")
	}
	return cfg.engineConfig().Validate()
}

func (c fileConfig) engineConfig() slidewin.Config[float64] {
	return slidewin.Config[float64]{
		ImageWidth:         c.Image.Width,
		ImageHeight:        c.Image.Height,
		WindowWidth:        c.Window.Width,
		WindowHeight:       c.Window.Height,
		WidthCenterOffset:  c.Window.ColOffset,
		HeightCenterOffset: c.Window.RowOffset,
		BorderEnabled:      c.Border.Enabled,
		BorderConstant:     c.Border.Constant,
	}
}
