package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
image:
  width: 16
  height: 9
window:
  width: 5
  height: 3
  col_offset: -1
border:
  enabled: false
  constant: -2.5
kernel: ""
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Image.Width != 16 || cfg.Image.Height != 9 {
		t.Fatalf("image = %+v", cfg.Image)
	}
	if cfg.Window.Width != 5 || cfg.Window.Height != 3 || cfg.Window.ColOffset != -1 || cfg.Window.RowOffset != 0 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Border.Enabled || cfg.Border.Constant != -2.5 {
		t.Fatalf("border = %+v", cfg.Border)
	}
	// Not in the file: keeps the default.
	if cfg.Frames != 1 {
		t.Fatalf("frames = %d, want default 1", cfg.Frames)
	}
	if err := validateConfig(cfg); err != nil {
		t.Fatal(err)
	}

	ec := cfg.engineConfig()
	if ec.ImageWidth != 16 || ec.WindowWidth != 5 || ec.WidthCenterOffset != -1 || ec.BorderConstant != -2.5 {
		t.Fatalf("engine config = %+v", ec)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := writeFile(t, "bad.yaml", "image: [1, 2\n")
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*fileConfig)
		wantErr string
	}{
		{"defaults", func(*fileConfig) {}, ""},
		{"zero frames", func(c *fileConfig) { c.Frames = 0 }, "frames"},
		{"unknown kernel", func(c *fileConfig) { c.Kernel = "nope" }, "unknown kernel"},
		{"verify without kernel", func(c *fileConfig) { c.Verify = true }, "verify"},
		{"bad center", func(c *fileConfig) { c.Window.ColOffset = 5 }, "center"},
		{"kernel ok", func(c *fileConfig) { c.Kernel = "Sobel-X"; c.Verify = true }, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)
			err := validateConfig(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("got %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}
