package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunPrintsWindows(t *testing.T) {
	cfg := defaultConfig()
	cfg.Image.Width, cfg.Image.Height = 4, 3
	cfg.Frames = 2
	planes, err := loadFrames(&cfg)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(&out, cfg, planes, quietLogger(), true); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if got := strings.Count(s, "frame "); got != 24 {
		t.Fatalf("printed %d windows, want 24\n%s", got, s)
	}
	if !strings.Contains(s, "frame 1 (3,2)") {
		t.Fatalf("missing last window of frame 1\n%s", s)
	}
}

func TestRunFilteredWithVerify(t *testing.T) {
	cfg := defaultConfig()
	cfg.Image.Width, cfg.Image.Height = 9, 7
	cfg.Kernel = "gauss5"
	cfg.Verify = true
	cfg.Border.Constant = 1
	planes, err := loadFrames(&cfg)
	if err != nil {
		t.Fatal(err)
	}

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	if err := run(&out, cfg, planes, logger, false); err != nil {
		t.Fatalf("%v\n%s", err, logs.String())
	}
	if !strings.Contains(logs.String(), "verified against FFT reference") {
		t.Fatalf("missing verification log:\n%s", logs.String())
	}
	if lines := strings.Count(out.String(), "\n"); lines != 8 {
		t.Fatalf("output has %d lines, want 8\n%s", lines, out.String())
	}
}

func TestLoadFramesSynthetic(t *testing.T) {
	cfg := defaultConfig()
	cfg.Image.Width, cfg.Image.Height = 2, 2
	cfg.Frames = 3
	planes, err := loadFrames(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(planes) != 3 || planes[2].At(1, 1) != 11 {
		t.Fatalf("unexpected frames")
	}

	cfg.Frames = 0
	if _, err := loadFrames(&cfg); err == nil {
		t.Fatal("expected error for zero frames")
	}
}

func TestKernelRegistry(t *testing.T) {
	for _, name := range kernelNames() {
		e, ok := lookupKernel(name)
		if !ok {
			t.Fatalf("lookup %q failed", name)
		}
		if _, err := e.make(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, ok := lookupKernel("unknown"); ok {
		t.Fatal("unknown kernel resolved")
	}
}
