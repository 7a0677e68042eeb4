package kernel

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/cwbudde/algo-slidewin/dsp/slidewin"
)

func windowOf(width, height int, cells ...float64) slidewin.Window[float64] {
	w := slidewin.NewWindow[float64](width, height)
	copy(w.Cells(), cells)
	return w
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 3, nil); !errors.Is(err, ErrKernelShape) {
		t.Fatalf("width=0: got %v", err)
	}
	if _, err := New(2, 2, []float64{1, 2, 3}); !errors.Is(err, ErrKernelShape) {
		t.Fatalf("short taps: got %v", err)
	}
}

func TestNewCopiesTaps(t *testing.T) {
	taps := []float64{1, 2, 3, 4}
	k, err := New(2, 2, taps)
	if err != nil {
		t.Fatal(err)
	}
	taps[0] = 100
	if k.At(0, 0) != 1 {
		t.Fatal("New must copy taps")
	}
	got := k.Taps()
	got[1] = 100
	if k.At(0, 1) != 2 {
		t.Fatal("Taps must return a copy")
	}
}

func TestBoxSumsToOne(t *testing.T) {
	k, err := Box(3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(k.Sum()-1) > 1e-12 {
		t.Fatalf("Sum() = %v, want 1", k.Sum())
	}
	if k.Width() != 3 || k.Height() != 5 {
		t.Fatalf("size %dx%d", k.Width(), k.Height())
	}
	if col, row := k.Center(); col != 1 || row != 2 {
		t.Fatalf("Center() = (%d,%d)", col, row)
	}
}

func TestBinomialTaps(t *testing.T) {
	k, err := Binomial(3)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{
		1.0 / 16, 2.0 / 16, 1.0 / 16,
		2.0 / 16, 4.0 / 16, 2.0 / 16,
		1.0 / 16, 2.0 / 16, 1.0 / 16,
	}
	for i, v := range k.Taps() {
		if math.Abs(v-want[i]) > 1e-15 {
			t.Fatalf("tap %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestGaussianSymmetricAndNormalized(t *testing.T) {
	k, err := Gaussian(5, 1.1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(k.Sum()-1) > 1e-12 {
		t.Fatalf("Sum() = %v", k.Sum())
	}
	for r := range 5 {
		for c := range 5 {
			if math.Abs(k.At(r, c)-k.At(4-r, 4-c)) > 1e-15 || math.Abs(k.At(r, c)-k.At(c, r)) > 1e-15 {
				t.Fatalf("asymmetric at (%d,%d)", r, c)
			}
		}
	}
	if k.At(2, 2) <= k.At(2, 1) {
		t.Fatal("center tap must be the largest")
	}

	if _, err := Gaussian(5, 0); err == nil {
		t.Fatal("expected error for sigma=0")
	}
}

func TestSeparableOuterProduct(t *testing.T) {
	k, err := Separable([]float64{1, 2}, []float64{3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	if k.Width() != 3 || k.Height() != 2 {
		t.Fatalf("size %dx%d", k.Width(), k.Height())
	}
	if k.At(1, 2) != 10 || k.At(0, 0) != 3 {
		t.Fatalf("taps %v", k.Taps())
	}
}

func TestNormalize(t *testing.T) {
	k, err := New(2, 1, []float64{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := k.Normalize(); err != nil {
		t.Fatal(err)
	}
	if k.At(0, 0) != 0.25 || k.At(0, 1) != 0.75 {
		t.Fatalf("taps %v", k.Taps())
	}
	if err := Laplacian().Normalize(); err == nil {
		t.Fatal("expected error for zero-sum kernel")
	}
}

func TestApply(t *testing.T) {
	w := windowOf(3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	if got := SobelX().Apply(w); got != 8 {
		t.Fatalf("SobelX = %v, want 8", got)
	}
	if got := SobelY().Apply(w); got != 24 {
		t.Fatalf("SobelY = %v, want 24", got)
	}
	if got := Laplacian().Apply(w); got != 0 {
		t.Fatalf("Laplacian = %v, want 0", got)
	}
}

func TestApplyShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	SobelX().Apply(slidewin.NewWindow[float64](3, 2))
}

func TestApplyConcurrentSharedKernel(t *testing.T) {
	k, err := Box(5, 5)
	if err != nil {
		t.Fatal(err)
	}

	const workers = 4
	windows := make([]slidewin.Window[float64], workers)
	want := make([]float64, workers)
	for g := range windows {
		w := slidewin.NewWindow[float64](5, 5)
		for i := range w.Cells() {
			w.Cells()[i] = float64(g + 1)
		}
		windows[g] = w
		want[g] = k.Apply(w)
	}

	wrong := make([]int, workers)
	var wg sync.WaitGroup
	for g := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20000 {
				if k.Apply(windows[g]) != want[g] {
					wrong[g]++
				}
			}
		}()
	}
	wg.Wait()

	for g, n := range wrong {
		if n != 0 {
			t.Fatalf("goroutine %d: %d wrong results", g, n)
		}
	}
}
