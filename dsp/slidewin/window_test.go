package slidewin

import "testing"

func TestWindowAccessors(t *testing.T) {
	w := NewWindow[int](3, 2)
	copy(w.Cells(), []int{1, 2, 3, 4, 5, 6})

	if w.Width() != 3 || w.Height() != 2 {
		t.Fatalf("size %dx%d", w.Width(), w.Height())
	}
	if w.At(1, 0) != 4 || w.At(0, 2) != 3 {
		t.Fatalf("At: got %d %d", w.At(1, 0), w.At(0, 2))
	}
	if r := w.Row(1); len(r) != 3 || r[2] != 6 {
		t.Fatalf("Row(1) = %v", r)
	}

	c := w.Clone()
	c.Cells()[0] = 99
	if w.At(0, 0) != 1 {
		t.Fatal("Clone aliases the original")
	}
}

func TestGridCorrectionIsPointReflection(t *testing.T) {
	g := newGrid[int](3, 2)
	// mirrored row 0 = newest row, column 0 = newest sample
	copy(g.cells, []int{
		6, 5, 4,
		3, 2, 1,
	})
	dst := make([]int, 6)
	g.correct(dst)
	want := []int{1, 2, 3, 4, 5, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("corrected = %v, want %v", dst, want)
		}
	}
}

func TestGridShift(t *testing.T) {
	g := newGrid[int](3, 3)
	g.shift(1, []int{10, 20})
	g.shift(2, []int{11, 21})

	want := []int{
		2, 1, 0,
		11, 10, 0,
		21, 20, 0,
	}
	for i := range want {
		if g.cells[i] != want[i] {
			t.Fatalf("cells = %v, want %v", g.cells, want)
		}
	}
}

func TestSampleStartOfFrame(t *testing.T) {
	if !(Sample[int]{Valid: true}).StartOfFrame() {
		t.Fatal("valid (0,0) is a start of frame")
	}
	if (Sample[int]{}).StartOfFrame() {
		t.Fatal("invalid (0,0) is not a start of frame")
	}
	if (Sample[int]{Col: 1, Valid: true}).StartOfFrame() {
		t.Fatal("(1,0) is not a start of frame")
	}
}
