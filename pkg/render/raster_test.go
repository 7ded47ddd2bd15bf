package render

import (
	"math"
	"testing"
)

type span struct {
	y          int
	xStart, xE float64
}

func collectSpans(x0, y0, x1, y1, x2, y2 int) []span {
	var out []span
	TriangleSpans(x0, y0, x1, y1, x2, y2, func(y int, xs, xe float64) {
		out = append(out, span{y, xs, xe})
	})
	return out
}

func TestFlatBottomSpans(t *testing.T) {
	// apex (0,0), base (-4,4)-(4,4)
	spans := collectSpans(0, 0, -4, 4, 4, 4)
	if len(spans) != 5 {
		t.Fatalf("got %d spans, want 5", len(spans))
	}
	for i, s := range spans {
		if s.y != i {
			t.Errorf("span %d at y=%d, want %d", i, s.y, i)
		}
		if math.Abs(s.xStart+float64(i)) > 1e-9 || math.Abs(s.xE-float64(i)) > 1e-9 {
			t.Errorf("row %d spans %v..%v, want %d..%d", s.y, s.xStart, s.xE, -i, i)
		}
	}
}

func TestFlatTopSpans(t *testing.T) {
	// top edge (-4,0)-(4,0), bottom vertex (0,4)
	spans := collectSpans(-4, 0, 4, 0, 0, 4)
	if len(spans) != 5 {
		t.Fatalf("got %d spans, want 5", len(spans))
	}
	// walked from the bottom vertex upward
	if spans[0].y != 4 || spans[4].y != 0 {
		t.Errorf("first/last rows = %d/%d, want 4/0", spans[0].y, spans[4].y)
	}
	for _, s := range spans {
		half := float64(4 - s.y)
		lo, hi := min(s.xStart, s.xE), max(s.xStart, s.xE)
		if math.Abs(lo+half) > 1e-9 || math.Abs(hi-half) > 1e-9 {
			t.Errorf("row %d spans %v..%v, want %v..%v", s.y, lo, hi, -half, half)
		}
	}
}

func TestSplitWithFlatBase(t *testing.T) {
	// y1 == y2 after sorting: one flat-bottom pass, no zero-height second half
	spans := collectSpans(0, 0, -2, 4, 4, 4)
	if len(spans) != 5 {
		t.Fatalf("got %d spans, want 5 (no second pass)", len(spans))
	}
	seen := map[int]int{}
	for _, s := range spans {
		seen[s.y]++
		if math.IsInf(s.xStart, 0) || math.IsNaN(s.xStart) || math.IsInf(s.xE, 0) || math.IsNaN(s.xE) {
			t.Errorf("row %d has non-finite span", s.y)
		}
	}
	for y := 0; y <= 4; y++ {
		if seen[y] != 1 {
			t.Errorf("row %d emitted %d times, want 1", y, seen[y])
		}
	}
	last := spans[len(spans)-1]
	if last.xStart != -2 || last.xE != 4 {
		t.Errorf("base row spans %v..%v, want -2..4", last.xStart, last.xE)
	}
}

func TestSplitGeneral(t *testing.T) {
	// vertices given out of order; sorted: (0,0), (-4,4), (4,8); Mx = 2
	spans := collectSpans(4, 8, 0, 0, -4, 4)
	if len(spans) != 10 {
		t.Fatalf("got %d spans, want 10", len(spans))
	}

	rows := map[int][]span{}
	for _, s := range spans {
		rows[s.y] = append(rows[s.y], s)
	}
	for y := 0; y <= 8; y++ {
		if len(rows[y]) == 0 {
			t.Errorf("row %d not covered", y)
		}
	}
	if len(rows[4]) != 2 {
		t.Errorf("split row emitted %d times, want 2", len(rows[4]))
	}
	for _, s := range rows[4] {
		lo, hi := min(s.xStart, s.xE), max(s.xStart, s.xE)
		if lo != -4 || hi != 2 {
			t.Errorf("split row spans %v..%v, want -4..2", lo, hi)
		}
	}
	if bottom := rows[8][0]; bottom.xStart != 4 || bottom.xE != 4 {
		t.Errorf("bottom row spans %v..%v, want 4..4", bottom.xStart, bottom.xE)
	}
}

func TestZeroHeightTriangle(t *testing.T) {
	spans := collectSpans(0, 3, 5, 3, -2, 3)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if s := spans[0]; s.y != 3 || s.xStart != -2 || s.xE != 5 {
		t.Errorf("span = %+v, want y=3 -2..5", s)
	}

	fb := NewFramebuffer(8, 8)
	fb.FillTriangle(1, 2, 1, 2, 1, 2, ColorRed)
	if fb.GetPixel(1, 2) != ColorRed {
		t.Error("point triangle should draw its pixel")
	}
}

func TestFillTriangle(t *testing.T) {
	fb := NewFramebuffer(9, 5)
	fb.FillTriangle(4, 0, 0, 4, 8, 4, ColorGreen)

	tests := []struct {
		x, y int
		want bool
	}{
		{4, 0, true},
		{2, 2, true},
		{6, 2, true},
		{1, 2, false},
		{7, 2, false},
		{0, 4, true},
		{8, 4, true},
		{0, 0, false},
	}
	for _, tc := range tests {
		got := fb.GetPixel(tc.x, tc.y) == ColorGreen
		if got != tc.want {
			t.Errorf("pixel (%d,%d) filled = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestDrawTriangleOutline(t *testing.T) {
	fb := NewFramebuffer(9, 5)
	fb.DrawTriangle(4, 0, 0, 4, 8, 4, ColorWhite)

	for _, p := range [][2]int{{4, 0}, {0, 4}, {8, 4}, {4, 4}, {2, 2}, {6, 2}} {
		if fb.GetPixel(p[0], p[1]) != ColorWhite {
			t.Errorf("outline pixel (%d,%d) missing", p[0], p[1])
		}
	}
	if fb.GetPixel(4, 2) == ColorWhite {
		t.Error("outline should not fill the interior")
	}
}

func BenchmarkFillTriangle(b *testing.B) {
	fb := NewFramebuffer(320, 240)

	for b.Loop() {
		fb.FillTriangle(160, 10, 20, 200, 300, 230, ColorRed)
	}
}
