package types

import "testing"

func TestRectOverlapsIsSymmetric(t *testing.T) {
	rects := []Rect{
		{0, 0, 1, 1},
		{1, 0, 2, 1}, // touches the first on its right edge
		{2, 0, 3, 1},
		{0, 1, 1, 2}, // touches the first on its bottom edge
		{5, 5, 9, 9},
		{6, 6, 7, 7}, // inside the previous one
		{-3, -3, 0, 0},
		{3, 3, 3, 3}, // degenerate
	}
	for i, a := range rects {
		for j, b := range rects {
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Errorf("Overlaps not symmetric for %d=%v and %d=%v", i, a, j, b)
			}
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 1, 1}, Rect{0, 0, 1, 1}, true},
		{"touching right edge", Rect{0, 0, 1, 1}, Rect{1, 0, 2, 1}, true},
		{"touching corner", Rect{0, 0, 1, 1}, Rect{1, 1, 2, 2}, true},
		{"gap on the right", Rect{0, 0, 1, 1}, Rect{2, 0, 3, 1}, false},
		{"gap below", Rect{0, 0, 1, 1}, Rect{0, 2, 1, 3}, false},
		{"contained", Rect{0, 0, 10, 10}, Rect{3, 3, 4, 4}, true},
		{"zero-size box on a cell", Rect{4, 2, 4, 2}, Rect{4, 2, 5, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{Left: 2, Top: 4, Right: 4, Bottom: 5}
	if !r.Contains(2, 4) || !r.Contains(3, 4) {
		t.Errorf("expected cells (2,4) and (3,4) inside %v", r)
	}
	if r.Contains(4, 4) || r.Contains(2, 5) || r.Contains(1, 4) {
		t.Errorf("far edges of %v must be exclusive", r)
	}
}

func TestNormalizedRect(t *testing.T) {
	got := NormalizedRect(10, 8, 3, 2)
	want := Rect{Left: 3, Top: 2, Right: 10, Bottom: 8}
	if got != want {
		t.Errorf("NormalizedRect = %v, want %v", got, want)
	}
	if got.Width() != 7 || got.Height() != 6 {
		t.Errorf("size = %dx%d, want 7x6", got.Width(), got.Height())
	}
}
