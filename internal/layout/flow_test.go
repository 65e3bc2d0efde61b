package layout

import (
	"testing"

	"github.com/bethropolis/jumble/internal/types"
)

func TestFlowPlaceWraps(t *testing.T) {
	f := Flow{Width: 10, LeftMargin: 1, TopMargin: 1, RightMargin: 1, ColumnStep: 2, LineHeight: 2}
	got := f.Place([]rune("abcde"))
	want := []types.Rect{
		{Left: 1, Top: 1, Right: 2, Bottom: 2},
		{Left: 3, Top: 1, Right: 4, Bottom: 2},
		{Left: 5, Top: 1, Right: 6, Bottom: 2},
		{Left: 7, Top: 1, Right: 8, Bottom: 2},
		{Left: 1, Top: 3, Right: 2, Bottom: 4}, // 9+1 > 10-1
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rect[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFlowNeighboursNeverTouch(t *testing.T) {
	f := Flow{Width: 80, ColumnStep: 1, LineHeight: 2}
	rects := f.Place([]rune("a世b"))
	for i := 1; i < len(rects); i++ {
		if rects[i-1].Overlaps(rects[i]) {
			t.Errorf("rect %v overlaps neighbour %v", rects[i-1], rects[i])
		}
	}
	if rects[1].Width() != 2 {
		t.Errorf("wide rune width = %d, want 2", rects[1].Width())
	}
}

func TestFlowNewlineBreaks(t *testing.T) {
	f := Flow{Width: 80, ColumnStep: 2, LineHeight: 3}
	rects := f.Place([]rune("a\nb"))
	if rects[2].Top != 3 || rects[2].Left != 0 {
		t.Errorf("rune after newline at %v, want left 0 top 3", rects[2])
	}
}

func TestCellWidth(t *testing.T) {
	tests := map[rune]int{'a': 1, '世': 2, '\t': 1, '\u0301': 1}
	for r, want := range tests {
		if got := CellWidth(r); got != want {
			t.Errorf("CellWidth(%U) = %d, want %d", r, got, want)
		}
	}
}
