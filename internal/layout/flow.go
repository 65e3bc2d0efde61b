// Package layout places characters into screen slots for the arranger.
package layout

import (
	"github.com/bethropolis/jumble/internal/types"
	"github.com/rivo/uniseg"
)

// Flow lays characters out left to right, wrapping at the container width.
type Flow struct {
	Width       int // container width in cells
	LeftMargin  int
	TopMargin   int
	RightMargin int
	ColumnStep  int // minimum advance between the left edges of neighbours
	LineHeight  int
}

// CellWidth returns the display width of r in terminal cells, never less than one.
func CellWidth(r rune) int {
	if r == '\n' || r == '\t' {
		return 1
	}
	w := uniseg.StringWidth(string(r))
	if w < 1 {
		return 1
	}
	return w
}

// advance is the distance to the next slot. There is always at least one
// empty cell between neighbours so their boxes do not touch.
func (f Flow) advance(width int) int {
	return max(f.ColumnStep, width+1)
}

// Place returns one box per rune, in order. A newline rune occupies a slot and
// then forces a line break.
func (f Flow) Place(chars []rune) []types.Rect {
	rects := make([]types.Rect, len(chars))
	limit := f.Width - f.RightMargin
	left, top := f.LeftMargin, f.TopMargin
	lineHeight := max(f.LineHeight, 1)

	for i, r := range chars {
		w := CellWidth(r)
		if left > f.LeftMargin && left+w > limit {
			left = f.LeftMargin
			top += lineHeight
		}
		rects[i] = types.Rect{Left: left, Top: top, Right: left + w, Bottom: top + 1}
		left += f.advance(w)
		if r == '\n' {
			left = f.LeftMargin
			top += lineHeight
		}
	}
	return rects
}
