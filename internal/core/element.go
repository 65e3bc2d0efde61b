// internal/core/element.go
package core

import (
	"github.com/bethropolis/jumble/internal/types"
)

// Element is one rendered character of the arrangement.
type Element struct {
	Char  rune
	Index int // position in document order

	Left   int
	Top    int
	Width  int
	Height int

	selected bool       // written only by SelectionManager
	owner    *Container // nil once the element has been replaced
}

// Selected reports the element's selection flag.
func (e *Element) Selected() bool {
	return e.selected
}

// Rect returns the element's bounding box.
func (e *Element) Rect() types.Rect {
	return types.Rect{Left: e.Left, Top: e.Top, Right: e.Left + e.Width, Bottom: e.Top + e.Height}
}

// Position returns the element's top-left corner.
func (e *Element) Position() types.Point {
	return types.Point{X: e.Left, Y: e.Top}
}

func (e *Element) moveTo(p types.Point) {
	e.Left, e.Top = p.X, p.Y
}
