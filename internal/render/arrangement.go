// Package render draws the arranger's state. It only reads the engine.
package render

import (
	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/theme"
	"github.com/bethropolis/jumble/internal/tui"
	"github.com/bethropolis/jumble/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Tints maps elements to syntax style classes.
type Tints map[*core.Element]string

// Glyph returns the rune shown for r. Characters without a visible form get a
// stand-in so they can still be grabbed.
func Glyph(r rune) rune {
	switch {
	case r == '\n':
		return '↵'
	case r == '\t':
		return '→'
	case r == ' ':
		return '·'
	case r < 0x20 || r == 0x7f:
		return '¿'
	}
	return r
}

// Arrangement draws the sweep box and every element inside view. Unselected
// elements are drawn first and selected ones on top, each in document order,
// matching Engine.ElementAt.
func Arrangement(screen tcell.Screen, eng *core.Engine, th *theme.Theme, tints Tints, view types.Rect) {
	if box, ok := eng.SweepBox(); ok {
		tui.DrawBox(screen, box, view, th.GetStyle(theme.StyleSweepBox))
	}

	dragging := eng.State() == core.StateDragging
	target := eng.DropTarget()
	elems := eng.Elements()

	for _, selectedPass := range []bool{false, true} {
		for _, e := range elems {
			if e.Selected() != selectedPass {
				continue
			}
			style := th.GetStyle(theme.StyleChar)
			switch {
			case e == target:
				style = th.GetStyle(theme.StyleDropTarget)
			case e.Selected() && dragging:
				style = th.GetStyle(theme.StyleDragged)
			case e.Selected():
				style = th.GetStyle(theme.StyleSelected)
			}
			style = th.Tint(style, tints[e])
			drawElement(screen, e, style, view)
		}
	}
}

func drawElement(screen tcell.Screen, e *core.Element, style tcell.Style, view types.Rect) {
	if !view.Contains(e.Left, e.Top) {
		return
	}
	screen.SetContent(e.Left, e.Top, Glyph(e.Char), nil, style)
}
