// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/jumble/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawText draws text from (x, y) using grapheme cluster widths and stops
// before the first cluster that would cross x+maxWidth. It returns the number
// of cells used.
func DrawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if used+clusterWidth > maxWidth {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x+used, y, runes[0], runes[1:], style)
		}
		used += clusterWidth
	}
	return used
}

// TextWidth returns the display width of text in cells.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// FillRow paints a whole row in style.
func FillRow(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// DrawBox outlines r, clipped to clip. Right and Bottom are drawn as the
// outline's far edges.
func DrawBox(screen tcell.Screen, r, clip types.Rect, style tcell.Style) {
	set := func(x, y int, ch rune) {
		if clip.Contains(x, y) {
			screen.SetContent(x, y, ch, nil, style)
		}
	}

	if r.Width() == 0 && r.Height() == 0 {
		set(r.Left, r.Top, '+')
		return
	}
	for x := r.Left + 1; x < r.Right; x++ {
		set(x, r.Top, tcell.RuneHLine)
		set(x, r.Bottom, tcell.RuneHLine)
	}
	for y := r.Top + 1; y < r.Bottom; y++ {
		set(r.Left, y, tcell.RuneVLine)
		set(r.Right, y, tcell.RuneVLine)
	}
	set(r.Left, r.Top, tcell.RuneULCorner)
	set(r.Right, r.Top, tcell.RuneURCorner)
	set(r.Left, r.Bottom, tcell.RuneLLCorner)
	set(r.Right, r.Bottom, tcell.RuneLRCorner)
}
