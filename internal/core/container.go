// internal/core/container.go
package core

import (
	"slices"

	"github.com/bethropolis/jumble/internal/types"
)

// Container owns the current elements in document (child) order.
type Container struct {
	elements   []*Element
	generation int
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Owns reports whether e belongs to the current generation of elements.
func (c *Container) Owns(e *Element) bool {
	return e != nil && e.owner == c
}

// Len returns the number of elements.
func (c *Container) Len() int {
	return len(c.elements)
}

// Generation counts how many times the elements were rebuilt.
func (c *Container) Generation() int {
	return c.generation
}

// Elements returns the elements in document order. The slice is a copy.
func (c *Container) Elements() []*Element {
	return slices.Clone(c.elements)
}

// reset detaches every current element and builds new ones, one per rune.
func (c *Container) reset(chars []rune, rects []types.Rect) {
	for _, e := range c.elements {
		e.owner = nil
	}
	c.generation++
	c.elements = make([]*Element, len(chars))
	for i, r := range chars {
		rect := rects[i]
		c.elements[i] = &Element{
			Char:   r,
			Index:  i,
			Left:   rect.Left,
			Top:    rect.Top,
			Width:  max(rect.Width(), 1),
			Height: max(rect.Height(), 1),
			owner:  c,
		}
	}
}

// moveBefore removes moved from the order and reinserts them, in the given
// order, immediately before target. It reports false when target is not a
// current element or is itself being moved.
func (c *Container) moveBefore(moved []*Element, target *Element) bool {
	moved = slices.DeleteFunc(slices.Clone(moved), func(e *Element) bool { return !c.Owns(e) })
	if !c.Owns(target) || len(moved) == 0 || slices.Contains(moved, target) {
		return false
	}
	skip := make(map[*Element]struct{}, len(moved))
	for _, e := range moved {
		skip[e] = struct{}{}
	}

	reordered := make([]*Element, 0, len(c.elements))
	for _, e := range c.elements {
		if _, ok := skip[e]; ok {
			continue
		}
		if e == target {
			reordered = append(reordered, moved...)
		}
		reordered = append(reordered, e)
	}
	c.elements = reordered
	c.renumber()
	return true
}

// renumber makes every Index match document order.
func (c *Container) renumber() {
	for i, e := range c.elements {
		e.Index = i
	}
}

// topmostAt returns the last element in document order containing (x, y)
// that passes accept.
func (c *Container) topmostAt(x, y int, accept func(*Element) bool) *Element {
	for i := len(c.elements) - 1; i >= 0; i-- {
		e := c.elements[i]
		if e.Rect().Contains(x, y) && (accept == nil || accept(e)) {
			return e
		}
	}
	return nil
}
