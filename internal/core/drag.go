// internal/core/drag.go
package core

import (
	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/types"
)

// DragState is the drag controller's phase.
type DragState int

const (
	DragIdle DragState = iota
	DragArmed
	DragActive
)

func (s DragState) String() string {
	switch s {
	case DragArmed:
		return "armed"
	case DragActive:
		return "active"
	default:
		return "idle"
	}
}

type snapshotEntry struct {
	elem   *Element
	origin types.Point
}

// DragSession is the state of one drag gesture. The snapshot is taken when the
// drag arms and never changes afterwards.
type DragSession struct {
	Anchor types.Point
	Delta  types.Point

	entries []snapshotEntry
	target  *Element
}

// Dragged returns the dragged elements in the order they were snapshotted.
func (s *DragSession) Dragged() []*Element {
	out := make([]*Element, len(s.entries))
	for i, en := range s.entries {
		out[i] = en.elem
	}
	return out
}

// Origin returns e's position when the drag armed.
func (s *DragSession) Origin(e *Element) (types.Point, bool) {
	for _, en := range s.entries {
		if en.elem == e {
			return en.origin, true
		}
	}
	return types.Point{}, false
}

// Target is the element under the pointer that the drag would drop onto.
func (s *DragSession) Target() *Element {
	return s.target
}

func (s *DragSession) isDragged(e *Element) bool {
	_, ok := s.Origin(e)
	return ok
}

// DragController moves the selected elements with the pointer.
type DragController struct {
	container *Container
	state     DragState
	session   *DragSession
}

// NewDragController creates an idle controller for container.
func NewDragController(container *Container) *DragController {
	return &DragController{container: container}
}

// State returns the current phase.
func (d *DragController) State() DragState {
	return d.state
}

// Session returns the live session, or nil when idle.
func (d *DragController) Session() *DragSession {
	return d.session
}

// DropTarget returns the highlighted drop target, or nil.
func (d *DragController) DropTarget() *Element {
	if d.session == nil {
		return nil
	}
	return d.session.target
}

// Arm snapshots the positions of elems relative to anchor.
func (d *DragController) Arm(anchor types.Point, elems []*Element) {
	s := &DragSession{Anchor: anchor}
	for _, e := range elems {
		if d.container.Owns(e) {
			s.entries = append(s.entries, snapshotEntry{elem: e, origin: e.Position()})
		}
	}
	d.session = s
	d.state = DragArmed
	logger.DebugTagf("drag", "Armed at %v with %d element(s)", anchor, len(s.entries))
}

// Move places every dragged element at its snapshot position plus the pointer
// offset from the anchor, then recomputes the drop target. There is no target
// while the pointer is back at the anchor. It reports false
// when no drag is in progress.
func (d *DragController) Move(p types.Point) bool {
	if d.session == nil {
		return false
	}
	d.state = DragActive
	s := d.session
	s.Delta = p.Sub(s.Anchor)
	for _, en := range s.entries {
		if !d.container.Owns(en.elem) {
			continue
		}
		en.elem.moveTo(types.Point{X: en.origin.X + s.Delta.X, Y: en.origin.Y + s.Delta.Y})
	}

	var target *Element
	if !s.Delta.IsZero() {
		target = d.container.topmostAt(p.X, p.Y, func(e *Element) bool {
			return !e.selected && !s.isDragged(e)
		})
	}
	if target != s.target {
		logger.DebugTagf("drag", "Drop target changed to %v", describe(target))
		s.target = target
	}
	return true
}

// Release applies the final pointer position and ends the gesture. It returns
// the finished session, or nil when no drag was in progress.
func (d *DragController) Release(p types.Point) *DragSession {
	if d.session == nil {
		return nil
	}
	d.Move(p)
	s := d.session
	d.session = nil
	d.state = DragIdle
	logger.DebugTagf("drag", "Released with delta %v", s.Delta)
	return s
}

// Cancel discards the session without touching any position.
func (d *DragController) Cancel() {
	if d.session != nil {
		logger.DebugTagf("drag", "Drag session discarded")
	}
	d.session = nil
	d.state = DragIdle
}

func describe(e *Element) string {
	if e == nil {
		return "none"
	}
	return string(e.Char)
}
