// internal/core/selection.go
package core

import (
	"slices"

	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/types"
)

// SelectionSet is the ordered set of selected elements. Items keep the order
// they were added in; InDocumentOrder sorts by sequence index.
type SelectionSet struct {
	items  []*Element
	member map[*Element]struct{}
}

func newSelectionSet() *SelectionSet {
	return &SelectionSet{member: make(map[*Element]struct{})}
}

// Contains reports membership.
func (s *SelectionSet) Contains(e *Element) bool {
	_, ok := s.member[e]
	return ok
}

// Len returns the number of selected elements.
func (s *SelectionSet) Len() int {
	return len(s.items)
}

// Items returns the members in insertion order. The slice is a copy.
func (s *SelectionSet) Items() []*Element {
	return slices.Clone(s.items)
}

// InDocumentOrder returns the members sorted by their sequence index.
func (s *SelectionSet) InDocumentOrder() []*Element {
	ordered := slices.Clone(s.items)
	slices.SortStableFunc(ordered, func(a, b *Element) int { return a.Index - b.Index })
	return ordered
}

func (s *SelectionSet) add(e *Element) bool {
	if s.Contains(e) {
		return false
	}
	s.member[e] = struct{}{}
	s.items = append(s.items, e)
	e.selected = true
	return true
}

func (s *SelectionSet) remove(e *Element) bool {
	if !s.Contains(e) {
		return false
	}
	delete(s.member, e)
	s.items = slices.DeleteFunc(s.items, func(x *Element) bool { return x == e })
	e.selected = false
	return true
}

func (s *SelectionSet) clear() bool {
	if len(s.items) == 0 {
		return false
	}
	for _, e := range s.items {
		e.selected = false
	}
	s.items = nil
	clear(s.member)
	return true
}

// SelectionManager keeps the selection set and the elements' flags in step.
// Every mutator reports whether the selection changed. Elements that do not
// belong to the container are ignored.
type SelectionManager struct {
	container *Container
	set       *SelectionSet
}

// NewSelectionManager creates a manager for the elements of container.
func NewSelectionManager(container *Container) *SelectionManager {
	return &SelectionManager{container: container, set: newSelectionSet()}
}

// Set exposes the selection for read-only queries.
func (m *SelectionManager) Set() *SelectionSet {
	return m.set
}

// SelectOnly replaces the selection with e.
func (m *SelectionManager) SelectOnly(e *Element) bool {
	if !m.container.Owns(e) {
		logger.DebugTagf("select", "SelectOnly: ignoring stale element")
		return false
	}
	if m.set.Len() == 1 && m.set.Contains(e) {
		return false
	}
	m.set.clear()
	m.set.add(e)
	logger.DebugTagf("select", "Selected only %q (index %d)", e.Char, e.Index)
	return true
}

// Toggle adds e if it is not selected and removes it otherwise.
func (m *SelectionManager) Toggle(e *Element) bool {
	if !m.container.Owns(e) {
		logger.DebugTagf("select", "Toggle: ignoring stale element")
		return false
	}
	if m.set.Contains(e) {
		return m.set.remove(e)
	}
	return m.set.add(e)
}

// ClearAll empties the selection.
func (m *SelectionManager) ClearAll() bool {
	return m.set.clear()
}

// SelectAll selects every element, in document order.
func (m *SelectionManager) SelectAll() bool {
	changed := false
	for _, e := range m.container.elements {
		if m.set.add(e) {
			changed = true
		}
	}
	return changed
}

// ApplySweep adds every element overlapping box. Without additive, elements
// outside box are dropped, so repeated calls converge on exactly the elements
// under the final box.
func (m *SelectionManager) ApplySweep(box types.Rect, additive bool) bool {
	changed := false
	for _, e := range m.container.elements {
		if e.Rect().Overlaps(box) {
			if m.set.add(e) {
				changed = true
			}
		} else if !additive && m.set.remove(e) {
			changed = true
		}
	}
	if changed {
		logger.DebugTagf("sweep", "Sweep %v (additive=%v) -> %d selected", box, additive, m.set.Len())
	}
	return changed
}
