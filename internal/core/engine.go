// internal/core/engine.go
package core

import (
	"slices"
	"strings"

	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/layout"
	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/types"
)

// Layout places characters into boxes, one per rune and in order.
type Layout interface {
	Place(chars []rune) []types.Rect
}

// State is the gesture the engine is currently tracking.
type State int

const (
	StateIdle State = iota
	StateSweeping
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateSweeping:
		return "SWEEP"
	case StateDragging:
		return "DRAG"
	default:
		return "IDLE"
	}
}

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// Pointer is one pointer event in container coordinates.
type Pointer struct {
	Kind     PointerKind
	X, Y     int
	Additive bool // additive modifier held; only read on PointerDown
}

// Sweep is the rubber-band rectangle of an in-progress sweep selection.
type Sweep struct {
	Anchor   types.Point
	Current  types.Point
	Additive bool
}

// Box returns the normalized sweep rectangle.
func (s *Sweep) Box() types.Rect {
	return types.NormalizedRect(s.Anchor.X, s.Anchor.Y, s.Current.X, s.Current.Y)
}

// Options configures an Engine.
type Options struct {
	Layout         Layout         // defaults to an 80 column flow layout
	Resolver       SwapResolver   // defaults to ExchangePolicy
	ReflowOnInsert bool           // re-place elements at their slots after an insert-policy drop
	Events         *event.Manager // optional
}

// Engine owns the elements, the selection and the single active gesture.
// It is not safe for concurrent use; feed it events from one goroutine.
type Engine struct {
	container *Container
	selection *SelectionManager
	drag      *DragController
	sweep     *Sweep

	layout         Layout
	resolver       SwapResolver
	reflowOnInsert bool
	events         *event.Manager
}

// NewEngine creates an engine with no elements.
func NewEngine(opts Options) *Engine {
	if opts.Layout == nil {
		opts.Layout = layout.Flow{Width: 80, ColumnStep: 2, LineHeight: 2}
	}
	if opts.Resolver == nil {
		opts.Resolver = ExchangePolicy{}
	}
	c := NewContainer()
	return &Engine{
		container:      c,
		selection:      NewSelectionManager(c),
		drag:           NewDragController(c),
		layout:         opts.Layout,
		resolver:       opts.Resolver,
		reflowOnInsert: opts.ReflowOnInsert,
		events:         opts.Events,
	}
}

// --- Configuration ---

// SetLayout changes the layout used by the next Submit or Reflow.
func (e *Engine) SetLayout(l Layout) {
	if l != nil {
		e.layout = l
	}
}

// SetResolver changes the swap policy. Takes effect at the next drop.
func (e *Engine) SetResolver(r SwapResolver) {
	if r != nil {
		e.resolver = r
		logger.Infof("Engine: swap policy set to %s", r.Name())
	}
}

// Resolver returns the active swap policy.
func (e *Engine) Resolver() SwapResolver {
	return e.resolver
}

// --- Submission ---

// Submit replaces every element with one element per code point of text.
// Any gesture in flight is discarded and the selection is emptied.
func (e *Engine) Submit(text string) {
	e.cancelGesture()
	hadSelection := e.selection.ClearAll()

	chars := []rune(text)
	e.container.reset(chars, e.place(chars))
	logger.Infof("Engine: submitted %d character(s), generation %d", len(chars), e.container.Generation())

	e.emit(event.TypeTextSubmitted, event.TextSubmittedData{Text: text, Elements: len(chars)})
	if hadSelection {
		e.emitSelection()
	}
}

// Reflow moves every element to the slot of its current index.
func (e *Engine) Reflow() {
	elems := e.container.elements
	chars := make([]rune, len(elems))
	for i, el := range elems {
		chars[i] = el.Char
	}
	for i, rect := range e.place(chars) {
		elems[i].moveTo(types.Point{X: rect.Left, Y: rect.Top})
	}
}

func (e *Engine) place(chars []rune) []types.Rect {
	rects := e.layout.Place(chars)
	if len(rects) != len(chars) {
		// A layout that cannot place everything stacks the rest at the origin.
		logger.Warnf("Engine: layout returned %d boxes for %d characters", len(rects), len(chars))
		rects = append(rects[:min(len(rects), len(chars))], make([]types.Rect, max(len(chars)-len(rects), 0))...)
	}
	return rects
}

func (e *Engine) cancelGesture() {
	e.drag.Cancel()
	e.sweep = nil
}

// --- Pointer input ---

// HandlePointer dispatches p, resolving the pressed element by hit test.
func (e *Engine) HandlePointer(p Pointer) {
	switch p.Kind {
	case PointerDown:
		e.Down(p.X, p.Y, e.ElementAt(p.X, p.Y), p.Additive)
	case PointerMove:
		e.Move(p.X, p.Y)
	case PointerUp:
		e.Up(p.X, p.Y)
	}
}

// Down handles a press at (x, y) on target, which is nil for empty space.
func (e *Engine) Down(x, y int, target *Element, additive bool) {
	if e.State() != StateIdle {
		logger.DebugTagf("engine", "Down ignored: %s gesture still active", e.State())
		return
	}
	at := types.Point{X: x, Y: y}

	if target == nil {
		changed := false
		if !additive {
			changed = e.selection.ClearAll()
		}
		e.sweep = &Sweep{Anchor: at, Current: at, Additive: additive}
		logger.DebugTagf("sweep", "Sweep started at %v (additive=%v)", at, additive)
		if changed {
			e.emitSelection()
		}
		return
	}

	if !e.container.Owns(target) {
		logger.DebugTagf("engine", "Down ignored: stale element %q", target.Char)
		return
	}

	if target.selected {
		e.drag.Arm(at, e.selection.Set().Items())
		e.emit(event.TypeDragStarted, event.DragStartedData{Anchor: at, Count: e.selection.Set().Len()})
		return
	}

	var changed bool
	if additive {
		changed = e.selection.Toggle(target)
	} else {
		changed = e.selection.SelectOnly(target)
	}
	if changed {
		e.emitSelection()
	}
}

// Move handles pointer motion. It is ignored when no gesture is active.
func (e *Engine) Move(x, y int) {
	at := types.Point{X: x, Y: y}
	switch {
	case e.sweep != nil:
		e.sweep.Current = at
		if e.selection.ApplySweep(e.sweep.Box(), e.sweep.Additive) {
			e.emitSelection()
		}
	case e.drag.Session() != nil:
		e.drag.Move(at)
	}
}

// Up ends the active gesture. A drag is handed to the swap resolver.
func (e *Engine) Up(x, y int) {
	at := types.Point{X: x, Y: y}
	switch {
	case e.sweep != nil:
		e.sweep.Current = at
		changed := e.selection.ApplySweep(e.sweep.Box(), e.sweep.Additive)
		e.sweep = nil
		if changed {
			e.emitSelection()
		}
	case e.drag.Session() != nil:
		s := e.drag.Release(at)
		result := e.resolver.Resolve(e.container, e.selection.Set(), s)
		if e.reflowOnInsert && e.resolver.Name() == PolicyInsert {
			if result.Reordered {
				e.Reflow()
			} else {
				e.restoreOrigins(s)
			}
		}
		e.emit(event.TypeDragEnded, event.DragEndedData{Delta: s.Delta})
		if result.Changed() {
			e.emit(event.TypeElementsSwapped, event.ElementsSwappedData{Policy: e.resolver.Name(), Swaps: result.Count()})
		}
	default:
		logger.DebugTagf("engine", "Up ignored: no active gesture")
	}
}

// restoreOrigins puts the dragged elements back where the drag armed. Other
// elements are left alone.
func (e *Engine) restoreOrigins(s *DragSession) {
	for _, en := range s.entries {
		if e.container.Owns(en.elem) && en.elem.Position() != en.origin {
			en.elem.moveTo(en.origin)
		}
	}
}

// --- Selection shortcuts for keyboard hosts ---

// SelectOnly replaces the selection with el.
func (e *Engine) SelectOnly(el *Element) {
	if e.State() == StateIdle && e.selection.SelectOnly(el) {
		e.emitSelection()
	}
}

// Toggle flips el's membership in the selection.
func (e *Engine) Toggle(el *Element) {
	if e.State() == StateIdle && e.selection.Toggle(el) {
		e.emitSelection()
	}
}

// ClearSelection empties the selection.
func (e *Engine) ClearSelection() {
	if e.State() == StateIdle && e.selection.ClearAll() {
		e.emitSelection()
	}
}

// SelectAll selects every element.
func (e *Engine) SelectAll() {
	if e.State() == StateIdle && e.selection.SelectAll() {
		e.emitSelection()
	}
}

// --- Read-only projections ---

// State reports the active gesture.
func (e *Engine) State() State {
	switch {
	case e.sweep != nil:
		return StateSweeping
	case e.drag.Session() != nil:
		return StateDragging
	}
	return StateIdle
}

// DragState reports the drag controller's phase.
func (e *Engine) DragState() DragState {
	return e.drag.State()
}

// Elements returns the current elements in document order.
func (e *Engine) Elements() []*Element {
	return e.container.Elements()
}

// Generation counts submissions; it changes whenever the elements are replaced.
func (e *Engine) Generation() int {
	return e.container.Generation()
}

// Owns reports whether el is one of the current elements.
func (e *Engine) Owns(el *Element) bool {
	return e.container.Owns(el)
}

// Selection returns the selected elements in the order they were selected.
func (e *Engine) Selection() []*Element {
	return e.selection.Set().Items()
}

// SelectionInDocumentOrder returns the selected elements by sequence index.
func (e *Engine) SelectionInDocumentOrder() []*Element {
	return e.selection.Set().InDocumentOrder()
}

// SweepBox returns the sweep rectangle while a sweep is active.
func (e *Engine) SweepBox() (types.Rect, bool) {
	if e.sweep == nil {
		return types.Rect{}, false
	}
	return e.sweep.Box(), true
}

// DropTarget returns the element highlighted as drop target during a drag.
func (e *Engine) DropTarget() *Element {
	return e.drag.DropTarget()
}

// ElementAt returns the element drawn on top at (x, y): selected elements are
// drawn above unselected ones, later elements above earlier ones.
func (e *Engine) ElementAt(x, y int) *Element {
	if el := e.container.topmostAt(x, y, func(el *Element) bool { return el.selected }); el != nil {
		return el
	}
	return e.container.topmostAt(x, y, nil)
}

// Text returns the characters in document order.
func (e *Engine) Text() string {
	var sb strings.Builder
	for _, el := range e.container.elements {
		sb.WriteRune(el.Char)
	}
	return sb.String()
}

// ReadingText returns the characters as they appear on screen: rows top to
// bottom, each row left to right, rows separated by newlines.
func (e *Engine) ReadingText() string {
	elems := e.container.Elements()
	slices.SortStableFunc(elems, func(a, b *Element) int {
		if a.Top != b.Top {
			return a.Top - b.Top
		}
		return a.Left - b.Left
	})

	var sb strings.Builder
	for i, el := range elems {
		if i > 0 && el.Top != elems[i-1].Top {
			sb.WriteByte('\n')
		}
		if el.Char == '\n' {
			continue
		}
		sb.WriteRune(el.Char)
	}
	return sb.String()
}

// --- Events ---

func (e *Engine) emit(t event.Type, data interface{}) {
	if e.events != nil {
		e.events.Dispatch(t, data)
	}
}

func (e *Engine) emitSelection() {
	e.emit(event.TypeSelectionChanged, event.SelectionChangedData{Count: e.selection.Set().Len()})
}
