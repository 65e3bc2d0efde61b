// internal/core/swap.go
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/types"
)

// Policy names accepted by PolicyByName.
const (
	PolicyExchange = "exchange"
	PolicyInsert   = "insert"
)

// ErrUnknownPolicy is returned by PolicyByName for names it does not know.
var ErrUnknownPolicy = errors.New("unknown swap policy")

// Exchange records one displaced element and where it was sent.
type Exchange struct {
	Dragged   *Element
	Displaced *Element
	From      types.Point
	To        types.Point
}

// SwapResult describes what a resolver changed.
type SwapResult struct {
	Exchanges []Exchange
	Reordered bool
}

// Changed reports whether anything moved.
func (r SwapResult) Changed() bool {
	return r.Reordered || len(r.Exchanges) > 0
}

// Count is the number of changes for status reporting.
func (r SwapResult) Count() int {
	if r.Reordered {
		return 1
	}
	return len(r.Exchanges)
}

// SwapResolver decides what happens to the other elements when a drag ends.
type SwapResolver interface {
	Name() string
	Resolve(c *Container, sel *SelectionSet, s *DragSession) SwapResult
}

// PolicyByName returns the resolver for a policy name.
func PolicyByName(name string) (SwapResolver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyExchange, "":
		return ExchangePolicy{}, nil
	case PolicyInsert:
		return InsertPolicy{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// ExchangePolicy swaps geometrically: every unselected element that the
// dropped box of a dragged element overlaps is sent to that dragged element's
// position from before the drag. The dragged element stays where it was dropped.
//
// Pairs are discovered in snapshot order, then unselected elements in document
// order, all before any is applied. An unselected element hit by several
// dragged elements ends up at the origin of the last one.
type ExchangePolicy struct{}

// Name implements SwapResolver.
func (ExchangePolicy) Name() string { return PolicyExchange }

// Resolve implements SwapResolver.
func (ExchangePolicy) Resolve(c *Container, sel *SelectionSet, s *DragSession) SwapResult {
	if s == nil || s.Delta.IsZero() {
		return SwapResult{}
	}

	var others []*Element
	for _, e := range c.elements {
		if !sel.Contains(e) && !s.isDragged(e) {
			others = append(others, e)
		}
	}

	var pending []Exchange
	for _, en := range s.entries {
		if !c.Owns(en.elem) {
			continue
		}
		dropped := en.elem.Rect()
		for _, other := range others {
			if dropped.Overlaps(other.Rect()) {
				pending = append(pending, Exchange{
					Dragged:   en.elem,
					Displaced: other,
					From:      other.Position(),
					To:        en.origin,
				})
			}
		}
	}

	for _, ex := range pending {
		ex.Displaced.moveTo(ex.To)
		logger.DebugTagf("swap", "Exchanged %q -> %v (dropped %q)", ex.Displaced.Char, ex.To, ex.Dragged.Char)
	}
	return SwapResult{Exchanges: pending}
}

// InsertPolicy moves the dragged elements, in document order, to just before
// the drop target and renumbers every element. It changes order only; no
// coordinates are touched.
type InsertPolicy struct{}

// Name implements SwapResolver.
func (InsertPolicy) Name() string { return PolicyInsert }

// Resolve implements SwapResolver.
func (InsertPolicy) Resolve(c *Container, sel *SelectionSet, s *DragSession) SwapResult {
	if s == nil || s.target == nil || sel.Contains(s.target) {
		return SwapResult{}
	}
	if !c.moveBefore(sel.InDocumentOrder(), s.target) {
		return SwapResult{}
	}
	logger.DebugTagf("swap", "Inserted %d element(s) before %q, now index %d", sel.Len(), s.target.Char, s.target.Index)
	return SwapResult{Reordered: true}
}
