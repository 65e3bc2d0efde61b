package core

import (
	"errors"
	"testing"

	"github.com/bethropolis/jumble/internal/types"
)

func TestPolicyByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"exchange", PolicyExchange, false},
		{"", PolicyExchange, false},
		{" Insert ", PolicyInsert, false},
		{"shuffle", "", true},
	}
	for _, tt := range tests {
		r, err := PolicyByName(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownPolicy) {
				t.Errorf("PolicyByName(%q) error = %v, want ErrUnknownPolicy", tt.name, err)
			}
			continue
		}
		if err != nil || r.Name() != tt.want {
			t.Errorf("PolicyByName(%q) = %v, %v; want %s", tt.name, r, err, tt.want)
		}
	}
}

// dragTo arms a drag of the selection at anchor and releases it at p.
func dragTo(c *Container, m *SelectionManager, anchor, p types.Point) *DragSession {
	d := NewDragController(c)
	d.Arm(anchor, m.Set().Items())
	return d.Release(p)
}

func TestExchangeMovesEveryOverlappedElement(t *testing.T) {
	// a is dropped where it touches both b and c.
	c := newTestContainer("abc", box(0, 0), box(10, 0), box(11, 1))
	m := NewSelectionManager(c)
	a, b, cc := c.elements[0], c.elements[1], c.elements[2]
	m.SelectOnly(a)

	s := dragTo(c, m, types.Point{}, types.Point{X: 10, Y: 0})
	res := ExchangePolicy{}.Resolve(c, m.Set(), s)

	if res.Count() != 2 {
		t.Fatalf("exchanges = %d, want 2", res.Count())
	}
	for _, e := range []*Element{b, cc} {
		if e.Position() != (types.Point{}) {
			t.Errorf("%q at %v, want a's origin", e.Char, e.Position())
		}
	}
	if a.Position() != (types.Point{X: 10}) {
		t.Errorf("a at %v, want dropped position", a.Position())
	}
	if res.Exchanges[0].Displaced != b || res.Exchanges[0].From != (types.Point{X: 10}) {
		t.Errorf("first exchange = %+v, want b from (10,0)", res.Exchanges[0])
	}
}

func TestExchangeSkipsStaleDraggedElements(t *testing.T) {
	c := newTestContainer("ab", box(0, 0), box(5, 0))
	m := NewSelectionManager(c)
	m.SelectOnly(c.elements[0])
	s := dragTo(c, m, types.Point{}, types.Point{X: 5})

	c.reset([]rune("ab"), fixedLayout{box(0, 0), box(5, 0)}.Place([]rune("ab")))
	fresh := c.elements[1]

	res := ExchangePolicy{}.Resolve(c, newSelectionSet(), s)
	if res.Changed() {
		t.Errorf("stale drag session produced %d exchange(s)", res.Count())
	}
	if fresh.Position() != (types.Point{X: 5}) {
		t.Errorf("fresh element moved to %v", fresh.Position())
	}
}

func TestResolversIgnoreNilSession(t *testing.T) {
	c := newTestContainer("ab", box(0, 0), box(2, 0))
	for _, r := range []SwapResolver{ExchangePolicy{}, InsertPolicy{}} {
		if r.Resolve(c, newSelectionSet(), nil).Changed() {
			t.Errorf("%s changed something without a session", r.Name())
		}
	}
}

func TestInsertKeepsRelativeDocumentOrder(t *testing.T) {
	c := newTestContainer("abcde", box(0, 0), box(2, 0), box(4, 0), box(6, 0), box(8, 0))
	m := NewSelectionManager(c)
	a, d := c.elements[0], c.elements[3]
	b := c.elements[1]

	// Selected out of document order; insertion still keeps a before d.
	m.Toggle(d)
	m.Toggle(a)
	s := dragTo(c, m, types.Point{X: 6}, types.Point{X: 8})
	if s.Target() == nil || s.Target().Char != 'e' {
		t.Fatalf("target = %v, want e", s.Target())
	}
	positions := map[*Element]types.Point{}
	for _, e := range c.elements {
		positions[e] = e.Position()
	}

	if !(InsertPolicy{}).Resolve(c, m.Set(), s).Changed() {
		t.Fatalf("insert reported no change")
	}

	var got []rune
	for i, e := range c.elements {
		got = append(got, e.Char)
		if e.Index != i {
			t.Errorf("%q index = %d at %d", e.Char, e.Index, i)
		}
		if e.Position() != positions[e] {
			t.Errorf("%q moved from %v to %v", e.Char, positions[e], e.Position())
		}
	}
	if string(got) != "bcade" {
		t.Errorf("order = %q, want bcade", string(got))
	}
	if b.Index != 0 {
		t.Errorf("b index = %d, want 0", b.Index)
	}
}
