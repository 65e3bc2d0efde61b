package event

import "testing"

func TestDispatchOrderAndConsumption(t *testing.T) {
	m := NewManager()
	var calls []string

	m.Subscribe(TypeSelectionChanged, func(e Event) bool {
		calls = append(calls, "first")
		return false
	})
	m.Subscribe(TypeSelectionChanged, func(e Event) bool {
		calls = append(calls, "second")
		data, ok := e.Data.(SelectionChangedData)
		if !ok || data.Count != 3 {
			t.Errorf("unexpected data %#v", e.Data)
		}
		return true
	})
	m.Subscribe(TypeSelectionChanged, func(e Event) bool {
		calls = append(calls, "third")
		return false
	})

	m.Dispatch(TypeSelectionChanged, SelectionChangedData{Count: 3})

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second]", calls)
	}
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	m.Dispatch(TypeDragEnded, DragEndedData{}) // must not panic
}

func TestTypeString(t *testing.T) {
	if TypeElementsSwapped.String() != "ElementsSwapped" {
		t.Errorf("String() = %q", TypeElementsSwapped.String())
	}
}
