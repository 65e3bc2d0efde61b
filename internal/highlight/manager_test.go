package highlight

import (
	"testing"
	"time"

	"github.com/bethropolis/jumble/internal/highlighter"
)

func TestManagerDeliversLatestRequest(t *testing.T) {
	h, err := highlighter.New()
	if err != nil {
		t.Fatalf("highlighter.New: %v", err)
	}
	defer h.Close()

	results := make(chan Result, 4)
	m := NewManager(h, func(r Result) { results <- r })
	m.debounce = 20 * time.Millisecond

	m.Request(1, "package a")
	m.Request(2, "func f() {}")

	select {
	case r := <-results:
		if r.Generation != 2 {
			t.Errorf("generation = %d, want 2", r.Generation)
		}
		if len(r.Classes) != len([]rune("func f() {}")) {
			t.Errorf("len(classes) = %d", len(r.Classes))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}

	m.Stop()
	select {
	case r := <-results:
		t.Errorf("superseded request delivered generation %d", r.Generation)
	default:
	}
}

func TestManagerStopCancelsPending(t *testing.T) {
	h, err := highlighter.New()
	if err != nil {
		t.Fatalf("highlighter.New: %v", err)
	}
	defer h.Close()

	delivered := make(chan Result, 1)
	m := NewManager(h, func(r Result) { delivered <- r })
	m.debounce = time.Hour

	m.Request(1, "var x = 1")
	m.Stop()

	select {
	case <-delivered:
		t.Error("stopped manager delivered a result")
	default:
	}
}
