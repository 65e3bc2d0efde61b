package wordcount

import (
	"testing"

	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/plugin/plugintest"
)

func TestCount(t *testing.T) {
	tests := []struct {
		text string
		want Stats
	}{
		{"", Stats{}},
		{"one", Stats{Chars: 3, Words: 1, Lines: 1}},
		{" two  words ", Stats{Chars: 12, Words: 2, Lines: 1}},
		{"a\nb c", Stats{Chars: 5, Words: 3, Lines: 2}},
		{"世界", Stats{Chars: 2, Words: 1, Lines: 1}},
	}
	for _, tt := range tests {
		if got := Count(tt.text); got != tt.want {
			t.Errorf("Count(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestWordCountCommand(t *testing.T) {
	api := plugintest.New()
	p := New()
	if err := p.Initialize(api); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	api.SubmitText("ab cd")
	api.SelectAll()
	api.DispatchEvent(event.TypeElementsSwapped, event.ElementsSwappedData{Policy: "exchange", Swaps: 2})

	if err := api.Run("wc"); err != nil {
		t.Fatalf(":wc: %v", err)
	}
	want := "Chars: 5, Words: 2, Lines: 1, Selected: 5, Swaps: 2"
	if got := api.LastMessage(); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}

	api.SubmitText("x")
	_ = api.Run("wc")
	if got := api.LastMessage(); got != "Chars: 1, Words: 1, Lines: 1, Selected: 0, Swaps: 0" {
		t.Errorf("after resubmit message = %q", got)
	}
}
