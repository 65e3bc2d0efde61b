// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount reports character, word and line counts of the arrangement.
type WordCount struct {
	api   plugin.ArrangerAPI
	swaps int // swaps since the last submission
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize registers the :wc command and tracks swaps.
func (p *WordCount) Initialize(api plugin.ArrangerAPI) error {
	p.api = api

	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	api.SubscribeEvent(event.TypeTextSubmitted, func(event.Event) bool {
		p.swaps = 0
		return false
	})
	api.SubscribeEvent(event.TypeElementsSwapped, func(e event.Event) bool {
		if data, ok := e.Data.(event.ElementsSwappedData); ok {
			p.swaps += data.Swaps
		}
		return false
	})
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Stats are the counts :wc reports.
type Stats struct {
	Chars int
	Words int
	Lines int
}

// Count computes Stats for text as it reads on screen.
func Count(text string) Stats {
	if text == "" {
		return Stats{}
	}
	return Stats{
		Chars: len([]rune(text)),
		Words: countWords(text),
		Lines: strings.Count(text, "\n") + 1,
	}
}

// executeWordCount is the function called when the :wc command runs.
func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}

	s := Count(p.api.ReadingText())
	p.api.SetStatusMessage("Chars: %d, Words: %d, Lines: %d, Selected: %d, Swaps: %d",
		s.Chars, s.Words, s.Lines, p.api.SelectionCount(), p.swaps)
	return nil
}

// countWords counts sequences of non-space runes.
func countWords(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		if !unicode.IsSpace(r) {
			if !inWord {
				count++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return count
}
