// Package highlight runs syntax classification off the main loop.
package highlight

import (
	"context"
	"sync"
	"time"

	"github.com/bethropolis/jumble/internal/highlighter"
	"github.com/bethropolis/jumble/internal/logger"
)

// DebounceHighlightDuration delays classification so bursts of submissions
// (a paste followed by an edit) only parse the last text.
const DebounceHighlightDuration = 65 * time.Millisecond

// Result is the classification of one submitted text.
type Result struct {
	Generation int
	Classes    highlighter.Classes
}

// Manager runs at most one classification at a time and drops superseded
// requests. Results are handed to deliver from a background goroutine.
type Manager struct {
	highlighter *highlighter.Highlighter
	deliver     func(Result)
	debounce    time.Duration

	mu         sync.Mutex // protects timer and cancelFunc
	timer      *time.Timer
	cancelFunc context.CancelFunc

	runMu sync.Mutex // serializes use of the highlighter
	wg    sync.WaitGroup
}

// NewManager creates a manager around h.
func NewManager(h *highlighter.Highlighter, deliver func(Result)) *Manager {
	return &Manager{highlighter: h, deliver: deliver, debounce: DebounceHighlightDuration}
}

// Request schedules classification of text for the given generation,
// cancelling any request still pending or running.
func (m *Manager) Request(generation int, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil && m.timer.Stop() {
		m.wg.Done() // superseded before it fired
	}
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelFunc = cancel

	m.wg.Add(1)
	logger.DebugTagf("highlight", "Scheduling classification for generation %d (%d bytes)", generation, len(text))
	m.timer = time.AfterFunc(m.debounce, func() {
		defer m.wg.Done()
		m.run(ctx, generation, text)
	})
}

func (m *Manager) run(ctx context.Context, generation int, text string) {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	classes, err := m.highlighter.Classify(ctx, text)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warnf("Highlight: classification failed: %v", err)
		}
		return
	}
	logger.DebugTagf("highlight", "Generation %d classified in %v", generation, time.Since(start))
	m.deliver(Result{Generation: generation, Classes: classes})
}

// Stop cancels pending work and waits for a running classification to end.
func (m *Manager) Stop() {
	m.mu.Lock()
	if m.timer != nil && m.timer.Stop() {
		m.wg.Done() // the callback will never run
	}
	m.timer = nil
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.mu.Unlock()
	m.wg.Wait()
}
