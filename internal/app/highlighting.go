package app

import (
	"github.com/bethropolis/jumble/internal/highlight"
	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/render"
)

// requestHighlights schedules classification of the freshly submitted text.
func (a *App) requestHighlights(generation int, text string) {
	clear(a.tints)
	a.tintElems = a.engine.Elements()
	a.tintGeneration = generation
	if a.highlightManager == nil || text == "" {
		return
	}
	a.highlightManager.Request(generation, text)
}

// deliverHighlights runs on the highlight goroutine and hands the result to
// the main loop, dropping a result that was never collected.
func (a *App) deliverHighlights(res highlight.Result) {
	for {
		select {
		case a.highlights <- res:
			return
		case <-a.quit:
			return
		default:
		}
		select {
		case stale := <-a.highlights:
			logger.DebugTagf("highlight", "Dropping uncollected result for generation %d", stale.Generation)
		default:
		}
	}
}

// applyHighlights maps classes onto the elements they were computed for.
// Results for an older submission are ignored.
func (a *App) applyHighlights(res highlight.Result) bool {
	if res.Generation != a.tintGeneration || res.Generation != a.engine.Generation() {
		logger.DebugTagf("highlight", "Ignoring result for generation %d (current %d)", res.Generation, a.engine.Generation())
		return false
	}
	tints := make(render.Tints, len(a.tintElems))
	for i, el := range a.tintElems {
		if i < len(res.Classes) && res.Classes[i] != "" {
			tints[el] = res.Classes[i]
		}
	}
	a.tints = tints
	logger.DebugTagf("highlight", "Applied %d tint(s) for generation %d", len(tints), res.Generation)
	return true
}

func (a *App) stopHighlighting() {
	if a.highlightManager != nil {
		a.highlightManager.Stop()
	}
	if a.highlighter != nil {
		a.highlighter.Close()
	}
}
