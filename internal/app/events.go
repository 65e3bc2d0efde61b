package app

import (
	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/logger"
)

// handleTextSubmitted resets tints and starts classification of the new text.
func (a *App) handleTextSubmitted(e event.Event) bool {
	data, ok := e.Data.(event.TextSubmittedData)
	if !ok {
		logger.Warnf("App: Received TextSubmitted event with unexpected data type: %T", e.Data)
		return false
	}
	a.mouse.Ignore() // the engine dropped any gesture in flight
	a.requestHighlights(a.engine.Generation(), data.Text)
	a.requestRedraw()
	return false // Not consumed
}

// handleSelectionChanged redraws so the selection count stays current.
func (a *App) handleSelectionChanged(e event.Event) bool {
	if data, ok := e.Data.(event.SelectionChangedData); ok {
		logger.DebugTagf("selection", "App: %d element(s) selected", data.Count)
	}
	a.requestRedraw()
	return false
}

// handleElementsSwapped reports what the last drop did.
func (a *App) handleElementsSwapped(e event.Event) bool {
	if data, ok := e.Data.(event.ElementsSwappedData); ok {
		if data.Policy == core.PolicyInsert {
			a.statusBar.SetTemporaryMessage("Moved selection (%s)", data.Policy)
		} else {
			a.statusBar.SetTemporaryMessage("Swapped %d character(s) (%s)", data.Swaps, data.Policy)
		}
	}
	a.requestRedraw()
	return false
}
