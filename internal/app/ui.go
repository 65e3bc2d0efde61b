package app

import (
	"github.com/bethropolis/jumble/internal/config"
	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/render"
	"github.com/bethropolis/jumble/internal/statusbar"
	"github.com/bethropolis/jumble/internal/types"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	currentTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	viewHeight := a.viewHeight()

	logger.DebugTagf("draw", "draw: Screen Size (%d x %d), StatusBarHeight: %d, ViewHeight: %d",
		width, height, config.StatusBarHeight, viewHeight)

	a.tuiManager.Clear()
	render.Arrangement(screen, a.engine, currentTheme, a.tints, types.Rect{Right: width, Bottom: viewHeight})
	if cx, prompt := a.statusBar.Draw(screen, width, height, currentTheme); prompt {
		screen.ShowCursor(cx, height-1)
	} else {
		screen.HideCursor()
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current arranger state to the status bar component.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetMode(a.modeHandler.GetCurrentMode().String())
	a.statusBar.SetPolicy(a.engine.Resolver().Name())
	gesture := ""
	if state := a.engine.State(); state != core.StateIdle {
		gesture = state.String()
	}
	a.statusBar.SetGesture(gesture)
	a.statusBar.SetCounts(statusbar.Counts{
		Elements: len(a.engine.Elements()),
		Selected: len(a.engine.Selection()),
	})
}
