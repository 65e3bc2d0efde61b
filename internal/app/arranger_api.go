// internal/app/arranger_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/plugin"
	"github.com/bethropolis/jumble/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Ensure appArrangerAPI implements the plugin.ArrangerAPI interface.
var _ plugin.ArrangerAPI = (*appArrangerAPI)(nil)

// appArrangerAPI provides the concrete implementation of the ArrangerAPI interface.
// Its methods run on the main loop, via commands and event handlers.
type appArrangerAPI struct {
	app *App // Reference back to the main application
}

func newArrangerAPI(app *App) *appArrangerAPI {
	return &appArrangerAPI{app: app}
}

// --- Arrangement ---

func (api *appArrangerAPI) Text() string        { return api.app.engine.Text() }
func (api *appArrangerAPI) ReadingText() string { return api.app.engine.ReadingText() }
func (api *appArrangerAPI) ElementCount() int   { return len(api.app.engine.Elements()) }
func (api *appArrangerAPI) SelectionCount() int { return len(api.app.engine.Selection()) }

func (api *appArrangerAPI) SubmitText(text string) {
	api.app.engine.Submit(text) // TextSubmitted handler requests the redraw
}

func (api *appArrangerAPI) SelectAll() {
	api.app.engine.SelectAll()
}

func (api *appArrangerAPI) ClearSelection() {
	api.app.engine.ClearSelection()
}

// --- Swap Policy ---

func (api *appArrangerAPI) Policy() string {
	return api.app.engine.Resolver().Name()
}

func (api *appArrangerAPI) SetPolicy(name string) error {
	r, err := core.PolicyByName(name)
	if err != nil {
		return err
	}
	api.app.engine.SetResolver(r)
	api.app.requestRedraw()
	return nil
}

// --- Clipboard ---

func (api *appArrangerAPI) CopyText(text string) error {
	return api.app.clipboard.Copy(text)
}

func (api *appArrangerAPI) PasteText() (string, error) {
	return api.app.clipboard.Paste()
}

// --- Event Bus ---

func (api *appArrangerAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appArrangerAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appArrangerAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app.modeHandler == nil {
		return fmt.Errorf("mode handler not initialized, cannot register command '%s'", name)
	}
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appArrangerAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
}

// --- Theme Access ---

func (api *appArrangerAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

func (api *appArrangerAPI) SetTheme(name string) error {
	if err := api.app.SetTheme(name); err != nil {
		logger.Debugf("API: SetTheme(%q) failed: %v", name, err)
		return err
	}
	return nil
}

func (api *appArrangerAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

func (api *appArrangerAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

// --- Lifecycle ---

func (api *appArrangerAPI) RequestQuit() {
	api.app.modeHandler.Quit()
}
