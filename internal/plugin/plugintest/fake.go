// Package plugintest provides an in-memory ArrangerAPI for testing plugins
// and commands without a terminal.
package plugintest

import (
	"errors"
	"fmt"

	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/plugin"
	"github.com/bethropolis/jumble/internal/theme"
	"github.com/gdamore/tcell/v2"
)

var _ plugin.ArrangerAPI = (*API)(nil)

// API is a plugin.ArrangerAPI backed by a real engine and theme manager.
type API struct {
	Engine    *core.Engine
	Events    *event.Manager
	Themes    *theme.Manager
	Commands  map[string]plugin.CommandFunc
	Clipboard string
	Messages  []string
	Quit      bool
}

// New creates an API over an empty engine with the built-in themes.
func New() *API {
	events := event.NewManager()
	return &API{
		Engine:   core.NewEngine(core.Options{Events: events}),
		Events:   events,
		Themes:   theme.NewManager(""),
		Commands: make(map[string]plugin.CommandFunc),
	}
}

// Run executes a registered command.
func (a *API) Run(name string, args ...string) error {
	fn, ok := a.Commands[name]
	if !ok {
		return fmt.Errorf("command %q not registered", name)
	}
	return fn(args)
}

// LastMessage returns the most recent status message, or "".
func (a *API) LastMessage() string {
	if len(a.Messages) == 0 {
		return ""
	}
	return a.Messages[len(a.Messages)-1]
}

func (a *API) Text() string        { return a.Engine.Text() }
func (a *API) ReadingText() string { return a.Engine.ReadingText() }
func (a *API) ElementCount() int   { return len(a.Engine.Elements()) }
func (a *API) SelectionCount() int { return len(a.Engine.Selection()) }
func (a *API) SubmitText(text string) {
	a.Engine.Submit(text)
}
func (a *API) SelectAll()      { a.Engine.SelectAll() }
func (a *API) ClearSelection() { a.Engine.ClearSelection() }

func (a *API) Policy() string { return a.Engine.Resolver().Name() }

func (a *API) SetPolicy(name string) error {
	r, err := core.PolicyByName(name)
	if err != nil {
		return err
	}
	a.Engine.SetResolver(r)
	return nil
}

func (a *API) CopyText(text string) error {
	a.Clipboard = text
	return nil
}

func (a *API) PasteText() (string, error) {
	if a.Clipboard == "" {
		return "", errors.New("clipboard is empty")
	}
	return a.Clipboard, nil
}

func (a *API) DispatchEvent(eventType event.Type, data interface{}) {
	a.Events.Dispatch(eventType, data)
}

func (a *API) SubscribeEvent(eventType event.Type, handler event.Handler) {
	a.Events.Subscribe(eventType, handler)
}

func (a *API) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if _, exists := a.Commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.Commands[name] = cmdFunc
	return nil
}

func (a *API) SetStatusMessage(format string, args ...interface{}) {
	a.Messages = append(a.Messages, fmt.Sprintf(format, args...))
}

func (a *API) GetThemeStyle(styleName string) tcell.Style {
	return a.Themes.Current().GetStyle(styleName)
}

func (a *API) SetTheme(name string) error { return a.Themes.SetTheme(name) }
func (a *API) GetTheme() *theme.Theme     { return a.Themes.Current() }
func (a *API) ListThemes() []string       { return a.Themes.ListThemes() }
func (a *API) RequestQuit()               { a.Quit = true }
