// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes the words after the command name and returns an error.
type CommandFunc func(args []string) error

// ArrangerAPI defines the methods plugins can use to interact with the arranger.
// This acts as a controlled interface; plugins never hold the engine itself.
type ArrangerAPI interface {
	// --- Arrangement (Read-Only) ---
	Text() string        // characters in sequence order
	ReadingText() string // characters as they read on screen, row by row
	ElementCount() int
	SelectionCount() int

	// --- Arrangement Modification ---
	SubmitText(text string) // rebuild every element from text
	SelectAll()
	ClearSelection()

	// --- Swap Policy ---
	Policy() string
	SetPolicy(name string) error

	// --- Clipboard ---
	CopyText(text string) error
	PasteText() (string, error)

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// --- Lifecycle ---
	RequestQuit()
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Plugins subscribe
	// to events and register commands here.
	Initialize(api ArrangerAPI) error

	// Shutdown is called once when the arranger is closing.
	Shutdown() error
}
