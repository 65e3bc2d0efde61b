// internal/event/event.go
package event

import (
	"github.com/bethropolis/jumble/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Arrangement events, dispatched by the engine
	TypeTextSubmitted    // All elements were rebuilt from new text
	TypeSelectionChanged // The selection set changed
	TypeDragStarted      // A drag session was armed
	TypeDragEnded        // A drag session was released
	TypeElementsSwapped  // The swap resolver changed positions or order

	// Input Events
	TypeKeyPressed // Raw key press event forwarded

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins

	TypeThemeChanged // Fired when the theme is changed
)

var typeNames = map[Type]string{
	TypeUnknown:          "Unknown",
	TypeTextSubmitted:    "TextSubmitted",
	TypeSelectionChanged: "SelectionChanged",
	TypeDragStarted:      "DragStarted",
	TypeDragEnded:        "DragEnded",
	TypeElementsSwapped:  "ElementsSwapped",
	TypeKeyPressed:       "KeyPressed",
	TypeAppReady:         "AppReady",
	TypeAppQuit:          "AppQuit",
	TypeThemeChanged:     "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Type(?)"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// --- Specific Event Data Structures ---

// TextSubmittedData describes a rebuild of the arrangement.
type TextSubmittedData struct {
	Text     string
	Elements int
}

// SelectionChangedData carries the selection size after the change.
type SelectionChangedData struct {
	Count int
}

// DragStartedData carries the pointer anchor and the number of dragged elements.
type DragStartedData struct {
	Anchor types.Point
	Count  int
}

// DragEndedData carries the net displacement of the finished drag.
type DragEndedData struct {
	Delta types.Point
}

// ElementsSwappedData reports what the swap resolver did.
type ElementsSwappedData struct {
	Policy string
	Swaps  int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the newly active theme.
type ThemeChangedData struct {
	Name string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
