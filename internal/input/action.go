// internal/input/action.go
package input

// Action represents an operation requested from the keyboard.
type Action int

// Define the set of possible arranger actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit
	ActionForceQuit
	ActionEscape // clears the selection, or quits when nothing is selected

	// --- Modes ---
	ActionEnterInputMode
	ActionEnterCommandMode

	// --- Arrangement ---
	ActionSelectAll
	ActionTogglePolicy
	ActionCopy
	ActionPaste

	// --- Prompt editing ---
	ActionInsertRune
	ActionSubmit
	ActionDeleteCharBackward
	ActionClearLine
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionForceQuit:          "ForceQuit",
	ActionEscape:             "Escape",
	ActionEnterInputMode:     "EnterInputMode",
	ActionEnterCommandMode:   "EnterCommandMode",
	ActionSelectAll:          "SelectAll",
	ActionTogglePolicy:       "TogglePolicy",
	ActionCopy:               "Copy",
	ActionPaste:              "Paste",
	ActionInsertRune:         "InsertRune",
	ActionSubmit:             "Submit",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionClearLine:          "ClearLine",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent is a decoded key event.
type ActionEvent struct {
	Action Action
	Rune   rune // set for ActionInsertRune and rune bindings
}
