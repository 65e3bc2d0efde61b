// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"sync"

	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/input"
	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/plugin" // For CommandFunc type
	"github.com/bethropolis/jumble/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for keyboard input.
type InputMode int

const (
	ModeNormal  InputMode = iota // keys act on the arrangement
	ModeInput                    // typing the text to arrange
	ModeCommand                  // typing a ':' command
)

func (m InputMode) String() string {
	switch m {
	case ModeInput:
		return "INPUT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// Prompt prefixes shown in the status bar.
const (
	InputPrompt   = "> "
	CommandPrompt = ":"
)

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	engine         *core.Engine
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	quitOnce       sync.Once

	// Internal State
	currentMode InputMode
	prompt      []rune // text being typed in ModeInput or ModeCommand
	commands    map[string]plugin.CommandFunc
	quitPending bool // Esc pressed once with nothing selected
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Engine         *core.Engine
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // Write-only channel closed to signal quit
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Engine == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		// Programming error during setup
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		engine:         cfg.Engine,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in a change requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModeInput, ModeCommand:
		return mh.handleActionPrompt(actionEvent)
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// enterPrompt switches to a prompt mode with text already typed.
func (mh *ModeHandler) enterPrompt(mode InputMode, text string) {
	mh.currentMode = mode
	mh.prompt = []rune(text)
	mh.quitPending = false
	mh.statusBar.ResetTemporaryMessage()
	mh.updatePrompt()
	logger.Debugf("ModeHandler: Entering %s mode", mode)
}

// leavePrompt returns to ModeNormal and hides the prompt.
func (mh *ModeHandler) leavePrompt() {
	mh.currentMode = ModeNormal
	mh.prompt = nil
	mh.statusBar.ClearPrompt()
}

func (mh *ModeHandler) updatePrompt() {
	prefix := InputPrompt
	if mh.currentMode == ModeCommand {
		prefix = CommandPrompt
	}
	mh.statusBar.SetPrompt(prefix, string(mh.prompt))
}

// RegisterCommand adds a command to the registry. Called via ArrangerAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if cmdFunc == nil {
		return fmt.Errorf("command '%s' has no function", name)
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// Quit signals the app to terminate. Safe to call more than once.
func (mh *ModeHandler) Quit() {
	mh.quitOnce.Do(func() {
		logger.Infof("ModeHandler: Quit requested")
		close(mh.quitSignal)
	})
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetPromptText returns what has been typed in a prompt mode.
func (mh *ModeHandler) GetPromptText() string {
	if mh.currentMode == ModeNormal {
		return ""
	}
	return string(mh.prompt)
}
