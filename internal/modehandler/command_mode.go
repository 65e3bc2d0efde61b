package modehandler

import (
	"strings"

	"github.com/bethropolis/jumble/internal/input"
	"github.com/bethropolis/jumble/internal/logger"
)

// handleActionPrompt handles actions while text is typed in ModeInput or ModeCommand.
// Rune-bound actions type their rune, so ':' or 'q' reach the prompt.
func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	if actionEvent.Rune != 0 {
		mh.prompt = append(mh.prompt, actionEvent.Rune)
		mh.updatePrompt()
		return true
	}

	switch actionEvent.Action {
	case input.ActionDeleteCharBackward: // Backspace
		if len(mh.prompt) > 0 {
			mh.prompt = mh.prompt[:len(mh.prompt)-1]
			mh.updatePrompt()
		} else if mh.currentMode == ModeCommand {
			mh.leavePrompt()
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
		}

	case input.ActionClearLine:
		mh.prompt = mh.prompt[:0]
		mh.updatePrompt()

	case input.ActionSubmit: // Enter
		text := string(mh.prompt)
		mode := mh.currentMode
		mh.leavePrompt()
		if mode == ModeCommand {
			mh.executeCommand(text)
		} else {
			mh.submitText(text)
		}

	case input.ActionEscape, input.ActionQuit: // Cancel
		logger.Debugf("ModeHandler: Canceled %s mode", mh.currentMode)
		mh.leavePrompt()

	case input.ActionForceQuit:
		mh.Quit()
		return false

	default:
		return false
	}
	return true
}

// submitText hands typed text to the engine.
func (mh *ModeHandler) submitText(text string) {
	mh.engine.Submit(text)
	mh.statusBar.SetTemporaryMessage("Arranged %d character(s)", len(mh.engine.Elements()))
}

// executeCommand parses and runs a ':' command line.
func (mh *ModeHandler) executeCommand(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		mh.statusBar.ResetTemporaryMessage()
		return
	}
	mh.runCommand(parts[0], parts[1:])
}

// runCommand runs a registered command and reports failures on the status bar.
func (mh *ModeHandler) runCommand(cmdName string, args []string) {
	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.Debugf("ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		logger.Warnf("ModeHandler: command ':%s' failed: %v", cmdName, err)
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
	// Success message usually set by the command itself via API
}
