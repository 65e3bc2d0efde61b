package modehandler

import (
	"github.com/bethropolis/jumble/internal/input"
	"github.com/bethropolis/jumble/internal/logger"
)

// Commands the normal-mode keys run, so plugins and ':' share one path.
const (
	cmdCopy   = "copy"
	cmdPaste  = "paste"
	cmdPolicy = "policy"
)

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	actionProcessed := true

	switch actionEvent.Action {
	// --- Mode Switching ---
	case input.ActionEnterInputMode, input.ActionSubmit:
		mh.enterPrompt(ModeInput, "")
	case input.ActionEnterCommandMode:
		mh.enterPrompt(ModeCommand, "")

	// --- Quit ---
	case input.ActionEscape:
		switch {
		case len(mh.engine.Selection()) > 0:
			mh.engine.ClearSelection()
			mh.statusBar.SetTemporaryMessage("Selection cleared")
		case mh.quitPending:
			mh.Quit()
			actionProcessed = false
		default:
			mh.statusBar.SetTemporaryMessage("Press ESC again or Ctrl+Q to quit.")
			mh.quitPending = true
			return true // keep quitPending for the next key
		}
	case input.ActionQuit, input.ActionForceQuit:
		mh.Quit()
		actionProcessed = false

	// --- Arrangement ---
	case input.ActionSelectAll:
		mh.engine.SelectAll()
	case input.ActionTogglePolicy:
		mh.runCommand(cmdPolicy, nil)
	case input.ActionCopy:
		mh.runCommand(cmdCopy, nil)
	case input.ActionPaste:
		mh.runCommand(cmdPaste, nil)

	case input.ActionUnknown:
		actionProcessed = false
	default:
		logger.DebugTagf("keys", "ModeHandler: %v has no meaning in NORMAL mode", actionEvent.Action)
		actionProcessed = false
	}

	if actionProcessed {
		mh.quitPending = false
	}
	return actionProcessed
}
