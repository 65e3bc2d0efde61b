// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/jumble/internal/theme"
	"github.com/bethropolis/jumble/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: 4 * time.Second}
}

// Counts is the arrangement summary shown on the right.
type Counts struct {
	Elements int
	Selected int
}

// StatusBar is the bottom line: mode, policy and counts, replaced by a prompt
// while text is being typed and by temporary messages.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	mode    string
	policy  string
	gesture string
	counts  Counts

	promptPrefix string
	promptText   string
	promptActive bool

	tempMessage     string
	tempMessageTime time.Time
	now             func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetMode updates the displayed mode.
func (sb *StatusBar) SetMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetPolicy updates the displayed swap policy.
func (sb *StatusBar) SetPolicy(policy string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.policy = policy
}

// SetGesture shows the active gesture; "" hides it.
func (sb *StatusBar) SetGesture(gesture string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.gesture = gesture
}

// SetCounts updates the element and selection counts.
func (sb *StatusBar) SetCounts(c Counts) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.counts = c
}

// SetPrompt shows prefix followed by text in place of the status line.
func (sb *StatusBar) SetPrompt(prefix, text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptPrefix, sb.promptText, sb.promptActive = prefix, text, true
}

// ClearPrompt returns to the normal status line.
func (sb *StatusBar) ClearPrompt() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptPrefix, sb.promptText, sb.promptActive = "", "", false
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the temporary message if it has not expired.
func (sb *StatusBar) Message() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.messageActive() {
		return sb.tempMessage
	}
	return ""
}

func (sb *StatusBar) messageActive() bool {
	return !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
}

// leftText builds the mode and policy part of the status line.
func (sb *StatusBar) leftText() string {
	var parts []string
	if sb.mode != "" {
		parts = append(parts, " "+sb.mode+" ")
	}
	if sb.policy != "" {
		parts = append(parts, sb.policy)
	}
	return strings.Join(parts, " ")
}

// rightText builds the counts part of the status line.
func (sb *StatusBar) rightText() string {
	text := fmt.Sprintf("%d chars  %d selected ", sb.counts.Elements, sb.counts.Selected)
	if sb.gesture != "" {
		text = sb.gesture + "  " + text
	}
	return text
}

// Draw renders the status bar on the last row. While a prompt is shown it
// returns the cursor column after the prompt text and true.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) (int, bool) {
	if height <= 0 || width <= 0 {
		return 0, false
	}
	y := height - 1

	sb.mu.Lock()
	if !sb.tempMessageTime.IsZero() && !sb.messageActive() {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	message := sb.tempMessage
	promptActive := sb.promptActive
	prompt := sb.promptPrefix + sb.promptText
	left, right := sb.leftText(), sb.rightText()
	gesture := sb.gesture
	sb.mu.Unlock()

	base := th.GetStyle(theme.StyleStatusBar)
	tui.FillRow(screen, y, width, base)

	if promptActive {
		used := tui.DrawText(screen, 0, y, width, prompt, th.GetStyle(theme.StylePrompt).Background(backgroundOf(base)))
		return min(used, width-1), true
	}

	x := tui.DrawText(screen, 0, y, width, left, th.GetStyle(theme.StyleStatusBarMode))
	if message != "" {
		tui.DrawText(screen, x+2, y, width-x-2, message, th.GetStyle(theme.StyleStatusBarMessage))
		return 0, false
	}

	rw := tui.TextWidth(right)
	if rw < width-x {
		style := base
		if gesture != "" {
			style = th.GetStyle(theme.StyleStatusBarGesture)
		}
		tui.DrawText(screen, width-rw, y, rw, right, style)
	}
	return 0, false
}

func backgroundOf(style tcell.Style) tcell.Color {
	_, bg, _ := style.Decompose()
	return bg
}
