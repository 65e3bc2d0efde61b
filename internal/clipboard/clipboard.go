// Package clipboard moves arrangement text in and out of the system
// clipboard, keeping an internal register for when the system one is off or
// unavailable.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/jumble/internal/logger"
)

// ErrEmpty is returned by Paste when there is nothing to paste.
var ErrEmpty = errors.New("clipboard is empty")

// Clipboard writes through to the system clipboard when enabled and always
// remembers the last copied text.
type Clipboard struct {
	mu       sync.Mutex
	system   bool
	register string

	readAll  func() (string, error)
	writeAll func(string) error
}

// New creates a clipboard. useSystem is ignored on platforms the system
// clipboard library does not support.
func New(useSystem bool) *Clipboard {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("Clipboard: system clipboard unsupported here, using internal register")
		useSystem = false
	}
	return &Clipboard{
		system:   useSystem,
		readAll:  clipboard.ReadAll,
		writeAll: clipboard.WriteAll,
	}
}

// UsesSystem reports whether copies reach the system clipboard.
func (c *Clipboard) UsesSystem() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.system
}

// Copy stores text. The internal register is updated even when the system
// clipboard rejects the write.
func (c *Clipboard) Copy(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.register = text
	if !c.system {
		return nil
	}
	if err := c.writeAll(text); err != nil {
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	logger.DebugTagf("clipboard", "Copied %d bytes to system clipboard", len(text))
	return nil
}

// Paste returns the system clipboard contents, falling back to the internal
// register when the system clipboard is off, fails, or is empty.
func (c *Clipboard) Paste() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.system {
		text, err := c.readAll()
		switch {
		case err != nil:
			logger.Warnf("Clipboard: system read failed, using internal register: %v", err)
		case text != "":
			return text, nil
		}
	}
	if c.register == "" {
		return "", ErrEmpty
	}
	return c.register, nil
}
