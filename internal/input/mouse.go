// internal/input/mouse.go
package input

import (
	"fmt"
	"strings"

	"github.com/bethropolis/jumble/internal/config"
	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// ModifierMask maps a configured additive modifier name to a tcell mask.
func ModifierMask(name string) (tcell.ModMask, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case config.ModifierCtrl:
		return tcell.ModCtrl, nil
	case config.ModifierAlt:
		return tcell.ModAlt, nil
	case config.ModifierShift:
		return tcell.ModShift, nil
	case config.ModifierMeta:
		return tcell.ModMeta, nil
	}
	return tcell.ModNone, fmt.Errorf("%w: %q", config.ErrUnknownModifier, name)
}

// gestureButtons are the buttons that start a gesture. The secondary button
// presses additively, for terminals that swallow modifier+click.
const gestureButtons = tcell.Button1 | tcell.Button2

// MouseDecoder turns tcell's button-state mouse events into pointer
// down/move/up transitions.
type MouseDecoder struct {
	additive tcell.ModMask
	pressed  bool
	ignoring bool
	lastX    int
	lastY    int
}

// NewMouseDecoder creates a decoder that treats additive as the additive
// selection modifier.
func NewMouseDecoder(additive tcell.ModMask) *MouseDecoder {
	return &MouseDecoder{additive: additive}
}

// Pressed reports whether a button is currently held.
func (d *MouseDecoder) Pressed() bool {
	return d.pressed
}

// Decode returns the pointer event for ev, or false when ev is not part of a
// gesture (wheel, bare motion, motion within the same cell).
func (d *MouseDecoder) Decode(ev *tcell.EventMouse) (core.Pointer, bool) {
	x, y := ev.Position()
	buttons := ev.Buttons() & gestureButtons

	if d.ignoring {
		if buttons == 0 {
			d.ignoring = false
		}
		return core.Pointer{}, false
	}

	switch {
	case !d.pressed && buttons != 0:
		d.pressed, d.lastX, d.lastY = true, x, y
		additive := ev.Modifiers()&d.additive != 0 || buttons&tcell.Button2 != 0
		logger.DebugTagf("mouse", "Down at (%d,%d) additive=%v", x, y, additive)
		return core.Pointer{Kind: core.PointerDown, X: x, Y: y, Additive: additive}, true

	case d.pressed && buttons != 0:
		if x == d.lastX && y == d.lastY {
			return core.Pointer{}, false
		}
		d.lastX, d.lastY = x, y
		return core.Pointer{Kind: core.PointerMove, X: x, Y: y}, true

	case d.pressed && buttons == 0:
		d.pressed = false
		logger.DebugTagf("mouse", "Up at (%d,%d)", x, y)
		return core.Pointer{Kind: core.PointerUp, X: x, Y: y}, true
	}
	return core.Pointer{}, false
}

// Ignore swallows the rest of the current press, up to and including its
// release. Nothing is decoded until every gesture button is up.
func (d *MouseDecoder) Ignore() {
	if d.pressed {
		d.pressed = false
		d.ignoring = true
		logger.DebugTagf("mouse", "Ignoring press until release")
	}
}
