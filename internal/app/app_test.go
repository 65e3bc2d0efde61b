package app

import (
	"strings"
	"testing"

	"github.com/bethropolis/jumble/internal/config"
	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/highlight"
	"github.com/bethropolis/jumble/internal/theme"
	"github.com/bethropolis/jumble/internal/tui"
	"github.com/bethropolis/jumble/internal/types"
	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Arranger.SyntaxTint = false
	cfg.Arranger.SystemClipboard = false

	sim := tcell.NewSimulationScreen("UTF-8")
	tm, err := tui.NewWithScreen(sim, tcell.StyleDefault)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	sim.SetSize(40, 10)
	t.Cleanup(tm.Close)

	return newApp(cfg, tm, theme.NewManager(""), ""), sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func (a *App) click(x, y int, btn tcell.ButtonMask) {
	a.handleEvent(tcell.NewEventMouse(x, y, btn, tcell.ModNone))
}

func (a *App) typeKeys(s string) {
	for _, r := range s {
		a.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestMouseDragExchangesCharacters(t *testing.T) {
	a, sim := newTestApp(t)
	a.engine.Submit("ab")
	first := a.engine.Elements()[0]
	if first.Position() != (types.Point{X: config.DefaultLeftMargin, Y: config.DefaultTopMargin}) {
		t.Fatalf("a placed at %v", first.Position())
	}
	ax, ay := first.Left, first.Top
	bx := a.engine.Elements()[1].Left

	// Select a, then press on it again to drag it onto b.
	a.click(ax, ay, tcell.Button1)
	a.click(ax, ay, tcell.ButtonNone)
	a.click(ax, ay, tcell.Button1)
	a.click(bx, ay, tcell.Button1)
	if a.engine.DropTarget() == nil {
		t.Errorf("no drop target while over b")
	}
	a.click(bx, ay, tcell.ButtonNone)

	if got := a.engine.ReadingText(); got != "ba" {
		t.Fatalf("reading text = %q, want ba", got)
	}

	a.draw()
	if r, _, _, _ := sim.GetContent(ax, ay); r != 'b' {
		t.Errorf("screen at (%d,%d) = %q, want b", ax, ay, r)
	}
	if !strings.Contains(rowText(sim, 9), "Swapped 1") {
		t.Errorf("status row = %q", rowText(sim, 9))
	}
}

func TestStatusBarPressIsNotAGesture(t *testing.T) {
	a, _ := newTestApp(t)
	a.engine.Submit("ab")
	a.click(0, 9, tcell.Button1)
	if a.mouse.Pressed() || a.engine.State() != core.StateIdle {
		t.Errorf("press on the status bar started a gesture")
	}

	// Holding the button and moving into the view still starts nothing.
	a.click(20, 5, tcell.Button1)
	a.click(22, 6, tcell.Button1)
	if a.engine.State() != core.StateIdle {
		t.Errorf("held press from the status bar started a %s gesture", a.engine.State())
	}
	a.click(22, 6, tcell.ButtonNone)

	// The next press after the release is an ordinary gesture.
	first := a.engine.Elements()[0]
	a.click(first.Left, first.Top, tcell.Button1)
	a.click(first.Left, first.Top, tcell.ButtonNone)
	if !first.Selected() {
		t.Errorf("press after the ignored one did not select")
	}
}

func TestTypingSubmitsAndDraws(t *testing.T) {
	a, sim := newTestApp(t)
	a.typeKeys("i")
	a.typeKeys("x y")
	a.draw()
	if row := rowText(sim, 9); !strings.HasPrefix(row, "> x y") {
		t.Errorf("prompt row = %q", row)
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if a.engine.Text() != "x y" {
		t.Fatalf("text = %q", a.engine.Text())
	}
	a.draw()
	if r, _, _, _ := sim.GetContent(config.DefaultLeftMargin+config.DefaultColumnStep, config.DefaultTopMargin); r != '·' {
		t.Errorf("space drawn as %q, want middle dot", r)
	}
	a.statusBar.ResetTemporaryMessage()
	a.draw()
	row := rowText(sim, 9)
	if !strings.Contains(row, "NORMAL") || !strings.Contains(row, "3 chars") {
		t.Errorf("status row = %q", row)
	}
}

func TestHighlightResultsMapToSubmittedElements(t *testing.T) {
	a, _ := newTestApp(t)
	a.engine.Submit("go")
	gen := a.engine.Generation()
	elems := a.engine.Elements()

	if a.applyHighlights(highlight.Result{Generation: gen - 1, Classes: []string{"keyword", "keyword"}}) {
		t.Errorf("stale result applied")
	}
	if !a.applyHighlights(highlight.Result{Generation: gen, Classes: []string{"keyword", ""}}) {
		t.Fatalf("current result not applied")
	}
	if a.tints[elems[0]] != "keyword" || a.tints[elems[1]] != "" {
		t.Errorf("tints = %v", a.tints)
	}

	a.engine.Submit("x")
	if len(a.tints) != 0 {
		t.Errorf("tints survived a new submission")
	}
}

func TestCommandsThroughKeys(t *testing.T) {
	a, _ := newTestApp(t)

	var themeEvents int
	a.eventManager.Subscribe(event.TypeThemeChanged, func(event.Event) bool {
		themeEvents++
		return false
	})
	a.typeKeys(":theme jumble light")
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.themeManager.Current().Name != theme.LightThemeName || themeEvents != 1 {
		t.Errorf("theme = %s, events = %d", a.themeManager.Current().Name, themeEvents)
	}

	a.typeKeys("p")
	if a.engine.Resolver().Name() != core.PolicyInsert {
		t.Errorf("policy after p = %s", a.engine.Resolver().Name())
	}

	a.typeKeys(":q")
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	select {
	case <-a.quit:
	default:
		t.Errorf(":q did not signal quit")
	}
}
