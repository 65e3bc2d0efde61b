// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/jumble/internal/clipboard"
	"github.com/bethropolis/jumble/internal/commands"
	"github.com/bethropolis/jumble/internal/config"
	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/event"
	"github.com/bethropolis/jumble/internal/highlight"
	"github.com/bethropolis/jumble/internal/highlighter"
	"github.com/bethropolis/jumble/internal/input"
	"github.com/bethropolis/jumble/internal/layout"
	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/modehandler"
	"github.com/bethropolis/jumble/internal/plugin"
	"github.com/bethropolis/jumble/internal/render"
	"github.com/bethropolis/jumble/internal/statusbar"
	"github.com/bethropolis/jumble/internal/theme"
	"github.com/bethropolis/jumble/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the arranger.
type App struct {
	cfg              *config.Config
	tuiManager       *tui.TUI
	engine           *core.Engine
	statusBar        *statusbar.StatusBar
	eventManager     *event.Manager
	pluginManager    *plugin.Manager
	modeHandler      *modehandler.ModeHandler
	themeManager     *theme.Manager
	mouse            *input.MouseDecoder
	clipboard        *clipboard.Clipboard
	arrangerAPI      plugin.ArrangerAPI
	highlighter      *highlighter.Highlighter // nil when syntax tint is off
	highlightManager *highlight.Manager
	initialText      string

	// Syntax tint state. tintElems are the elements of tintGeneration in
	// submission order, which is the order highlight results are indexed by.
	tints          render.Tints
	tintElems      []*core.Element
	tintGeneration int

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
	tcellEvents   chan tcell.Event
	highlights    chan highlight.Result
}

// NewApp creates the terminal screen and wires every component from cfg.
// initialText, when not empty, is arranged once the app starts.
func NewApp(cfg *config.Config, initialText string) (*App, error) {
	themeManager := theme.NewManager(config.ThemesDir())
	tuiManager, err := tui.New(themeManager.Current().GetStyle(theme.StyleDefault))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newApp(cfg, tuiManager, themeManager, initialText), nil
}

func newApp(cfg *config.Config, tuiManager *tui.TUI, themeManager *theme.Manager, initialText string) *App {
	arr := cfg.Arranger
	eventManager := event.NewManager()

	resolver, err := core.PolicyByName(arr.SwapPolicy)
	if err != nil {
		logger.Warnf("App: %v, using %s", err, core.PolicyExchange)
		resolver = core.ExchangePolicy{}
	}
	width, _ := tuiManager.Size()
	engine := core.NewEngine(core.Options{
		Layout:         flowFor(arr, width),
		Resolver:       resolver,
		ReflowOnInsert: arr.ReflowOnInsert,
		Events:         eventManager,
	})

	additive, err := input.ModifierMask(arr.AdditiveModifier)
	if err != nil {
		logger.Warnf("App: %v, using %s", err, config.ModifierCtrl)
		additive = tcell.ModCtrl
	}

	if arr.Theme != "" {
		if err := themeManager.SetTheme(arr.Theme); err != nil {
			logger.Warnf("App: configured theme: %v", err)
		}
	}
	tuiManager.SetStyle(themeManager.Current().GetStyle(theme.StyleDefault))

	statusBar := statusbar.New(statusbar.DefaultConfig())
	quitChan := make(chan struct{})

	// --- Create Mode Handler ---
	modeHandler := modehandler.New(modehandler.Config{
		Engine:         engine,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		engine:        engine,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		modeHandler:   modeHandler,
		themeManager:  themeManager,
		mouse:         input.NewMouseDecoder(additive),
		clipboard:     clipboard.New(arr.SystemClipboard),
		initialText:   initialText,
		tints:         make(render.Tints),
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
		tcellEvents:   make(chan tcell.Event, 16),
		highlights:    make(chan highlight.Result, 1),
	}

	// --- Syntax Tint ---
	if arr.SyntaxTint {
		h, err := highlighter.New()
		if err != nil {
			logger.Warnf("App: syntax tint disabled: %v", err)
		} else {
			a.highlighter = h
			a.highlightManager = highlight.NewManager(h, a.deliverHighlights)
		}
	}

	a.arrangerAPI = newArrangerAPI(a)

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeTextSubmitted, a.handleTextSubmitted)
	eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	eventManager.Subscribe(event.TypeElementsSwapped, a.handleElementsSwapped)

	// --- Commands and Plugins ---
	commands.RegisterAppCommands(a.arrangerAPI)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.arrangerAPI); err != nil {
		logger.Warnf("App: %v", err)
	}

	return a
}

// flowFor builds the flow layout for a container width.
func flowFor(arr config.ArrangerConfig, width int) layout.Flow {
	return layout.Flow{
		Width:       width,
		LeftMargin:  arr.LeftMargin,
		TopMargin:   arr.TopMargin,
		RightMargin: arr.RightMargin,
		ColumnStep:  arr.ColumnStep,
		LineHeight:  arr.LineHeight,
	}
}

// Run starts the application's main loop. It returns once quit is signalled.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()
	defer a.stopHighlighting()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	if a.initialText != "" {
		a.engine.Submit(a.initialText)
	}
	a.statusBar.SetTemporaryMessage("%s %s - i type text | drag to rearrange | : commands | ESC quit", config.AppName, config.Version)
	a.requestRedraw()

	// --- Main Loop ---
	// The only goroutine that touches the engine and draws.
	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case ev := <-a.tcellEvents:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case res := <-a.highlights:
			if a.applyHighlights(res) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// pollEvents forwards tcell events to the main loop until the screen closes.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.tcellEvents <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent applies one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch eventData := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		width, _ := a.tuiManager.Size()
		// Only the next submission flows into the new width; the current
		// arrangement keeps its positions.
		a.engine.SetLayout(flowFor(a.cfg.Arranger, width))
		return true

	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(eventData)

	case *tcell.EventMouse:
		return a.handleMouse(eventData)
	}
	return false
}

// handleMouse turns button transitions into engine pointer events.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	p, ok := a.mouse.Decode(ev)
	if !ok {
		return false
	}
	if p.Kind == core.PointerDown && p.Y >= a.viewHeight() {
		// Presses on the status bar are not gestures.
		a.mouse.Ignore()
		return false
	}
	before := a.engine.State()
	a.engine.HandlePointer(p)
	return p.Kind != core.PointerMove || before != core.StateIdle
}

func (a *App) viewHeight() int {
	_, h := a.tuiManager.Size()
	return max(h-config.StatusBarHeight, 0)
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// SetTheme activates a theme and redraws with it.
func (a *App) SetTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := a.themeManager.Current()
	a.tuiManager.SetStyle(current.GetStyle(theme.StyleDefault))
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	a.requestRedraw()
	return nil
}
