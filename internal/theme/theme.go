// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/jumble/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names the renderer and status bar look up.
const (
	StyleDefault          = "Default"
	StyleChar             = "Char"
	StyleSelected         = "Selected"
	StyleDropTarget       = "DropTarget"
	StyleDragged          = "Dragged"
	StyleSweepBox         = "SweepBox"
	StylePrompt           = "Prompt"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMode    = "StatusBarMode"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarGesture = "StatusBarGesture"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name. A dotted name such as "keyword.control"
// falls back to its base ("keyword"), then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Tint lays the foreground of the syntax style for class over base, keeping
// base's background and attributes.
func (t *Theme) Tint(base tcell.Style, class string) tcell.Style {
	if class == "" {
		return base
	}
	syntax, ok := t.Styles[class]
	if !ok {
		if dotIndex := strings.Index(class, "."); dotIndex != -1 {
			syntax, ok = t.Styles[class[:dotIndex]]
		}
	}
	if !ok {
		return base
	}
	fg, _, _ := syntax.Decompose()
	return base.Foreground(fg)
}

// DarkThemeName is the built-in theme used when nothing else is configured.
const DarkThemeName = "Jumble Dark"

// LightThemeName is the built-in light variant.
const LightThemeName = "Jumble Light"

type palette struct {
	bar, fg, dim  tcell.Color
	accent, warm  tcell.Color
	green, cyan   tcell.Color
	blue, magenta tcell.Color
	isDark        bool
}

func buildTheme(name string, p palette) *Theme {
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(p.fg)
	bar := tcell.StyleDefault.Background(p.bar).Foreground(p.fg)

	return &Theme{
		Name:   name,
		IsDark: p.isDark,
		Styles: map[string]tcell.Style{
			// --- Arrangement ---
			StyleDefault:    base,
			StyleChar:       base,
			StyleSelected:   base.Reverse(true),
			StyleDragged:    base.Reverse(true).Bold(true),
			StyleDropTarget: tcell.StyleDefault.Background(p.accent).Foreground(tcell.ColorBlack),
			StyleSweepBox:   base.Foreground(p.dim),
			StylePrompt:     base.Foreground(p.green).Bold(true),

			// --- Status Bar ---
			StyleStatusBar:        bar,
			StyleStatusBarMode:    bar.Foreground(p.blue).Bold(true),
			StyleStatusBarMessage: bar.Bold(true),
			StyleStatusBarGesture: bar.Foreground(p.warm),

			// --- Syntax tint ---
			"keyword":     base.Foreground(p.blue).Bold(true),
			"string":      base.Foreground(p.green),
			"comment":     base.Foreground(p.dim).Italic(true),
			"number":      base.Foreground(p.warm),
			"constant":    base.Foreground(p.warm),
			"type":        base.Foreground(p.cyan),
			"function":    base.Foreground(p.accent),
			"operator":    base.Foreground(p.fg),
			"punctuation": base.Foreground(p.dim),
			"escape":      base.Foreground(p.magenta),

			"type.builtin":     base.Foreground(p.cyan).Bold(true),
			"function.builtin": base.Foreground(p.cyan).Italic(true),
			"string.escape":    base.Foreground(p.magenta),
		},
	}
}

// DevComfortDark returns a fresh copy of the built-in dark theme.
func DevComfortDark() *Theme {
	return buildTheme(DarkThemeName, palette{
		bar:     tcell.NewHexColor(0x2a2f38),
		fg:      tcell.NewHexColor(0xc5cdd9),
		dim:     tcell.NewHexColor(0x5c6370),
		accent:  tcell.NewHexColor(0xe5c07b),
		warm:    tcell.NewHexColor(0xd19a66),
		green:   tcell.NewHexColor(0x98c379),
		cyan:    tcell.NewHexColor(0x56b6c2),
		blue:    tcell.NewHexColor(0x61afef),
		magenta: tcell.NewHexColor(0xc678dd),
		isDark:  true,
	})
}

// DevComfortLight returns a fresh copy of the built-in light theme.
func DevComfortLight() *Theme {
	return buildTheme(LightThemeName, palette{
		bar:     tcell.NewHexColor(0xe5e9f0),
		fg:      tcell.NewHexColor(0x383a42),
		dim:     tcell.NewHexColor(0xa0a1a7),
		accent:  tcell.NewHexColor(0xc18401),
		warm:    tcell.NewHexColor(0x986801),
		green:   tcell.NewHexColor(0x50a14f),
		cyan:    tcell.NewHexColor(0x0184bc),
		blue:    tcell.NewHexColor(0x4078f2),
		magenta: tcell.NewHexColor(0xa626a4),
	})
}
