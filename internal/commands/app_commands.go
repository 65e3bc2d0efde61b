package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/jumble/internal/core"
	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/plugin"
)

// RegisterAppCommands registers the built-in ':' commands.
func RegisterAppCommands(api plugin.ArrangerAPI) {
	RegisterArrangeCommands(api)
	RegisterThemeCommands(api)

	quit := func(args []string) error {
		api.RequestQuit()
		return nil
	}
	register(api, "q", quit)
	register(api, "quit", quit)
}

// RegisterArrangeCommands registers commands that act on the arrangement.
func RegisterArrangeCommands(api plugin.ArrangerAPI) {
	// --- Policy Command ---
	// With no argument the policy flips between exchange and insert.
	register(api, "policy", func(args []string) error {
		name := core.PolicyExchange
		switch {
		case len(args) > 0:
			name = args[0]
		case api.Policy() == core.PolicyExchange:
			name = core.PolicyInsert
		}
		if err := api.SetPolicy(name); err != nil {
			return fmt.Errorf("%w (want %s or %s)", err, core.PolicyExchange, core.PolicyInsert)
		}
		api.SetStatusMessage("Swap policy: %s", api.Policy())
		return nil
	})

	// --- Text Command ---
	register(api, "text", func(args []string) error {
		text := strings.Join(args, " ")
		api.SubmitText(text)
		api.SetStatusMessage("Arranged %d character(s)", api.ElementCount())
		return nil
	})

	// --- Clipboard Commands ---
	register(api, "copy", func(args []string) error {
		text := api.ReadingText()
		if text == "" {
			api.SetStatusMessage("Nothing to copy")
			return nil
		}
		if err := api.CopyText(text); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		api.SetStatusMessage("Copied %d character(s)", len([]rune(text)))
		return nil
	})
	register(api, "paste", func(args []string) error {
		text, err := api.PasteText()
		if err != nil {
			return fmt.Errorf("paste failed: %w", err)
		}
		api.SubmitText(text)
		api.SetStatusMessage("Pasted %d character(s)", api.ElementCount())
		return nil
	})

	// --- Selection Commands ---
	register(api, "all", func(args []string) error {
		api.SelectAll()
		return nil
	})
	register(api, "none", func(args []string) error {
		api.ClearSelection()
		return nil
	})
}

// RegisterThemeCommands registers only theme-related commands
func RegisterThemeCommands(api plugin.ArrangerAPI) {
	// --- Theme Command ---
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Current theme: %s", api.GetTheme().Name)
			return nil
		}

		themeName := strings.Join(args, " ") // Allow theme names with spaces
		if err := api.SetTheme(themeName); err != nil {
			themeList := strings.Join(api.ListThemes(), ", ")
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, themeList)
		}
		api.SetStatusMessage("Theme set to: %s", api.GetTheme().Name)
		return nil
	}

	// --- Theme List Command ---
	themeListCmdFunc := func(args []string) error {
		api.SetStatusMessage("Available themes: %s", strings.Join(api.ListThemes(), ", "))
		return nil
	}

	register(api, "theme", themeCmdFunc)
	register(api, "themes", themeListCmdFunc)
}

func register(api plugin.ArrangerAPI, name string, fn plugin.CommandFunc) {
	if err := api.RegisterCommand(name, fn); err != nil {
		logger.Warnf("Failed to register ':%s' command: %v", name, err)
	}
}
