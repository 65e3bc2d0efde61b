package app

import (
	"fmt" // For error wrapping

	"github.com/bethropolis/jumble/internal/logger"
	"github.com/bethropolis/jumble/internal/plugin"

	// Import desired plugin packages here
	"github.com/bethropolis/jumble/plugins/wordcount"
)

// pluginConstructors lists the built-in plugins.
// Adding a new plugin means adding its constructor here.
var pluginConstructors = []func() plugin.Plugin{
	wordcount.New,
}

// registerPlugins registers all known plugins with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		pluginName := p.Name()

		logger.Debugf("Registering plugin: %s", pluginName)
		if err := pm.Register(p); err != nil {
			// Log the error but continue registering others
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", pluginName, err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr // Store the first error encountered
			}
		}
	}

	return finalErr
}
