// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/jumble/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu          sync.RWMutex
	plugins     map[string]Plugin
	order       []string // registration order, so startup is deterministic
	initialized map[string]bool
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins:     make(map[string]Plugin),
		initialized: make(map[string]bool),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	if plugin == nil {
		return fmt.Errorf("plugin registration failed: nil plugin")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	m.order = append(m.order, name)
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every registered plugin in
// registration order. A failing plugin is logged and skipped; the first
// error is returned after all plugins had their turn.
func (m *Manager) InitializePlugins(api ArrangerAPI) error {
	m.mu.RLock()
	toInit := m.inOrder()
	m.mu.RUnlock()

	logger.Infof("Plugin Manager: Initializing %d plugins...", len(toInit))
	var firstErr error
	for _, p := range toInit {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", p.Name(), err)
			if firstErr == nil {
				firstErr = fmt.Errorf("initialize plugin '%s': %w", p.Name(), err)
			}
			continue
		}
		m.mu.Lock()
		m.initialized[p.Name()] = true
		m.mu.Unlock()
		logger.Debugf("Plugin Manager: Successfully initialized plugin '%s'", p.Name())
	}
	return firstErr
}

// ShutdownPlugins calls Shutdown on the plugins that initialized, newest first.
func (m *Manager) ShutdownPlugins() {
	m.mu.Lock()
	all := m.inOrder()
	var toShutdown []Plugin
	for i := len(all) - 1; i >= 0; i-- {
		if m.initialized[all[i].Name()] {
			toShutdown = append(toShutdown, all[i])
		}
	}
	clear(m.initialized)
	m.mu.Unlock()

	logger.Infof("Plugin Manager: Shutting down %d plugins...", len(toShutdown))
	for _, p := range toShutdown {
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name. Use cautiously.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}

// Names returns the registered plugin names, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := append([]string(nil), m.order...)
	sort.Strings(names)
	return names
}

// inOrder must be called with mu held.
func (m *Manager) inOrder() []Plugin {
	list := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		list = append(list, m.plugins[name])
	}
	return list
}
