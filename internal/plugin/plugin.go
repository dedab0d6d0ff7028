// Package plugin defines the capability-plugin contract and the fail-fast
// registry the bootstrap registers plugins through. A plugin that cannot
// initialize aborts startup; running with a silently broken capability
// would leave menu actions dead.
package plugin

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"

	"binblock/internal/config"
	"binblock/internal/logger"
)

var ErrAlreadyRegistered = errors.New("plugin already registered")

// Context carries the host handles a plugin may need. App and Window are
// nil in unit tests; plugins must tolerate that until a capability method
// actually needs them.
type Context struct {
	App    fyne.App
	Window fyne.Window
	Logger logger.Logger
	Config *config.Config
}

// Plugin is a host-loaded capability module.
type Plugin interface {
	Name() string
	Init(ctx *Context) error
}

// Shutdownable is implemented by plugins holding resources that need
// releasing when the shell exits.
type Shutdownable interface {
	Shutdown()
}

// Registry holds registered plugins in registration order.
type Registry struct {
	plugins []Plugin
	byName  map[string]Plugin
	logger  logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		byName: make(map[string]Plugin),
		logger: log,
	}
}

// Register initializes the plugin and records it. The first failure is
// returned immediately; the caller aborts startup.
func (r *Registry) Register(ctx *Context, p Plugin) error {
	name := p.Name()
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("register plugin %q: %w", name, ErrAlreadyRegistered)
	}

	if err := p.Init(ctx); err != nil {
		return fmt.Errorf("register plugin %q: %w", name, err)
	}

	r.plugins = append(r.plugins, p)
	r.byName[name] = p
	r.logger.Info("PluginRegistry", "plugin registered", map[string]interface{}{
		"plugin": name,
	})
	return nil
}

// Get returns the plugin registered under name.
func (r *Registry) Get(name string) (Plugin, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Names lists registered plugins in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for _, p := range r.plugins {
		names = append(names, p.Name())
	}
	return names
}

// Shutdown releases plugin resources in reverse registration order.
func (r *Registry) Shutdown() {
	for i := len(r.plugins) - 1; i >= 0; i-- {
		if s, ok := r.plugins[i].(Shutdownable); ok {
			s.Shutdown()
			r.logger.Debug("PluginRegistry", "plugin shut down", map[string]interface{}{
				"plugin": r.plugins[i].Name(),
			})
		}
	}
}
