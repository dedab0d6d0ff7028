// Package app wires the shell together: capability plugins, the static
// menu, the menu-event bridge, and the host run loop. Setup is fail-fast;
// once Run hands control to the host, the only code left in this layer is
// the bridge callback.
package app

import (
	"errors"
	"fmt"
	"sync/atomic"

	"fyne.io/fyne/v2"

	"binblock/internal/config"
	"binblock/internal/events"
	"binblock/internal/host"
	"binblock/internal/logger"
	"binblock/internal/menu"
	"binblock/internal/plugin"
	"binblock/internal/plugin/dialogs"
	"binblock/internal/plugin/fsaccess"
	"binblock/internal/plugin/opener"
)

// ErrAlreadyRunning is returned by a second Run call; the shell is a
// single-shot process.
var ErrAlreadyRunning = errors.New("application already running")

const busBufferSize = 64

type Application struct {
	cfg     *config.Config
	logger  logger.Logger
	fyne    *host.FyneHost
	bus     *events.Bus
	windows *host.Registry
	plugins *plugin.Registry
	bridge  *Bridge

	lifecycle *Lifecycle
	mainMenu  *fyne.MainMenu
	bindings  []menu.Binding
	running   atomic.Bool
}

// New builds the shell against a live host window. Any failure is fatal to
// startup.
func New(cfg *config.Config, log logger.Logger) (*Application, error) {
	return bootstrap(cfg, log, host.NewFyne(cfg), defaultPlugins())
}

func defaultPlugins() []plugin.Plugin {
	return []plugin.Plugin{dialogs.New(), fsaccess.New(), opener.New()}
}

// bootstrap performs the ordered setup sequence: plugins first, then menu
// construction and attachment, then the event bridge. The fyne host is nil
// in unit tests; menu attachment and accelerator registration are skipped
// headless, everything else runs identically.
func bootstrap(cfg *config.Config, log logger.Logger, h *host.FyneHost, plugins []plugin.Plugin) (*Application, error) {
	a := &Application{
		cfg:       cfg,
		logger:    log,
		fyne:      h,
		bus:       events.NewBus(busBufferSize),
		windows:   host.NewRegistry(),
		plugins:   plugin.NewRegistry(log),
		lifecycle: NewLifecycle(log),
	}
	a.bridge = NewBridge(a.bus, a.windows, log)

	pluginCtx := &plugin.Context{Logger: log, Config: cfg}
	if h != nil {
		pluginCtx.App = h.App
		pluginCtx.Window = h.Window
	}

	for _, p := range plugins {
		if err := a.plugins.Register(pluginCtx, p); err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
	}

	if err := a.buildMenu(); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	a.bridge.Start()
	a.attachMainWindow()

	a.lifecycle.Add("event bus", ShutdownFunc(a.bus.Close))
	a.lifecycle.Add("plugin registry", a.plugins)
	a.lifecycle.Add("menu bridge", a.bridge)

	log.Info("Application", "bootstrap complete", map[string]interface{}{
		"version": config.AppVersion,
		"plugins": a.plugins.Names(),
	})
	return a, nil
}

func (a *Application) buildMenu() error {
	model := menu.Shell()

	mainMenu, bindings, err := menu.Render(model, a.bridge.Activate, a.showAbout)
	if err != nil {
		return err
	}
	a.mainMenu = mainMenu
	a.bindings = bindings

	if a.fyne == nil {
		return nil
	}

	a.fyne.Window.SetMainMenu(mainMenu)
	for _, b := range bindings {
		a.fyne.RegisterAccelerator(b.Accelerator, b.Action)
	}
	return nil
}

func (a *Application) attachMainWindow() {
	a.windows.Attach(host.NewBusWindow(MainWindowName, a.bus))

	if a.fyne == nil {
		return
	}
	a.fyne.Window.SetOnClosed(func() {
		a.windows.Detach(MainWindowName)
		a.lifecycle.Shutdown()
	})
}

func (a *Application) showAbout() {
	p, ok := a.plugins.Get(dialogs.Name)
	if !ok {
		return
	}
	d := p.(*dialogs.Plugin)
	d.ShowInfo("About "+config.AppName, config.AppName+" "+config.AppVersion)
}

// Run enters the host event loop and blocks until the application exits.
// A second call is rejected.
func (a *Application) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	if a.fyne == nil {
		return errors.New("run: no host attached")
	}

	a.logger.Info("Application", "entering host event loop", nil)
	a.fyne.Run()
	a.logger.Info("Application", "host event loop exited", nil)
	return nil
}

// Shutdown tears the shell down out-of-band (signal handling); normal
// window closure triggers the same sequence through the host callback.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}

// Windows exposes the window registry to the rest of the process.
func (a *Application) Windows() *host.Registry {
	return a.windows
}

// Bus exposes the event bus; the application core subscribes to
// "menu-event" emissions through it.
func (a *Application) Bus() *events.Bus {
	return a.bus
}
