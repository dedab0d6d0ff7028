package app

import (
	"binblock/internal/events"
	"binblock/internal/host"
	"binblock/internal/logger"
)

const (
	// MainWindowName is the fixed registry name of the application's main
	// window.
	MainWindowName = "main"

	// MenuEventName is the window event carrying activated menu item ids.
	MenuEventName = "menu-event"

	// menuActivationType is the internal bus type menu selections are
	// published under before the bridge forwards them.
	menuActivationType = "menu"
)

// Bridge forwards menu activations to the main window as "menu-event"
// emissions. When the main window is not registered the activation is
// dropped: a missed menu click during window teardown is a no-op, not a
// failure.
type Bridge struct {
	bus     *events.Bus
	windows *host.Registry
	logger  logger.Logger
	sub     events.Subscription
	started bool
}

func NewBridge(bus *events.Bus, windows *host.Registry, log logger.Logger) *Bridge {
	return &Bridge{bus: bus, windows: windows, logger: log}
}

// Start subscribes the bridge to menu activations. Idempotent.
func (b *Bridge) Start() {
	if b.started {
		return
	}
	b.sub = b.bus.Subscribe(menuActivationType, b.forward)
	b.started = true
}

func (b *Bridge) Shutdown() {
	if !b.started {
		return
	}
	b.bus.Unsubscribe(b.sub)
	b.started = false
}

func (b *Bridge) forward(e events.Event) {
	window, ok := b.windows.Lookup(MainWindowName)
	if !ok {
		b.logger.Debug("MenuBridge", "main window absent, activation dropped", map[string]interface{}{
			"item": e.Payload,
		})
		return
	}
	window.Emit(MenuEventName, e.Payload)
}

// Activate publishes a menu activation for the given item id. The rendered
// menu's actions and the accelerator bindings both call this.
func (b *Bridge) Activate(id string) {
	b.bus.Publish(events.Event{Type: menuActivationType, Payload: id})
}
