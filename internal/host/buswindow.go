package host

import "binblock/internal/events"

// BusWindow adapts a named window's event channel onto the process-local
// event bus. Fyne has no per-window message channel of its own, so window
// events are delivered as bus events typed "window:<name>:<event>"; the
// application core subscribes to those.
type BusWindow struct {
	name string
	bus  *events.Bus
}

func NewBusWindow(name string, bus *events.Bus) *BusWindow {
	return &BusWindow{name: name, bus: bus}
}

func (w *BusWindow) Name() string {
	return w.name
}

func (w *BusWindow) Emit(event, payload string) {
	w.bus.Publish(events.Event{
		Type:    "window:" + w.name + ":" + event,
		Payload: payload,
	})
}

// WindowEventType returns the bus event type carrying emissions of the named
// event on the named window.
func WindowEventType(window, event string) string {
	return "window:" + window + ":" + event
}
