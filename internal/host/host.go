// Package host abstracts the pieces of the GUI runtime the shell touches
// directly: the named-window registry, the window event channel, and
// accelerator bindings. The bootstrap and its tests talk to these types
// rather than to fyne, so the menu-event bridge can run against a fake
// registry.
package host

import "sync"

// Window is the surface the shell needs from a named application window:
// its registry name and an event channel keyed by event name.
type Window interface {
	Name() string
	Emit(event, payload string)
}

// Registry is a thread-safe lookup of live windows by name. The host
// serializes all access; callers never observe a partially attached window.
type Registry struct {
	mu      sync.RWMutex
	windows map[string]Window
}

func NewRegistry() *Registry {
	return &Registry{windows: make(map[string]Window)}
}

// Attach registers the window under its name, replacing any previous window
// with the same name.
func (r *Registry) Attach(w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[w.Name()] = w
}

// Detach removes the window registered under name, if any.
func (r *Registry) Detach(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, name)
}

// Lookup returns the window registered under name. The second return is
// false when no such window exists; callers treat that as a normal
// transient state, not an error.
func (r *Registry) Lookup(name string) (Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[name]
	return w, ok
}
