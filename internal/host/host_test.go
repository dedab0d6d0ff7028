package host

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binblock/internal/events"
)

type stubWindow struct{ name string }

func (w *stubWindow) Name() string     { return w.name }
func (w *stubWindow) Emit(_, _ string) {}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Lookup("main")
	assert.False(t, ok)

	w := &stubWindow{name: "main"}
	reg.Attach(w)

	got, ok := reg.Lookup("main")
	require.True(t, ok)
	assert.Same(t, w, got.(*stubWindow))
}

func TestRegistryDetach(t *testing.T) {
	reg := NewRegistry()
	reg.Attach(&stubWindow{name: "main"})
	reg.Detach("main")

	_, ok := reg.Lookup("main")
	assert.False(t, ok)
}

func TestRegistryReplace(t *testing.T) {
	reg := NewRegistry()
	first := &stubWindow{name: "main"}
	second := &stubWindow{name: "main"}
	reg.Attach(first)
	reg.Attach(second)

	got, ok := reg.Lookup("main")
	require.True(t, ok)
	assert.Same(t, second, got.(*stubWindow))
}

func TestBusWindowEmit(t *testing.T) {
	bus := events.NewBus(8)
	defer bus.Close()

	var mu sync.Mutex
	var got []string
	bus.Subscribe(WindowEventType("main", "menu-event"), func(e events.Event) {
		mu.Lock()
		got = append(got, e.Payload)
		mu.Unlock()
	})

	w := NewBusWindow("main", bus)
	assert.Equal(t, "main", w.Name())
	w.Emit("menu-event", "edit:undo")

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("event not delivered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"edit:undo"}, got)
}
