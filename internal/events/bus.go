package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is a named message with a string payload. Menu activations travel
// the bus as {Type: "menu", Payload: "<item id>"}; window emissions as
// {Type: "window:<name>:<event>", Payload: "<item id>"}.
type Event struct {
	Type    string
	Payload string
	Time    time.Time
}

// Handler consumes a single event. Handlers run on the bus worker and must
// not block.
type Handler func(Event)

// Subscription identifies a registered handler for later removal.
type Subscription struct {
	id        string
	eventType string
}

type subscriber struct {
	id      string
	handler Handler
}

// Bus is a buffered publish/subscribe channel. Events of the same type are
// dispatched in publish order by a single worker goroutine; publishing never
// blocks, and events are dropped when the buffer is full.
type Bus struct {
	subscribers map[string][]subscriber
	mu          sync.RWMutex
	buffer      chan Event
	wg          sync.WaitGroup
	closeOnce   sync.Once
	closing     sync.RWMutex
	closed      bool
}

func NewBus(bufferSize int) *Bus {
	bus := &Bus{
		subscribers: make(map[string][]subscriber),
		buffer:      make(chan Event, bufferSize),
	}

	bus.startWorker()
	return bus
}

// Publish queues the event for dispatch. The event is stamped with the
// current time if the caller left Time zero.
func (b *Bus) Publish(event Event) {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	b.closing.RLock()
	defer b.closing.RUnlock()
	if b.closed {
		return
	}

	select {
	case b.buffer <- event:
	default:
		// Drop when full rather than stall the publisher.
	}
}

// Subscribe registers a handler for the given event type and returns a
// subscription handle for Unsubscribe.
func (b *Bus) Subscribe(eventType string, handler Handler) Subscription {
	sub := subscriber{id: uuid.NewString(), handler: handler}

	b.mu.Lock()
	b.subscribers[eventType] = append(b.subscribers[eventType], sub)
	b.mu.Unlock()

	return Subscription{id: sub.id, eventType: eventType}
}

func (b *Bus) Unsubscribe(s Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[s.eventType]
	for i, sub := range subs {
		if sub.id == s.id {
			b.subscribers[s.eventType] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

// Close stops the worker after draining queued events. Publish becomes a
// no-op once closing starts.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		b.closing.Lock()
		b.closed = true
		close(b.buffer)
		b.closing.Unlock()
		b.wg.Wait()
	})
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for event := range b.buffer {
			b.dispatch(event)
		}
	}()
}

func (b *Bus) dispatch(event Event) {
	b.mu.RLock()
	subs := make([]subscriber, len(b.subscribers[event.Type]))
	copy(subs, b.subscribers[event.Type])
	b.mu.RUnlock()

	// Handlers run inline on the worker so per-type ordering matches
	// publish order.
	for _, sub := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// A panicking handler must not take down the worker.
				}
			}()
			sub.handler(event)
		}()
	}
}
