package events

import (
	"sync"
)

// Event names published by the catalog service.
const (
	ProductUpdated    = "productUpdated"
	ProductAdded      = "productAdded"
	ProductRemoved    = "productRemoved"
	ProductDeleted    = "productDeleted"
	CategoryUpdated   = "categoryUpdated"
	RefreshCategories = "refreshCategories"
)

// Event carries the id of the changed entity plus the changed fields.
type Event struct {
	Name     string
	EntityID string
	Fields   map[string]interface{}
}

// Handler receives a published event. Handlers run synchronously on the
// publisher's goroutine; keep them short.
type Handler func(Event)

// Bus is an in-process publish/subscribe dispatcher. Delivery is
// synchronous and best-effort: no queuing, no replay. A subscriber
// registered after an event fires never sees it. Each subscriber is
// invoked exactly once per publish; ordering between subscribers is
// unspecified.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[int]Handler),
	}
}

// Subscribe registers h for the named event and returns an unsubscribe
// function. Unsubscribing twice is a no-op.
func (b *Bus) Subscribe(name string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[name] == nil {
		b.subs[name] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[name][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[name], id)
	}
}

// Publish delivers the event to every current subscriber of evt.Name.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[evt.Name]))
	for _, h := range b.subs[evt.Name] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	// Dispatch outside the lock so a handler may subscribe/unsubscribe.
	for _, h := range handlers {
		h(evt)
	}
}
