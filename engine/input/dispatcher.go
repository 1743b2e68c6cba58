package input

import (
	"slices"
	"sync"
)

type registration struct {
	id ListenerID
	fn Listener
}

// Dispatcher is a Target that keeps an ordered listener registry per event kind and delivers
// events to it. Platform adapters embed it and call Dispatch from their native callbacks.
type Dispatcher struct {
	mu        sync.Mutex
	nextID    ListenerID
	listeners map[EventKind][]registration
}

var _ Target = &Dispatcher{}

// NewDispatcher creates an empty Dispatcher.
//
// Returns:
//   - *Dispatcher: the new dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventKind][]registration)}
}

func (d *Dispatcher) AddListener(kind EventKind, l Listener) ListenerID {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listeners == nil {
		d.listeners = make(map[EventKind][]registration)
	}
	d.nextID++
	d.listeners[kind] = append(d.listeners[kind], registration{id: d.nextID, fn: l})
	return d.nextID
}

func (d *Dispatcher) RemoveListener(kind EventKind, id ListenerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	regs, ok := d.listeners[kind]
	if !ok {
		return
	}
	regs = slices.DeleteFunc(regs, func(r registration) bool {
		return r.id == id
	})
	if len(regs) == 0 {
		delete(d.listeners, kind)
		return
	}
	d.listeners[kind] = regs
}

// Count returns the number of listeners registered for kind.
//
// Parameters:
//   - kind: the event kind
//
// Returns:
//   - int: number of registrations
func (d *Dispatcher) Count(kind EventKind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[kind])
}

// Dispatch delivers e to every listener registered for e.Kind, in registration order.
// The registry is snapshotted first, so listeners may add or remove registrations while running.
//
// Parameters:
//   - e: the event to deliver
func (d *Dispatcher) Dispatch(e Event) {
	d.mu.Lock()
	regs := slices.Clone(d.listeners[e.Kind])
	d.mu.Unlock()

	for _, r := range regs {
		r.fn(e)
	}
}
