// Package pointer delivers click positions to scoped subscribers.
//
// A front end owns one Dispatcher and feeds it every click it receives. A
// component subscribes when it mounts and calls the returned cancel func when it
// unmounts.
package pointer

import (
	"sync"

	"github.com/marcus/boxrow/internal/geometry"
)

// Listener handles one click.
type Listener func(geometry.Point)

// Dispatcher fans clicks out to its current listeners.
type Dispatcher struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
	order     []int
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[int]Listener)}
}

// Subscribe registers l and returns a func that removes it. Cancel may be
// called any number of times.
func (d *Dispatcher) Subscribe(l Listener) (cancel func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.listeners[id] = l
	d.order = append(d.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *Dispatcher) remove(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.listeners, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Dispatch delivers p to every listener subscribed at the time of the call,
// in subscription order. Delivery is synchronous.
func (d *Dispatcher) Dispatch(p geometry.Point) {
	d.mu.Lock()
	snapshot := make([]Listener, 0, len(d.order))
	for _, id := range d.order {
		snapshot = append(snapshot, d.listeners[id])
	}
	d.mu.Unlock()

	for _, l := range snapshot {
		l(p)
	}
}

// Listeners returns the number of active subscriptions.
func (d *Dispatcher) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}
