package events

import (
	"sync"

	"github.com/movietix/booking/internal/core/domain"
)

// Dispatcher delivers core events on a single goroutine, standing in for the
// rendering context's main thread. Events are enqueued after the triggering
// mutation has been applied and handled in order, so subscribers never
// observe half-updated state.
//
// Publish must not be called after Close.
type Dispatcher struct {
	mu         sync.Mutex
	badgeSubs  []func(count int)
	commitSubs []func(ticket domain.Ticket)

	queue chan func()
	done  chan struct{}
	once  sync.Once
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for fn := range d.queue {
		fn()
	}
}

// OnBadgeCount registers a subscriber for badge-count-changed events.
func (d *Dispatcher) OnBadgeCount(fn func(count int)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.badgeSubs = append(d.badgeSubs, fn)
}

// OnBookingCommitted registers a subscriber for booking-committed events.
func (d *Dispatcher) OnBookingCommitted(fn func(ticket domain.Ticket)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.commitSubs = append(d.commitSubs, fn)
}

func (d *Dispatcher) PublishBadgeCount(count int) {
	d.mu.Lock()
	subs := append(([]func(int))(nil), d.badgeSubs...)
	d.mu.Unlock()

	d.queue <- func() {
		for _, fn := range subs {
			fn(count)
		}
	}
}

func (d *Dispatcher) PublishBookingCommitted(ticket domain.Ticket) {
	d.mu.Lock()
	subs := append(([]func(domain.Ticket))(nil), d.commitSubs...)
	d.mu.Unlock()

	d.queue <- func() {
		for _, fn := range subs {
			fn(ticket)
		}
	}
}

// Close drains the queue and stops the dispatch goroutine.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
