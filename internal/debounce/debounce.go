// Package debounce delivers the last of a burst of values once the burst has
// been quiet for a window.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow matches the settle time of a crown spin.
const DefaultWindow = 150 * time.Millisecond

type Opts[T any] struct {
	Window time.Duration
	Clock  Clock

	// Schedule runs a delivery. It is called from the timer goroutine; hosts
	// with a UI loop use it to hop onto that loop. Nil runs inline.
	Schedule func(func())

	// Fire receives the delivered value.
	Fire func(T)
}

// Debouncer holds at most one pending value. Every Notify replaces the value
// and re-arms the timer. A timer that fires after Cancel, Flush or a newer
// Notify is ignored.
type Debouncer[T any] struct {
	window   time.Duration
	clock    Clock
	schedule func(func())
	fire     func(T)

	mu      sync.Mutex
	gen     uint64
	stop    func() bool
	pending bool
	value   T
}

func New[T any](opts Opts[T]) *Debouncer[T] {
	window := opts.Window
	if window <= 0 {
		window = DefaultWindow
	}
	clock := opts.Clock
	if clock == nil {
		clock = System
	}
	schedule := opts.Schedule
	if schedule == nil {
		schedule = func(f func()) { f() }
	}
	fire := opts.Fire
	if fire == nil {
		fire = func(T) {}
	}
	return &Debouncer[T]{
		window:   window,
		clock:    clock,
		schedule: schedule,
		fire:     fire,
	}
}

func (d *Debouncer[T]) Window() time.Duration { return d.window }

// Notify records v as the value to deliver and restarts the quiet window.
func (d *Debouncer[T]) Notify(v T) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	d.value = v
	d.pending = true
	if d.stop != nil {
		d.stop()
	}
	gen := d.gen
	d.stop = d.clock.AfterFunc(d.window, func() {
		d.schedule(func() { d.deliver(gen) })
	})
}

func (d *Debouncer[T]) deliver(gen uint64) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.stop = nil
	v := d.value
	d.mu.Unlock()

	d.fire(v)
}

// Flush delivers the pending value now. It reports whether there was one.
func (d *Debouncer[T]) Flush() bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	v := d.value
	d.disarmLocked()
	d.mu.Unlock()

	d.fire(v)
	return true
}

// Cancel drops the pending value, if any.
func (d *Debouncer[T]) Cancel() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.disarmLocked()
	d.mu.Unlock()
}

func (d *Debouncer[T]) Pending() bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer[T]) disarmLocked() {
	d.gen++
	d.pending = false
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
}
