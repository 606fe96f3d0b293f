package kernel

import "sync/atomic"

// Bus is the flag register between the input producer and the consumer loop.
//
// Post may be called from any goroutine (or interrupt-like callback); Drain
// must only be called from the single consumer. Repeated posts of the same
// event before a drain collapse into one.
type Bus struct {
	_     [0]func() // prevent accidental copying.
	flags atomic.Uint32
}

// Post ORs ev into the register. It never blocks.
func (b *Bus) Post(ev Event) {
	if ev == EventNone {
		return
	}
	for {
		old := b.flags.Load()
		if old&uint32(ev) == uint32(ev) {
			return
		}
		if b.flags.CompareAndSwap(old, old|uint32(ev)) {
			return
		}
	}
}

// Drain returns every event posted since the previous Drain and clears the
// register in the same atomic step. Posts racing with Drain land either in
// this result or in the next one, never both.
func (b *Bus) Drain() Event {
	return Event(b.flags.Swap(0))
}

// Pending reports the current register without clearing it.
func (b *Bus) Pending() Event {
	return Event(b.flags.Load())
}
