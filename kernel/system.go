package kernel

import "sync/atomic"

// System is the shared core state crossed by the producer and consumer:
// the input bus and the millisecond timebase.
type System struct {
	bus   Bus
	ticks atomic.Uint64
}

// NewSystem creates a kernel instance.
func NewSystem() *System {
	return &System{}
}

// Bus returns the input event bus.
func (s *System) Bus() *Bus {
	return &s.bus
}

// TickTo advances the tick counter to seq. Older values are ignored.
func (s *System) TickTo(seq uint64) {
	for {
		cur := s.ticks.Load()
		if seq <= cur {
			return
		}
		if s.ticks.CompareAndSwap(cur, seq) {
			return
		}
	}
}

// Ticks returns the current tick count (1ms per tick).
func (s *System) Ticks() uint64 {
	return s.ticks.Load()
}
