//go:build !tinygo

package hal

import "time"

// hostTime turns wall-clock time into 1 ms ticks whenever a runner frame
// calls advance. Ticks the consumer has not read yet are dropped from the
// channel; the sequence number still counts them.
type hostTime struct {
	ch  chan uint64
	seq uint64
	now func() time.Time

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step advances the clock to the current time. The first call emits n
// ticks so the loop starts with a non-zero time.
func (t *hostTime) step(n uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.emit(n)
		return
	}
	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / time.Millisecond)
	if ticks == 0 {
		return
	}
	t.acc %= time.Millisecond
	t.emit(ticks)
}

// emit publishes only the newest sequence number: the kernel timebase
// jumps forward to it.
func (t *hostTime) emit(n uint64) {
	t.seq += n
	select {
	case t.ch <- t.seq:
	default:
		// Full: replace the oldest pending value.
		select {
		case <-t.ch:
		default:
		}
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
