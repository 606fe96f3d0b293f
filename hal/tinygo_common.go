//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// tinyGoTime counts milliseconds from a ticker goroutine. A reader that
// falls behind sees the newest count; the kernel timebase jumps to it.
type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 1)}
	go t.run(time.Millisecond)
	return t
}

func (t *tinyGoTime) run(period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for range ticker.C {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
			select {
			case <-t.ch:
			default:
			}
			t.ch <- t.seq
		}
	}
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

// uartLogger writes CRLF terminated lines to the debug UART.
type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	l.uart.Write([]byte(s))
	l.uart.Write(crlf)
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.Write(crlf)
}

var crlf = []byte{'\r', '\n'}

type cpuPower struct {
	log Logger
}

func (p cpuPower) Reboot() {
	p.log.WriteLineString("power: reboot")
	time.Sleep(50 * time.Millisecond)
	machine.CPUReset()
}

// adcBattery reads a single-cell LiPo through a 1:2 divider.
type adcBattery struct {
	adc machine.ADC
}

func (b adcBattery) Level() int {
	mv := int(b.adc.Get()) * 3300 * 2 / 65535
	return clampPercent((mv - 3300) * 100 / (4200 - 3300))
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
