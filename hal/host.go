//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"tinygo.org/x/drivers"
)

// HostConfig sizes the simulated hardware.
type HostConfig struct {
	MatrixWidth  int
	MatrixHeight int
	ScreenWidth  int
	ScreenHeight int
}

func (c HostConfig) withDefaults() HostConfig {
	if c.MatrixWidth <= 0 {
		c.MatrixWidth = 32
	}
	if c.MatrixHeight <= 0 {
		c.MatrixHeight = 8
	}
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = 128
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = 64
	}
	return c
}

type hostHAL struct {
	logger  *hostLogger
	matrix  *hostMatrix
	fb      *hostFramebuffer
	in      *hostInput
	t       *hostTime
	power   *hostPower
	battery *hostBattery
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	logger := &hostLogger{w: os.Stderr}
	return &hostHAL{
		logger:  logger,
		matrix:  newHostMatrix(cfg.MatrixWidth, cfg.MatrixHeight),
		fb:      newHostFramebuffer(cfg.ScreenWidth, cfg.ScreenHeight),
		in:      newHostInput(),
		t:       newHostTime(),
		power:   &hostPower{logger: logger},
		battery: &hostBattery{level: 100},
	}
}

func (h *hostHAL) Logger() Logger            { return h.logger }
func (h *hostHAL) Matrix() Matrix            { return h.matrix }
func (h *hostHAL) Screen() drivers.Displayer { return h.fb }
func (h *hostHAL) Input() Input              { return h.in }
func (h *hostHAL) Time() Time                { return h.t }
func (h *hostHAL) Power() Power              { return h.power }
func (h *hostHAL) Battery() Battery          { return h.battery }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostPower only records the request; the simulator keeps running.
type hostPower struct {
	reboots atomic.Uint32
	logger  Logger
}

func (p *hostPower) Reboot() {
	n := p.reboots.Add(1)
	p.logger.WriteLineString(fmt.Sprintf("power: reboot #%d (simulated)", n))
}

type hostBattery struct {
	level int
}

func (b *hostBattery) Level() int { return b.level }
