//go:build !tinygo

package hal

import (
	"sync"

	"pixelwear/screenos/pixbuf"
)

// hostMatrix keeps the last painted frame for the window and terminal
// runners to show.
type hostMatrix struct {
	mu         sync.Mutex
	buf        *pixbuf.Buffer
	brightness int
	enabled    bool
	frames     uint64
}

func newHostMatrix(w, h int) *hostMatrix {
	return &hostMatrix{buf: pixbuf.New(w, h), brightness: 10, enabled: true}
}

func (m *hostMatrix) Size() (w, h int) { return m.buf.Width(), m.buf.Height() }

func (m *hostMatrix) Paint(buf *pixbuf.Buffer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf.Clear()
	m.buf.CopyFrom(buf)
	m.frames++
	return nil
}

func (m *hostMatrix) SetBrightness(level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.brightness = clampLevel(level)
}

func (m *hostMatrix) SetEnabled(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = on
}

// snapshot copies the frame into dst and returns the LED state.
func (m *hostMatrix) snapshot(dst *pixbuf.Buffer) (brightness int, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dst.CopyFrom(m.buf)
	return m.brightness, m.enabled
}
