// Package graphics is the free-draw pixel app edited from the control panel.
package graphics

import (
	"pixelwear/screenos/pixbuf"
	"pixelwear/screenos/settings"
)

// Canvas keeps the drawing between launches; stopping the app does not
// clear it.
type Canvas struct {
	buf *pixbuf.Buffer
}

func New(w, h int) *Canvas {
	return &Canvas{buf: pixbuf.New(w, h)}
}

// SetPixel clamps x and y onto the canvas and sets that pixel.
func (c *Canvas) SetPixel(x, y int, on bool) {
	x = settings.Clamp(x, 0, c.buf.Width()-1)
	y = settings.Clamp(y, 0, c.buf.Height()-1)
	c.buf.Set(x, y, on)
}

func (c *Canvas) Clear() { c.buf.Clear() }

// Render copies the canvas into buf.
func (c *Canvas) Render(buf *pixbuf.Buffer) {
	if buf == nil {
		return
	}
	buf.Clear()
	buf.CopyFrom(c.buf)
}

// Lit returns the number of lit pixels.
func (c *Canvas) Lit() int { return c.buf.Count() }

func (c *Canvas) At(x, y int) bool { return c.buf.At(x, y) }
