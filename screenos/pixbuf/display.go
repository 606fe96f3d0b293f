package pixbuf

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Surface adapts a Buffer to drivers.Displayer so tinyfont can draw on it.
// A pixel is lit when its color is not black.
type Surface struct {
	buf *Buffer
	// DX and DY shift every SetPixel, for drawing text partly off screen.
	DX, DY int
}

var _ drivers.Displayer = (*Surface)(nil)

func NewSurface(buf *Buffer) *Surface { return &Surface{buf: buf} }

func (s *Surface) Size() (x, y int16) {
	return int16(s.buf.w), int16(s.buf.h)
}

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	s.buf.Set(int(x)+s.DX, int(y)+s.DY, c.R|c.G|c.B != 0)
}

func (s *Surface) Display() error { return nil }
