package graphics

import (
	"testing"

	"pixelwear/screenos/pixbuf"
)

func TestSetPixelClamps(t *testing.T) {
	c := New(32, 8)
	c.SetPixel(40, -2, true)

	if !c.At(31, 0) {
		t.Fatalf("At(31,0) = false, want true")
	}
	if got := c.Lit(); got != 1 {
		t.Fatalf("Lit() = %d, want 1", got)
	}
}

func TestRenderAndClear(t *testing.T) {
	c := New(4, 4)
	c.SetPixel(1, 2, true)

	buf := pixbuf.New(4, 4)
	buf.Set(0, 0, true)
	c.Render(buf)
	if buf.At(0, 0) || !buf.At(1, 2) {
		t.Fatalf("Render() did not replace buffer contents")
	}

	c.Clear()
	if got := c.Lit(); got != 0 {
		t.Fatalf("Lit() after Clear = %d, want 0", got)
	}
}
