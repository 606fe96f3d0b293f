// Package pixbuf is the on/off pixel surface shared by every matrix renderer.
package pixbuf

// Buffer is a row-major grid of lit/unlit pixels.
type Buffer struct {
	w  int
	h  int
	px []bool
}

func New(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{w: w, h: h, px: make([]bool, w*h)}
}

func (b *Buffer) Width() int  { return b.w }
func (b *Buffer) Height() int { return b.h }

// Set lights or clears one pixel. Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.px[y*b.w+x] = on
}

// At reports whether a pixel is lit. Out-of-range coordinates read as unlit.
func (b *Buffer) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	return b.px[y*b.w+x]
}

// Fill sets an axis-aligned rectangle, clipped to the buffer.
func (b *Buffer) Fill(x, y, w, h int, on bool) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			b.Set(px, py, on)
		}
	}
}

func (b *Buffer) Clear() {
	for i := range b.px {
		b.px[i] = false
	}
}

// Invert flips every pixel.
func (b *Buffer) Invert() {
	for i := range b.px {
		b.px[i] = !b.px[i]
	}
}

// CopyFrom copies the overlapping region of src into b.
func (b *Buffer) CopyFrom(src *Buffer) {
	if src == nil {
		return
	}
	for y := 0; y < b.h && y < src.h; y++ {
		for x := 0; x < b.w && x < src.w; x++ {
			b.px[y*b.w+x] = src.px[y*src.w+x]
		}
	}
}

// Count returns the number of lit pixels.
func (b *Buffer) Count() int {
	n := 0
	for _, on := range b.px {
		if on {
			n++
		}
	}
	return n
}
