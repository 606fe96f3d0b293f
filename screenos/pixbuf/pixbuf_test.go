package pixbuf

import (
	"image/color"
	"testing"
)

func TestBufferSetAtBounds(t *testing.T) {
	b := New(4, 2)
	b.Set(3, 1, true)
	b.Set(4, 0, true)
	b.Set(-1, 0, true)

	if !b.At(3, 1) {
		t.Fatalf("At(3,1) = false, want true")
	}
	if b.At(4, 0) {
		t.Fatalf("At(4,0) = true, want false")
	}
	if got := b.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
}

func TestBufferFillInvertClear(t *testing.T) {
	b := New(3, 3)
	b.Fill(1, 1, 5, 5, true)
	if got := b.Count(); got != 4 {
		t.Fatalf("Count() after Fill = %d, want 4", got)
	}
	b.Invert()
	if got := b.Count(); got != 5 {
		t.Fatalf("Count() after Invert = %d, want 5", got)
	}
	b.Clear()
	if got := b.Count(); got != 0 {
		t.Fatalf("Count() after Clear = %d, want 0", got)
	}
}

func TestBufferCopyFrom(t *testing.T) {
	src := New(2, 2)
	src.Set(1, 1, true)
	dst := New(3, 1)
	dst.CopyFrom(src)
	if dst.Count() != 0 {
		t.Fatalf("CopyFrom() copied pixel outside overlap")
	}
	src.Set(0, 0, true)
	dst.CopyFrom(src)
	if !dst.At(0, 0) {
		t.Fatalf("At(0,0) = false, want true")
	}
}

func TestSurface(t *testing.T) {
	b := New(4, 2)
	s := NewSurface(b)
	if w, h := s.Size(); w != 4 || h != 2 {
		t.Fatalf("Size() = %d,%d, want 4,2", w, h)
	}
	s.SetPixel(1, 1, color.RGBA{R: 0xFF, A: 0xFF})
	s.DX = -1
	s.SetPixel(1, 0, color.RGBA{G: 1, A: 0xFF})
	s.SetPixel(0, 0, color.RGBA{G: 1, A: 0xFF})
	if !b.At(1, 1) || !b.At(0, 0) || b.Count() != 2 {
		t.Fatalf("lit = %d, want (1,1) and (0,0)", b.Count())
	}
	s.DX = 0
	s.SetPixel(1, 1, color.RGBA{A: 0xFF})
	if b.At(1, 1) {
		t.Fatalf("black did not clear (1,1)")
	}
}
