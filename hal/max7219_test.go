package hal

import (
	"bytes"
	"errors"
	"testing"

	"pixelwear/screenos/pixbuf"
)

type fakeSPI struct {
	frames [][]byte
	err    error
}

func (s *fakeSPI) Tx(w, r []byte) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, append([]byte(nil), w...))
	return nil
}

func (s *fakeSPI) Transfer(b byte) (byte, error) { return 0, s.err }

type fakePin struct{ lows, highs int }

func (p *fakePin) High() { p.highs++ }
func (p *fakePin) Low()  { p.lows++ }

func TestMax7219Configure(t *testing.T) {
	spi, cs := &fakeSPI{}, &fakePin{}
	c := NewMax7219Chain(spi, cs, 2)
	if err := c.Configure(20); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if len(spi.frames) != 5 || cs.lows != 5 || cs.highs != 5 {
		t.Fatalf("frames = %d lows = %d highs = %d, want 5 each", len(spi.frames), cs.lows, cs.highs)
	}
	if got, want := spi.frames[3], []byte{regIntensity, 15, regIntensity, 15}; !bytes.Equal(got, want) {
		t.Fatalf("intensity frame = %x, want %x", got, want)
	}
	if got, want := spi.frames[4], []byte{regShutdown, 1, regShutdown, 1}; !bytes.Equal(got, want) {
		t.Fatalf("shutdown frame = %x, want %x", got, want)
	}
}

func TestMax7219Paint(t *testing.T) {
	spi := &fakeSPI{}
	c := NewMax7219Chain(spi, &fakePin{}, 2)
	if w, h := c.Size(); w != 16 || h != 8 {
		t.Fatalf("Size() = %d,%d, want 16,8", w, h)
	}

	buf := pixbuf.New(16, 8)
	buf.Set(0, 0, true)
	buf.Set(15, 7, true)
	if err := c.Paint(buf); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if len(spi.frames) != 8 {
		t.Fatalf("first Paint sent %d rows, want 8", len(spi.frames))
	}
	if got, want := spi.frames[0], []byte{regDigit0, 0x80, regDigit0, 0x00}; !bytes.Equal(got, want) {
		t.Fatalf("row 0 = %x, want %x", got, want)
	}
	if got, want := spi.frames[7], []byte{regDigit0 + 7, 0x00, regDigit0 + 7, 0x01}; !bytes.Equal(got, want) {
		t.Fatalf("row 7 = %x, want %x", got, want)
	}

	spi.frames = nil
	buf.Set(9, 3, true)
	if err := c.Paint(buf); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if len(spi.frames) != 1 {
		t.Fatalf("second Paint sent %d rows, want 1", len(spi.frames))
	}
	if got, want := spi.frames[0], []byte{regDigit0 + 3, 0x00, regDigit0 + 3, 0x40}; !bytes.Equal(got, want) {
		t.Fatalf("row 3 = %x, want %x", got, want)
	}
}

func TestMax7219PaintError(t *testing.T) {
	spi := &fakeSPI{err: errors.New("bus fault")}
	c := NewMax7219Chain(spi, &fakePin{}, 1)
	if err := c.Paint(pixbuf.New(8, 8)); !errors.Is(err, spi.err) {
		t.Fatalf("Paint() error = %v, want bus fault", err)
	}

	spi.err = nil
	if err := c.Paint(pixbuf.New(8, 8)); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if len(spi.frames) != 8 {
		t.Fatalf("Paint after a failure sent %d rows, want 8", len(spi.frames))
	}
}

func TestMax7219Switches(t *testing.T) {
	spi := &fakeSPI{}
	c := NewMax7219Chain(spi, &fakePin{}, 1)
	c.SetBrightness(-3)
	c.SetEnabled(false)
	if got, want := spi.frames[0], []byte{regIntensity, 0}; !bytes.Equal(got, want) {
		t.Fatalf("brightness frame = %x, want %x", got, want)
	}
	if got, want := spi.frames[1], []byte{regShutdown, 0}; !bytes.Equal(got, want) {
		t.Fatalf("shutdown frame = %x, want %x", got, want)
	}
}
