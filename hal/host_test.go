//go:build !tinygo

package hal

import (
	"context"
	"image/color"
	"testing"
	"time"

	"pixelwear/screenos/pixbuf"
)

func TestKeyPress(t *testing.T) {
	tests := []struct {
		name string
		want Press
	}{
		{"up", Press{Button: ButtonDpad, Code: dpadUp}},
		{"right", Press{Button: ButtonDpad, Code: dpadRight}},
		{"enter", Press{Button: ButtonX}},
		{"backspace", Press{Button: ButtonB}},
		{"m", Press{Button: ButtonMenu}},
		{"home", Press{Button: ButtonHome}},
	}
	for _, tt := range tests {
		got, ok := keyPress(tt.name)
		if !ok || got != tt.want {
			t.Fatalf("keyPress(%q) = %+v, %v, want %+v", tt.name, got, ok, tt.want)
		}
	}
	if _, ok := keyPress("z"); ok {
		t.Fatalf("keyPress(z) mapped")
	}
}

func TestHostInputDropsWhenFull(t *testing.T) {
	in := newHostInput()
	for i := 0; i < cap(in.ch)+10; i++ {
		in.press(Press{Button: ButtonX})
	}
	if len(in.Presses()) != cap(in.ch) {
		t.Fatalf("queued %d, want %d", len(in.Presses()), cap(in.ch))
	}
}

func TestHostFramebufferPublishesOnDisplay(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.SetPixel(1, 1, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	fb.SetPixel(9, 9, color.RGBA{R: 0xFF, A: 0xFF})

	if r, _, _ := fb.at(1, 1); r != 0 {
		t.Fatalf("pixel visible before Display()")
	}
	if err := fb.Display(); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	if r, g, b := fb.at(1, 1); r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("at(1,1) = %d,%d,%d, want white", r, g, b)
	}
}

func TestHostMatrix(t *testing.T) {
	m := newHostMatrix(8, 2)
	src := pixbuf.New(8, 2)
	src.Set(3, 1, true)
	if err := m.Paint(src); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	m.SetBrightness(40)
	m.SetEnabled(false)

	dst := pixbuf.New(8, 2)
	brightness, enabled := m.snapshot(dst)
	if !dst.At(3, 1) || dst.Count() != 1 {
		t.Fatalf("snapshot lit %d, want (3,1) only", dst.Count())
	}
	if brightness != 15 || enabled {
		t.Fatalf("snapshot state = %d,%v, want 15,false", brightness, enabled)
	}
}

func TestHostTimeTicks(t *testing.T) {
	ht := newHostTime()
	ht.step(1)
	if got := <-ht.Ticks(); got != 1 {
		t.Fatalf("first tick = %d, want 1", got)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	steps := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		if w, ht := h.Matrix().Size(); w != 32 || ht != 8 {
			t.Errorf("matrix = %dx%d, want 32x8", w, ht)
		}
		return func() error {
			steps++
			return nil
		}
	}, RunConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestRunHeadlessBadHz(t *testing.T) {
	err := RunHeadless(context.Background(), nil, RunConfig{Hz: 2_000_000_000})
	if err == nil {
		t.Fatalf("RunHeadless() error = nil, want invalid hz")
	}
}

func TestHostTimeFollowsClock(t *testing.T) {
	ht := newHostTime()
	base := time.Unix(100, 0)
	now := base
	ht.now = func() time.Time { return now }

	ht.step(1)
	now = base.Add(2500 * time.Microsecond)
	ht.step(1)
	now = base.Add(3 * time.Millisecond)
	ht.step(1)

	var last uint64
	for len(ht.Ticks()) > 0 {
		last = <-ht.Ticks()
	}
	if last != 4 {
		t.Fatalf("last tick = %d, want 4", last)
	}
}
