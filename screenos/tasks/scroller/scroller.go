// Package scroller animates the text-mode message on the LED matrix. On the
// device an external scroll driver does this; the host builds use this one.
package scroller

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"pixelwear/screenos/pixbuf"
	"pixelwear/screenos/settings"
)

const baseline = 7

var on = color.RGBA{R: 0xFF, A: 0xFF}

// Motion is how an effect moves the message.
type Motion uint8

const (
	MotionLeft Motion = iota
	MotionRight
	MotionStatic
)

// MotionOf maps an effect index to the closest motion this renderer has.
func MotionOf(effect int) Motion {
	switch settings.Effects[settings.Clamp(effect, 0, len(settings.Effects)-1)] {
	case "No Effect", "Print":
		return MotionStatic
	case "Scroll Right":
		return MotionRight
	default:
		return MotionLeft
	}
}

// Scroller keeps one message animation. Step and Render are called from the
// consumer loop only.
type Scroller struct {
	w, h  int
	font  tinyfont.Fonter
	cfg   settings.Text
	width int
	pos   int
	last  uint64
	hold  uint64
	ready bool
}

func New(w, h int) *Scroller {
	return &Scroller{w: w, h: h, font: &proggy.TinySZ8pt7b}
}

// Configure applies text settings. The animation restarts when anything
// that changes the layout differs from the previous configuration.
func (s *Scroller) Configure(t settings.Text) {
	restart := !s.ready ||
		t.Message != s.cfg.Message ||
		t.Spacing != s.cfg.Spacing ||
		t.Effect != s.cfg.Effect ||
		t.Align != s.cfg.Align
	s.cfg = t
	if !restart {
		return
	}
	s.ready = true
	s.width = s.measure()
	s.pos = s.start()
	s.hold = 0
}

// Message returns the configured message.
func (s *Scroller) Message() string { return s.cfg.Message }

// Pos returns the x position of the first column of the message.
func (s *Scroller) Pos() int { return s.pos }

// Width returns the rendered width of the message in columns.
func (s *Scroller) Width() int { return s.width }

// Step advances the animation to now (milliseconds). It moves one column
// every Speed milliseconds and waits Pause milliseconds after each pass.
func (s *Scroller) Step(now uint64) bool {
	if !s.ready || MotionOf(s.cfg.Effect) == MotionStatic {
		return false
	}
	if now < s.hold {
		return false
	}
	speed := uint64(max(s.cfg.Speed, 1))
	if now-s.last < speed {
		return false
	}
	s.last = now

	gap := s.cfg.ScrollSpacing
	switch MotionOf(s.cfg.Effect) {
	case MotionLeft:
		s.pos--
		if s.pos+s.width+gap <= 0 {
			s.pos = s.w
			s.hold = now + uint64(max(s.cfg.Pause, 0))
		}
	case MotionRight:
		s.pos++
		if s.pos-gap >= s.w {
			s.pos = -s.width
			s.hold = now + uint64(max(s.cfg.Pause, 0))
		}
	}
	return true
}

// Render draws the current frame into buf.
func (s *Scroller) Render(buf *pixbuf.Buffer) {
	buf.Clear()
	if !s.cfg.DisplayOn {
		return
	}
	surf := pixbuf.NewSurface(buf)
	x := s.pos
	for _, r := range s.cfg.Message {
		if x >= s.w {
			break
		}
		adv := s.advance(r)
		if x+adv > 0 {
			// DrawChar takes int16 positions; shift through the surface so
			// long messages never overflow.
			surf.DX = x
			tinyfont.DrawChar(surf, s.font, 0, baseline, r, on)
		}
		x += adv
	}
	if s.cfg.Invert {
		buf.Invert()
	}
}

func (s *Scroller) start() int {
	switch MotionOf(s.cfg.Effect) {
	case MotionRight:
		return -s.width
	case MotionStatic:
		switch s.cfg.Align {
		case 1:
			return (s.w - s.width) / 2
		case 2:
			return s.w - s.width
		default:
			return 0
		}
	default:
		return s.w
	}
}

func (s *Scroller) measure() int {
	n := 0
	for _, r := range s.cfg.Message {
		n += s.advance(r)
	}
	return n
}

func (s *Scroller) advance(r rune) int {
	return int(s.font.GetGlyph(r).Info().XAdvance) + max(s.cfg.Spacing, 1) - 1
}
