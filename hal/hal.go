package hal

import (
	"errors"

	"tinygo.org/x/drivers"

	"pixelwear/screenos/pixbuf"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Pin is a minimal output pin abstraction.
type Pin interface {
	High()
	Low()
}

// ErrNotImplemented is returned by runners or devices missing from a build.
var ErrNotImplemented = errors.New("not implemented")

// Matrix is the LED matrix the display modes render to.
type Matrix interface {
	Size() (w, h int)
	// Paint shows buf. Pixels outside the matrix are ignored.
	Paint(buf *pixbuf.Buffer) error
	// SetBrightness takes a level in 0..15.
	SetBrightness(level int)
	SetEnabled(on bool)
}

// Button identifies a controller input.
type Button uint8

const (
	ButtonDpad Button = iota
	ButtonX
	ButtonB
	ButtonY
	ButtonMenu
	ButtonHome
)

func (b Button) String() string {
	switch b {
	case ButtonDpad:
		return "dpad"
	case ButtonX:
		return "x"
	case ButtonB:
		return "b"
	case ButtonY:
		return "y"
	case ButtonMenu:
		return "menu"
	case ButtonHome:
		return "home"
	default:
		return "unknown"
	}
}

// Press is one button press. Code carries the raw D-pad code for ButtonDpad.
type Press struct {
	Button Button
	Code   uint8
}

// Input delivers controller presses. Events are dropped when the consumer
// falls behind.
type Input interface {
	Presses() <-chan Press
}

// Time provides a base tick stream.
//
// Ticks are milliseconds; higher-level timers live in the app loop.
type Time interface {
	Ticks() <-chan uint64
}

// Power restarts the device.
type Power interface {
	Reboot()
}

// Battery reports the charge in percent.
type Battery interface {
	Level() int
}

// HAL provides the only contact point between the firmware and the outside
// world.
type HAL interface {
	Logger() Logger
	Matrix() Matrix
	Screen() drivers.Displayer
	Input() Input
	Time() Time
	Power() Power
	Battery() Battery
}
