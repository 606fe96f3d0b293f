// Package proto defines the control-panel messages: JSON objects tagged by a
// "type" field.
package proto

// Kind identifies a control-panel message.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSetMode
	KindTextUpdate
	KindPixelUpdate
	KindClearGraphics
	KindReboot
)

func (k Kind) String() string {
	switch k {
	case KindSetMode:
		return "set_mode"
	case KindTextUpdate:
		return "text_update"
	case KindPixelUpdate:
		return "pixel_update"
	case KindClearGraphics:
		return "clear_graphics"
	case KindReboot:
		return "reboot"
	default:
		return "unknown"
	}
}

// ParseKind maps a "type" tag to a Kind.
func ParseKind(s string) Kind {
	switch s {
	case "set_mode":
		return KindSetMode
	case "text_update":
		return KindTextUpdate
	case "pixel_update":
		return KindPixelUpdate
	case "clear_graphics":
		return KindClearGraphics
	case "reboot":
		return KindReboot
	default:
		return KindUnknown
	}
}

// Mode tags accepted by set_mode.
const (
	ModeText     = "text"
	ModeGraphics = "graphics"
	ModeSnake    = "snake"
)

// Message is one decoded control-panel message. Only the part matching Kind
// is meaningful.
type Message struct {
	Kind  Kind
	Mode  string
	Text  TextUpdate
	Pixel PixelUpdate
}

// PixelUpdate sets one pixel of the graphics canvas. Coordinates are not
// range-checked here; the receiver clamps them to its canvas.
type PixelUpdate struct {
	X     int
	Y     int
	State bool
}
