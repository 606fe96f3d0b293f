//go:build !tinygo

package hal

type hostInput struct {
	ch chan Press
}

func newHostInput() *hostInput {
	return &hostInput{ch: make(chan Press, 64)}
}

func (in *hostInput) Presses() <-chan Press { return in.ch }

func (in *hostInput) press(p Press) {
	select {
	case in.ch <- p:
	default:
	}
}

// Raw D-pad codes, as the wireless controller reports them.
const (
	dpadUp    uint8 = 0x00
	dpadRight uint8 = 0x22
	dpadDown  uint8 = 0x44
	dpadLeft  uint8 = 0x66
)

// keyPress maps the simulator's keyboard layout to controller presses:
// arrows are the D-pad, X/B/Y/M/H the buttons (Enter and Backspace double
// as X and B).
func keyPress(name string) (Press, bool) {
	switch name {
	case "up":
		return Press{Button: ButtonDpad, Code: dpadUp}, true
	case "down":
		return Press{Button: ButtonDpad, Code: dpadDown}, true
	case "left":
		return Press{Button: ButtonDpad, Code: dpadLeft}, true
	case "right":
		return Press{Button: ButtonDpad, Code: dpadRight}, true
	case "x", "enter":
		return Press{Button: ButtonX}, true
	case "b", "backspace":
		return Press{Button: ButtonB}, true
	case "y":
		return Press{Button: ButtonY}, true
	case "m":
		return Press{Button: ButtonMenu}, true
	case "h", "home":
		return Press{Button: ButtonHome}, true
	default:
		return Press{}, false
	}
}
