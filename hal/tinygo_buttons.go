//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

var buttonPins = [...]struct {
	pin   machine.Pin
	press Press
}{
	{machine.GP10, Press{Button: ButtonDpad, Code: 0x00}},
	{machine.GP11, Press{Button: ButtonDpad, Code: 0x44}},
	{machine.GP12, Press{Button: ButtonDpad, Code: 0x66}},
	{machine.GP13, Press{Button: ButtonDpad, Code: 0x22}},
	{machine.GP14, Press{Button: ButtonX}},
	{machine.GP15, Press{Button: ButtonB}},
	{machine.GP16, Press{Button: ButtonY}},
	{machine.GP20, Press{Button: ButtonMenu}},
	{machine.GP21, Press{Button: ButtonHome}},
}

// pinInput polls the buttons every 10 ms. A press is reported once the pin
// has read low on two consecutive polls.
type pinInput struct {
	ch chan Press
}

func newPinInput() *pinInput {
	in := &pinInput{ch: make(chan Press, 16)}
	for _, b := range buttonPins {
		b.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	go in.poll()
	return in
}

func (in *pinInput) Presses() <-chan Press { return in.ch }

func (in *pinInput) poll() {
	var lows, held [len(buttonPins)]bool
	for {
		for i, b := range buttonPins {
			low := !b.pin.Get()
			switch {
			case low && lows[i] && !held[i]:
				held[i] = true
				select {
				case in.ch <- b.press:
				default:
				}
			case !low:
				held[i] = false
			}
			lows[i] = low
		}
		time.Sleep(10 * time.Millisecond)
	}
}
