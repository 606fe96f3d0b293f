//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var windowKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowUp, "up"},
	{ebiten.KeyArrowDown, "down"},
	{ebiten.KeyArrowLeft, "left"},
	{ebiten.KeyArrowRight, "right"},
	{ebiten.KeyX, "x"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyB, "b"},
	{ebiten.KeyBackspace, "backspace"},
	{ebiten.KeyY, "y"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyHome, "home"},
}

// pollKeyboard turns keys pressed this frame into controller presses.
func pollKeyboard(in *hostInput) {
	for _, k := range windowKeys {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		if p, ok := keyPress(k.name); ok {
			in.press(p)
		}
	}
}
