package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"pixelwear/internal/buildinfo"
)

// bootScreen shows the build and a boot step on the menu screen until the
// first menu frame replaces it.
func bootScreen(d drivers.Displayer, msg string) {
	if d == nil {
		return
	}
	w, h := d.Size()
	black := color.RGBA{A: 0xFF}
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.SetPixel(x, y, black)
		}
	}

	font := &proggy.TinySZ8pt7b
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(d, font, 0, 12, "pixelwear "+buildinfo.Short(), fg)
	tinyfont.WriteLine(d, font, 0, 28, msg, fg)
	_ = d.Display()
}
