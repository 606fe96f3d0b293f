package ui

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	drawFG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	drawBG = color.RGBA{A: 0xFF}
)

const lineHeight = 10

// Draw paints v onto a menu display: status bar, title, a window of list
// rows around the cursor, and a footer on the last line.
func Draw(d drivers.Displayer, v View) error {
	if d == nil {
		return nil
	}
	w, h := d.Size()
	clearDisplay(d, w, h)

	font := &proggy.TinySZ8pt7b
	tinyfont.WriteLine(d, font, 0, 8, v.Status, drawFG)
	tinyfont.WriteLine(d, font, 0, 8+lineHeight, v.Title, drawFG)
	for x := int16(0); x < w; x++ {
		d.SetPixel(x, 8+lineHeight+2, drawFG)
	}

	rows := Rows(h)
	first := 0
	if v.Cursor >= rows {
		first = v.Cursor - rows + 1
	}
	y := int16(8 + 2*lineHeight + 2)
	for i := first; i < len(v.Items) && i < first+rows; i++ {
		it := v.Items[i]
		prefix := "  "
		if i == v.Cursor {
			prefix = "> "
		}
		tinyfont.WriteLine(d, font, 0, y, prefix+it.Label, drawFG)
		if it.Value != "" {
			_, vw := tinyfont.LineWidth(font, it.Value)
			tinyfont.WriteLine(d, font, w-int16(vw)-1, y, it.Value, drawFG)
		}
		y += lineHeight
	}

	if v.Footer != "" {
		tinyfont.WriteLine(d, font, 0, h-2, v.Footer, drawFG)
	}
	return d.Display()
}

// Rows is how many list rows fit on a display of height h.
func Rows(h int16) int {
	return max((int(h)-3*lineHeight)/lineHeight, 1)
}

func clearDisplay(d drivers.Displayer, w, h int16) {
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.SetPixel(x, y, drawBG)
		}
	}
}
