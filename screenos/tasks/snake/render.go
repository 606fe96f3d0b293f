package snake

import "pixelwear/screenos/pixbuf"

// Render paints the body and food into buf, each cell as a scale x scale
// block. It does not change game state.
func (e *Engine) Render(buf *pixbuf.Buffer, scale int) {
	if buf == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	buf.Clear()
	if !e.running {
		return
	}
	if e.hasFood {
		buf.Fill(e.food.X*scale, e.food.Y*scale, scale, scale, true)
	}
	for _, p := range e.body {
		buf.Fill(p.X*scale, p.Y*scale, scale, scale, true)
	}
}
