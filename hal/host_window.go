//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"pixelwear/internal/buildinfo"
	"pixelwear/screenos/pixbuf"
)

const (
	ledPitch    = 10
	ledSize     = 8
	screenScale = 2
	windowPad   = 8
	captionH    = 16
)

var (
	windowBG = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xFF}
	ledOff   = color.RGBA{R: 0x30, G: 0x08, B: 0x08, A: 0xFF}
)

// RunWindow opens a desktop window showing the LED matrix above the menu
// screen and turns the keyboard into controller presses. It blocks until
// the window closes.
func RunWindow(newApp NewApp, cfg RunConfig) error {
	h := newHost(cfg.HostConfig)
	step := newApp(h)

	g := newHostGame(h, step)
	ebiten.SetWindowTitle("pixelwear (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(g.width*2, g.height*2)
	if cfg.Hz > 0 {
		ebiten.SetTPS(cfg.Hz)
	}
	return ebiten.RunGame(g)
}

type hostGame struct {
	hw     *hostHAL
	step   func() error
	width  int
	height int
	frame  *pixbuf.Buffer
	img    *image.RGBA
	out    *ebiten.Image
}

func newHostGame(h *hostHAL, step func() error) *hostGame {
	mw, mh := h.matrix.Size()
	w := max(mw*ledPitch, h.fb.width*screenScale) + 2*windowPad
	ht := windowPad + mh*ledPitch + windowPad + h.fb.height*screenScale + windowPad + captionH
	return &hostGame{
		hw:     h,
		step:   step,
		width:  w,
		height: ht,
		frame:  pixbuf.New(mw, mh),
		img:    image.NewRGBA(image.Rect(0, 0, w, ht)),
	}
}

func (g *hostGame) Update() error {
	pollKeyboard(g.hw.in)
	g.hw.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fill(g.img, g.img.Bounds(), windowBG)

	brightness, enabled := g.hw.matrix.snapshot(g.frame)
	lit := ledColor(brightness)
	for y := 0; y < g.frame.Height(); y++ {
		for x := 0; x < g.frame.Width(); x++ {
			c := ledOff
			if enabled && g.frame.At(x, y) {
				c = lit
			}
			x0 := windowPad + x*ledPitch
			y0 := windowPad + y*ledPitch
			fill(g.img, image.Rect(x0, y0, x0+ledSize, y0+ledSize), c)
		}
	}

	fb := g.hw.fb
	fb.mu.Lock()
	top := windowPad + g.frame.Height()*ledPitch + windowPad
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, gg, b := fb.at(x, y)
			x0 := windowPad + x*screenScale
			y0 := top + y*screenScale
			fill(g.img, image.Rect(x0, y0, x0+screenScale, y0+screenScale), color.RGBA{R: r, G: gg, B: b, A: 0xFF})
		}
	}
	fb.mu.Unlock()

	state := "on"
	if !enabled {
		state = "off"
	}
	d := &font.Drawer{
		Dst:  g.img,
		Src:  image.NewUniform(color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(windowPad, g.height-4),
	}
	d.DrawString(fmt.Sprintf("matrix %s  brightness %d  reboots %d", state, brightness, g.hw.power.reboots.Load()))

	if g.out == nil {
		g.out = ebiten.NewImage(g.width, g.height)
	}
	g.out.WritePixels(g.img.Pix)
	screen.DrawImage(g.out, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// ledColor scales red with the 0..15 intensity level.
func ledColor(level int) color.RGBA {
	v := uint8(0x60 + clampLevel(level)*10)
	return color.RGBA{R: v, G: v / 6, B: v / 8, A: 0xFF}
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
