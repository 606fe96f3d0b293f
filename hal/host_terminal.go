//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"pixelwear/internal/buildinfo"
	"pixelwear/screenos/pixbuf"
)

// RunTerminal runs the simulator in a terminal: the matrix as blocks and
// the menu screen in half-block cells. It returns when ctx ends or q is
// pressed.
func RunTerminal(ctx context.Context, newApp NewApp, cfg RunConfig) error {
	d, err := cfg.period()
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	h := newHost(cfg.HostConfig)
	// Log lines on stderr would tear the screen.
	h.logger.w = io.Discard
	step := newApp(h)

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				if name, stop := terminalKey(key); stop {
					return
				} else if p, ok := keyPress(name); ok {
					h.in.press(p)
				}
			}
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	tv := newTermView(h)
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tv.draw(screen)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func terminalKey(ev *tcell.EventKey) (name string, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return "", true
	case tcell.KeyUp:
		return "up", false
	case tcell.KeyDown:
		return "down", false
	case tcell.KeyLeft:
		return "left", false
	case tcell.KeyRight:
		return "right", false
	case tcell.KeyEnter:
		return "enter", false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace", false
	case tcell.KeyHome:
		return "home", false
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' {
			return "", true
		}
		return string(r), false
	}
	return "", false
}

type termView struct {
	h     *hostHAL
	frame *pixbuf.Buffer
}

func newTermView(h *hostHAL) *termView {
	w, ht := h.matrix.Size()
	return &termView{h: h, frame: pixbuf.New(w, ht)}
}

func (v *termView) draw(s tcell.Screen) {
	s.Clear()
	text(s, 0, 0, "pixelwear "+buildinfo.Short()+"  arrows: d-pad  x/b/y: buttons  m: menu  h: home  q: quit", tcell.StyleDefault)

	brightness, enabled := v.h.matrix.snapshot(v.frame)
	lit := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(0x60+clampLevel(brightness)*10), 0x10, 0x10))
	dim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x30, 0x08, 0x08))
	for y := 0; y < v.frame.Height(); y++ {
		for x := 0; x < v.frame.Width(); x++ {
			st := dim
			if enabled && v.frame.At(x, y) {
				st = lit
			}
			s.SetContent(2*x, 2+y, '█', nil, st)
			s.SetContent(2*x+1, 2+y, '█', nil, st)
		}
	}

	fb := v.h.fb
	top := 3 + v.frame.Height()
	fb.mu.Lock()
	for y := 0; y+1 < fb.height; y += 2 {
		for x := 0; x < fb.width; x++ {
			r0, g0, b0 := fb.at(x, y)
			r1, g1, b1 := fb.at(x, y+1)
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(r0), int32(g0), int32(b0))).
				Background(tcell.NewRGBColor(int32(r1), int32(g1), int32(b1)))
			s.SetContent(x, top+y/2, '▀', nil, st)
		}
	}
	fb.mu.Unlock()
	s.Show()
}

func text(s tcell.Screen, x, y int, str string, st tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}
