package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"tinygo.org/x/drivers"

	"pixelwear/hal"
	"pixelwear/internal/buildinfo"
	"pixelwear/internal/config"
	"pixelwear/kernel"
	"pixelwear/screenos/pixbuf"
	"pixelwear/screenos/proto"
	"pixelwear/screenos/services/logger"
	"pixelwear/screenos/services/ui"
	"pixelwear/screenos/tasks/graphics"
	"pixelwear/screenos/tasks/scroller"
	"pixelwear/screenos/tasks/snake"
)

// ErrRemoteBusy is returned when the remote queue is full and a message was
// dropped.
var ErrRemoteBusy = errors.New("remote queue full")

const (
	batteryEvery  = 5000
	replayBackoff = 5 * time.Millisecond
)

// System wires the HAL to the core. Step is the single consumer loop; input
// presses and remote messages only ever reach it through the bus and the
// remote queue.
type System struct {
	h      hal.HAL
	k      *kernel.System
	ui     *ui.Machine
	ctl    *ui.Controller
	scroll *scroller.Scroller
	screen drivers.Displayer
	slog   *logger.Screen
	log    zerolog.Logger
	remote chan proto.Message

	frame    *pixbuf.Buffer
	interval uint64
	snakeAt  uint64
	battAt   uint64
	lastView ui.View
	drawn    bool

	brightness int
	enabled    bool
	ledSet     bool
	paintErr   bool
	failed     error
}

// New builds the firmware on h.
func New(h hal.HAL, cfg *config.Config) *System {
	if cfg == nil {
		cfg = config.Load()
	}
	slog := logger.New(cfg.LogLines)
	log := newLogger(h, slog, cfg.LogLevel)

	s := &System{
		h:          h,
		k:          kernel.NewSystem(),
		screen:     h.Screen(),
		slog:       slog,
		log:        log,
		remote:     make(chan proto.Message, max(cfg.RemoteQueue, 1)),
		interval:   uint64(max(cfg.SnakeInterval.Milliseconds(), 1)),
		brightness: -1,
	}
	bootScreen(s.screen, "starting")

	mw, mh := cfg.MatrixWidth, cfg.MatrixHeight
	if m := h.Matrix(); m != nil {
		mw, mh = m.Size()
	}
	s.frame = pixbuf.New(mw, mh)

	gw, gh, scale := cfg.SnakeGrid(mw, mh)
	seed := cfg.Seed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}
	uiLog := log.With().Str("svc", "ui").Logger()
	s.ui = ui.New(ui.Options{
		Snake:  snake.New(gw, gh, seed),
		Canvas: graphics.New(mw, mh),
		Scale:  scale,
		Power:  h.Power(),
		Logger: &uiLog,
	})
	s.ctl = ui.NewController(s.k.Bus(), s.ui)
	s.scroll = scroller.New(mw, mh)

	if in := h.Input(); in != nil {
		if ch := in.Presses(); ch != nil {
			go s.forward(ch)
		}
	}

	s.log.Info().
		Str("build", buildinfo.Short()).
		Int("matrix_w", mw).
		Int("matrix_h", mh).
		Uint64("snake_ms", s.interval).
		Msg("pixelwear ready")
	return s
}

// forward is the producer side: it turns button presses into bus events.
func (s *System) forward(ch <-chan hal.Press) {
	for p := range ch {
		switch p.Button {
		case hal.ButtonDpad:
			s.ctl.Dpad(p.Code)
		case hal.ButtonX:
			s.ctl.ButtonX()
		case hal.ButtonB:
			s.ctl.ButtonB()
		case hal.ButtonY:
			s.ctl.ButtonY()
		case hal.ButtonMenu:
			s.ctl.Menu()
		case hal.ButtonHome:
			s.ctl.Home()
		}
	}
}

func (s *System) Kernel() *kernel.System       { return s.k }
func (s *System) Machine() *ui.Machine         { return s.ui }
func (s *System) Controller() *ui.Controller   { return s.ctl }
func (s *System) ScreenLog() *logger.Screen    { return s.slog }
func (s *System) Scroller() *scroller.Scroller { return s.scroll }
func (s *System) Frame() *pixbuf.Buffer        { return s.frame }

// Post queues a decoded control-panel message without blocking. It reports
// false when the queue is full.
func (s *System) Post(msg proto.Message) bool {
	select {
	case s.remote <- msg:
		return true
	default:
		return false
	}
}

// Remote decodes one control-panel message and queues it.
func (s *System) Remote(raw []byte) error {
	msg, err := proto.Decode(raw)
	if err != nil {
		s.rejected(err)
		return err
	}
	if !s.Post(msg) {
		s.log.Warn().Stringer("kind", msg.Kind).Msg("remote: queue full, message dropped")
		return ErrRemoteBusy
	}
	return nil
}

// Replay feeds raw messages in order the way a control panel would, with
// spacing between them. Malformed messages are logged and skipped; while the
// queue is full the message is retried.
func (s *System) Replay(ctx context.Context, msgs [][]byte, spacing time.Duration) error {
	for _, raw := range msgs {
		msg, err := proto.Decode(raw)
		if err != nil {
			s.rejected(err)
			continue
		}
		for !s.Post(msg) {
			if err := sleepCtx(ctx, replayBackoff); err != nil {
				return err
			}
		}
		if err := sleepCtx(ctx, spacing); err != nil {
			return err
		}
	}
	return nil
}

func (s *System) rejected(err error) {
	s.log.Warn().Err(err).Msg("remote: message rejected")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Status encodes the device state for control panels.
func (s *System) Status() ([]byte, error) {
	return proto.StatusPayload(s.ui.Report())
}

// Step runs one pass of the consumer loop: time, input, remote messages,
// the snake timer, then the matrix and the menu screen. After a panic every
// later Step returns the same error.
func (s *System) Step() (err error) {
	if s.failed != nil {
		return s.failed
	}
	defer func() {
		if r := recover(); r != nil {
			s.failed = s.panicked(r)
			err = s.failed
		}
	}()

	s.pumpTime()
	now := s.k.Ticks()

	home := s.ui.State() == ui.StateHome
	if evs := s.k.Bus().Drain(); evs != kernel.EventNone {
		s.ui.Dispatch(evs)
		if home && s.ui.State() == ui.StateHome {
			if evs.Has(kernel.EventNavUp) {
				s.slog.ScrollUp()
			}
			if evs.Has(kernel.EventNavDown) {
				s.slog.ScrollDown()
			}
		}
	}

	s.drainRemote()

	if !s.ui.SnakeActive() {
		s.snakeAt = now
	} else if now-s.snakeAt >= s.interval {
		s.snakeAt = now
		s.ui.TickSnake()
	}

	if b := s.h.Battery(); b != nil && (s.battAt == 0 || now-s.battAt >= batteryEvery) {
		s.battAt = max(now, 1)
		s.ui.SetBatteryLevel(b.Level())
	}

	s.renderMatrix(now)
	return s.renderScreen()
}

func (s *System) pumpTime() {
	t := s.h.Time()
	if t == nil {
		return
	}
	ch := t.Ticks()
	for {
		select {
		case seq := <-ch:
			s.k.TickTo(seq)
		default:
			return
		}
	}
}

func (s *System) drainRemote() {
	for {
		select {
		case msg := <-s.remote:
			s.ui.ApplyRemote(msg)
		default:
			return
		}
	}
}

func (s *System) renderMatrix(now uint64) {
	m := s.h.Matrix()
	if m == nil {
		return
	}
	text := s.ui.Text()
	if text.Brightness != s.brightness {
		s.brightness = text.Brightness
		m.SetBrightness(text.Brightness)
	}
	if text.DisplayOn != s.enabled || !s.ledSet {
		s.enabled = text.DisplayOn
		s.ledSet = true
		m.SetEnabled(text.DisplayOn)
	}

	if !s.ui.Render(s.frame) {
		s.scroll.Configure(text)
		s.scroll.Step(now)
		s.scroll.Render(s.frame)
	}
	if err := m.Paint(s.frame); err != nil {
		if !s.paintErr {
			s.log.Error().Err(err).Msg("matrix paint failed")
		}
		s.paintErr = true
		return
	}
	s.paintErr = false
}

func (s *System) renderScreen() error {
	if s.screen == nil {
		return nil
	}
	v := s.view()
	if s.drawn && sameView(v, s.lastView) {
		return nil
	}
	if err := ui.Draw(s.screen, v); err != nil {
		return fmt.Errorf("menu screen: %w", err)
	}
	s.lastView = v
	s.drawn = true
	return nil
}

// view is the machine's view with the on-screen log filling the home page.
func (s *System) view() ui.View {
	v := s.ui.View()
	if s.ui.State() != ui.StateHome {
		return v
	}
	_, h := s.screen.Size()
	for _, line := range s.slog.Tail(ui.Rows(h)) {
		v.Items = append(v.Items, ui.Item{Label: line})
	}
	return v
}

func sameView(a, b ui.View) bool {
	if a.Status != b.Status || a.Title != b.Title || a.Cursor != b.Cursor ||
		a.Footer != b.Footer || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			return false
		}
	}
	return true
}

// Run starts the firmware and never returns (TinyGo entrypoint).
func Run(h hal.HAL) {
	s := New(h, config.Load())
	for {
		if err := s.Step(); err != nil {
			select {}
		}
		time.Sleep(2 * time.Millisecond)
	}
}
