package ui

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"pixelwear/kernel"
	"pixelwear/screenos/pixbuf"
	"pixelwear/screenos/proto"
	"pixelwear/screenos/settings"
	"pixelwear/screenos/tasks/graphics"
	"pixelwear/screenos/tasks/snake"
)

// Rebooter restarts the device. It is provided by the platform.
type Rebooter interface {
	Reboot()
}

// Status is the connectivity and battery state shown in the status bar.
// Other parts of the firmware report it; the menu only displays it.
type Status struct {
	WiFi    bool
	BT      bool
	Battery int
}

// Route tells the input producer how to translate raw buttons.
type Route uint32

const (
	RouteMenu Route = iota
	RouteAdjust
	RouteGame
)

// Options configures a Machine. Scale is the pixel size of one snake cell
// on the matrix.
type Options struct {
	Snake  *snake.Engine
	Canvas *graphics.Canvas
	Scale  int
	Power  Rebooter
	Logger *zerolog.Logger
}

// Machine runs the state machine on the consumer loop. Apart from Mode and
// Route, its methods must only be called from that loop.
type Machine struct {
	ctx    Context
	snake  *snake.Engine
	canvas *graphics.Canvas
	scale  int
	power  Rebooter
	log    zerolog.Logger
	status Status

	finished bool

	mode  atomic.Uint32
	route atomic.Uint32
}

func New(opts Options) *Machine {
	m := &Machine{
		ctx:    NewContext(),
		snake:  opts.Snake,
		canvas: opts.Canvas,
		scale:  opts.Scale,
		power:  opts.Power,
		log:    zerolog.Nop(),
		status: Status{Battery: 100},
	}
	if opts.Logger != nil {
		m.log = *opts.Logger
	}
	if m.snake == nil {
		m.snake = snake.New(32, 8, 1)
	}
	if m.canvas == nil {
		m.canvas = graphics.New(32, 8)
	}
	if m.scale <= 0 {
		m.scale = 1
	}
	m.publish()
	return m
}

// Dispatch handles every event in evs, lowest bit first.
func (m *Machine) Dispatch(evs kernel.Event) {
	evs.Each(m.Handle)
}

// Handle applies a single event.
func (m *Machine) Handle(ev kernel.Event) {
	from := m.ctx.State
	eff := Step(&m.ctx, ev)
	m.apply(eff)
	m.publish()

	if from != m.ctx.State || eff.Kind != EffectNone {
		m.log.Debug().
			Stringer("event", ev).
			Stringer("from", from).
			Stringer("to", m.ctx.State).
			Stringer("effect", eff.Kind).
			Msg("ui transition")
	}
}

func (m *Machine) apply(eff Effect) {
	switch eff.Kind {
	case EffectStart:
		m.start(eff.App)
	case EffectStop:
		m.stop(eff.App)
	case EffectReboot:
		m.reboot()
	case EffectSnakeDir:
		m.snake.SetPendingDirection(eff.Dir)
	case EffectSnakeRestart:
		if m.snake.Restart() {
			m.finished = false
			m.log.Info().Msg("snake restarted")
		}
	}
}

func (m *Machine) start(app AppID) {
	if app == AppSnake {
		m.snake.Reset()
		m.finished = false
	}
	m.log.Info().Stringer("app", app).Stringer("mode", modeOf(app)).Msg("app started")
}

func (m *Machine) stop(app AppID) {
	if app == AppSnake {
		m.snake.Stop()
	}
	m.log.Info().Stringer("app", app).Msg("app stopped")
}

func (m *Machine) reboot() {
	m.log.Warn().Msg("reboot requested")
	if m.power != nil {
		m.power.Reboot()
	}
}

// SelectMode hands the matrix to mode from outside the menu (the control
// panel). The menu follows: the matching app becomes the running app, so the
// device and the remote view agree on what is rendering.
func (m *Machine) SelectMode(mode DisplayMode) {
	app := appOf(mode)
	running := m.ctx.State == StateAppRunning || m.ctx.State == StateTextSettings
	if running && m.ctx.Active == app {
		m.ctx.State = StateAppRunning
		m.publish()
		return
	}
	if running && m.ctx.Active != app {
		m.stop(m.ctx.Active)
	}
	m.ctx.State = StateAppRunning
	m.ctx.Active = app
	m.start(app)
	m.publish()
}

// ApplyRemote applies one control-panel message. Out-of-range values are
// clamped; unknown modes are ignored.
func (m *Machine) ApplyRemote(msg proto.Message) {
	switch msg.Kind {
	case proto.KindSetMode:
		mode, ok := ParseMode(msg.Mode)
		if !ok {
			m.log.Warn().Str("mode", msg.Mode).Msg("remote: unknown mode ignored")
			return
		}
		m.SelectMode(mode)
	case proto.KindTextUpdate:
		msg.Text.ApplyTo(&m.ctx.Text)
	case proto.KindPixelUpdate:
		m.canvas.SetPixel(msg.Pixel.X, msg.Pixel.Y, msg.Pixel.State)
	case proto.KindClearGraphics:
		m.canvas.Clear()
	case proto.KindReboot:
		m.reboot()
	default:
		return
	}
	m.log.Debug().Stringer("kind", msg.Kind).Msg("remote message applied")
}

// SnakeActive reports whether the snake game should be ticked.
func (m *Machine) SnakeActive() bool {
	return m.ctx.State == StateAppRunning && m.ctx.Active == AppSnake &&
		m.snake.Running() && !m.snake.GameOver() && !m.snake.Won()
}

// TickSnake advances the game one step when it is the running app.
func (m *Machine) TickSnake() {
	if !m.SnakeActive() {
		return
	}
	m.snake.Tick()
	if m.finished || !(m.snake.GameOver() || m.snake.Won()) {
		return
	}
	m.finished = true
	m.log.Info().
		Int("score", m.snake.Score()).
		Bool("won", m.snake.Won()).
		Msg("snake game over")
}

// Render fills buf for the modes the core draws itself (snake and
// graphics) and reports whether it did. Text is drawn by the scroll driver,
// which alone applies the text Invert setting.
func (m *Machine) Render(buf *pixbuf.Buffer) bool {
	switch m.Mode() {
	case ModeSnake:
		m.snake.Render(buf, m.scale)
	case ModeGraphics:
		m.canvas.Render(buf)
	default:
		return false
	}
	return true
}

func (m *Machine) publish() {
	m.mode.Store(uint32(m.ctx.Mode()))

	route := RouteMenu
	switch {
	case m.ctx.State == StateAppRunning && m.ctx.Active == AppSnake:
		route = RouteGame
	case m.ctx.State == StateTextSettings || m.ctx.State == StateSettings:
		route = RouteAdjust
	}
	m.route.Store(uint32(route))
}

// Mode returns the display mode. Safe from any goroutine.
func (m *Machine) Mode() DisplayMode { return DisplayMode(m.mode.Load()) }

// Route returns the current input routing. Safe from any goroutine.
func (m *Machine) Route() Route { return Route(m.route.Load()) }

// Context returns a copy of the state.
func (m *Machine) Context() Context { return m.ctx }

func (m *Machine) State() State             { return m.ctx.State }
func (m *Machine) Text() settings.Text      { return m.ctx.Text }
func (m *Machine) Snake() *snake.Engine     { return m.snake }
func (m *Machine) Canvas() *graphics.Canvas { return m.canvas }
func (m *Machine) Status() Status           { return m.status }

func (m *Machine) SetWiFiConnected(ok bool) { m.status.WiFi = ok }
func (m *Machine) SetBTConnected(ok bool)   { m.status.BT = ok }

// SetBatteryLevel records the battery charge in percent, clamped to 0..100.
func (m *Machine) SetBatteryLevel(pct int) {
	m.status.Battery = settings.Clamp(pct, 0, 100)
}

// Report builds the status document sent back to control panels.
func (m *Machine) Report() proto.Status {
	return proto.Status{
		Mode:     m.ctx.Mode().String(),
		UI:       m.ctx.State.String(),
		App:      m.ctx.Active.String(),
		Score:    m.snake.Score(),
		GameOver: m.snake.GameOver(),
		Won:      m.snake.Won(),
		Text:     m.ctx.Text,
	}
}
