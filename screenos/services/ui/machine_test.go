package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"pixelwear/kernel"
	"pixelwear/screenos/pixbuf"
	"pixelwear/screenos/proto"
	"pixelwear/screenos/tasks/graphics"
	"pixelwear/screenos/tasks/snake"
)

type fakePower struct{ reboots int }

func (p *fakePower) Reboot() { p.reboots++ }

func newMachine(t *testing.T) (*Machine, *fakePower) {
	t.Helper()
	p := &fakePower{}
	m := New(Options{
		Snake:  snake.New(32, 8, 42),
		Canvas: graphics.New(32, 8),
		Scale:  1,
		Power:  p,
	})
	return m, p
}

func decode(t *testing.T, raw string) proto.Message {
	t.Helper()
	msg, err := proto.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode(%s): %v", raw, err)
	}
	return msg
}

func TestMachineLaunchesSnake(t *testing.T) {
	m, _ := newMachine(t)
	m.Dispatch(kernel.EventMenu)
	m.Dispatch(kernel.EventSelect)

	if m.Mode() != ModeSnake || m.Route() != RouteGame {
		t.Fatalf("Mode() = %v Route() = %v, want snake/game", m.Mode(), m.Route())
	}
	if !m.Snake().Running() || !m.SnakeActive() {
		t.Fatalf("snake not started")
	}

	head := m.Snake().Body()[0]
	m.Dispatch(kernel.EventSnakeUp)
	m.TickSnake()
	if got := m.Snake().Body()[0]; got != (snake.Point{X: head.X, Y: head.Y - 1}) {
		t.Fatalf("head = %v, want one cell above %v", got, head)
	}

	m.Dispatch(kernel.EventBack)
	if m.State() != StateHome || m.Snake().Running() {
		t.Fatalf("BACK left state %v running %v", m.State(), m.Snake().Running())
	}
	if m.Mode() != ModeSnake {
		t.Fatalf("Mode() = %v, want stale snake", m.Mode())
	}
	if m.SnakeActive() {
		t.Fatalf("SnakeActive() = true at HOME")
	}
}

func TestMachineDispatchOrder(t *testing.T) {
	m, _ := newMachine(t)
	// MENU is processed before NAV_DOWN, so the cursor moves inside APPS.
	m.Dispatch(kernel.EventMenu | kernel.EventNavDown)
	if m.State() != StateApps || m.Context().AppIndex != 1 {
		t.Fatalf("state %v index %d, want APPS 1", m.State(), m.Context().AppIndex)
	}
}

func TestMachineGameOverFreezesAndRestarts(t *testing.T) {
	m, _ := newMachine(t)
	m.Dispatch(kernel.EventMenu)
	m.Dispatch(kernel.EventSelect)

	m.Dispatch(kernel.EventSnakeUp)
	for i := 0; i < 10 && !m.Snake().GameOver(); i++ {
		m.TickSnake()
	}
	if !m.Snake().GameOver() {
		t.Fatalf("snake never hit the top wall")
	}
	if m.SnakeActive() {
		t.Fatalf("SnakeActive() = true after game over")
	}
	if v := m.View(); !strings.HasPrefix(v.Footer, "GAME OVER") {
		t.Fatalf("footer = %q, want GAME OVER", v.Footer)
	}

	m.Dispatch(kernel.EventSnakeRestart)
	if m.Snake().GameOver() || m.Snake().Score() != 3 {
		t.Fatalf("restart left over=%v score=%d", m.Snake().GameOver(), m.Snake().Score())
	}
}

func TestMachineReboot(t *testing.T) {
	m, p := newMachine(t)
	m.Dispatch(kernel.EventMenu)
	m.Dispatch(kernel.EventMenu)
	m.Dispatch(kernel.EventSelect)
	if p.reboots != 1 {
		t.Fatalf("reboots = %d, want 1", p.reboots)
	}

	m.ApplyRemote(decode(t, `{"type":"reboot"}`))
	if p.reboots != 2 {
		t.Fatalf("reboots = %d, want 2", p.reboots)
	}
}

func TestRemoteSetModeReconciles(t *testing.T) {
	m, _ := newMachine(t)

	m.ApplyRemote(decode(t, `{"type":"set_mode","mode":"snake"}`))
	if m.State() != StateAppRunning || m.Context().Active != AppSnake || m.Mode() != ModeSnake {
		t.Fatalf("set_mode snake: state %v active %v mode %v", m.State(), m.Context().Active, m.Mode())
	}
	if !m.Snake().Running() {
		t.Fatalf("set_mode snake did not start the game")
	}

	m.ApplyRemote(decode(t, `{"type":"set_mode","mode":"graphics"}`))
	if m.Context().Active != AppGraphics || m.Mode() != ModeGraphics {
		t.Fatalf("set_mode graphics: active %v mode %v", m.Context().Active, m.Mode())
	}
	if m.Snake().Running() {
		t.Fatalf("leaving snake did not stop the game")
	}
	if m.Route() != RouteMenu {
		t.Fatalf("Route() = %v, want menu", m.Route())
	}

	m.ApplyRemote(decode(t, `{"type":"set_mode","mode":"plasma"}`))
	if m.Mode() != ModeGraphics {
		t.Fatalf("unknown mode changed Mode() to %v", m.Mode())
	}
}

func TestRemoteSetModeFromTextSettings(t *testing.T) {
	m, _ := newMachine(t)
	for _, ev := range []kernel.Event{kernel.EventMenu, kernel.EventNavDown, kernel.EventSelect, kernel.EventMenu} {
		m.Dispatch(ev)
	}
	if m.State() != StateTextSettings {
		t.Fatalf("state %v, want TEXT_SETTINGS", m.State())
	}

	m.ApplyRemote(decode(t, `{"type":"set_mode","mode":"text"}`))
	if m.State() != StateAppRunning || m.Context().Active != AppText {
		t.Fatalf("state %v active %v, want APP_RUNNING TEXT", m.State(), m.Context().Active)
	}
}

func TestRemoteTextUpdateClamps(t *testing.T) {
	m, _ := newMachine(t)
	m.ApplyRemote(decode(t, `{"type":"text_update","msg":"HELLO","speed":"5","brightness":99,"effect":40}`))

	s := m.Text()
	if s.Message != "HELLO" || s.Speed != 25 || s.Brightness != 15 || s.Effect != 28 {
		t.Fatalf("Text() = %+v", s)
	}
	if m.State() != StateHome {
		t.Fatalf("text_update changed state to %v", m.State())
	}
}

func TestRemoteGraphics(t *testing.T) {
	m, _ := newMachine(t)
	m.ApplyRemote(decode(t, `{"type":"pixel_update","x":99,"y":3,"state":true}`))
	if !m.Canvas().At(31, 3) {
		t.Fatalf("pixel_update did not clamp x to 31")
	}

	m.ApplyRemote(decode(t, `{"type":"set_mode","mode":"graphics"}`))
	buf := pixbuf.New(32, 8)
	if !m.Render(buf) || !buf.At(31, 3) {
		t.Fatalf("Render() did not paint the canvas")
	}

	m.ApplyRemote(decode(t, `{"type":"clear_graphics"}`))
	if m.Canvas().Lit() != 0 {
		t.Fatalf("clear_graphics left %d pixels", m.Canvas().Lit())
	}
}

func TestRenderTextIsExternal(t *testing.T) {
	m, _ := newMachine(t)
	if m.Render(pixbuf.New(32, 8)) {
		t.Fatalf("Render() = true in text mode")
	}
}

func TestRenderIgnoresTextInvert(t *testing.T) {
	m, _ := newMachine(t)
	m.ApplyRemote(decode(t, `{"type":"text_update","invert":true}`))
	m.ApplyRemote(decode(t, `{"type":"pixel_update","x":2,"y":2,"state":true}`))
	m.ApplyRemote(decode(t, `{"type":"set_mode","mode":"graphics"}`))
	buf := pixbuf.New(32, 8)
	m.Render(buf)
	if got := buf.Count(); got != 1 {
		t.Fatalf("lit = %d, want 1", got)
	}
}

func TestRemoteHugeNumbersClampToNearestBound(t *testing.T) {
	m, _ := newMachine(t)
	m.ApplyRemote(decode(t, `{"type":"text_update","speed":1e30,"pause":1e19}`))
	if s := m.Text(); s.Speed != 250 || s.Pause != 5000 {
		t.Fatalf("Speed, Pause = %d, %d, want 250, 5000", s.Speed, s.Pause)
	}

	m.ApplyRemote(decode(t, `{"type":"pixel_update","x":1e30,"y":0,"state":true}`))
	if !m.Canvas().At(31, 0) || m.Canvas().At(0, 0) {
		t.Fatalf("pixel_update x:1e30 did not clamp to column 31")
	}
}

func TestStatusSetters(t *testing.T) {
	m, _ := newMachine(t)
	m.SetWiFiConnected(true)
	m.SetBTConnected(true)
	m.SetBatteryLevel(140)
	if st := m.Status(); !st.WiFi || !st.BT || st.Battery != 100 {
		t.Fatalf("Status() = %+v", st)
	}
	m.SetBatteryLevel(-5)
	if st := m.Status(); st.Battery != 0 {
		t.Fatalf("Battery = %d, want 0", st.Battery)
	}
	if v := m.View(); v.Status != "W B   0%" {
		t.Fatalf("status line = %q", v.Status)
	}
}

func TestReport(t *testing.T) {
	m, _ := newMachine(t)
	m.ApplyRemote(decode(t, `{"type":"set_mode","mode":"snake"}`))
	r := m.Report()
	if r.Mode != "snake" || r.UI != "APP_RUNNING" || r.App != "SNAKE" || r.Score != 3 {
		t.Fatalf("Report() = %+v", r)
	}
}

func TestTransitionsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	m := New(Options{Logger: &log})

	m.Dispatch(kernel.EventMenu)
	if !strings.Contains(buf.String(), `"to":"APPS"`) {
		t.Fatalf("log = %s, want transition to APPS", buf.String())
	}
}
