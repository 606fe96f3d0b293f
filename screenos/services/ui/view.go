package ui

import (
	"fmt"

	"pixelwear/screenos/settings"
)

// Item is one row of a menu.
type Item struct {
	Label string
	Value string
}

// View is what the menu screen should show. Cursor is -1 when the screen has
// no list.
type View struct {
	Status string
	Title  string
	Items  []Item
	Cursor int
	Footer string
}

// View describes the current screen.
func (m *Machine) View() View {
	c := &m.ctx
	v := View{Status: m.status.line(), Cursor: -1}

	switch c.State {
	case StateHome:
		v.Title = "Home"
		v.Footer = "MENU: apps"
	case StateApps:
		v.Title = "Apps"
		for _, a := range Apps {
			v.Items = append(v.Items, Item{Label: a.Label()})
		}
		v.Cursor = c.AppIndex
		v.Footer = "MENU: power"
	case StatePowerMenu:
		v.Title = "Power"
		for _, p := range PowerOptions {
			v.Items = append(v.Items, Item{Label: p.Label()})
		}
		v.Cursor = c.PowerIndex
	case StateAppRunning:
		v.Title = c.Active.Label()
		v.Footer = m.runningFooter()
	case StateTextSettings:
		v.Title = "Text settings"
		for f := settings.Field(0); int(f) < settings.FieldCount; f++ {
			v.Items = append(v.Items, Item{Label: f.String(), Value: c.Text.Format(f)})
		}
		v.Cursor = c.TextSettingIndex
	case StateSettings:
		v.Title = "Settings"
		for _, o := range SettingOptions {
			it := Item{Label: o.Label()}
			switch o {
			case SettingBrightness:
				it.Value = c.Text.Format(settings.FieldBrightness)
			case SettingDisplay:
				it.Value = c.Text.Format(settings.FieldDisplayOn)
			}
			v.Items = append(v.Items, it)
		}
		v.Cursor = c.SettingIndex
	}
	return v
}

func (m *Machine) runningFooter() string {
	switch m.ctx.Active {
	case AppSnake:
		switch {
		case m.snake.Won():
			return fmt.Sprintf("YOU WIN %d (X)", m.snake.Score())
		case m.snake.GameOver():
			return fmt.Sprintf("GAME OVER %d (X)", m.snake.Score())
		default:
			return fmt.Sprintf("Score %d", m.snake.Score())
		}
	case AppText:
		return "MENU: settings"
	default:
		return fmt.Sprintf("%d px lit", m.canvas.Lit())
	}
}

func (s Status) line() string {
	wifi, bt := "-", "-"
	if s.WiFi {
		wifi = "W"
	}
	if s.BT {
		bt = "B"
	}
	return fmt.Sprintf("%s %s %3d%%", wifi, bt, s.Battery)
}
