// Package ui is the menu state machine of the device. It decides which app
// owns the LED matrix and forwards game input to Snake.
package ui

import (
	"pixelwear/kernel"
	"pixelwear/screenos/settings"
	"pixelwear/screenos/tasks/snake"
)

// Context is all state the transition function reads and writes.
//
// Active is the one record of which renderer owns the matrix; Mode is its
// projection. It keeps its last value after leaving an app.
type Context struct {
	State State

	AppIndex         int
	PowerIndex       int
	SettingIndex     int
	TextSettingIndex int

	Active AppID

	Text settings.Text
}

func NewContext() Context {
	return Context{
		State:  StateHome,
		Active: AppText,
		Text:   settings.DefaultText(),
	}
}

// Mode returns the display mode implied by the active app.
func (c *Context) Mode() DisplayMode { return modeOf(c.Active) }

// EffectKind names the side effect of a transition.
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectStart
	EffectStop
	EffectAdjust
	EffectReboot
	EffectSnakeDir
	EffectSnakeRestart
)

func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectStart:
		return "start"
	case EffectStop:
		return "stop"
	case EffectAdjust:
		return "adjust"
	case EffectReboot:
		return "reboot"
	case EffectSnakeDir:
		return "snake_dir"
	case EffectSnakeRestart:
		return "snake_restart"
	default:
		return "unknown"
	}
}

// Effect is what the caller must do after a transition.
type Effect struct {
	Kind EffectKind
	App  AppID
	Dir  snake.Dir
}

// Step applies one event to c and returns the resulting side effect. ev must
// be a single event; unrelated or combined events leave c unchanged.
func Step(c *Context, ev kernel.Event) Effect {
	switch c.State {
	case StateHome:
		if ev == kernel.EventMenu {
			c.enterApps()
		}
	case StateApps:
		return c.stepApps(ev)
	case StatePowerMenu:
		return c.stepPower(ev)
	case StateAppRunning:
		return c.stepRunning(ev)
	case StateTextSettings:
		return c.stepTextSettings(ev)
	case StateSettings:
		return c.stepSettings(ev)
	}
	return Effect{}
}

func (c *Context) enterApps() {
	c.State = StateApps
	c.AppIndex = 0
}

func (c *Context) stepApps(ev kernel.Event) Effect {
	switch ev {
	case kernel.EventNavUp:
		c.AppIndex = move(c.AppIndex, -1, len(Apps))
	case kernel.EventNavDown:
		c.AppIndex = move(c.AppIndex, 1, len(Apps))
	case kernel.EventSelect:
		app := Apps[settings.Clamp(c.AppIndex, 0, len(Apps)-1)]
		if app == AppSettings {
			c.State = StateSettings
			c.SettingIndex = 0
			return Effect{}
		}
		c.State = StateAppRunning
		c.Active = app
		return Effect{Kind: EffectStart, App: app}
	case kernel.EventBack, kernel.EventHome:
		c.State = StateHome
	case kernel.EventMenu:
		c.State = StatePowerMenu
		c.PowerIndex = 0
	}
	return Effect{}
}

func (c *Context) stepPower(ev kernel.Event) Effect {
	switch ev {
	case kernel.EventNavUp:
		c.PowerIndex = move(c.PowerIndex, -1, len(PowerOptions))
	case kernel.EventNavDown:
		c.PowerIndex = move(c.PowerIndex, 1, len(PowerOptions))
	case kernel.EventSelect:
		opt := PowerOptions[settings.Clamp(c.PowerIndex, 0, len(PowerOptions)-1)]
		c.State = StateHome
		if opt == PowerReboot {
			return Effect{Kind: EffectReboot}
		}
	case kernel.EventBack, kernel.EventHome:
		c.State = StateHome
	}
	return Effect{}
}

func (c *Context) stepRunning(ev kernel.Event) Effect {
	switch ev {
	case kernel.EventBack, kernel.EventHome:
		return c.stop()
	}

	switch c.Active {
	case AppSnake:
		switch ev {
		case kernel.EventSnakeUp:
			return Effect{Kind: EffectSnakeDir, App: AppSnake, Dir: snake.DirUp}
		case kernel.EventSnakeDown:
			return Effect{Kind: EffectSnakeDir, App: AppSnake, Dir: snake.DirDown}
		case kernel.EventSnakeLeft:
			return Effect{Kind: EffectSnakeDir, App: AppSnake, Dir: snake.DirLeft}
		case kernel.EventSnakeRight:
			return Effect{Kind: EffectSnakeDir, App: AppSnake, Dir: snake.DirRight}
		case kernel.EventSnakeRestart:
			return Effect{Kind: EffectSnakeRestart, App: AppSnake}
		case kernel.EventMenu:
			// Snake has no settings page.
			return c.stop()
		}
	case AppText:
		if ev == kernel.EventMenu {
			c.State = StateTextSettings
			c.TextSettingIndex = 0
		}
	}
	return Effect{}
}

func (c *Context) stop() Effect {
	c.State = StateHome
	return Effect{Kind: EffectStop, App: c.Active}
}

func (c *Context) stepTextSettings(ev kernel.Event) Effect {
	switch ev {
	case kernel.EventNavUp:
		c.TextSettingIndex = move(c.TextSettingIndex, -1, settings.FieldCount)
	case kernel.EventNavDown:
		c.TextSettingIndex = move(c.TextSettingIndex, 1, settings.FieldCount)
	case kernel.EventInc, kernel.EventDec:
		f := settings.Field(settings.Clamp(c.TextSettingIndex, 0, settings.FieldCount-1))
		c.Text.Adjust(f, delta(ev))
		return Effect{Kind: EffectAdjust, App: AppText}
	case kernel.EventBack:
		c.State = StateAppRunning
	case kernel.EventHome:
		return c.stop()
	}
	return Effect{}
}

func (c *Context) stepSettings(ev kernel.Event) Effect {
	opt := SettingOptions[settings.Clamp(c.SettingIndex, 0, len(SettingOptions)-1)]
	switch ev {
	case kernel.EventNavUp:
		c.SettingIndex = move(c.SettingIndex, -1, len(SettingOptions))
	case kernel.EventNavDown:
		c.SettingIndex = move(c.SettingIndex, 1, len(SettingOptions))
	case kernel.EventInc, kernel.EventDec:
		switch opt {
		case SettingBrightness:
			c.Text.Adjust(settings.FieldBrightness, delta(ev))
		case SettingDisplay:
			c.Text.Adjust(settings.FieldDisplayOn, delta(ev))
		default:
			return Effect{}
		}
		return Effect{Kind: EffectAdjust, App: AppSettings}
	case kernel.EventSelect:
		switch opt {
		case SettingDisplay:
			c.Text.Adjust(settings.FieldDisplayOn, 1)
		case SettingReset:
			c.Text = settings.DefaultText()
		default:
			return Effect{}
		}
		return Effect{Kind: EffectAdjust, App: AppSettings}
	case kernel.EventBack:
		c.enterApps()
	case kernel.EventHome:
		c.State = StateHome
	}
	return Effect{}
}

// move steps a menu cursor by d and wraps it into [0, n).
func move(i, d, n int) int {
	if n <= 0 {
		return 0
	}
	return settings.Wrap(i+d, 0, n-1)
}

func delta(ev kernel.Event) int {
	if ev == kernel.EventDec {
		return -1
	}
	return 1
}
