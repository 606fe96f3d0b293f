package ui

// State is the screen the device is showing.
type State uint8

const (
	StateHome State = iota
	StateApps
	StatePowerMenu
	StateAppRunning
	StateSettings
	StateTextSettings
)

func (s State) String() string {
	switch s {
	case StateHome:
		return "HOME"
	case StateApps:
		return "APPS"
	case StatePowerMenu:
		return "POWER_MENU"
	case StateAppRunning:
		return "APP_RUNNING"
	case StateSettings:
		return "SETTINGS"
	case StateTextSettings:
		return "TEXT_SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// AppID is an entry of the apps menu.
type AppID uint8

const (
	AppSnake AppID = iota
	AppText
	AppGraphics
	// AppSettings opens the settings menu instead of taking the matrix.
	AppSettings
)

// Apps is the apps menu, in display order.
var Apps = [...]AppID{AppSnake, AppText, AppGraphics, AppSettings}

func (a AppID) String() string {
	switch a {
	case AppSnake:
		return "SNAKE"
	case AppText:
		return "TEXT"
	case AppGraphics:
		return "GRAPHICS"
	case AppSettings:
		return "SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// Label is the menu caption of a.
func (a AppID) Label() string {
	switch a {
	case AppSnake:
		return "Snake"
	case AppText:
		return "Text"
	case AppGraphics:
		return "Graphics"
	case AppSettings:
		return "Settings"
	default:
		return "?"
	}
}

// DisplayMode is the renderer that owns the LED matrix.
type DisplayMode uint8

const (
	ModeText DisplayMode = iota
	ModeGraphics
	ModeSnake
)

func (m DisplayMode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeGraphics:
		return "graphics"
	case ModeSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// ParseMode maps a control-panel mode tag to a DisplayMode.
func ParseMode(s string) (DisplayMode, bool) {
	switch s {
	case "text":
		return ModeText, true
	case "graphics":
		return ModeGraphics, true
	case "snake":
		return ModeSnake, true
	default:
		return ModeText, false
	}
}

func modeOf(a AppID) DisplayMode {
	switch a {
	case AppSnake:
		return ModeSnake
	case AppGraphics:
		return ModeGraphics
	default:
		return ModeText
	}
}

func appOf(m DisplayMode) AppID {
	switch m {
	case ModeSnake:
		return AppSnake
	case ModeGraphics:
		return AppGraphics
	default:
		return AppText
	}
}

// PowerOption is an entry of the power menu.
type PowerOption uint8

const (
	PowerReboot PowerOption = iota
	PowerCancel
)

var PowerOptions = [...]PowerOption{PowerReboot, PowerCancel}

func (p PowerOption) Label() string {
	switch p {
	case PowerReboot:
		return "Reboot"
	default:
		return "Cancel"
	}
}

// SettingOption is an entry of the global settings menu.
type SettingOption uint8

const (
	SettingBrightness SettingOption = iota
	SettingDisplay
	SettingReset
)

var SettingOptions = [...]SettingOption{SettingBrightness, SettingDisplay, SettingReset}

func (s SettingOption) Label() string {
	switch s {
	case SettingBrightness:
		return "Brightness"
	case SettingDisplay:
		return "Display"
	default:
		return "Reset defaults"
	}
}
