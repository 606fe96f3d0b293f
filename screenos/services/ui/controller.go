package ui

import "pixelwear/kernel"

// Raw D-pad codes reported by the controller.
const (
	DpadUp    uint8 = 0x00
	DpadRight uint8 = 0x22
	DpadDown  uint8 = 0x44
	DpadLeft  uint8 = 0x66
)

// Router reports how buttons should be read right now.
type Router interface {
	Route() Route
}

// Controller turns physical button presses into bus events. Its methods are
// safe to call from the input callback goroutine: they only read the
// published route and post to the bus.
//
// Mapping:
//
//	            menu      settings   snake
//	D-pad U/D   NAV       NAV        SNAKE_UP/DOWN
//	D-pad L/R   BACK/SEL  DEC/INC    SNAKE_LEFT/RIGHT
//	X           SELECT    SELECT     SNAKE_RESTART
//	B           BACK      BACK       BACK
//	Y, Menu     MENU      MENU       MENU
//	Home        HOME      HOME       HOME
type Controller struct {
	bus    *kernel.Bus
	router Router
}

func NewController(bus *kernel.Bus, router Router) *Controller {
	return &Controller{bus: bus, router: router}
}

func (c *Controller) route() Route {
	if c.router == nil {
		return RouteMenu
	}
	return c.router.Route()
}

// Dpad handles a raw D-pad code. Unknown codes are ignored.
func (c *Controller) Dpad(code uint8) {
	r := c.route()
	var ev kernel.Event
	switch code {
	case DpadUp:
		ev = pick(r, kernel.EventNavUp, kernel.EventNavUp, kernel.EventSnakeUp)
	case DpadDown:
		ev = pick(r, kernel.EventNavDown, kernel.EventNavDown, kernel.EventSnakeDown)
	case DpadLeft:
		ev = pick(r, kernel.EventBack, kernel.EventDec, kernel.EventSnakeLeft)
	case DpadRight:
		ev = pick(r, kernel.EventSelect, kernel.EventInc, kernel.EventSnakeRight)
	default:
		return
	}
	c.bus.Post(ev)
}

func (c *Controller) ButtonX() {
	c.bus.Post(pick(c.route(), kernel.EventSelect, kernel.EventSelect, kernel.EventSnakeRestart))
}

func (c *Controller) ButtonB() { c.bus.Post(kernel.EventBack) }
func (c *Controller) ButtonY() { c.bus.Post(kernel.EventMenu) }
func (c *Controller) Menu()    { c.bus.Post(kernel.EventMenu) }
func (c *Controller) Home()    { c.bus.Post(kernel.EventHome) }

func pick(r Route, menu, adjust, game kernel.Event) kernel.Event {
	switch r {
	case RouteAdjust:
		return adjust
	case RouteGame:
		return game
	default:
		return menu
	}
}
