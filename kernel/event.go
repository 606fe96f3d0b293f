package kernel

import "strings"

// Event is a set of discrete input events. Each named event is one bit;
// several may be set at once.
type Event uint32

const (
	EventHome Event = 1 << iota
	EventMenu
	EventNavUp
	EventNavDown
	EventSelect
	EventBack
	EventSnakeUp
	EventSnakeDown
	EventSnakeLeft
	EventSnakeRight
	EventSnakeRestart
	EventDec
	EventInc

	EventNone Event = 0
)

// eventCount is the number of named events.
const eventCount = 13

var eventNames = [eventCount]string{
	"HOME",
	"MENU",
	"NAV_UP",
	"NAV_DOWN",
	"SELECT",
	"BACK",
	"SNAKE_UP",
	"SNAKE_DOWN",
	"SNAKE_LEFT",
	"SNAKE_RIGHT",
	"SNAKE_RESTART",
	"DEC",
	"INC",
}

// Has reports whether every bit of ev is set in e.
func (e Event) Has(ev Event) bool {
	return ev != 0 && e&ev == ev
}

// Each calls fn once per named event set in e, lowest bit first.
// Bits outside the named range are ignored.
func (e Event) Each(fn func(Event)) {
	for i := 0; i < eventCount; i++ {
		ev := Event(1) << i
		if e&ev != 0 {
			fn(ev)
		}
	}
}

func (e Event) String() string {
	if e == EventNone {
		return "NONE"
	}
	var b strings.Builder
	e.Each(func(ev Event) {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(ev.name())
	})
	if b.Len() == 0 {
		return "UNKNOWN"
	}
	return b.String()
}

func (e Event) name() string {
	for i := 0; i < eventCount; i++ {
		if e == Event(1)<<i {
			return eventNames[i]
		}
	}
	return "UNKNOWN"
}
