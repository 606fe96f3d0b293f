// Package snake is a tick-driven Snake game on a fixed cell grid.
//
// The engine has no clock of its own: the owning loop calls Tick at a fixed
// cadence and Render whenever it wants a frame.
package snake

// Dir is a cardinal heading.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

func (d Dir) Reverse() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Point is a grid cell.
type Point struct {
	X int
	Y int
}

func (p Point) step(d Dir) Point {
	switch d {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	}
	return p
}

const (
	initialLength = 3
	minGridLong   = 4
)

// Engine holds one game. The zero value is not usable; call New.
type Engine struct {
	w int
	h int

	body    []Point
	heading Dir
	pending Dir

	food    Point
	hasFood bool

	running bool
	over    bool
	won     bool

	rng uint32
}

// New returns a stopped engine for a w x h grid. The longer side is raised
// to 4 cells and the shorter to 1 when smaller.
func New(w, h int, seed uint32) *Engine {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w >= h && w < minGridLong {
		w = minGridLong
	}
	if h > w && h < minGridLong {
		h = minGridLong
	}
	return &Engine{w: w, h: h, rng: seed}
}

func (e *Engine) Width() int  { return e.w }
func (e *Engine) Height() int { return e.h }

// Reset starts a fresh game: a short snake centred on the grid, laid along
// the longer axis and heading away from the nearer wall, plus one food cell.
func (e *Engine) Reset() {
	cx, cy := e.w/2, e.h/2

	var near int
	if e.w >= e.h {
		left, right := cx, e.w-1-cx
		if right < left {
			e.heading, near = DirLeft, right
		} else {
			e.heading, near = DirRight, left
		}
	} else {
		up, down := cy, e.h-1-cy
		if down < up {
			e.heading, near = DirUp, down
		} else {
			e.heading, near = DirDown, up
		}
	}

	n := initialLength
	if n > near+1 {
		n = near + 1
	}

	back := e.heading.Reverse()
	e.body = e.body[:0]
	p := Point{X: cx, Y: cy}
	for i := 0; i < n; i++ {
		e.body = append(e.body, p)
		p = p.step(back)
	}

	e.pending = e.heading
	e.running = true
	e.over = false
	e.won = false
	if !e.placeFood() {
		e.won = true
	}
}

// Restart resets the game if it has finished. It reports whether it did.
func (e *Engine) Restart() bool {
	if !e.running || !(e.over || e.won) {
		return false
	}
	e.Reset()
	return true
}

// Stop tears the game down. Ticks and direction changes are ignored until
// the next Reset.
func (e *Engine) Stop() {
	e.running = false
	e.over = false
	e.won = false
	e.hasFood = false
	e.body = e.body[:0]
}

// SetPendingDirection queues d for the next tick. A request for the exact
// reverse of the current heading is ignored, as is any request once the
// game has finished.
func (e *Engine) SetPendingDirection(d Dir) {
	if !e.running || e.over || e.won {
		return
	}
	if d > DirLeft || d == e.heading.Reverse() {
		return
	}
	e.pending = d
}

// Tick advances the game by one step.
func (e *Engine) Tick() {
	if !e.running || e.over || e.won || len(e.body) == 0 {
		return
	}

	e.heading = e.pending
	next := e.body[0].step(e.heading)
	if next.X < 0 || next.Y < 0 || next.X >= e.w || next.Y >= e.h {
		e.over = true
		return
	}

	eating := e.hasFood && next == e.food
	check := e.body
	if !eating {
		// The tail moves out of the way this step.
		check = check[:len(check)-1]
	}
	for _, p := range check {
		if p == next {
			e.over = true
			return
		}
	}

	if eating {
		e.body = append(e.body, Point{})
		copy(e.body[1:], e.body[:len(e.body)-1])
		e.body[0] = next
		if !e.placeFood() {
			e.won = true
		}
		return
	}
	copy(e.body[1:], e.body[:len(e.body)-1])
	e.body[0] = next
}

// placeFood picks a free cell uniformly at random. It returns false when the
// snake fills the grid.
func (e *Engine) placeFood() bool {
	free := e.w*e.h - len(e.body)
	if free <= 0 {
		e.hasFood = false
		return false
	}
	e.rng = xorshift32(e.rng)
	k := int(e.rng % uint32(free))
	for y := 0; y < e.h; y++ {
		for x := 0; x < e.w; x++ {
			p := Point{X: x, Y: y}
			if e.occupied(p) {
				continue
			}
			if k == 0 {
				e.food = p
				e.hasFood = true
				return true
			}
			k--
		}
	}
	e.hasFood = false
	return false
}

func (e *Engine) occupied(p Point) bool {
	for _, s := range e.body {
		if s == p {
			return true
		}
	}
	return false
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

func (e *Engine) Running() bool  { return e.running }
func (e *Engine) GameOver() bool { return e.over }

// Won reports that the snake filled the grid.
func (e *Engine) Won() bool    { return e.won }
func (e *Engine) Heading() Dir { return e.heading }

// Score is the body length.
func (e *Engine) Score() int { return len(e.body) }

// Food returns the food cell; ok is false when there is none.
func (e *Engine) Food() (p Point, ok bool) { return e.food, e.hasFood }

// Body returns a copy of the body, head first.
func (e *Engine) Body() []Point {
	out := make([]Point, len(e.body))
	copy(out, e.body)
	return out
}
