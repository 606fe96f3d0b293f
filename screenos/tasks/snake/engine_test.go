package snake

import (
	"testing"

	"pixelwear/screenos/pixbuf"
)

func newStarted(t *testing.T, w, h int) *Engine {
	t.Helper()
	e := New(w, h, 7)
	e.Reset()
	if !e.Running() || e.GameOver() || e.Won() {
		t.Fatalf("Reset() left running=%v over=%v won=%v", e.Running(), e.GameOver(), e.Won())
	}
	return e
}

func assertFoodFree(t *testing.T, e *Engine) {
	t.Helper()
	food, ok := e.Food()
	if !ok {
		t.Fatalf("Food() ok = false, want true")
	}
	for _, p := range e.Body() {
		if p == food {
			t.Fatalf("food %v lies on the body %v", food, e.Body())
		}
	}
	if food.X < 0 || food.Y < 0 || food.X >= e.Width() || food.Y >= e.Height() {
		t.Fatalf("food %v outside %dx%d grid", food, e.Width(), e.Height())
	}
}

func TestResetLayout(t *testing.T) {
	e := newStarted(t, 32, 8)

	want := []Point{{16, 4}, {17, 4}, {18, 4}}
	got := e.Body()
	if len(got) != len(want) {
		t.Fatalf("Body() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Body()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if e.Heading() != DirLeft {
		t.Fatalf("Heading() = %v, want left", e.Heading())
	}
	assertFoodFree(t, e)
}

func TestResetTallGrid(t *testing.T) {
	e := newStarted(t, 5, 10)
	if e.Heading() != DirUp {
		t.Fatalf("Heading() = %v, want up", e.Heading())
	}
	if got := e.Score(); got != 3 {
		t.Fatalf("Score() = %d, want 3", got)
	}
}

func TestResetTinyGridShortensSnake(t *testing.T) {
	e := newStarted(t, 4, 1)
	if got := e.Score(); got != 2 {
		t.Fatalf("Score() = %d, want 2", got)
	}
	for _, p := range e.Body() {
		if p.X < 0 || p.X >= 4 {
			t.Fatalf("body cell %v outside grid", p)
		}
	}
}

func TestReverseDirectionIgnored(t *testing.T) {
	e := newStarted(t, 32, 8)
	e.food = Point{0, 0}

	e.SetPendingDirection(DirRight)
	e.Tick()

	if e.GameOver() {
		t.Fatalf("GameOver() = true after reverse request")
	}
	if head := e.Body()[0]; head != (Point{15, 4}) {
		t.Fatalf("head = %v, want {15 4}", head)
	}
	if e.Heading() != DirLeft {
		t.Fatalf("Heading() = %v, want left", e.Heading())
	}
}

func TestPendingDirectionAppliedOnTick(t *testing.T) {
	e := newStarted(t, 32, 8)
	e.food = Point{0, 0}

	e.SetPendingDirection(DirUp)
	if e.Heading() != DirLeft {
		t.Fatalf("Heading() changed before Tick")
	}
	e.Tick()
	if head := e.Body()[0]; head != (Point{16, 3}) {
		t.Fatalf("head = %v, want {16 3}", head)
	}
	if got := e.Score(); got != 3 {
		t.Fatalf("Score() = %d, want 3", got)
	}
}

func TestEatingGrows(t *testing.T) {
	e := newStarted(t, 32, 8)
	e.food = Point{15, 4}

	e.Tick()

	if got := e.Score(); got != 4 {
		t.Fatalf("Score() = %d, want 4", got)
	}
	if head := e.Body()[0]; head != (Point{15, 4}) {
		t.Fatalf("head = %v, want {15 4}", head)
	}
	if tail := e.Body()[3]; tail != (Point{18, 4}) {
		t.Fatalf("tail = %v, want {18 4}", tail)
	}
	assertFoodFree(t, e)
}

func TestWallCollisionEndsGame(t *testing.T) {
	e := newStarted(t, 8, 8)
	e.body = []Point{{0, 3}, {1, 3}, {2, 3}}
	e.heading, e.pending = DirLeft, DirLeft
	e.food = Point{7, 7}

	e.Tick()

	if !e.GameOver() {
		t.Fatalf("GameOver() = false, want true")
	}
	want := []Point{{0, 3}, {1, 3}, {2, 3}}
	for i, p := range e.Body() {
		if p != want[i] {
			t.Fatalf("Body()[%d] = %v, want %v", i, p, want[i])
		}
	}

	e.SetPendingDirection(DirUp)
	e.Tick()
	if head := e.Body()[0]; head != (Point{0, 3}) {
		t.Fatalf("Tick() while over moved head to %v", head)
	}

	if !e.Restart() {
		t.Fatalf("Restart() = false, want true")
	}
	if e.GameOver() {
		t.Fatalf("GameOver() = true after Restart")
	}
	if got := e.Score(); got != 3 {
		t.Fatalf("Score() after Restart = %d, want 3", got)
	}
	assertFoodFree(t, e)
}

func TestSelfCollisionEndsGame(t *testing.T) {
	e := newStarted(t, 8, 8)
	e.body = []Point{{2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}}
	e.heading, e.pending = DirLeft, DirLeft
	e.food = Point{7, 7}

	e.SetPendingDirection(DirDown)
	e.Tick()

	if !e.GameOver() {
		t.Fatalf("GameOver() = false, want true")
	}
	if got := e.Score(); got != 5 {
		t.Fatalf("Score() = %d, want 5", got)
	}
}

func TestMovingIntoVacatingTailIsAllowed(t *testing.T) {
	e := newStarted(t, 8, 8)
	e.body = []Point{{2, 2}, {3, 2}, {3, 3}, {2, 3}}
	e.heading, e.pending = DirLeft, DirLeft
	e.food = Point{7, 7}

	e.SetPendingDirection(DirDown)
	e.Tick()

	if e.GameOver() {
		t.Fatalf("GameOver() = true, want false")
	}
	want := []Point{{2, 3}, {2, 2}, {3, 2}, {3, 3}}
	for i, p := range e.Body() {
		if p != want[i] {
			t.Fatalf("Body()[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestFillingGridWins(t *testing.T) {
	e := newStarted(t, 4, 1)
	e.body = []Point{{1, 0}, {2, 0}, {3, 0}}
	e.heading, e.pending = DirLeft, DirLeft
	e.food, e.hasFood = Point{0, 0}, true

	e.Tick()

	if !e.Won() {
		t.Fatalf("Won() = false, want true")
	}
	if e.GameOver() {
		t.Fatalf("GameOver() = true, want false")
	}
	if _, ok := e.Food(); ok {
		t.Fatalf("Food() ok = true on a full grid")
	}
	if got := e.Score(); got != 4 {
		t.Fatalf("Score() = %d, want 4", got)
	}

	e.Tick()
	if got := e.Score(); got != 4 {
		t.Fatalf("Tick() after win changed score to %d", got)
	}
	if !e.Restart() {
		t.Fatalf("Restart() after win = false, want true")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	e := newStarted(t, 32, 8)
	if e.Restart() {
		t.Fatalf("Restart() = true while playing")
	}
}

func TestStoppedEngineIgnoresInput(t *testing.T) {
	e := newStarted(t, 32, 8)
	e.Stop()
	e.SetPendingDirection(DirUp)
	e.Tick()
	if e.Running() || e.Score() != 0 {
		t.Fatalf("Stop() left running=%v score=%d", e.Running(), e.Score())
	}
	if e.Restart() {
		t.Fatalf("Restart() = true on stopped engine")
	}
}

func TestFoodNeverOnBody(t *testing.T) {
	for seed := uint32(1); seed < 200; seed++ {
		e := New(6, 6, seed)
		e.Reset()
		for i := 0; i < 40 && !e.GameOver() && !e.Won(); i++ {
			if _, ok := e.Food(); ok {
				assertFoodFree(t, e)
			}
			e.Tick()
		}
	}
}

func TestRenderScale(t *testing.T) {
	e := newStarted(t, 16, 4)
	buf := pixbuf.New(32, 8)
	buf.Set(0, 0, true)

	e.Render(buf, 2)

	if got, want := buf.Count(), (e.Score()+1)*4; got != want {
		t.Fatalf("lit pixels = %d, want %d", got, want)
	}
	head := e.Body()[0]
	if !buf.At(head.X*2+1, head.Y*2+1) {
		t.Fatalf("head block not lit")
	}
	if got := e.Score(); got != 3 {
		t.Fatalf("Render changed Score() to %d", got)
	}
}
