// Package logger keeps the on-screen log: a bounded ring of text lines with a
// scrollback offset, drawn on the menu display.
package logger

import (
	"bytes"
	"image/color"
	"strings"
	"sync"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// DefaultCapacity is the number of lines kept when New is given zero.
const DefaultCapacity = 64

const lineHeight = 9

var (
	fg = color.RGBA{R: 0x80, G: 0xFF, B: 0x80, A: 0xFF}
	bg = color.RGBA{A: 0xFF}
)

// Screen is a scrollback buffer safe for concurrent writers. It implements
// io.Writer (for a zerolog.ConsoleWriter) and the hal.Logger line sink.
type Screen struct {
	mu      sync.Mutex
	lines   []string
	head    int
	n       int
	offset  int
	partial []byte
	dirty   bool
}

func New(capacity int) *Screen {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Screen{lines: make([]string, capacity)}
}

// Write appends p, splitting on newlines. A trailing fragment is held until
// its newline arrives.
func (s *Screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rest := p
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		line := rest[:i]
		if len(s.partial) > 0 {
			line = append(s.partial, line...)
			s.partial = s.partial[:0]
		}
		s.push(string(bytes.TrimRight(line, "\r")))
		rest = rest[i+1:]
	}
	s.partial = append(s.partial, rest...)
	return len(p), nil
}

func (s *Screen) WriteLineString(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range strings.Split(line, "\n") {
		s.push(l)
	}
}

func (s *Screen) WriteLineBytes(b []byte) { s.WriteLineString(string(b)) }

func (s *Screen) push(line string) {
	idx := (s.head + s.n) % len(s.lines)
	if s.n == len(s.lines) {
		s.head = (s.head + 1) % len(s.lines)
	} else {
		s.n++
	}
	s.lines[idx] = line
	// A scrolled-back view stays on the same lines while new ones arrive.
	if s.offset > 0 {
		s.offset = min(s.offset+1, s.n-1)
	}
	s.dirty = true
}

// Len returns the number of stored lines.
func (s *Screen) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// Offset returns how many lines the view is scrolled back from the newest.
func (s *Screen) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// ScrollUp moves the view one line towards older entries.
func (s *Screen) ScrollUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offset < s.n-1 {
		s.offset++
		s.dirty = true
	}
}

// ScrollDown moves the view one line towards the newest entry.
func (s *Screen) ScrollDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offset > 0 {
		s.offset--
		s.dirty = true
	}
}

// Tail returns up to rows lines ending at the current scroll position,
// oldest first.
func (s *Screen) Tail(rows int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tail(rows)
}

func (s *Screen) tail(rows int) []string {
	end := s.n - s.offset
	start := max(end-rows, 0)
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, s.lines[(s.head+i)%len(s.lines)])
	}
	return out
}

// Dirty reports whether lines or scroll position changed since the last
// Render.
func (s *Screen) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Render draws the visible lines on d, newest at the bottom.
func (s *Screen) Render(d drivers.Displayer) error {
	if d == nil {
		return nil
	}
	w, h := d.Size()
	rows := int(h) / lineHeight

	s.mu.Lock()
	lines := s.tail(rows)
	s.dirty = false
	s.mu.Unlock()

	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.SetPixel(x, y, bg)
		}
	}
	font := &proggy.TinySZ8pt7b
	y := int16(lineHeight - 2)
	for _, line := range lines {
		tinyfont.WriteLine(d, font, 0, y, line, fg)
		y += lineHeight
	}
	return d.Display()
}
