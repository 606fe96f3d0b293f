// Package settings holds the text-scroller and device settings together with
// the ranges every edit is held to.
package settings

import "strconv"

// Field names one adjustable text setting, in menu order.
type Field uint8

const (
	FieldSpeed Field = iota
	FieldPause
	FieldBrightness
	FieldSpacing
	FieldScrollSpacing
	FieldEffect
	FieldAlign
	FieldInvert
	FieldDisplayOn

	FieldCount = int(FieldDisplayOn) + 1
)

// Range declares the bounds of one field. Wrapping fields cycle past their
// ends; the rest clamp.
type Range struct {
	Name string
	Min  int
	Max  int
	Step int
	Wrap bool
}

var ranges = [FieldCount]Range{
	FieldSpeed:         {Name: "Speed", Min: 25, Max: 250, Step: 5},
	FieldPause:         {Name: "Pause", Min: 0, Max: 5000, Step: 100},
	FieldBrightness:    {Name: "Brightness", Min: 0, Max: 15, Step: 1},
	FieldSpacing:       {Name: "Spacing", Min: 1, Max: 5, Step: 1},
	FieldScrollSpacing: {Name: "Scroll gap", Min: 1, Max: 5, Step: 1},
	FieldEffect:        {Name: "Effect", Min: 0, Max: 28, Step: 1, Wrap: true},
	FieldAlign:         {Name: "Align", Min: 0, Max: 2, Step: 1, Wrap: true},
	FieldInvert:        {Name: "Invert", Min: 0, Max: 1, Step: 1, Wrap: true},
	FieldDisplayOn:     {Name: "Display", Min: 0, Max: 1, Step: 1, Wrap: true},
}

// RangeOf returns the declared range of f.
func RangeOf(f Field) Range {
	if int(f) >= FieldCount {
		return Range{}
	}
	return ranges[f]
}

func (f Field) String() string { return RangeOf(f).Name }

// Effect names in the order the scroll driver numbers them.
var Effects = [...]string{
	"Scroll Left", "No Effect", "Print", "Scroll Up", "Scroll Down",
	"Scroll Right", "Sprite", "Slice", "Mesh", "Fade", "Dissolve", "Blinds",
	"Random", "Wipe", "Wipe Cursor", "Scan Horiz", "Scan Horiz X", "Scan Vert",
	"Scan Vert X", "Opening", "Opening Cursor", "Closing", "Closing Cursor",
	"Scroll Up Left", "Scroll Up Right", "Scroll Down Left",
	"Scroll Down Right", "Grow Up", "Grow Down",
}

// Align names.
var Aligns = [...]string{"Left", "Center", "Right"}

const DefaultMessage = "WELCOME TO SRC -"

// Text is the scrolling-text configuration read by the matrix text driver.
type Text struct {
	Message       string
	Speed         int
	Pause         int
	Brightness    int
	Spacing       int
	ScrollSpacing int
	Effect        int
	Align         int
	Invert        bool
	DisplayOn     bool
}

func DefaultText() Text {
	return Text{
		Message:       DefaultMessage,
		Speed:         70,
		Pause:         0,
		Brightness:    10,
		Spacing:       1,
		ScrollSpacing: 3,
		Effect:        0,
		Align:         0,
		Invert:        false,
		DisplayOn:     true,
	}
}

// Get returns the numeric value of f; booleans read as 0 or 1.
func (t *Text) Get(f Field) int {
	switch f {
	case FieldSpeed:
		return t.Speed
	case FieldPause:
		return t.Pause
	case FieldBrightness:
		return t.Brightness
	case FieldSpacing:
		return t.Spacing
	case FieldScrollSpacing:
		return t.ScrollSpacing
	case FieldEffect:
		return t.Effect
	case FieldAlign:
		return t.Align
	case FieldInvert:
		return boolInt(t.Invert)
	case FieldDisplayOn:
		return boolInt(t.DisplayOn)
	default:
		return 0
	}
}

// Set stores v into f after clamping it to the field's range.
func (t *Text) Set(f Field, v int) {
	if int(f) >= FieldCount {
		return
	}
	s := ranges[f]
	v = Clamp(v, s.Min, s.Max)
	switch f {
	case FieldSpeed:
		t.Speed = v
	case FieldPause:
		t.Pause = v
	case FieldBrightness:
		t.Brightness = v
	case FieldSpacing:
		t.Spacing = v
	case FieldScrollSpacing:
		t.ScrollSpacing = v
	case FieldEffect:
		t.Effect = v
	case FieldAlign:
		t.Align = v
	case FieldInvert:
		t.Invert = v != 0
	case FieldDisplayOn:
		t.DisplayOn = v != 0
	}
}

// Adjust moves f by steps units of its declared step, wrapping or clamping
// at the ends.
func (t *Text) Adjust(f Field, steps int) {
	if int(f) >= FieldCount || steps == 0 {
		return
	}
	s := ranges[f]
	v := t.Get(f) + steps*s.Step
	if s.Wrap {
		v = Wrap(v, s.Min, s.Max)
	}
	t.Set(f, v)
}

// Clamp brings every field back into range.
func (t *Text) Clamp() {
	for f := Field(0); int(f) < FieldCount; f++ {
		t.Set(f, t.Get(f))
	}
}

// Format renders the value of f for a menu row.
func (t *Text) Format(f Field) string {
	switch f {
	case FieldEffect:
		return Effects[Clamp(t.Effect, 0, len(Effects)-1)]
	case FieldAlign:
		return Aligns[Clamp(t.Align, 0, len(Aligns)-1)]
	case FieldInvert, FieldDisplayOn:
		if t.Get(f) != 0 {
			return "On"
		}
		return "Off"
	default:
		return strconv.Itoa(t.Get(f))
	}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap folds v into [lo, hi] cyclically.
func Wrap(v, lo, hi int) int {
	n := hi - lo + 1
	if n <= 0 {
		return lo
	}
	v = (v - lo) % n
	if v < 0 {
		v += n
	}
	return v + lo
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
