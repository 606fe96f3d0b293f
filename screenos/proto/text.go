package proto

import "pixelwear/screenos/settings"

// TextUpdate carries the text_update fields that were present in the
// message. Absent fields leave the current setting untouched.
type TextUpdate struct {
	Message    string
	HasMessage bool

	values  [settings.FieldCount]int
	present [settings.FieldCount]bool
}

// Set records a raw value for f.
func (u *TextUpdate) Set(f settings.Field, v int) {
	if int(f) >= settings.FieldCount {
		return
	}
	u.values[f] = v
	u.present[f] = true
}

// Value returns the raw value for f and whether it was present.
func (u *TextUpdate) Value(f settings.Field) (int, bool) {
	if int(f) >= settings.FieldCount {
		return 0, false
	}
	return u.values[f], u.present[f]
}

// ApplyTo writes every present field into t. Numeric values are clamped to
// their declared ranges, so t stays renderable whatever the sender sent.
func (u *TextUpdate) ApplyTo(t *settings.Text) {
	if u.HasMessage {
		t.Message = u.Message
	}
	for f := settings.Field(0); int(f) < settings.FieldCount; f++ {
		if u.present[f] {
			t.Set(f, u.values[f])
		}
	}
}

// Clamp bounds every present value to its field's range.
func (u *TextUpdate) Clamp() {
	for f := settings.Field(0); int(f) < settings.FieldCount; f++ {
		if u.present[f] {
			r := settings.RangeOf(f)
			u.values[f] = settings.Clamp(u.values[f], r.Min, r.Max)
		}
	}
}

// jsonKeys maps each field to its control-panel key.
var jsonKeys = [settings.FieldCount]string{
	settings.FieldSpeed:         "speed",
	settings.FieldPause:         "pause",
	settings.FieldBrightness:    "brightness",
	settings.FieldSpacing:       "spacing",
	settings.FieldScrollSpacing: "scrollSpacing",
	settings.FieldEffect:        "effect",
	settings.FieldAlign:         "align",
	settings.FieldInvert:        "invert",
	settings.FieldDisplayOn:     "displayOn",
}

// JSONKey returns the control-panel key of f.
func JSONKey(f settings.Field) string {
	if int(f) >= settings.FieldCount {
		return ""
	}
	return jsonKeys[f]
}

func isBoolField(f settings.Field) bool {
	return f == settings.FieldInvert || f == settings.FieldDisplayOn
}
