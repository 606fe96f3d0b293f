package proto

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"pixelwear/screenos/settings"
)

var (
	ErrBadMessage  = errors.New("proto: malformed message")
	ErrUnknownKind = errors.New("proto: unknown message type")
)

// Decode parses one control-panel message. Numeric fields may be JSON
// numbers or numeric strings, as browsers send input values as strings.
func Decode(b []byte) (Message, error) {
	if !gjson.ValidBytes(b) {
		return Message{}, ErrBadMessage
	}
	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return Message{}, ErrBadMessage
	}

	tag := root.Get("type").String()
	msg := Message{Kind: ParseKind(tag)}
	switch msg.Kind {
	case KindSetMode:
		mode := root.Get("mode")
		if !mode.Exists() {
			return Message{}, fmt.Errorf("%w: set_mode without mode", ErrBadMessage)
		}
		msg.Mode = mode.String()

	case KindTextUpdate:
		msg.Text = decodeTextUpdate(root)

	case KindPixelUpdate:
		x, y := root.Get("x"), root.Get("y")
		if !x.Exists() || !y.Exists() {
			return Message{}, fmt.Errorf("%w: pixel_update without coordinates", ErrBadMessage)
		}
		msg.Pixel = PixelUpdate{
			X:     toInt(x),
			Y:     toInt(y),
			State: root.Get("state").Bool(),
		}

	case KindClearGraphics, KindReboot:

	default:
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
	}
	return msg, nil
}

func decodeTextUpdate(root gjson.Result) TextUpdate {
	var u TextUpdate
	for _, key := range [...]string{"msg", "message"} {
		if v := root.Get(key); v.Exists() {
			u.Message = v.String()
			u.HasMessage = true
			break
		}
	}
	for f := settings.Field(0); int(f) < settings.FieldCount; f++ {
		v := root.Get(JSONKey(f))
		if !v.Exists() {
			continue
		}
		if isBoolField(f) {
			if v.Bool() {
				u.Set(f, 1)
			} else {
				u.Set(f, 0)
			}
			continue
		}
		u.Set(f, toInt(v))
	}
	return u
}

// toInt reads a JSON number or numeric string, saturating at the int32
// bounds so oversized values still clamp to the nearest end of a range.
func toInt(v gjson.Result) int {
	f := v.Float()
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
