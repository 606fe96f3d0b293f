package proto

import (
	"github.com/tidwall/sjson"

	"pixelwear/screenos/settings"
)

// SetModePayload encodes a set_mode message.
func SetModePayload(mode string) ([]byte, error) {
	b, err := sjson.SetBytes(nil, "type", KindSetMode.String())
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(b, "mode", mode)
}

// PixelUpdatePayload encodes a pixel_update message.
func PixelUpdatePayload(p PixelUpdate) ([]byte, error) {
	b, err := sjson.SetBytes(nil, "type", KindPixelUpdate.String())
	if err != nil {
		return nil, err
	}
	if b, err = sjson.SetBytes(b, "x", p.X); err != nil {
		return nil, err
	}
	if b, err = sjson.SetBytes(b, "y", p.Y); err != nil {
		return nil, err
	}
	return sjson.SetBytes(b, "state", p.State)
}

// TextUpdatePayload encodes a full text_update message from t.
func TextUpdatePayload(t settings.Text) ([]byte, error) {
	b, err := sjson.SetBytes(nil, "type", KindTextUpdate.String())
	if err != nil {
		return nil, err
	}
	if b, err = sjson.SetBytes(b, "msg", t.Message); err != nil {
		return nil, err
	}
	return setTextFields(b, "", t)
}

// Payload re-encodes a decoded message in canonical form.
func Payload(m Message) ([]byte, error) {
	switch m.Kind {
	case KindSetMode:
		return SetModePayload(m.Mode)
	case KindPixelUpdate:
		return PixelUpdatePayload(m.Pixel)
	case KindTextUpdate:
		b, err := sjson.SetBytes(nil, "type", KindTextUpdate.String())
		if err != nil {
			return nil, err
		}
		if m.Text.HasMessage {
			if b, err = sjson.SetBytes(b, "msg", m.Text.Message); err != nil {
				return nil, err
			}
		}
		for f := settings.Field(0); int(f) < settings.FieldCount; f++ {
			v, ok := m.Text.Value(f)
			if !ok {
				continue
			}
			if b, err = setField(b, JSONKey(f), f, v); err != nil {
				return nil, err
			}
		}
		return b, nil
	default:
		return sjson.SetBytes(nil, "type", m.Kind.String())
	}
}

// Status is the device state reported back to a control panel.
type Status struct {
	Mode     string
	UI       string
	App      string
	Score    int
	GameOver bool
	Won      bool
	Text     settings.Text
}

// StatusPayload encodes s as a "status" message.
func StatusPayload(s Status) ([]byte, error) {
	b, err := sjson.SetBytes(nil, "type", "status")
	if err != nil {
		return nil, err
	}
	for _, kv := range []struct {
		key string
		val any
	}{
		{"mode", s.Mode},
		{"ui", s.UI},
		{"app", s.App},
		{"snake.score", s.Score},
		{"snake.gameOver", s.GameOver},
		{"snake.won", s.Won},
		{"text.msg", s.Text.Message},
	} {
		if b, err = sjson.SetBytes(b, kv.key, kv.val); err != nil {
			return nil, err
		}
	}
	return setTextFields(b, "text.", s.Text)
}

func setTextFields(b []byte, prefix string, t settings.Text) ([]byte, error) {
	var err error
	for f := settings.Field(0); int(f) < settings.FieldCount; f++ {
		if b, err = setField(b, prefix+JSONKey(f), f, t.Get(f)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func setField(b []byte, key string, f settings.Field, v int) ([]byte, error) {
	if isBoolField(f) {
		return sjson.SetBytes(b, key, v != 0)
	}
	return sjson.SetBytes(b, key, v)
}
