package app

import (
	"bytes"
	"io"

	"github.com/rs/zerolog"

	"pixelwear/hal"
)

// lineWriter hands each zerolog event to the HAL line sink.
type lineWriter struct {
	l hal.Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	if w.l != nil {
		w.l.WriteLineBytes(bytes.TrimRight(p, "\n"))
	}
	return len(p), nil
}

// newLogger writes JSON events to the HAL logger and a short human form to
// the on-screen log.
func newLogger(h hal.HAL, screen io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:           screen,
		NoColor:       true,
		PartsOrder:    []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FieldsExclude: []string{"event", "from", "effect"},
	}
	w := zerolog.MultiLevelWriter(lineWriter{l: h.Logger()}, console)
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
