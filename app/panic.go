package app

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// panicked records a recovered panic in the logs and shows the on-screen log
// with the stack on the menu screen. The matrix keeps its last frame.
func (s *System) panicked(r any) error {
	stack := string(debug.Stack())
	s.log.Error().Str("panic", fmt.Sprint(r)).Msg("pixelwear panic")

	for _, line := range strings.Split(stack, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "/") {
			continue
		}
		s.slog.WriteLineString(line)
	}
	// Last, so it is the bottom line on screen.
	s.slog.WriteLineString(fmt.Sprintf("panic: %v", r))
	if s.h != nil {
		if l := s.h.Logger(); l != nil {
			for _, line := range strings.Split(stack, "\n") {
				if line != "" {
					l.WriteLineString(line)
				}
			}
		}
	}
	if s.screen != nil {
		_ = s.slog.Render(s.screen)
	}
	return fmt.Errorf("pixelwear panic: %v", r)
}
