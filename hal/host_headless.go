//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// RunConfig controls the host runners.
type RunConfig struct {
	HostConfig
	Hz    int
	Ticks uint64
}

func (c RunConfig) period() (time.Duration, error) {
	if c.Hz <= 0 {
		c.Hz = 60
	}
	d := time.Second / time.Duration(c.Hz)
	if d <= 0 {
		return 0, fmt.Errorf("invalid hz: %d", c.Hz)
	}
	return d, nil
}

// NewApp builds the firmware on a HAL and returns its per-frame step.
type NewApp func(HAL) func() error

// RunHeadless runs the firmware without a window. Input only comes from the
// remote channel.
func RunHeadless(ctx context.Context, newApp NewApp, cfg RunConfig) error {
	d, err := cfg.period()
	if err != nil {
		return err
	}

	h := newHost(cfg.HostConfig)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
