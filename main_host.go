//go:build !tinygo

package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"pixelwear/app"
	"pixelwear/hal"
	"pixelwear/internal/buildinfo"
	"pixelwear/internal/config"
)

const replaySpacing = 20 * time.Millisecond

func main() {
	cfg := config.Load()
	level := cfg.LogLevel.String()
	var showVersion bool
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	flag.BoolVar(&cfg.Terminal, "term", cfg.Terminal, "Run in the terminal instead of a window.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frames per second of the consumer loop.")
	flag.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N frames in headless/terminal mode (0 = run forever).")
	flag.DurationVar(&cfg.SnakeInterval, "snake-interval", cfg.SnakeInterval, "Time between snake moves.")
	flag.IntVar(&cfg.SnakeScale, "snake-scale", cfg.SnakeScale, "Matrix pixels per snake cell.")
	seed := flag.Uint("seed", uint(cfg.Seed), "Snake food seed (0 = time based).")
	flag.StringVar(&cfg.RemoteFile, "remote", cfg.RemoteFile, "JSON-lines file of control-panel messages to replay.")
	flag.StringVar(&level, "log-level", level, "Log level (trace, debug, info, warn, error).")
	flag.BoolVar(&showVersion, "version", false, "Print the build and exit.")
	flag.Parse()

	if showVersion {
		fmt.Println(buildinfo.String())
		return
	}
	cfg.Seed = uint32(*seed)
	if l, err := zerolog.ParseLevel(level); err == nil && l != zerolog.NoLevel {
		cfg.LogLevel = l
	}

	var replay [][]byte
	if cfg.RemoteFile != "" {
		var err error
		if replay, err = readLines(cfg.RemoteFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var sys *app.System
	newApp := func(h hal.HAL) func() error {
		sys = app.New(h, cfg)
		if len(replay) > 0 {
			go func() { _ = sys.Replay(ctx, replay, replaySpacing) }()
		}
		return sys.Step
	}
	run := hal.RunConfig{
		HostConfig: hal.HostConfig{
			MatrixWidth:  cfg.MatrixWidth,
			MatrixHeight: cfg.MatrixHeight,
			ScreenWidth:  cfg.ScreenWidth,
			ScreenHeight: cfg.ScreenHeight,
		},
		Hz:    cfg.Hz,
		Ticks: cfg.Ticks,
	}

	var err error
	switch {
	case cfg.Terminal:
		err = hal.RunTerminal(ctx, newApp, run)
	case cfg.Headless:
		err = hal.RunHeadless(ctx, newApp, run)
	default:
		err = hal.RunWindow(newApp, run)
		if errors.Is(err, hal.ErrNotImplemented) {
			fmt.Fprintf(os.Stderr, "%v; falling back to the terminal\n", err)
			err = hal.RunTerminal(ctx, newApp, run)
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if sys != nil && cfg.Headless {
		if b, err := sys.Status(); err == nil {
			fmt.Println(string(b))
		}
	}
}

func readLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("remote replay: %w", err)
	}
	defer f.Close()

	var out [][]byte
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		out = append(out, append([]byte(nil), line...))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("remote replay %s: %w", path, err)
	}
	return out, nil
}
