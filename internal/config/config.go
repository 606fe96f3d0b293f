package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the firmware configuration. Flags in main override it.
type Config struct {
	LogLevel zerolog.Level

	MatrixWidth  int
	MatrixHeight int
	ScreenWidth  int
	ScreenHeight int

	SnakeScale    int
	SnakeInterval time.Duration
	Seed          uint32

	LogLines    int
	RemoteQueue int
	RemoteFile  string

	Headless bool
	Terminal bool
	Hz       int
	Ticks    uint64
}

// Load loads configuration from environment variables.
func Load() *Config {
	level, err := zerolog.ParseLevel(getEnv("PIXELWEAR_LOG_LEVEL", "info"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return &Config{
		LogLevel:      level,
		MatrixWidth:   getInt("PIXELWEAR_MATRIX_WIDTH", 32, 1),
		MatrixHeight:  getInt("PIXELWEAR_MATRIX_HEIGHT", 8, 1),
		ScreenWidth:   getInt("PIXELWEAR_SCREEN_WIDTH", 128, 1),
		ScreenHeight:  getInt("PIXELWEAR_SCREEN_HEIGHT", 64, 1),
		SnakeScale:    getInt("PIXELWEAR_SNAKE_SCALE", 1, 1),
		SnakeInterval: getDuration("PIXELWEAR_SNAKE_INTERVAL", 150*time.Millisecond),
		Seed:          uint32(getInt("PIXELWEAR_SEED", 0, 0)),
		LogLines:      getInt("PIXELWEAR_LOG_LINES", 64, 1),
		RemoteQueue:   getInt("PIXELWEAR_REMOTE_QUEUE", 16, 1),
		RemoteFile:    getEnv("PIXELWEAR_REMOTE", ""),
		Headless:      getEnv("PIXELWEAR_HEADLESS", "false") == "true",
		Terminal:      getEnv("PIXELWEAR_TERM", "false") == "true",
		Hz:            getInt("PIXELWEAR_HZ", 60, 1),
		Ticks:         uint64(getInt("PIXELWEAR_TICKS", 0, 0)),
	}
}

// SnakeGrid returns the snake grid for a matrix of mw x mh cells and the
// scale it is drawn at.
func (c *Config) SnakeGrid(mw, mh int) (w, h, scale int) {
	scale = max(c.SnakeScale, 1)
	return mw / scale, mh / scale, scale
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return fallback
}

// getInt falls back when the value is missing, malformed or below lo.
func getInt(key string, fallback, lo int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v < lo {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
