//go:build !tinygo && !cgo

package hal

import "fmt"

// RunWindow needs cgo for ebiten; -headless and -term work without it.
func RunWindow(_ NewApp, _ RunConfig) error {
	return fmt.Errorf("window mode: %w without cgo (use -headless or -term)", ErrNotImplemented)
}
