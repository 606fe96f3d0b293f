//go:build tinygo

package main

import (
	"pixelwear/app"
	"pixelwear/hal"
)

func main() {
	app.Run(hal.New())
}
