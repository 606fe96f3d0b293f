package hal

import (
	"fmt"

	"tinygo.org/x/drivers"

	"pixelwear/screenos/pixbuf"
)

// MAX7219 registers.
const (
	regNoop        = 0x00
	regDigit0      = 0x01
	regDecodeMode  = 0x09
	regIntensity   = 0x0A
	regScanLimit   = 0x0B
	regShutdown    = 0x0C
	regDisplayTest = 0x0F
)

// Max7219Chain drives daisy-chained 8x8 MAX7219 modules wired FC-16 style:
// the module nearest the MCU is the rightmost one and bit 7 of a row byte is
// its leftmost column.
type Max7219Chain struct {
	bus drivers.SPI
	cs  Pin
	n   int
	// tx is one register write for every module.
	tx []byte
	// rows caches the last frame so unchanged rows are not resent.
	rows  [][8]byte
	valid bool
}

var _ Matrix = (*Max7219Chain)(nil)

func NewMax7219Chain(bus drivers.SPI, cs Pin, modules int) *Max7219Chain {
	if modules < 1 {
		modules = 1
	}
	return &Max7219Chain{
		bus:  bus,
		cs:   cs,
		n:    modules,
		tx:   make([]byte, 2*modules),
		rows: make([][8]byte, modules),
	}
}

// Configure wakes the chain with decoding off, all rows scanned and the
// given brightness.
func (c *Max7219Chain) Configure(brightness int) error {
	for _, rv := range [][2]byte{
		{regDisplayTest, 0},
		{regDecodeMode, 0},
		{regScanLimit, 7},
		{regIntensity, byte(clampLevel(brightness))},
		{regShutdown, 1},
	} {
		if err := c.writeAll(rv[0], rv[1]); err != nil {
			return fmt.Errorf("max7219 configure: %w", err)
		}
	}
	c.valid = false
	return nil
}

func (c *Max7219Chain) Size() (w, h int) { return 8 * c.n, 8 }

func (c *Max7219Chain) SetBrightness(level int) {
	_ = c.writeAll(regIntensity, byte(clampLevel(level)))
}

func (c *Max7219Chain) SetEnabled(on bool) {
	var v byte
	if on {
		v = 1
	}
	_ = c.writeAll(regShutdown, v)
}

// Paint sends the rows of buf that changed since the last frame.
func (c *Max7219Chain) Paint(buf *pixbuf.Buffer) error {
	next := make([][8]byte, c.n)
	for m := 0; m < c.n; m++ {
		for row := 0; row < 8; row++ {
			var b byte
			for col := 0; col < 8; col++ {
				if buf.At(m*8+col, row) {
					b |= 0x80 >> col
				}
			}
			next[m][row] = b
		}
	}

	for row := 0; row < 8; row++ {
		changed := !c.valid
		for m := 0; m < c.n && !changed; m++ {
			changed = next[m][row] != c.rows[m][row]
		}
		if !changed {
			continue
		}
		// The first pair shifted out ends in the farthest (leftmost) module.
		for m := 0; m < c.n; m++ {
			c.tx[2*m] = byte(regDigit0 + row)
			c.tx[2*m+1] = next[m][row]
		}
		if err := c.send(); err != nil {
			c.valid = false
			return fmt.Errorf("max7219 row %d: %w", row, err)
		}
	}
	copy(c.rows, next)
	c.valid = true
	return nil
}

func (c *Max7219Chain) writeAll(reg, v byte) error {
	for m := 0; m < c.n; m++ {
		c.tx[2*m] = reg
		c.tx[2*m+1] = v
	}
	return c.send()
}

func (c *Max7219Chain) send() error {
	c.cs.Low()
	err := c.bus.Tx(c.tx, nil)
	c.cs.High()
	return err
}

func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 15 {
		return 15
	}
	return v
}
