//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
)

const matrixModules = 4

type tinyGoHAL struct {
	logger  *uartLogger
	matrix  *Max7219Chain
	screen  *ssd1306.Device
	in      *pinInput
	t       *tinyGoTime
	power   cpuPower
	battery adcBattery
}

// New returns the Pico (RP2040) HAL.
//
// UART0 GP0/GP1: logs, 115200 8N1.
// SPI0 SCK GP18, SDO GP19, CS GP17: four chained MAX7219 8x8 modules.
// I2C0 SDA GP4, SCL GP5: SSD1306 128x64 menu screen at 0x3C.
// GP10..GP16, GP20, GP21: buttons to ground (see buttonPins).
// GP26 (ADC0): battery sense.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8 * machine.MHz,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
	})
	cs := machine.GP17
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.High()
	matrix := NewMax7219Chain(machine.SPI0, cs, matrixModules)
	if err := matrix.Configure(10); err != nil {
		logger.WriteLineString("hal: " + err.Error())
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	}); err != nil {
		logger.WriteLineString("hal: i2c: " + err.Error())
	}
	screen := ssd1306.NewI2C(machine.I2C0)
	screen.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3C, VccState: ssd1306.SWITCHCAPVCC})
	screen.ClearDisplay()

	machine.InitADC()
	adc := machine.ADC{Pin: machine.ADC0}
	adc.Configure(machine.ADCConfig{})

	return &tinyGoHAL{
		logger:  logger,
		matrix:  matrix,
		screen:  screen,
		in:      newPinInput(),
		t:       newTinyGoTime(),
		power:   cpuPower{log: logger},
		battery: adcBattery{adc: adc},
	}
}

func (h *tinyGoHAL) Logger() Logger            { return h.logger }
func (h *tinyGoHAL) Matrix() Matrix            { return h.matrix }
func (h *tinyGoHAL) Screen() drivers.Displayer { return h.screen }
func (h *tinyGoHAL) Input() Input              { return h.in }
func (h *tinyGoHAL) Time() Time                { return h.t }
func (h *tinyGoHAL) Power() Power              { return h.power }
func (h *tinyGoHAL) Battery() Battery          { return h.battery }
