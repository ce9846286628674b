// Package si5351 controls a Si5351A clock generator via I²C.
//
// PLLA runs at a fixed 36 times the crystal frequency and feeds every
// output; each output frequency is set by its fractional multisynth divider
// and R divider.
//
// See the package documentation in doc.go for wiring and usage.
package si5351

import (
	"errors"
	"fmt"
	"math/bits"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Register addresses (AN619).
const (
	regOutputEnable = 3
	regCLK0Control  = 16
	regPLLA         = 26
	regMS0          = 42
	regPLLReset     = 177
	regCrystalLoad  = 183
)

const (
	// DefaultAddr is the I²C address of the Si5351A.
	DefaultAddr = 0x60

	pllMult   = 36
	msDenom   = 1048575 // Largest 20 bit denominator
	msMin     = 8
	msMax     = 2048
	rDivMax   = 7 // R divider is 2^7 at most
	numClocks = 8
)

// Frequencies the outputs can be set to with the fixed PLL.
const (
	MinFrequency = 4 * physic.KiloHertz
	MaxFrequency = 112 * physic.MegaHertz
)

// Output selects a clock output.
type Output uint8

const (
	CLK0 Output = iota
	CLK1
	CLK2
)

// NumOutputs is the number of outputs of the 10-pin Si5351A.
const NumOutputs = 3

func (o Output) String() string {
	return fmt.Sprintf("CLK%d", uint8(o))
}

// Drive is the output drive strength.
type Drive byte

const (
	Drive2mA Drive = 0x00
	Drive4mA Drive = 0x01
	Drive6mA Drive = 0x02
	Drive8mA Drive = 0x03
)

// CrystalLoad is the internal load capacitance presented to the crystal.
type CrystalLoad byte

const (
	Load0pF  CrystalLoad = 0x00
	Load6pF  CrystalLoad = 0x40
	Load8pF  CrystalLoad = 0x80
	Load10pF CrystalLoad = 0xC0
)

// Opts is the configuration for the Si5351.
type Opts struct {
	Addr       uint16           // I²C address (default: 0x60)
	Crystal    physic.Frequency // Reference crystal (default: 25MHz)
	Load       CrystalLoad      // Crystal load capacitance
	Correction int64            // Crystal error in parts per billion
}

// DefaultOpts is a 25MHz crystal with the power-on load capacitance.
var DefaultOpts = Opts{
	Addr:    DefaultAddr,
	Crystal: 25 * physic.MegaHertz,
	Load:    Load8pF,
}

// Dev is the device handle for the Si5351.
type Dev struct {
	c    conn.Conn
	opts Opts
	pll  physic.Frequency // Corrected PLLA frequency

	disabled byte // Mirror of the output enable register, 1 = disabled
	halted   bool
}

// NewI2C returns a Si5351 on the bus b with every output disabled and PLLA
// locked.
//
// opts can be nil to use DefaultOpts.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Addr == 0 {
		o.Addr = DefaultAddr
	}
	if o.Crystal < 10*physic.MegaHertz || o.Crystal > 40*physic.MegaHertz {
		return nil, errors.New("si5351: crystal must be between 10MHz and 40MHz")
	}
	if o.Correction < -100000 || o.Correction > 100000 {
		return nil, errors.New("si5351: correction must be within 100ppm")
	}

	xtal := o.Crystal + o.Crystal*physic.Frequency(o.Correction)/1000000000
	d := &Dev{
		c:        &i2c.Dev{Bus: b, Addr: o.Addr},
		opts:     o,
		pll:      pllMult * xtal,
		disabled: 0xFF,
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence.
func (d *Dev) init() error {
	if err := d.writeRegs(regOutputEnable, d.disabled); err != nil {
		return fmt.Errorf("si5351: failed to disable outputs: %w", err)
	}

	// Power down every clock driver.
	off := make([]byte, numClocks)
	for i := range off {
		off[i] = 0x80
	}
	if err := d.writeRegs(regCLK0Control, off...); err != nil {
		return err
	}

	// The low bits are reserved and must read 010010b.
	if err := d.writeRegs(regCrystalLoad, byte(d.opts.Load)|0x12); err != nil {
		return err
	}

	p1, p2, p3 := params(pllMult, 0, 1)
	pll := encode(p1, p2, p3, 0)
	if err := d.writeRegs(regPLLA, pll[:]...); err != nil {
		return err
	}

	// Reset both PLLs so PLLA locks to the new feedback divider.
	return d.writeRegs(regPLLReset, 0xA0)
}

// writeRegs writes data to consecutive registers starting at reg.
func (d *Dev) writeRegs(reg byte, data ...byte) error {
	return d.c.Tx(append([]byte{reg}, data...), nil)
}

// Enable powers up output o from its multisynth and PLLA, and turns it on.
func (d *Dev) Enable(o Output, drive Drive) error {
	if err := d.check(o); err != nil {
		return err
	}
	if drive > Drive8mA {
		return errors.New("si5351: invalid drive strength")
	}
	// CLK_SRC = multisynth, MS_SRC = PLLA, fractional mode.
	if err := d.writeRegs(regCLK0Control+byte(o), 0x0C|byte(drive)); err != nil {
		return err
	}
	d.disabled &^= 1 << o
	return d.writeRegs(regOutputEnable, d.disabled)
}

// Disable turns output o off and powers it down.
func (d *Dev) Disable(o Output) error {
	if err := d.check(o); err != nil {
		return err
	}
	d.disabled |= 1 << o
	if err := d.writeRegs(regOutputEnable, d.disabled); err != nil {
		return err
	}
	return d.writeRegs(regCLK0Control+byte(o), 0x80)
}

// SetFrequency sets the frequency of output o.
func (d *Dev) SetFrequency(o Output, f physic.Frequency) error {
	if err := d.check(o); err != nil {
		return err
	}
	if f < MinFrequency || f > MaxFrequency {
		return fmt.Errorf("si5351: %s outside %s to %s", f, MinFrequency, MaxFrequency)
	}
	a, b, c, rdiv, err := divider(d.pll, f)
	if err != nil {
		return err
	}
	p1, p2, p3 := params(a, b, c)
	ms := encode(p1, p2, p3, rdiv)
	return d.writeRegs(regMS0+8*byte(o), ms[:]...)
}

// PLL returns the PLLA frequency after crystal correction.
func (d *Dev) PLL() physic.Frequency {
	return d.pll
}

// Halt turns every output off.
// After calling Halt, the device will not accept further commands until it
// is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	d.disabled = 0xFF
	return d.writeRegs(regOutputEnable, d.disabled)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("si5351.Dev{%s}", d.opts.Crystal)
}

func (d *Dev) check(o Output) error {
	if d.halted {
		return errors.New("si5351: halted")
	}
	if o >= NumOutputs {
		return fmt.Errorf("si5351: invalid output %s", o)
	}
	return nil
}

// divider returns the multisynth ratio a + b/c and the R divider exponent
// that divide pll down to f.
func divider(pll, f physic.Frequency) (a, b, c uint64, rdiv byte, err error) {
	num, den := uint64(pll), uint64(f)
	for num > msMax*den && rdiv < rDivMax {
		den <<= 1
		rdiv++
	}
	a = num / den
	if a < msMin || a > msMax {
		return 0, 0, 0, 0, fmt.Errorf("si5351: cannot divide %s down to %s", pll, f)
	}
	hi, lo := bits.Mul64(num%den, msDenom)
	b, _ = bits.Div64(hi, lo, den)
	return a, b, msDenom, rdiv, nil
}

// params converts a + b/c to the P1, P2 and P3 register values.
func params(a, b, c uint64) (p1, p2, p3 uint32) {
	f := 128 * b / c
	return uint32(128*a + f - 512), uint32(128*b - c*f), uint32(c)
}

// encode lays out a divider parameter block as 8 consecutive registers.
func encode(p1, p2, p3 uint32, rdiv byte) [8]byte {
	return [8]byte{
		byte(p3 >> 8),
		byte(p3),
		rdiv<<4 | byte(p1>>16)&0x03,
		byte(p1 >> 8),
		byte(p1),
		byte(p3>>16)<<4 | byte(p2>>16)&0x0F,
		byte(p2 >> 8),
		byte(p2),
	}
}
