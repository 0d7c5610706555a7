// Package timer implements the DIV/TIMA/TMA/TAC timer block. It is ticked
// in T-cycles by the interconnect and requests a Timer interrupt on TIMA
// overflow.
package timer

import "github.com/gbcore/gbcore/internal/interrupts"

// tapBit maps TAC's low two bits to the internal-counter bit that gates
// TIMA increments: modes 00..11 select 4096, 262144, 65536, 16384 Hz.
var tapBit = [4]uint8{9, 3, 5, 7}

// Controller models the 16-bit free-running counter whose high byte is the
// visible DIV register, plus TIMA/TMA/TAC.
type Controller struct {
	counter uint16 // internal 16-bit divider; DIV = counter>>8
	tima    uint8
	tma     uint8
	tac     uint8

	irq *interrupts.Controller

	lastAnd bool // previous (tap-bit & enable) sample, for falling-edge detection
}

// New returns a Controller wired to the given interrupt controller.
func New(irq *interrupts.Controller) *Controller {
	return &Controller{irq: irq}
}

// enabled reports whether TAC bit 2 is set.
func (c *Controller) enabled() bool {
	return c.tac&0x04 != 0
}

func (c *Controller) sample() bool {
	bit := tapBit[c.tac&0x03]
	return c.enabled() && (c.counter>>bit)&1 != 0
}

// Tick advances the internal counter by n T-cycles (the full cpu_ticks, not
// divided for double speed - only the CPU's own divider changes under
// double speed, the timer counts at the same underlying rate). TIMA
// increments on every falling edge of the selected tap bit.
func (c *Controller) Tick(n uint16) {
	for i := uint16(0); i < n; i++ {
		c.counter++
		cur := c.sample()
		if c.lastAnd && !cur {
			c.incrementTIMA()
		}
		c.lastAnd = cur
	}
}

func (c *Controller) incrementTIMA() {
	if c.tima == 0xFF {
		c.tima = c.tma
		c.irq.Request(interrupts.Timer)
		return
	}
	c.tima++
}

// ReadDIV returns the visible high byte of the internal counter.
func (c *Controller) ReadDIV() uint8 { return uint8(c.counter >> 8) }

// WriteDIV resets the internal counter to zero. Because TIMA increments on
// a falling edge of the tap bit, zeroing a counter whose tap bit was
// currently high produces the documented "spurious TIMA tick" quirk; this
// implementation does not special-case it.
func (c *Controller) WriteDIV() {
	c.counter = 0
	c.lastAnd = false
}

func (c *Controller) ReadTIMA() uint8     { return c.tima }
func (c *Controller) WriteTIMA(v uint8)   { c.tima = v }
func (c *Controller) ReadTMA() uint8      { return c.tma }
func (c *Controller) WriteTMA(v uint8)    { c.tma = v }
func (c *Controller) ReadTAC() uint8      { return c.tac | 0xF8 }
func (c *Controller) WriteTAC(v uint8)    { c.tac = v & 0x07 }
