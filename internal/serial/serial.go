// Package serial provides the register shell for the Game Boy's link-cable
// port. Network transport between two emulator instances is out of scope;
// what remains is real hardware behaviour - SB/SC and the internal-clock
// bit shifting - with nothing attached on the other end of the cable,
// which on real hardware shifts in all-1 bits.
package serial

import "github.com/gbcore/gbcore/internal/interrupts"

// Controller models SB (0xFF01) and SC (0xFF02).
type Controller struct {
	data    uint8
	control uint8 // bit7 transfer start/active, bit0 internal/external clock

	shifted uint8 // bits shifted so far in the active transfer
	timer   uint16

	irq *interrupts.Controller
}

// New returns a Controller with no transfer in progress.
func New(irq *interrupts.Controller) *Controller {
	return &Controller{irq: irq, control: 0x7E}
}

func (c *Controller) ReadSB() uint8 { return c.data }
func (c *Controller) WriteSB(v uint8) {
	c.data = v
}

func (c *Controller) ReadSC() uint8 { return c.control | 0x7E }
func (c *Controller) WriteSC(v uint8) {
	c.control = v | 0x7E
	if c.control&0x81 == 0x81 {
		c.shifted = 0
		c.timer = 0
	}
}

// active reports whether a transfer is in progress using the internal
// clock (the only kind a host with nothing attached can service).
func (c *Controller) active() bool {
	return c.control&0x81 == 0x81
}

// Tick advances the internal transfer clock by n T-cycles. A real transfer
// shifts one bit in/out every 512 T-cycles (8192 Hz); with no peer
// attached, the incoming bit is always 1.
func (c *Controller) Tick(n uint16) {
	if !c.active() {
		return
	}
	c.timer += n
	for c.timer >= 512 && c.active() {
		c.timer -= 512
		c.data = c.data<<1 | 1
		c.shifted++
		if c.shifted >= 8 {
			c.control &^= 0x80
			c.irq.Request(interrupts.Serial)
		}
	}
}
