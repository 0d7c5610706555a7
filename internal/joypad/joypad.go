// Package joypad implements the Game Boy's row-select input matrix: eight
// physical buttons multiplexed onto four readable bits via two select
// lines, all active-low.
package joypad

import "github.com/gbcore/gbcore/internal/interrupts"

// Button identifies one of the eight physical inputs.
type Button uint8

const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// Controller models the P1 register (0xFF00). Only the two select bits are
// ever stored; the four input bits are recomputed on every read from the
// externally supplied pressed-button set, filtered by which row(s) are
// selected.
type Controller struct {
	selectButtons    bool // bit 5 clear selects A/B/Select/Start
	selectDirections bool // bit 4 clear selects Right/Left/Up/Down

	pressed [8]bool

	irq *interrupts.Controller
}

// New returns a Controller with no rows selected and nothing pressed.
func New(irq *interrupts.Controller) *Controller {
	return &Controller{irq: irq}
}

// Write stores the two select bits from a write to P1; the four low bits
// are read-only from the CPU's perspective.
func (c *Controller) Write(v uint8) {
	c.selectDirections = v&0x10 == 0
	c.selectButtons = v&0x20 == 0
}

// Read reconstructs P1: bits 7-6 always read 1, bits 5-4 reflect the
// stored select state, and bits 3-0 are the inverted (0=pressed) OR of
// whichever row(s) are selected.
func (c *Controller) Read() uint8 {
	v := uint8(0xC0)
	if !c.selectDirections {
		v |= 0x10
	}
	if !c.selectButtons {
		v |= 0x20
	}

	var bits uint8
	if c.selectDirections {
		bits |= c.rowBits(Right, Left, Up, Down)
	}
	if c.selectButtons {
		bits |= c.rowBits(A, B, Select, Start)
	}
	return v | (^bits & 0x0F)
}

func (c *Controller) rowBits(b0, b1, b2, b3 Button) uint8 {
	var v uint8
	if c.pressed[b0] {
		v |= 0x01
	}
	if c.pressed[b1] {
		v |= 0x02
	}
	if c.pressed[b2] {
		v |= 0x04
	}
	if c.pressed[b3] {
		v |= 0x08
	}
	return v
}

// SetPressed updates a button's state from the host's input snapshot,
// requesting a Joypad interrupt on every released->pressed transition,
// whichever row (if any) P1 currently selects.
func (c *Controller) SetPressed(b Button, pressed bool) {
	was := c.pressed[b]
	c.pressed[b] = pressed
	if !was && pressed {
		c.irq.Request(interrupts.Joypad)
	}
}

// SetState replaces the entire pressed set in one call, for hosts that
// snapshot input once per frame rather than per-edge.
func (c *Controller) SetState(pressed map[Button]bool) {
	for b := Right; b <= Start; b++ {
		c.SetPressed(b, pressed[b])
	}
}
