package joypad

import (
	"testing"

	"github.com/gbcore/gbcore/internal/interrupts"
	"github.com/stretchr/testify/assert"
)

func TestReadReflectsSelectedRowOnly(t *testing.T) {
	c := New(interrupts.New())
	c.SetPressed(A, true)
	c.SetPressed(Right, true)

	c.Write(0x20) // select directions (bit 4 clear), buttons deselected
	assert.Equal(t, uint8(0xEE), c.Read())

	c.Write(0x10) // select buttons (bit 5 clear), directions deselected
	assert.Equal(t, uint8(0xDE), c.Read())
}

func TestNoRowSelectedReadsAllInputBitsHigh(t *testing.T) {
	c := New(interrupts.New())
	c.SetPressed(A, true)
	c.Write(0x30) // neither row selected
	assert.Equal(t, uint8(0xFF), c.Read())
}

func TestSetPressedRequestsInterruptOnlyOnRisingEdge(t *testing.T) {
	irq := interrupts.New()
	irq.WriteIE(1 << interrupts.Joypad)
	c := New(irq)

	c.SetPressed(Start, true)
	assert.True(t, irq.HasPending())

	irq.Clear(interrupts.Joypad)
	c.SetPressed(Start, true) // already pressed, no new edge
	assert.False(t, irq.HasPending())

	c.SetPressed(Start, false)
	c.SetPressed(Start, true)
	assert.True(t, irq.HasPending())
}
