package cpu

import (
	"testing"

	"github.com/gbcore/gbcore/internal/cartridge"
	"github.com/gbcore/gbcore/internal/interconnect"
	"github.com/gbcore/gbcore/internal/interrupts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCPU builds a CPU over a real Interconnect with program bytes
// placed at the cartridge entry point (0x0100), matching how New() starts
// execution.
func newTestCPU(t *testing.T, program ...uint8) *CPU {
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:], "TESTROM")
	copy(rom[0x0100:], program)
	cart, err := cartridge.New(rom)
	require.NoError(t, err)
	ic := interconnect.New(cart, nil, false)
	return New(ic, false)
}

func TestSetAFMasksLowNibbleOfF(t *testing.T) {
	c := newTestCPU(t)
	c.SetAF(0x1234)
	assert.Equal(t, uint16(0x1230), c.AF())
}

func TestPushPopAFRoundTripsMaskedFlags(t *testing.T) {
	// PUSH AF (0xF5); POP BC (0xC1)
	c := newTestCPU(t, 0xF5, 0xC1)
	c.SetAF(0x5678)
	c.Step()
	c.Step()
	assert.Equal(t, uint16(0x5670), c.BC())
}

func TestLDImmediate8LoadsRegisterAndAdvancesPC(t *testing.T) {
	// LD B,d8 (0x06) 0x42
	c := newTestCPU(t, 0x06, 0x42)
	before := c.PC
	c.Step()
	assert.Equal(t, uint8(0x42), c.B)
	assert.Equal(t, before+2, c.PC)
}

func TestXORAClearsAccumulatorAndSetsZero(t *testing.T) {
	// LD A,d8 0x01; XOR A (0xAF)
	c := newTestCPU(t, 0x3E, 0x01, 0xAF)
	c.Step()
	c.Step()
	assert.Equal(t, uint8(0), c.A)
	assert.True(t, c.Flag(0x80)) // Z
}

func TestEIDelaysIMEByOneInstruction(t *testing.T) {
	// EI (0xFB); NOP (0x00); NOP (0x00)
	c := newTestCPU(t, 0xFB, 0x00, 0x00)
	c.Step() // executes EI, ime not yet active
	assert.False(t, c.ime)
	c.Step() // the instruction immediately after EI still runs with the old IME
	assert.False(t, c.ime)
	c.Step() // by the next instruction, IME has taken effect
	assert.True(t, c.ime)
}

func TestHaltWakesOnPendingInterruptWithoutDispatchWhenIMEClear(t *testing.T) {
	// DI (0xF3); HALT (0x76)
	c := newTestCPU(t, 0xF3, 0x76)
	c.Step()
	c.Step()
	assert.True(t, c.halted)

	c.bus.IRQ.WriteIE(1 << interrupts.VBlank)
	c.bus.IRQ.Request(interrupts.VBlank)
	c.Step()
	assert.False(t, c.halted)
}

func TestHaltBugReexecutesFollowingByte(t *testing.T) {
	// DI; HALT; INC A (0x3C) staged with a pending-but-disabled interrupt
	c := newTestCPU(t, 0xF3, 0x76, 0x3C)
	c.bus.IRQ.WriteIE(1 << interrupts.VBlank)
	c.bus.IRQ.Request(interrupts.VBlank)

	c.Step() // DI
	c.Step() // HALT observes IME=0 and a pending interrupt: HALT bug armed
	assert.Equal(t, modeHaltBug, c.mode)

	pcBeforeBug := c.PC
	c.Step() // INC A executes (A starts at 0x01), but PC fails to advance past it
	assert.Equal(t, uint8(2), c.A)
	assert.Equal(t, pcBeforeBug, c.PC)
}

func TestInterruptDispatchPushesPCAndJumpsToVector(t *testing.T) {
	// NOP; NOP (just something at the entry point to return to)
	c := newTestCPU(t, 0x00, 0x00)
	c.ime = true
	c.bus.IRQ.WriteIE(1 << interrupts.Timer)
	c.bus.IRQ.Request(interrupts.Timer)

	pcBefore := c.PC
	mCycles := c.Step()

	assert.Equal(t, interrupts.Timer.Vector(), c.PC)
	assert.Equal(t, uint8(5), mCycles)
	assert.False(t, c.ime)

	returned := c.pop16()
	assert.Equal(t, pcBefore, returned)
}

func TestDAACorrectsAfterBCDAddition(t *testing.T) {
	// LD A,0x09; LD B,0x01; ADD A,B (0x80); DAA (0x27)
	c := newTestCPU(t, 0x3E, 0x09, 0x06, 0x01, 0x80, 0x27)
	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, uint8(0x0A), c.A)
	c.Step()
	assert.Equal(t, uint8(0x10), c.A)
}
