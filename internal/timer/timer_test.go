package timer

import (
	"testing"

	"github.com/gbcore/gbcore/internal/interrupts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDIVResetsCounter(t *testing.T) {
	tm := New(interrupts.New())
	tm.Tick(300)
	require.NotEqual(t, uint8(0), tm.ReadDIV())

	tm.WriteDIV()
	assert.Equal(t, uint8(0), tm.ReadDIV())
}

func TestTIMAOverflowReloadsFromTMAAndRequestsInterrupt(t *testing.T) {
	irq := interrupts.New()
	irq.WriteIE(1 << interrupts.Timer)
	tm := New(irq)
	tm.WriteTMA(0x42)
	tm.WriteTAC(0x05) // enabled, tap bit 3 (262144 Hz)
	tm.WriteTIMA(0xFF)

	// Tap bit 3 falls when the internal counter crosses 16 (bit 3 goes
	// 1->0); stop short of the next falling edge at 32 so only one
	// overflow is observed.
	for i := 0; i < 20; i++ {
		tm.Tick(1)
	}

	assert.True(t, irq.HasPending())
	assert.Equal(t, uint8(0x42), tm.ReadTIMA())
}

func TestDisabledTimerNeverIncrementsTIMA(t *testing.T) {
	tm := New(interrupts.New())
	tm.WriteTAC(0x00) // disabled
	tm.WriteTIMA(0x10)
	tm.Tick(10000)
	assert.Equal(t, uint8(0x10), tm.ReadTIMA())
}

func TestReadTACMasksUnusedBitsHigh(t *testing.T) {
	tm := New(interrupts.New())
	tm.WriteTAC(0x01)
	assert.Equal(t, uint8(0x01)|0xF8, tm.ReadTAC())
}
