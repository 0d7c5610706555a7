package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestSetsOnlyTheRequestedBit(t *testing.T) {
	c := New()
	c.Request(Timer)
	assert.Equal(t, uint8(1<<Timer), c.flag)
}

func TestPendingRequiresBothFlagAndEnable(t *testing.T) {
	c := New()
	c.Request(Timer)
	assert.False(t, c.HasPending())

	c.WriteIE(1 << Timer)
	assert.True(t, c.HasPending())
}

func TestNextKindReturnsLowestPriorityBit(t *testing.T) {
	c := New()
	c.WriteIE(0xFF)
	c.Request(Joypad)
	c.Request(VBlank)

	k, ok := c.NextKind()
	assert.True(t, ok)
	assert.Equal(t, VBlank, k)
}

func TestClearRemovesOnlyThatBit(t *testing.T) {
	c := New()
	c.WriteIE(0xFF)
	c.Request(VBlank)
	c.Request(Timer)

	c.Clear(VBlank)

	assert.False(t, c.flag&(1<<VBlank) != 0)
	assert.True(t, c.flag&(1<<Timer) != 0)
}

func TestReadIFMasksUpperBitsHigh(t *testing.T) {
	c := New()
	c.Request(Serial)
	assert.Equal(t, uint8(1<<Serial)|0xE0, c.ReadIF())
}

func TestVectorAddressesAreEightApart(t *testing.T) {
	assert.Equal(t, uint16(0x0040), VBlank.Vector())
	assert.Equal(t, uint16(0x0048), LCDStat.Vector())
	assert.Equal(t, uint16(0x0050), Timer.Vector())
	assert.Equal(t, uint16(0x0058), Serial.Vector())
	assert.Equal(t, uint16(0x0060), Joypad.Vector())
}
