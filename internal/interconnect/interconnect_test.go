package interconnect

import (
	"testing"

	"github.com/gbcore/gbcore/internal/cartridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) *cartridge.Cartridge {
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:], "TESTROM")
	rom[0x0147] = 0x00 // MBC0
	rom[0x0148] = 0x00 // 32KiB
	rom[0x0149] = 0x00
	c, err := cartridge.New(rom)
	require.NoError(t, err)
	return c
}

func TestWRAMEchoMirrorsWorkingRAM(t *testing.T) {
	ic := New(newTestCart(t), nil, false)
	ic.Write(0xC010, 0x55)
	assert.Equal(t, uint8(0x55), ic.Read(0xE010))
}

func TestHRAMReadWrite(t *testing.T) {
	ic := New(newTestCart(t), nil, false)
	ic.Write(0xFF80, 0xAB)
	assert.Equal(t, uint8(0xAB), ic.Read(0xFF80))
}

func TestOAMDMACopiesOneHundredSixtyBytes(t *testing.T) {
	ic := New(newTestCart(t), nil, false)
	for i := 0; i < 0xA0; i++ {
		ic.Write(0xC000+uint16(i), uint8(i))
	}
	ic.Write(0xFF46, 0xC0)
	for i := 0; i < 0xA0; i++ {
		ic.Step(1)
	}
	for i := 0; i < 0xA0; i++ {
		assert.Equal(t, uint8(i), ic.PPU.ReadOAM(uint16(i)))
	}
}

func TestOAMLockedDuringDMA(t *testing.T) {
	ic := New(newTestCart(t), nil, false)
	ic.Write(0xFF46, 0xC0)
	ic.Step(1)
	assert.False(t, ic.PPU.OAMAccessible())
}

func TestSVBKSelectsWRAMBank(t *testing.T) {
	ic := New(newTestCart(t), nil, true)
	ic.Write(0xFF70, 0x03)
	ic.Write(0xD000, 0x77)
	assert.Equal(t, uint8(0x77), ic.wram[3][0])
}

func TestIEIsTopOfAddressSpace(t *testing.T) {
	ic := New(newTestCart(t), nil, false)
	ic.Write(0xFFFF, 0x1F)
	assert.Equal(t, uint8(0x1F), ic.Read(0xFFFF))
}
