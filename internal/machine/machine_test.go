package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbcore/gbcore/internal/joypad"
	"github.com/gbcore/gbcore/internal/types"
)

func blankROM() []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:], "TEST")
	return rom
}

func TestNewMachineStartsAtCartridgeEntryPoint(t *testing.T) {
	m, err := New(blankROM(), types.Auto)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0100), m.CPU.PC)
}

func TestRunFrameAdvancesPC(t *testing.T) {
	m, err := New(blankROM(), types.Auto)
	require.NoError(t, err)
	before := m.CPU.PC
	m.RunFrame()
	assert.NotEqual(t, before, m.CPU.PC)
}

func TestFramebufferIsRightSize(t *testing.T) {
	m, err := New(blankROM(), types.Auto)
	require.NoError(t, err)
	fb := m.Framebuffer()
	assert.Len(t, fb, 144)
	assert.Len(t, fb[0], 160)
}

func TestRunFrameFiresVBlankInterrupt(t *testing.T) {
	m, err := New(blankROM(), types.Auto)
	require.NoError(t, err)
	m.Bus.Write(0xFFFF, 0x01) // enable VBlank

	m.RunFrame()

	assert.True(t, m.Bus.IRQ.ReadIF()&0x01 != 0)
}

func TestSetButtonStateRequestsJoypadInterrupt(t *testing.T) {
	m, err := New(blankROM(), types.Auto)
	require.NoError(t, err)
	m.Bus.Write(0xFFFF, 0x10) // enable Joypad
	m.Bus.Write(0xFF00, 0x10) // select the button row (A/B/Select/Start)

	m.SetButtonState(joypad.A, true)

	assert.True(t, m.Bus.IRQ.ReadIF()&0x10 != 0)
}

func TestSaveRAMRoundTripsThroughLoadRAM(t *testing.T) {
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:], "TEST")
	rom[0x0147] = 0x03 // MBC1+RAM+BATTERY
	rom[0x0149] = 0x02 // 8 KiB RAM
	m, err := New(rom, types.Auto)
	require.NoError(t, err)

	m.Bus.Write(0x0000, 0x0A) // enable cart RAM
	m.Bus.Write(0xA000, 0x99)
	saved := m.SaveRAM()
	require.NotNil(t, saved)

	m2, err := New(rom, types.Auto)
	require.NoError(t, err)
	m2.LoadRAM(saved)
	m2.Bus.Write(0x0000, 0x0A)
	assert.Equal(t, uint8(0x99), m2.Bus.Read(0xA000))
}
