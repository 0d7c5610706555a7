package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNR52ReflectsChannelEnable(t *testing.T) {
	a := New()
	a.WriteNR52(0x80)
	a.WriteNR12(0xF0) // max volume, DAC on
	a.WriteNR14(0x80) // trigger
	assert.NotZero(t, a.ReadNR52()&0x01)
}

func TestPulseTriggerSetsLengthFromRegister(t *testing.T) {
	a := New()
	a.WriteNR52(0x80)
	a.WriteNR11(0x3F) // length load = 63 -> counter = 1
	a.WriteNR12(0xF0)
	a.WriteNR14(0xC0) // trigger + length enable
	assert.Equal(t, uint8(1), a.ch1.lengthCt)
}

func TestNoiseLFSRAdvancesOnTick(t *testing.T) {
	a := New()
	a.WriteNR52(0x80)
	a.WriteNR42(0xF0)
	a.WriteNR43(0x00)
	a.WriteNR44(0x80)
	before := a.ch4.lfsr
	a.Tick(8)
	assert.NotEqual(t, before, a.ch4.lfsr)
}

func TestWaveChannelReadsNibbleFromRAM(t *testing.T) {
	a := New()
	a.WriteWaveRAM(0, 0xAB)
	a.ch3.position = 0
	assert.Equal(t, uint8(0xA), a.ch3.sample())
	a.ch3.position = 1
	assert.Equal(t, uint8(0xB), a.ch3.sample())
}
