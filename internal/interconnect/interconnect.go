// Package interconnect provides the memory management unit binding the
// CPU to cartridge, video, sound, timer, joypad, serial and interrupt
// state. It is unaware of the CPU itself and exposes Read/Write/Step plus
// the speed-switch hooks STOP uses (KEY1Armed, SetDoubleSpeed), mirroring
// the bus-centric design the rest of this module follows: every
// peripheral is reached through one address-decoding chokepoint.
package interconnect

import (
	"github.com/gbcore/gbcore/internal/apu"
	"github.com/gbcore/gbcore/internal/boot"
	"github.com/gbcore/gbcore/internal/cartridge"
	"github.com/gbcore/gbcore/internal/interrupts"
	"github.com/gbcore/gbcore/internal/joypad"
	"github.com/gbcore/gbcore/internal/ppu"
	"github.com/gbcore/gbcore/internal/ram"
	"github.com/gbcore/gbcore/internal/serial"
	"github.com/gbcore/gbcore/internal/timer"
	"github.com/gbcore/gbcore/pkg/log"
)

// Interconnect is the Game Boy's 64KiB address space, decoded to the
// owning peripheral on every access.
type Interconnect struct {
	Cart *cartridge.Cartridge
	PPU  *ppu.PPU
	APU  *apu.APU
	Timer *timer.Controller
	Joypad *joypad.Controller
	Serial *serial.Controller
	IRQ  *interrupts.Controller

	bootROM    *boot.ROM
	bootMapped bool

	wram     [8][0x1000]uint8
	wramBank uint8
	hram     *ram.RAM

	cgb          bool
	speedSwitchArmed bool
	doubleSpeed  bool

	dma  oamDMA
	hdma vramDMA

	Log log.Logger
}

// New wires a fresh Interconnect around the given cartridge. cgb selects
// whether CGB-only registers (KEY1, VBK, SVBK, HDMA, palette RAM) respond.
func New(cart *cartridge.Cartridge, bootROM *boot.ROM, cgb bool) *Interconnect {
	irq := interrupts.New()
	ic := &Interconnect{
		Cart:     cart,
		PPU:      ppu.New(irq, cgb),
		APU:      apu.New(),
		Timer:    timer.New(irq),
		Joypad:   joypad.New(irq),
		Serial:   serial.New(irq),
		IRQ:      irq,
		bootROM:  bootROM,
		cgb:      cgb,
		wramBank: 1,
		hram:     ram.New(0x7F),
		Log:      log.New(),
	}
	ic.APU.WriteNR52(0x80)
	if bootROM != nil {
		ic.bootMapped = true
	}
	return ic
}

// Step advances every peripheral by mCycles machine cycles (4 T-cycles
// each), driving OAM/VRAM DMA and the CGB double-speed T-cycle scaling.
// Under double speed the CPU's clock runs at 2x but the PPU's pixel clock
// does not, so the PPU only advances cpu_ticks/cpu_divider T-cycles per
// M-cycle; the Timer still ticks at the full, undivided rate.
func (ic *Interconnect) Step(mCycles uint8) {
	tCycles := uint16(mCycles) * 4
	cpuDivider := uint16(1)
	if ic.doubleSpeed {
		cpuDivider = 2
	}
	for i := uint8(0); i < mCycles; i++ {
		ic.stepDMA()
		prevMode := ic.PPU.Mode()
		ic.PPU.Tick(4 / cpuDivider)
		if prevMode != ppu.ModeHBlank && ic.PPU.Mode() == ppu.ModeHBlank {
			ic.hdma.onHBlank(ic)
		}
		ic.hdma.stepCopying(ic)
		ic.Timer.Tick(4)
		ic.Serial.Tick(4)
	}
	ic.APU.Tick(tCycles)
	ic.PPU.LockOAM(ic.dma.active)
}

// KEY1Armed reports whether a CGB speed switch is armed (KEY1 bit 0 set
// by software ahead of a STOP instruction).
func (ic *Interconnect) KEY1Armed() bool { return ic.speedSwitchArmed }

// SetDoubleSpeed applies the speed switch STOP resolves to and
// disarms it.
func (ic *Interconnect) SetDoubleSpeed(v bool) {
	ic.doubleSpeed = v
	ic.speedSwitchArmed = false
}

func (ic *Interconnect) wramIndex(addr uint16) (bank int, off uint16) {
	off = addr & 0x0FFF
	if addr < 0xD000 {
		return 0, off
	}
	bank = int(ic.wramBank)
	if bank == 0 {
		bank = 1
	}
	return bank, off
}

func (ic *Interconnect) Read(addr uint16) uint8 {
	switch {
	case addr < 0x0100 && ic.bootMapped && ic.bootROM != nil:
		return ic.bootROM.Read(addr)
	case addr < 0x4000:
		return ic.Cart.ReadROM(addr)
	case addr < 0x8000:
		return ic.Cart.ReadROM(addr)
	case addr < 0xA000:
		return ic.PPU.ReadVRAM(addr - 0x8000)
	case addr < 0xC000:
		return ic.Cart.ReadRAM(addr - 0xA000)
	case addr < 0xD000:
		bank, off := ic.wramIndex(addr)
		return ic.wram[bank][off]
	case addr < 0xE000:
		bank, off := ic.wramIndex(addr)
		return ic.wram[bank][off]
	case addr < 0xFE00:
		bank, off := ic.wramIndex(addr - 0x2000)
		return ic.wram[bank][off]
	case addr < 0xFEA0:
		return ic.PPU.ReadOAM(addr - 0xFE00)
	case addr < 0xFF00:
		ic.Log.Debugf("interconnect: read from unusable OAM-shadow address %#04x", addr)
		return 0xFF
	case addr < 0xFF80:
		return ic.readIO(addr)
	case addr < 0xFFFF:
		return ic.hram.Read(addr - 0xFF80)
	default:
		return ic.IRQ.ReadIE()
	}
}

func (ic *Interconnect) Write(addr uint16, v uint8) {
	switch {
	case addr < 0x8000:
		ic.Cart.WriteROM(addr, v)
	case addr < 0xA000:
		ic.PPU.WriteVRAM(addr-0x8000, v)
	case addr < 0xC000:
		ic.Cart.WriteRAM(addr-0xA000, v)
	case addr < 0xD000:
		bank, off := ic.wramIndex(addr)
		ic.wram[bank][off] = v
	case addr < 0xE000:
		bank, off := ic.wramIndex(addr)
		ic.wram[bank][off] = v
	case addr < 0xFE00:
		bank, off := ic.wramIndex(addr - 0x2000)
		ic.wram[bank][off] = v
	case addr < 0xFEA0:
		ic.PPU.WriteOAM(addr-0xFE00, v)
	case addr < 0xFF00:
		ic.Log.Debugf("interconnect: write %#02x to unusable OAM-shadow address %#04x", v, addr)
	case addr < 0xFF80:
		ic.writeIO(addr, v)
	case addr < 0xFFFF:
		ic.hram.Write(addr-0xFF80, v)
	default:
		ic.IRQ.WriteIE(v)
	}
}
