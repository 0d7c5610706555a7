// Package ppu implements the DMG/CGB picture processing unit: the
// scanline mode state machine, VRAM/OAM access gating, and a background +
// window + sprite software renderer that produces one 160x144 frame per
// 70224-cycle pass.
package ppu

import (
	"github.com/gbcore/gbcore/internal/interrupts"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	cyclesOAM    = 80
	cyclesVRAM   = 172
	cyclesHBlank = 204
	cyclesLine   = cyclesOAM + cyclesVRAM + cyclesHBlank // 456
	linesPerFrame = 154
)

// Mode mirrors the two STAT mode bits.
type Mode uint8

const (
	ModeHBlank Mode = 0
	ModeVBlank Mode = 1
	ModeOAM    Mode = 2
	ModeVRAM   Mode = 3
)

// PPU owns VRAM, OAM, the palette memories and the framebuffer, and
// advances its mode FSM in lockstep with the CPU's machine cycles.
type PPU struct {
	cgb bool

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	wy   uint8
	wx   uint8

	bgp  uint8
	obp0 uint8
	obp1 uint8

	vram      [2][0x2000]uint8
	vramBank  uint8
	oam       [0xA0]uint8
	oamLocked bool // set by the Interconnect while OAM DMA is in flight

	bgPalette  [64]uint8
	objPalette [64]uint8
	bgPalIdx   uint8
	objPalIdx  uint8

	mode        Mode
	modeClock   int
	windowLine  uint8
	statLineLast bool // unused: STAT interrupts fire per event, with no IRQ-line edge detection

	Frame [ScreenHeight][ScreenWidth][3]uint8

	irq *interrupts.Controller
}

func New(irq *interrupts.Controller, cgb bool) *PPU {
	return &PPU{irq: irq, cgb: cgb, mode: ModeOAM}
}

func (p *PPU) enabled() bool { return p.lcdc&0x80 != 0 }

// Tick advances the PPU by n T-cycles, stepping the mode FSM and firing
// VBlank/STAT interrupts and line-compare as real hardware would, at
// scanline (not dot) granularity.
func (p *PPU) Tick(n uint16) {
	if p.lcdc&0x80 == 0 {
		return
	}
	cycles := int(n)
	for cycles > 0 {
		step := cycles
		if step > 4 {
			step = 4
		}
		cycles -= step
		p.modeClock += step
		p.advance()
	}
}

func (p *PPU) advance() {
	switch p.mode {
	case ModeOAM:
		if p.modeClock >= cyclesOAM {
			p.modeClock -= cyclesOAM
			p.setMode(ModeVRAM)
		}
	case ModeVRAM:
		if p.modeClock >= cyclesVRAM {
			p.modeClock -= cyclesVRAM
			p.setMode(ModeHBlank)
			p.renderScanline()
		}
	case ModeHBlank:
		if p.modeClock >= cyclesHBlank {
			p.modeClock -= cyclesHBlank
			p.ly++
			p.checkLYC()
			if p.ly == ScreenHeight {
				p.setMode(ModeVBlank)
				p.irq.Request(interrupts.VBlank)
			} else {
				p.setMode(ModeOAM)
			}
		}
	case ModeVBlank:
		if p.modeClock >= cyclesLine {
			p.modeClock -= cyclesLine
			p.ly++
			if p.ly >= linesPerFrame {
				p.ly = 0
				p.windowLine = 0
				p.setMode(ModeOAM)
			}
			p.checkLYC()
		}
	}
	p.updateStatLine()
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
	p.statLineEnterInterrupt()
}

// statLineEnterInterrupt fires the STAT interrupt on entry to a mode whose
// STAT-enable bit is set, matching the common "mode-change edge" model.
func (p *PPU) statLineEnterInterrupt() {
	var bit uint8
	switch p.mode {
	case ModeHBlank:
		bit = 1 << 3
	case ModeVBlank:
		bit = 1 << 4
	case ModeOAM:
		bit = 1 << 5
	default:
		return
	}
	if p.stat&bit != 0 {
		p.irq.Request(interrupts.LCDStat)
	}
}

func (p *PPU) checkLYC() {
	if p.ly == p.lyc {
		p.stat |= 1 << 2
		if p.stat&(1<<6) != 0 {
			p.irq.Request(interrupts.LCDStat)
		}
	} else {
		p.stat &^= 1 << 2
	}
}

func (p *PPU) updateStatLine() {}

// Mode reports the current FSM mode, used by the Interconnect to gate
// VRAM/OAM CPU access.
func (p *PPU) Mode() Mode { return p.mode }

// OAMAccessible reports whether the CPU may currently read/write OAM.
func (p *PPU) OAMAccessible() bool {
	if p.oamLocked {
		return false
	}
	return p.mode == ModeHBlank || p.mode == ModeVBlank || p.lcdc&0x80 == 0
}

// VRAMAccessible reports whether the CPU may currently read/write VRAM.
func (p *PPU) VRAMAccessible() bool {
	return p.mode != ModeVRAM || p.lcdc&0x80 == 0
}

func (p *PPU) LockOAM(locked bool) { p.oamLocked = locked }

func (p *PPU) ReadVRAM(addr uint16) uint8 {
	if !p.VRAMAccessible() {
		return 0xFF
	}
	return p.vram[p.vramBank][addr]
}

func (p *PPU) WriteVRAM(addr uint16, v uint8) {
	if !p.VRAMAccessible() {
		return
	}
	p.vram[p.vramBank][addr] = v
}

// WriteVRAMRaw bypasses the CPU access gate for the CGB VRAM DMA unit,
// which may run while the PPU is mid-scanline.
func (p *PPU) WriteVRAMRaw(addr uint16, v uint8) {
	p.vram[p.vramBank][addr&0x1FFF] = v
}

func (p *PPU) ReadOAM(addr uint16) uint8 {
	if !p.OAMAccessible() {
		return 0xFF
	}
	return p.oam[addr]
}

func (p *PPU) WriteOAM(addr uint16, v uint8) {
	if !p.OAMAccessible() {
		return
	}
	p.oam[addr] = v
}

// WriteOAMDMA bypasses the mode gate: it is how the OAM DMA unit in the
// Interconnect deposits bytes during a transfer.
func (p *PPU) WriteOAMDMA(addr uint16, v uint8) { p.oam[addr] = v }

func (p *PPU) ReadLCDC() uint8 { return p.lcdc }
func (p *PPU) WriteLCDC(v uint8) {
	wasOn := p.lcdc&0x80 != 0
	p.lcdc = v
	if wasOn && v&0x80 == 0 {
		p.ly = 0
		p.modeClock = 0
		p.mode = ModeHBlank
	}
}

func (p *PPU) ReadSTAT() uint8 {
	return p.stat&0x78 | uint8(p.mode) | 0x80
}
func (p *PPU) WriteSTAT(v uint8) { p.stat = (p.stat & 0x07) | (v & 0x78) }

func (p *PPU) ReadSCY() uint8    { return p.scy }
func (p *PPU) WriteSCY(v uint8)  { p.scy = v }
func (p *PPU) ReadSCX() uint8    { return p.scx }
func (p *PPU) WriteSCX(v uint8)  { p.scx = v }
func (p *PPU) ReadLY() uint8     { return p.ly }
func (p *PPU) ReadLYC() uint8    { return p.lyc }
func (p *PPU) WriteLYC(v uint8) { p.lyc = v; p.checkLYC() }
func (p *PPU) ReadWY() uint8     { return p.wy }
func (p *PPU) WriteWY(v uint8)   { p.wy = v }
func (p *PPU) ReadWX() uint8     { return p.wx }
func (p *PPU) WriteWX(v uint8)   { p.wx = v }

func (p *PPU) ReadBGP() uint8   { return p.bgp }
func (p *PPU) WriteBGP(v uint8) { p.bgp = v }
func (p *PPU) ReadOBP0() uint8  { return p.obp0 }
func (p *PPU) WriteOBP0(v uint8) { p.obp0 = v }
func (p *PPU) ReadOBP1() uint8  { return p.obp1 }
func (p *PPU) WriteOBP1(v uint8) { p.obp1 = v }

func (p *PPU) ReadVBK() uint8 { return p.vramBank | 0xFE }
func (p *PPU) WriteVBK(v uint8) {
	if p.cgb {
		p.vramBank = v & 0x01
	}
}

func (p *PPU) ReadBCPS() uint8 { return p.bgPalIdx | 0x40 }
func (p *PPU) WriteBCPS(v uint8) { p.bgPalIdx = v }
func (p *PPU) ReadBCPD() uint8 { return p.bgPalette[p.bgPalIdx&0x3F] }
func (p *PPU) WriteBCPD(v uint8) {
	p.bgPalette[p.bgPalIdx&0x3F] = v
	if p.bgPalIdx&0x80 != 0 {
		p.bgPalIdx = 0x80 | ((p.bgPalIdx + 1) & 0x3F)
	}
}

func (p *PPU) ReadOCPS() uint8 { return p.objPalIdx | 0x40 }
func (p *PPU) WriteOCPS(v uint8) { p.objPalIdx = v }
func (p *PPU) ReadOCPD() uint8 { return p.objPalette[p.objPalIdx&0x3F] }
func (p *PPU) WriteOCPD(v uint8) {
	p.objPalette[p.objPalIdx&0x3F] = v
	if p.objPalIdx&0x80 != 0 {
		p.objPalIdx = 0x80 | ((p.objPalIdx + 1) & 0x3F)
	}
}
