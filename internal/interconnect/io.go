package interconnect

import "github.com/gbcore/gbcore/internal/types"

func (ic *Interconnect) readIO(addr uint16) uint8 {
	switch addr {
	case types.P1:
		return ic.Joypad.Read()
	case types.SB:
		return ic.Serial.ReadSB()
	case types.SC:
		return ic.Serial.ReadSC()
	case types.DIV:
		return ic.Timer.ReadDIV()
	case types.TIMA:
		return ic.Timer.ReadTIMA()
	case types.TMA:
		return ic.Timer.ReadTMA()
	case types.TAC:
		return ic.Timer.ReadTAC()
	case types.IF:
		return ic.IRQ.ReadIF()
	case types.LCDC:
		return ic.PPU.ReadLCDC()
	case types.STAT:
		return ic.PPU.ReadSTAT()
	case types.SCY:
		return ic.PPU.ReadSCY()
	case types.SCX:
		return ic.PPU.ReadSCX()
	case types.LY:
		return ic.PPU.ReadLY()
	case types.LYC:
		return ic.PPU.ReadLYC()
	case types.DMA:
		return ic.dma.register
	case types.BGP:
		return ic.PPU.ReadBGP()
	case types.OBP0:
		return ic.PPU.ReadOBP0()
	case types.OBP1:
		return ic.PPU.ReadOBP1()
	case types.WY:
		return ic.PPU.ReadWY()
	case types.WX:
		return ic.PPU.ReadWX()
	case types.KEY1:
		v := uint8(0x7E)
		if ic.doubleSpeed {
			v |= 0x80
		}
		if ic.speedSwitchArmed {
			v |= 0x01
		}
		return v
	case types.VBK:
		return ic.PPU.ReadVBK()
	case types.BDIS:
		return 0xFF
	case types.HDMA5:
		return ic.hdma.readHDMA5()
	case types.BCPS:
		return ic.PPU.ReadBCPS()
	case types.BCPD:
		return ic.PPU.ReadBCPD()
	case types.OCPS:
		return ic.PPU.ReadOCPS()
	case types.OCPD:
		return ic.PPU.ReadOCPD()
	case types.SVBK:
		return ic.wramBank&0x07 | 0xF8
	}
	switch {
	case addr == 0xFF0F:
		return ic.IRQ.ReadIF()
	case addr == 0xFF10:
		return ic.APU.ReadNR10()
	case addr == 0xFF11:
		return ic.APU.ReadNR11()
	case addr == 0xFF12:
		return ic.APU.ReadNR12()
	case addr == 0xFF14:
		return ic.APU.ReadNR14()
	case addr == 0xFF16:
		return ic.APU.ReadNR21()
	case addr == 0xFF17:
		return ic.APU.ReadNR22()
	case addr == 0xFF19:
		return ic.APU.ReadNR24()
	case addr == 0xFF1A:
		return ic.APU.ReadNR30()
	case addr == 0xFF1C:
		return ic.APU.ReadNR32()
	case addr == 0xFF1E:
		return ic.APU.ReadNR34()
	case addr == 0xFF21:
		return ic.APU.ReadNR42()
	case addr == 0xFF22:
		return ic.APU.ReadNR43()
	case addr == 0xFF23:
		return ic.APU.ReadNR44()
	case addr == 0xFF24:
		return ic.APU.ReadNR50()
	case addr == 0xFF25:
		return ic.APU.ReadNR51()
	case addr == 0xFF26:
		return ic.APU.ReadNR52()
	case addr >= types.WaveRAMStart && addr <= types.WaveRAMEnd:
		return ic.APU.ReadWaveRAM(addr - types.WaveRAMStart)
	case addr >= 0xFF51 && addr <= 0xFF54:
		return 0xFF
	}
	ic.Log.Debugf("interconnect: read from unmapped IO register %#04x", addr)
	return 0xFF
}

func (ic *Interconnect) writeIO(addr uint16, v uint8) {
	switch addr {
	case types.P1:
		ic.Joypad.Write(v)
		return
	case types.SB:
		ic.Serial.WriteSB(v)
		return
	case types.SC:
		ic.Serial.WriteSC(v)
		return
	case types.DIV:
		ic.Timer.WriteDIV()
		return
	case types.TIMA:
		ic.Timer.WriteTIMA(v)
		return
	case types.TMA:
		ic.Timer.WriteTMA(v)
		return
	case types.TAC:
		ic.Timer.WriteTAC(v)
		return
	case types.IF:
		ic.IRQ.WriteIF(v)
		return
	case types.LCDC:
		ic.PPU.WriteLCDC(v)
		return
	case types.STAT:
		ic.PPU.WriteSTAT(v)
		return
	case types.SCY:
		ic.PPU.WriteSCY(v)
		return
	case types.SCX:
		ic.PPU.WriteSCX(v)
		return
	case types.LYC:
		ic.PPU.WriteLYC(v)
		return
	case types.DMA:
		ic.startOAMDMA(v)
		return
	case types.BGP:
		ic.PPU.WriteBGP(v)
		return
	case types.OBP0:
		ic.PPU.WriteOBP0(v)
		return
	case types.OBP1:
		ic.PPU.WriteOBP1(v)
		return
	case types.WY:
		ic.PPU.WriteWY(v)
		return
	case types.WX:
		ic.PPU.WriteWX(v)
		return
	case types.KEY1:
		if ic.cgb {
			ic.speedSwitchArmed = v&0x01 != 0
		}
		return
	case types.VBK:
		ic.PPU.WriteVBK(v)
		return
	case types.BDIS:
		ic.bootMapped = false
		return
	case types.HDMA1:
		ic.hdma.source = ic.hdma.source&0x00FF | uint16(v)<<8
		return
	case types.HDMA2:
		ic.hdma.source = ic.hdma.source&0xFF00 | uint16(v&0xF0)
		return
	case types.HDMA3:
		ic.hdma.dest = ic.hdma.dest&0x00FF | uint16(v&0x1F)<<8
		return
	case types.HDMA4:
		ic.hdma.dest = ic.hdma.dest&0xFF00 | uint16(v&0xF0)
		return
	case types.HDMA5:
		ic.hdma.writeHDMA5(ic, v)
		return
	case types.BCPS:
		ic.PPU.WriteBCPS(v)
		return
	case types.BCPD:
		ic.PPU.WriteBCPD(v)
		return
	case types.OCPS:
		ic.PPU.WriteOCPS(v)
		return
	case types.OCPD:
		ic.PPU.WriteOCPD(v)
		return
	case types.SVBK:
		if ic.cgb {
			ic.wramBank = v & 0x07
		}
		return
	}
	switch {
	case addr == 0xFF0F:
		ic.IRQ.WriteIF(v)
	case addr == 0xFF10:
		ic.APU.WriteNR10(v)
	case addr == 0xFF11:
		ic.APU.WriteNR11(v)
	case addr == 0xFF12:
		ic.APU.WriteNR12(v)
	case addr == 0xFF13:
		ic.APU.WriteNR13(v)
	case addr == 0xFF14:
		ic.APU.WriteNR14(v)
	case addr == 0xFF16:
		ic.APU.WriteNR21(v)
	case addr == 0xFF17:
		ic.APU.WriteNR22(v)
	case addr == 0xFF18:
		ic.APU.WriteNR23(v)
	case addr == 0xFF19:
		ic.APU.WriteNR24(v)
	case addr == 0xFF1A:
		ic.APU.WriteNR30(v)
	case addr == 0xFF1B:
		ic.APU.WriteNR31(v)
	case addr == 0xFF1C:
		ic.APU.WriteNR32(v)
	case addr == 0xFF1D:
		ic.APU.WriteNR33(v)
	case addr == 0xFF1E:
		ic.APU.WriteNR34(v)
	case addr == 0xFF20:
		ic.APU.WriteNR41(v)
	case addr == 0xFF21:
		ic.APU.WriteNR42(v)
	case addr == 0xFF22:
		ic.APU.WriteNR43(v)
	case addr == 0xFF23:
		ic.APU.WriteNR44(v)
	case addr == 0xFF24:
		ic.APU.WriteNR50(v)
	case addr == 0xFF25:
		ic.APU.WriteNR51(v)
	case addr == 0xFF26:
		ic.APU.WriteNR52(v)
	case addr >= types.WaveRAMStart && addr <= types.WaveRAMEnd:
		ic.APU.WriteWaveRAM(addr-types.WaveRAMStart, v)
	default:
		ic.Log.Debugf("interconnect: write %#02x to unmapped IO register %#04x", v, addr)
	}
}
