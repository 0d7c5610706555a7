package cartridge

// mbc2 has a 4-bit ROM bank register and 512x4-bit RAM built directly into
// the controller chip (not the cartridge board), addressed via
// 0xA000-0xA1FF with the upper nibble of every byte open-bus (reads set to
// 1). Whether a 0x0000-0x3FFF write selects RAM-enable or the ROM bank is
// decided by bit 8 of the address (bit 0 of the high byte).
type mbc2 struct {
	rom []byte
	ram [512]byte // only the low nibble of each byte is meaningful

	romBank    uint8
	ramEnabled bool
}

func newMBC2(rom []byte, h Header) *mbc2 {
	return &mbc2{rom: rom}
}

func (m *mbc2) romBankOffset() int {
	bank := m.romBank
	if bank == 0 {
		bank = 1
	}
	return (int(bank) - 1) * 0x4000
}

func (m *mbc2) ReadROM(addr uint16) uint8 {
	var idx int
	if addr < 0x4000 {
		idx = int(addr)
	} else {
		idx = int(addr) + m.romBankOffset()
	}
	if idx >= len(m.rom) {
		return 0xFF
	}
	return m.rom[idx]
}

func (m *mbc2) WriteROM(addr uint16, value uint8) {
	if addr >= 0x4000 {
		return
	}
	if addr&0x0100 == 0 {
		m.ramEnabled = value&0x0F == 0x0A
	} else {
		bank := value & 0x0F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	}
}

func (m *mbc2) ReadRAM(addr uint16) uint8 {
	if !m.ramEnabled {
		return 0xFF
	}
	return m.ram[addr%512] | 0xF0
}

func (m *mbc2) WriteRAM(addr uint16, value uint8) {
	if !m.ramEnabled {
		return
	}
	m.ram[addr%512] = value & 0x0F
}

func (m *mbc2) RAM() []byte     { return m.ram[:] }
func (m *mbc2) LoadRAM(d []byte) { copy(m.ram[:], d) }
