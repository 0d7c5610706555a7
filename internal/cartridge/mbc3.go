package cartridge

// mbc3 extends MBC1's ROM banking to a full 7-bit bank register (no bank-0
// aliasing quirk - bank 0 still maps to bank 1) and adds a bank-selected
// real-time-clock register set latched by a 0->1 write to 0x6000-0x7FFF.
// The RTC itself is not advanced against wall-clock time here - real-time
// persistence is out of scope - but the registers exist so RTC-aware
// titles can read back a stable, non-crashing value.
type mbc3 struct {
	rom []byte
	ram []byte

	romBank    uint8
	ramBank    uint8 // 0x00-0x03 selects RAM, 0x08-0x0C selects an RTC register
	ramEnabled bool

	rtc       [5]uint8 // seconds, minutes, hours, day-low, day-high/flags
	rtcLatch  uint8
	latchedAt [5]uint8
}

func newMBC3(rom []byte, h Header) *mbc3 {
	return &mbc3{rom: rom, ram: make([]byte, h.RAMSize)}
}

func (m *mbc3) romBankOffset() int {
	bank := m.romBank
	if bank == 0 {
		bank = 1
	}
	return (int(bank) - 1) * 0x4000
}

func (m *mbc3) ReadROM(addr uint16) uint8 {
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

func (m *mbc3) WriteROM(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x4000:
		bank := value & 0x7F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case addr < 0x6000:
		m.ramBank = value
	default:
		if m.rtcLatch == 0 && value == 1 {
			m.latchedAt = m.rtc
		}
		m.rtcLatch = value
	}
}

func (m *mbc3) ReadRAM(addr uint16) uint8 {
	if !m.ramEnabled {
		return 0xFF
	}
	if m.ramBank >= 0x08 && m.ramBank <= 0x0C {
		return m.latchedAt[m.ramBank-0x08]
	}
	idx := int(addr) + int(m.ramBank)*0x2000
	if len(m.ram) == 0 || idx >= len(m.ram) {
		return 0xFF
	}
	return m.ram[idx]
}

func (m *mbc3) WriteRAM(addr uint16, value uint8) {
	if !m.ramEnabled {
		return
	}
	if m.ramBank >= 0x08 && m.ramBank <= 0x0C {
		m.rtc[m.ramBank-0x08] = value
		return
	}
	idx := int(addr) + int(m.ramBank)*0x2000
	if len(m.ram) == 0 || idx >= len(m.ram) {
		return
	}
	m.ram[idx] = value
}

func (m *mbc3) RAM() []byte {
	if len(m.ram) == 0 {
		return nil
	}
	return m.ram
}

func (m *mbc3) LoadRAM(d []byte) { copy(m.ram, d) }
