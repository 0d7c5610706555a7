package cpu

func buildMiscOps() {
	opTable[0x00] = instruction{name: "NOP", cycles: 1, exec: func(c *CPU) bool { return false }}
	opTable[0x10] = instruction{name: "STOP", cycles: 1, exec: func(c *CPU) bool {
		c.fetch8() // STOP is encoded as two bytes; the second is conventionally 0x00
		c.stop()
		return false
	}}
	opTable[0xF3] = instruction{name: "DI", cycles: 1, exec: func(c *CPU) bool { c.disableIME(); return false }}
	opTable[0xFB] = instruction{name: "EI", cycles: 1, exec: func(c *CPU) bool { c.enableIME(); return false }}

	opTable[0x2F] = instruction{name: "CPL", cycles: 1, exec: func(c *CPU) bool {
		c.A = ^c.A
		c.SetFlag(flagSubtractBit, true)
		c.SetFlag(flagHalfCarryBit, true)
		return false
	}}
	opTable[0x3F] = instruction{name: "CCF", cycles: 1, exec: func(c *CPU) bool {
		c.SetFlag(flagCarryBit, !c.Flag(flagCarryBit))
		c.SetFlag(flagSubtractBit, false)
		c.SetFlag(flagHalfCarryBit, false)
		return false
	}}
	opTable[0x37] = instruction{name: "SCF", cycles: 1, exec: func(c *CPU) bool {
		c.SetFlag(flagCarryBit, true)
		c.SetFlag(flagSubtractBit, false)
		c.SetFlag(flagHalfCarryBit, false)
		return false
	}}

	opTable[0x07] = instruction{name: "RLCA", cycles: 1, exec: func(c *CPU) bool {
		c.A = rlc(c, c.A)
		c.SetFlag(flagZeroBit, false)
		return false
	}}
	opTable[0x0F] = instruction{name: "RRCA", cycles: 1, exec: func(c *CPU) bool {
		c.A = rrc(c, c.A)
		c.SetFlag(flagZeroBit, false)
		return false
	}}
	opTable[0x17] = instruction{name: "RLA", cycles: 1, exec: func(c *CPU) bool {
		c.A = rl(c, c.A)
		c.SetFlag(flagZeroBit, false)
		return false
	}}
	opTable[0x1F] = instruction{name: "RRA", cycles: 1, exec: func(c *CPU) bool {
		c.A = rr(c, c.A)
		c.SetFlag(flagZeroBit, false)
		return false
	}}

	opTable[0x27] = instruction{name: "DAA", cycles: 1, exec: func(c *CPU) bool { c.daa(); return false }}

	// unused opcodes: real hardware locks up; emulate as a no-op NOP so a
	// stray jump into one of these bytes doesn't panic the emulator.
	for _, op := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		opTable[op] = instruction{name: "ILLEGAL", cycles: 1, exec: func(c *CPU) bool { return false }}
	}
}
