package cpu

// conditions in opcode-field order: NZ, Z, NC, C.
func (c *CPU) condNZ() bool { return !c.Flag(flagZeroBit) }
func (c *CPU) condZ() bool  { return c.Flag(flagZeroBit) }
func (c *CPU) condNC() bool { return !c.Flag(flagCarryBit) }
func (c *CPU) condC() bool  { return c.Flag(flagCarryBit) }

func buildControlOps() {
	conds := [4]func(c *CPU) bool{(*CPU).condNZ, (*CPU).condZ, (*CPU).condNC, (*CPU).condC}
	condNames := [4]string{"NZ", "Z", "NC", "C"}

	// JP a16 / JP cc,a16
	opTable[0xC3] = instruction{name: "JP a16", cycles: 4, exec: func(c *CPU) bool {
		c.PC = c.fetch16()
		return false
	}}
	for i := 0; i < 4; i++ {
		i := i
		cond := conds[i]
		opcode := uint8(0xC2 + i<<3)
		opTable[opcode] = instruction{name: "JP " + condNames[i] + ",a16", cycles: 3, branchCycles: 1,
			exec: func(c *CPU) bool {
				addr := c.fetch16()
				if cond(c) {
					c.PC = addr
					return true
				}
				return false
			}}
	}
	opTable[0xE9] = instruction{name: "JP HL", cycles: 1, exec: func(c *CPU) bool {
		c.PC = c.HL()
		return false
	}}

	// JR e8 / JR cc,e8
	opTable[0x18] = instruction{name: "JR e8", cycles: 3, exec: func(c *CPU) bool {
		e := int8(c.fetch8())
		c.PC = uint16(int32(c.PC) + int32(e))
		return false
	}}
	for i := 0; i < 4; i++ {
		i := i
		cond := conds[i]
		opcode := uint8(0x20 + i<<3)
		opTable[opcode] = instruction{name: "JR " + condNames[i] + ",e8", cycles: 2, branchCycles: 1,
			exec: func(c *CPU) bool {
				e := int8(c.fetch8())
				if cond(c) {
					c.PC = uint16(int32(c.PC) + int32(e))
					return true
				}
				return false
			}}
	}

	// CALL a16 / CALL cc,a16
	opTable[0xCD] = instruction{name: "CALL a16", cycles: 6, exec: func(c *CPU) bool {
		addr := c.fetch16()
		c.push16(c.PC)
		c.PC = addr
		return false
	}}
	for i := 0; i < 4; i++ {
		i := i
		cond := conds[i]
		opcode := uint8(0xC4 + i<<3)
		opTable[opcode] = instruction{name: "CALL " + condNames[i] + ",a16", cycles: 3, branchCycles: 3,
			exec: func(c *CPU) bool {
				addr := c.fetch16()
				if cond(c) {
					c.push16(c.PC)
					c.PC = addr
					return true
				}
				return false
			}}
	}

	// RET / RET cc / RETI
	opTable[0xC9] = instruction{name: "RET", cycles: 4, exec: func(c *CPU) bool {
		c.PC = c.pop16()
		return false
	}}
	opTable[0xD9] = instruction{name: "RETI", cycles: 4, exec: func(c *CPU) bool {
		c.PC = c.pop16()
		c.ime = true
		return false
	}}
	for i := 0; i < 4; i++ {
		i := i
		cond := conds[i]
		opcode := uint8(0xC0 + i<<3)
		opTable[opcode] = instruction{name: "RET " + condNames[i], cycles: 2, branchCycles: 3,
			exec: func(c *CPU) bool {
				if cond(c) {
					c.PC = c.pop16()
					return true
				}
				return false
			}}
	}

	// RST n
	for i := 0; i < 8; i++ {
		i := i
		opcode := uint8(0xC7 + i<<3)
		target := uint16(i) * 8
		opTable[opcode] = instruction{name: "RST", cycles: 4, exec: func(c *CPU) bool {
			c.push16(c.PC)
			c.PC = target
			return false
		}}
	}
}
