package cpu

// buildImmediateOps fills the loads that take an 8- or 16-bit immediate
// or a fixed/indirect address, plus the handful of addressing forms that
// don't fit the systematic blocks (LDH, (a16), SP+e8).
func buildImmediateOps() {
	// LD r,d8 (0x06,0x0E,...,0x3E)
	for r := 0; r < 8; r++ {
		r := r
		opcode := uint8(r<<3 | 0x06)
		cycles := uint8(2)
		if r == regHL {
			cycles = 3
		}
		opTable[opcode] = instruction{name: "LD " + reg8Names[r] + ",d8", cycles: cycles,
			exec: func(c *CPU) bool { setReg8(c, r, c.fetch8()); return false }}
	}

	// LD rr,d16
	type setter struct {
		name string
		set  func(c *CPU, v uint16)
	}
	setters := [4]setter{
		{"BC", func(c *CPU, v uint16) { c.SetBC(v) }},
		{"DE", func(c *CPU, v uint16) { c.SetDE(v) }},
		{"HL", func(c *CPU, v uint16) { c.SetHL(v) }},
		{"SP", func(c *CPU, v uint16) { c.SP = v }},
	}
	for i := 0; i < 4; i++ {
		s := setters[i]
		opcode := uint8(i<<4 | 0x01)
		opTable[opcode] = instruction{name: "LD " + s.name + ",d16", cycles: 3,
			exec: func(c *CPU) bool { s.set(c, c.fetch16()); return false }}
	}

	// LD (BC),A / LD (DE),A / LD A,(BC) / LD A,(DE)
	opTable[0x02] = instruction{name: "LD (BC),A", cycles: 2, exec: func(c *CPU) bool { c.write(c.BC(), c.A); return false }}
	opTable[0x12] = instruction{name: "LD (DE),A", cycles: 2, exec: func(c *CPU) bool { c.write(c.DE(), c.A); return false }}
	opTable[0x0A] = instruction{name: "LD A,(BC)", cycles: 2, exec: func(c *CPU) bool { c.A = c.read(c.BC()); return false }}
	opTable[0x1A] = instruction{name: "LD A,(DE)", cycles: 2, exec: func(c *CPU) bool { c.A = c.read(c.DE()); return false }}

	// LD (HL+/-),A and LD A,(HL+/-)
	opTable[0x22] = instruction{name: "LD (HL+),A", cycles: 2, exec: func(c *CPU) bool { c.write(c.HLIncrement(), c.A); return false }}
	opTable[0x32] = instruction{name: "LD (HL-),A", cycles: 2, exec: func(c *CPU) bool { c.write(c.HLDecrement(), c.A); return false }}
	opTable[0x2A] = instruction{name: "LD A,(HL+)", cycles: 2, exec: func(c *CPU) bool { c.A = c.read(c.HLIncrement()); return false }}
	opTable[0x3A] = instruction{name: "LD A,(HL-)", cycles: 2, exec: func(c *CPU) bool { c.A = c.read(c.HLDecrement()); return false }}

	// LD (a16),SP
	opTable[0x08] = instruction{name: "LD (a16),SP", cycles: 5, exec: func(c *CPU) bool {
		addr := c.fetch16()
		c.write(addr, uint8(c.SP))
		c.write(addr+1, uint8(c.SP>>8))
		return false
	}}

	// LD (a16),A / LD A,(a16)
	opTable[0xEA] = instruction{name: "LD (a16),A", cycles: 4, exec: func(c *CPU) bool { c.write(c.fetch16(), c.A); return false }}
	opTable[0xFA] = instruction{name: "LD A,(a16)", cycles: 4, exec: func(c *CPU) bool { c.A = c.read(c.fetch16()); return false }}

	// LDH (a8),A / LDH A,(a8) / LD (C),A / LD A,(C)
	opTable[0xE0] = instruction{name: "LDH (a8),A", cycles: 3, exec: func(c *CPU) bool { c.write(0xFF00+uint16(c.fetch8()), c.A); return false }}
	opTable[0xF0] = instruction{name: "LDH A,(a8)", cycles: 3, exec: func(c *CPU) bool { c.A = c.read(0xFF00 + uint16(c.fetch8())); return false }}
	opTable[0xE2] = instruction{name: "LD (C),A", cycles: 2, exec: func(c *CPU) bool { c.write(0xFF00+uint16(c.C), c.A); return false }}
	opTable[0xF2] = instruction{name: "LD A,(C)", cycles: 2, exec: func(c *CPU) bool { c.A = c.read(0xFF00 + uint16(c.C)); return false }}

	// LD SP,HL
	opTable[0xF9] = instruction{name: "LD SP,HL", cycles: 2, exec: func(c *CPU) bool { c.SP = c.HL(); return false }}

	// LD HL,SP+e8
	opTable[0xF8] = instruction{name: "LD HL,SP+e8", cycles: 3, exec: func(c *CPU) bool {
		e := int8(c.fetch8())
		c.SetHL(c.addSPSigned(e))
		return false
	}}

	// ADD SP,e8
	opTable[0xE8] = instruction{name: "ADD SP,e8", cycles: 4, exec: func(c *CPU) bool {
		e := int8(c.fetch8())
		c.SP = c.addSPSigned(e)
		return false
	}}

	// ALU A,d8 block (ADD/ADC/SUB/SBC/AND/XOR/OR/CP)
	aluOps := [8]func(c *CPU, v uint8){
		func(c *CPU, v uint8) { c.A = c.add8(c.A, v, false) },
		func(c *CPU, v uint8) { c.A = c.add8(c.A, v, c.Flag(flagCarryBit)) },
		func(c *CPU, v uint8) { c.A = c.sub8(c.A, v, false) },
		func(c *CPU, v uint8) { c.A = c.sub8(c.A, v, c.Flag(flagCarryBit)) },
		func(c *CPU, v uint8) { c.A = c.and8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.xor8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.or8(c.A, v) },
		func(c *CPU, v uint8) { c.cp8(c.A, v) },
	}
	aluNames := [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}
	for i := 0; i < 8; i++ {
		op := aluOps[i]
		opcode := uint8(0xC6 + i<<3)
		opTable[opcode] = instruction{name: aluNames[i] + " A,d8", cycles: 2,
			exec: func(c *CPU) bool { op(c, c.fetch8()); return false }}
	}
}
