package cpu

// buildBaseTable constructs the 256-entry unprefixed opcode table. The
// large systematic blocks (8-bit loads, the ALU-on-A block, INC/DEC r)
// are generated by iteration over the register field exactly as CB
// opcodes are; the remaining one-off opcodes (control flow, stack,
// immediates, misc) are listed explicitly.
func buildBaseTable() {
	buildLoadBlock()
	buildALUBlock()
	buildIncDecBlock()
	buildReg16Ops()
	buildControlOps()
	buildMiscOps()
	buildStackOps()
	buildImmediateOps()
}

// buildLoadBlock fills 0x40-0x7F: LD r,r' for every (dst,src) pair,
// except 0x76 which is HALT rather than LD (HL),(HL).
func buildLoadBlock() {
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			opcode := uint8(0x40 + dst<<3 | src)
			if opcode == 0x76 {
				continue
			}
			dst, src := dst, src
			cycles := uint8(1)
			if dst == regHL || src == regHL {
				cycles = 2
			}
			opTable[opcode] = instruction{
				name: "LD " + reg8Names[dst] + "," + reg8Names[src], cycles: cycles,
				exec: func(c *CPU) bool { setReg8(c, dst, getReg8(c, src)); return false },
			}
		}
	}
	opTable[0x76] = instruction{name: "HALT", cycles: 1, exec: func(c *CPU) bool { c.halt(); return false }}
}

// buildALUBlock fills 0x80-0xBF: ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,r.
func buildALUBlock() {
	ops := [8]func(c *CPU, v uint8){
		func(c *CPU, v uint8) { c.A = c.add8(c.A, v, false) },
		func(c *CPU, v uint8) { c.A = c.add8(c.A, v, c.Flag(flagCarryBit)) },
		func(c *CPU, v uint8) { c.A = c.sub8(c.A, v, false) },
		func(c *CPU, v uint8) { c.A = c.sub8(c.A, v, c.Flag(flagCarryBit)) },
		func(c *CPU, v uint8) { c.A = c.and8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.xor8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.or8(c.A, v) },
		func(c *CPU, v uint8) { c.cp8(c.A, v) },
	}
	names := [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}
	for group := 0; group < 8; group++ {
		op := ops[group]
		for r := 0; r < 8; r++ {
			opcode := uint8(0x80 + group<<3 | r)
			r := r
			cycles := uint8(1)
			if r == regHL {
				cycles = 2
			}
			opTable[opcode] = instruction{
				name: names[group] + " A," + reg8Names[r], cycles: cycles,
				exec: func(c *CPU) bool { op(c, getReg8(c, r)); return false },
			}
		}
	}
}

// buildIncDecBlock fills INC r / DEC r (0x04,0x0C,...,0x3C/0x3D) across
// all eight single registers.
func buildIncDecBlock() {
	for r := 0; r < 8; r++ {
		r := r
		incOp := uint8(r<<3 | 0x04)
		decOp := uint8(r<<3 | 0x05)
		cycles := uint8(1)
		if r == regHL {
			cycles = 3
		}
		opTable[incOp] = instruction{
			name: "INC " + reg8Names[r], cycles: cycles,
			exec: func(c *CPU) bool { setReg8(c, r, c.inc8(getReg8(c, r))); return false },
		}
		opTable[decOp] = instruction{
			name: "DEC " + reg8Names[r], cycles: cycles,
			exec: func(c *CPU) bool { setReg8(c, r, c.dec8(getReg8(c, r))); return false },
		}
	}
}
