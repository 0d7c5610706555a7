package cpu

func buildReg16Ops() {
	type pairOps struct {
		get func(c *CPU) uint16
		set func(c *CPU, v uint16)
	}
	pairs := [4]pairOps{
		{func(c *CPU) uint16 { return c.BC() }, func(c *CPU, v uint16) { c.SetBC(v) }},
		{func(c *CPU) uint16 { return c.DE() }, func(c *CPU, v uint16) { c.SetDE(v) }},
		{func(c *CPU) uint16 { return c.HL() }, func(c *CPU, v uint16) { c.SetHL(v) }},
		{func(c *CPU) uint16 { return c.SP }, func(c *CPU, v uint16) { c.SP = v }},
	}
	names := [4]string{"BC", "DE", "HL", "SP"}
	for i := 0; i < 4; i++ {
		p := pairs[i]
		incOp := uint8(i<<4 | 0x03)
		decOp := uint8(i<<4 | 0x0B)
		addOp := uint8(i<<4 | 0x09)
		opTable[incOp] = instruction{name: "INC " + names[i], cycles: 2,
			exec: func(c *CPU) bool { p.set(c, p.get(c)+1); return false }}
		opTable[decOp] = instruction{name: "DEC " + names[i], cycles: 2,
			exec: func(c *CPU) bool { p.set(c, p.get(c)-1); return false }}
		opTable[addOp] = instruction{name: "ADD HL," + names[i], cycles: 2,
			exec: func(c *CPU) bool { c.addHL16(p.get(c)); return false }}
	}
}
