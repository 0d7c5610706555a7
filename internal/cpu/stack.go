package cpu

func buildStackOps() {
	type pairOps struct {
		get func(c *CPU) uint16
		set func(c *CPU, v uint16)
	}
	pairs := [4]pairOps{
		{func(c *CPU) uint16 { return c.BC() }, func(c *CPU, v uint16) { c.SetBC(v) }},
		{func(c *CPU) uint16 { return c.DE() }, func(c *CPU, v uint16) { c.SetDE(v) }},
		{func(c *CPU) uint16 { return c.HL() }, func(c *CPU, v uint16) { c.SetHL(v) }},
		{func(c *CPU) uint16 { return c.AF() }, func(c *CPU, v uint16) { c.SetAF(v) }},
	}
	names := [4]string{"BC", "DE", "HL", "AF"}
	for i := 0; i < 4; i++ {
		p := pairs[i]
		pushOp := uint8(0xC5 + i<<4)
		popOp := uint8(0xC1 + i<<4)
		opTable[pushOp] = instruction{name: "PUSH " + names[i], cycles: 4,
			exec: func(c *CPU) bool { c.push16(p.get(c)); return false }}
		opTable[popOp] = instruction{name: "POP " + names[i], cycles: 3,
			exec: func(c *CPU) bool { p.set(c, c.pop16()); return false }}
	}
}
