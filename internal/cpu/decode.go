package cpu

// instruction is one base-table (0x00-0xFF, excluding the 0xCB escape)
// opcode. exec returns whether a conditional branch was taken, so Step
// can add branchCycles only when it was.
type instruction struct {
	name         string
	cycles       uint8
	branchCycles uint8
	exec         func(c *CPU) bool
}

// cbInstruction is one CB-prefixed opcode; these never branch.
type cbInstruction struct {
	name   string
	cycles uint8
	exec   func(c *CPU)
}

var opTable [0x100]instruction
var cbTable [0x100]cbInstruction

// reg8 index order matches the hardware r/r' field encoding: B C D E H L
// (HL) A. Index 6 means "the byte at address HL", read/written through
// the bus rather than a register.
const (
	regB = iota
	regC
	regD
	regE
	regH
	regL
	regHL
	regA
)

func getReg8(c *CPU, idx int) uint8 {
	switch idx {
	case regB:
		return c.B
	case regC:
		return c.C
	case regD:
		return c.D
	case regE:
		return c.E
	case regH:
		return c.H
	case regL:
		return c.L
	case regHL:
		return c.read(c.HL())
	default:
		return c.A
	}
}

func setReg8(c *CPU, idx int, v uint8) {
	switch idx {
	case regB:
		c.B = v
	case regC:
		c.C = v
	case regD:
		c.D = v
	case regE:
		c.E = v
	case regH:
		c.H = v
	case regL:
		c.L = v
	case regHL:
		c.write(c.HL(), v)
	default:
		c.A = v
	}
}

var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func init() {
	buildBaseTable()
	buildCBTable()
}
