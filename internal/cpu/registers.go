package cpu

import "github.com/gbcore/gbcore/internal/types"

// Registers holds the Sharp LR35902 register file: eight 8-bit registers
// paired into AF/BC/DE/HL, plus the 16-bit SP and PC held directly on CPU.
//
// F's low nibble is never observable: AF reads always mask F with 0xF0, and
// every flag setter writes through SetF, which performs the same masking.
type Registers struct {
	A, B, C, D, E, F, H, L uint8
}

// pair reads a big-endian register pair (high, low).
func pair(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// setPair writes a big-endian register pair (high, low).
func setPair(hi, lo *uint8, v uint16) {
	*hi = uint8(v >> 8)
	*lo = uint8(v)
}

// AF returns A and F combined, with F's low nibble masked to zero.
func (r *Registers) AF() uint16 {
	return pair(r.A, r.F&0xF0)
}

// SetAF sets A and F from a combined 16-bit value; F's low nibble is
// forced to zero regardless of the incoming value (e.g. after a POP AF).
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v) & 0xF0
}

func (r *Registers) BC() uint16     { return pair(r.B, r.C) }
func (r *Registers) SetBC(v uint16) { setPair(&r.B, &r.C, v) }

func (r *Registers) DE() uint16     { return pair(r.D, r.E) }
func (r *Registers) SetDE(v uint16) { setPair(&r.D, &r.E, v) }

func (r *Registers) HL() uint16     { return pair(r.H, r.L) }
func (r *Registers) SetHL(v uint16) { setPair(&r.H, &r.L, v) }

// HLIncrement returns the current value of HL and then increments it,
// used by LD A,(HL+) / LD (HL+),A.
func (r *Registers) HLIncrement() uint16 {
	v := r.HL()
	r.SetHL(v + 1)
	return v
}

// HLDecrement returns the current value of HL and then decrements it,
// used by LD A,(HL-) / LD (HL-),A.
func (r *Registers) HLDecrement() uint16 {
	v := r.HL()
	r.SetHL(v - 1)
	return v
}

// Flag returns whether the given flag bit is set in F.
func (r *Registers) Flag(f uint8) bool {
	return r.F&f != 0
}

// SetFlag sets or clears the given flag bit in F, masking the low nibble.
func (r *Registers) SetFlag(f uint8, set bool) {
	if set {
		r.F |= f
	} else {
		r.F &^= f
	}
	r.F &= 0xF0
}

// SetFlags sets Z, N, H, C all at once; a common shape for ALU ops.
func (r *Registers) SetFlags(z, n, h, c bool) {
	var f uint8
	if z {
		f |= types.FlagZero
	}
	if n {
		f |= types.FlagSubtract
	}
	if h {
		f |= types.FlagHalfCarry
	}
	if c {
		f |= types.FlagCarry
	}
	r.F = f
}

// reset restores the documented post-bootrom register values.
func (r *Registers) reset(cgb bool) {
	r.A, r.F = 0x01, 0xB0
	if cgb {
		r.A = 0x11
	}
	r.SetBC(0x0013)
	r.SetDE(0x00D8)
	r.SetHL(0x014D)
}
