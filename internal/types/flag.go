package types

// Flag positions within the F register's upper nibble. The lower nibble of
// F is always zero and is never observable.
const (
	FlagZero      = Bit7
	FlagSubtract  = Bit6
	FlagHalfCarry = Bit5
	FlagCarry     = Bit4
)
