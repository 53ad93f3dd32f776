package cpu

// Flag is a bit position in the F register. Only the upper 4 bits of F
// are meaningful; the lower nibble always reads as 0.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// setFlags sets the F register from the four flag values. Because F is
// rebuilt whole, its lower nibble invariant holds by construction.
func (c *CPU) setFlags(z, n, h, carry bool) {
	var f uint8
	if z {
		f |= 1 << FlagZero
	}
	if n {
		f |= 1 << FlagSubtract
	}
	if h {
		f |= 1 << FlagHalfCarry
	}
	if carry {
		f |= 1 << FlagCarry
	}
	c.F = f
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}
