package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmg/internal/types"
)

// rotateLeft rotates the given value left by 1 bit. The most
// significant bit is copied to both the carry flag and bit 0.
//
//	RLC n
//	n = 8-bit value
func (c *CPU) rotateLeft(value uint8) uint8 {
	carry := value&types.Bit7 != 0
	rotated := value<<1 | value>>7
	c.setFlags(rotated == 0, false, false, carry)
	return rotated
}

// rotateRight rotates the given value right by 1 bit. The least
// significant bit is copied to both the carry flag and bit 7.
//
//	RRC n
//	n = 8-bit value
func (c *CPU) rotateRight(value uint8) uint8 {
	carry := value&types.Bit0 != 0
	rotated := value>>1 | value<<7
	c.setFlags(rotated == 0, false, false, carry)
	return rotated
}

// rotateLeftThroughCarry rotates the given value left by 1 bit through
// the carry flag. The carry flag is shifted into bit 0 and the most
// significant bit is shifted into the carry flag.
//
//	RL n
//	n = 8-bit value
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	rotated := value << 1
	if c.isFlagSet(FlagCarry) {
		rotated |= types.Bit0
	}
	c.setFlags(rotated == 0, false, false, value&types.Bit7 != 0)
	return rotated
}

// rotateRightThroughCarry rotates the given value right by 1 bit
// through the carry flag. The carry flag is shifted into bit 7 and the
// least significant bit is shifted into the carry flag.
//
//	RR n
//	n = 8-bit value
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	rotated := value >> 1
	if c.isFlagSet(FlagCarry) {
		rotated |= types.Bit7
	}
	c.setFlags(rotated == 0, false, false, value&types.Bit0 != 0)
	return rotated
}

func init() {
	// the accumulator rotates always clear the zero flag
	DefineInstruction(0x07, "RLCA", func(c *CPU) {
		c.A = c.rotateLeft(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU) {
		c.A = c.rotateRight(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x17, "RLA", func(c *CPU) {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU) {
		c.A = c.rotateRightThroughCarry(c.A)
		c.clearFlag(FlagZero)
	})

	generateRotateInstructions()
}

// generateRotateInstructions generates the CB-prefixed rotate
// instructions, RLC, RRC, RL and RR, for each of the 8 operand
// encodings.
func generateRotateInstructions() {
	type rotateOp struct {
		base uint8
		name string
		fn   func(c *CPU, value uint8) uint8
	}
	for _, op := range []rotateOp{
		{0x00, "RLC", (*CPU).rotateLeft},
		{0x08, "RRC", (*CPU).rotateRight},
		{0x10, "RL", (*CPU).rotateLeftThroughCarry},
		{0x18, "RR", (*CPU).rotateRightThroughCarry},
	} {
		op := op
		for src := uint8(0); src < 8; src++ {
			src := src
			if src == 6 {
				DefineInstructionCB(op.base+src, fmt.Sprintf("%s (HL)", op.name), func(c *CPU) {
					c.writeByte(c.HL.Uint16(), op.fn(c, c.readByte(c.HL.Uint16())))
				}, Cycles(4))
				continue
			}
			DefineInstructionCB(op.base+src, fmt.Sprintf("%s %s", op.name, registerNameMap[src]), func(c *CPU) {
				reg := c.registerIndex(src)
				*reg = op.fn(c, *reg)
			})
		}
	}
}
