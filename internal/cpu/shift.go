package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmg/internal/types"
)

// shiftLeftArithmetic shifts the given value left by 1 bit. Bit 0 is
// reset and the most significant bit is shifted into the carry flag.
//
//	SLA n
//	n = 8-bit value
func (c *CPU) shiftLeftArithmetic(value uint8) uint8 {
	shifted := value << 1
	c.setFlags(shifted == 0, false, false, value&types.Bit7 != 0)
	return shifted
}

// shiftRightArithmetic shifts the given value right by 1 bit. Bit 7 is
// preserved and the least significant bit is shifted into the carry
// flag.
//
//	SRA n
//	n = 8-bit value
func (c *CPU) shiftRightArithmetic(value uint8) uint8 {
	shifted := value>>1 | value&types.Bit7
	c.setFlags(shifted == 0, false, false, value&types.Bit0 != 0)
	return shifted
}

// shiftRightLogical shifts the given value right by 1 bit. Bit 7 is
// reset and the least significant bit is shifted into the carry flag.
//
//	SRL n
//	n = 8-bit value
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	shifted := value >> 1
	c.setFlags(shifted == 0, false, false, value&types.Bit0 != 0)
	return shifted
}

func init() {
	generateShiftInstructions()
}

// generateShiftInstructions generates the CB-prefixed shift
// instructions, SLA, SRA and SRL, for each of the 8 operand encodings.
func generateShiftInstructions() {
	type shiftOp struct {
		base uint8
		name string
		fn   func(c *CPU, value uint8) uint8
	}
	for _, op := range []shiftOp{
		{0x20, "SLA", (*CPU).shiftLeftArithmetic},
		{0x28, "SRA", (*CPU).shiftRightArithmetic},
		{0x38, "SRL", (*CPU).shiftRightLogical},
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
