package cpu

import (
	"fmt"
)

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// add is a helper function for adding two bytes together and setting
// the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b uint8, shouldCarry bool) uint8 {
	carry := int16(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := int16(a) + int16(b) + carry
	sumHalf := int16(a&0xF) + int16(b&0xF) + carry
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub is a helper function for subtracting two bytes and setting the
// flags accordingly.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(a, b uint8, shouldCarry bool) uint8 {
	carry := int16(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sub := int16(a) - int16(b) - carry
	subHalf := int16(a&0xF) - int16(b&0xF) - carry
	c.setFlags(uint8(sub) == 0, true, subHalf < 0, sub < 0)
	return uint8(sub)
}

// addUint16 is a helper function for adding two uint16 values together
// and setting the flags accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := int32(a) + int32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// addSPSigned adds the next operand, interpreted as a signed offset, to
// SP and returns the result.
//
// Used by:
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := uint16(int32(c.SP) + int32(int8(value)))

	tmpVal := c.SP ^ uint16(int8(value)) ^ result
	c.setFlags(false, false, tmpVal&0x10 == 0x10, tmpVal&0x100 == 0x100)

	return result
}

func init() {
	// INC/DEC r
	DefineInstruction(0x04, "INC B", func(c *CPU) { c.B = c.increment(c.B) })
	DefineInstruction(0x05, "DEC B", func(c *CPU) { c.B = c.decrement(c.B) })
	DefineInstruction(0x0C, "INC C", func(c *CPU) { c.C = c.increment(c.C) })
	DefineInstruction(0x0D, "DEC C", func(c *CPU) { c.C = c.decrement(c.C) })
	DefineInstruction(0x14, "INC D", func(c *CPU) { c.D = c.increment(c.D) })
	DefineInstruction(0x15, "DEC D", func(c *CPU) { c.D = c.decrement(c.D) })
	DefineInstruction(0x1C, "INC E", func(c *CPU) { c.E = c.increment(c.E) })
	DefineInstruction(0x1D, "DEC E", func(c *CPU) { c.E = c.decrement(c.E) })
	DefineInstruction(0x24, "INC H", func(c *CPU) { c.H = c.increment(c.H) })
	DefineInstruction(0x25, "DEC H", func(c *CPU) { c.H = c.decrement(c.H) })
	DefineInstruction(0x2C, "INC L", func(c *CPU) { c.L = c.increment(c.L) })
	DefineInstruction(0x2D, "DEC L", func(c *CPU) { c.L = c.decrement(c.L) })
	DefineInstruction(0x3C, "INC A", func(c *CPU) { c.A = c.increment(c.A) })
	DefineInstruction(0x3D, "DEC A", func(c *CPU) { c.A = c.decrement(c.A) })
	DefineInstruction(0x34, "INC (HL)", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.increment(c.readByte(c.HL.Uint16())))
	}, Cycles(3))
	DefineInstruction(0x35, "DEC (HL)", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.decrement(c.readByte(c.HL.Uint16())))
	}, Cycles(3))

	// INC/DEC rr
	DefineInstruction(0x03, "INC BC", func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() + 1) }, Cycles(2))
	DefineInstruction(0x13, "INC DE", func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() + 1) }, Cycles(2))
	DefineInstruction(0x23, "INC HL", func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() + 1) }, Cycles(2))
	DefineInstruction(0x33, "INC SP", func(c *CPU) { c.SP++ }, Cycles(2))
	DefineInstruction(0x0B, "DEC BC", func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() - 1) }, Cycles(2))
	DefineInstruction(0x1B, "DEC DE", func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() - 1) }, Cycles(2))
	DefineInstruction(0x2B, "DEC HL", func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() - 1) }, Cycles(2))
	DefineInstruction(0x3B, "DEC SP", func(c *CPU) { c.SP-- }, Cycles(2))

	// ADD HL, rr
	DefineInstruction(0x09, "ADD HL, BC", func(c *CPU) {
		c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.BC.Uint16()))
	}, Cycles(2))
	DefineInstruction(0x19, "ADD HL, DE", func(c *CPU) {
		c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.DE.Uint16()))
	}, Cycles(2))
	DefineInstruction(0x29, "ADD HL, HL", func(c *CPU) {
		c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.HL.Uint16()))
	}, Cycles(2))
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU) {
		c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.SP))
	}, Cycles(2))

	// ADD SP, r8
	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) { c.SP = c.addSPSigned() }, Cycles(4))

	// 0x80 - 0x9F - ADD/ADC/SUB/SBC A, r
	for i := uint8(0); i < 8; i++ {
		src := i
		name := registerNameMap[src]
		if src == 6 {
			DefineInstruction(0x86, "ADD A, (HL)", func(c *CPU) {
				c.A = c.add(c.A, c.readByte(c.HL.Uint16()), false)
			}, Cycles(2))
			DefineInstruction(0x8E, "ADC A, (HL)", func(c *CPU) {
				c.A = c.add(c.A, c.readByte(c.HL.Uint16()), true)
			}, Cycles(2))
			DefineInstruction(0x96, "SUB A, (HL)", func(c *CPU) {
				c.A = c.sub(c.A, c.readByte(c.HL.Uint16()), false)
			}, Cycles(2))
			DefineInstruction(0x9E, "SBC A, (HL)", func(c *CPU) {
				c.A = c.sub(c.A, c.readByte(c.HL.Uint16()), true)
			}, Cycles(2))
			continue
		}
		DefineInstruction(0x80+src, fmt.Sprintf("ADD A, %s", name), func(c *CPU) {
			c.A = c.add(c.A, *c.registerIndex(src), false)
		})
		DefineInstruction(0x88+src, fmt.Sprintf("ADC A, %s", name), func(c *CPU) {
			c.A = c.add(c.A, *c.registerIndex(src), true)
		})
		DefineInstruction(0x90+src, fmt.Sprintf("SUB A, %s", name), func(c *CPU) {
			c.A = c.sub(c.A, *c.registerIndex(src), false)
		})
		DefineInstruction(0x98+src, fmt.Sprintf("SBC A, %s", name), func(c *CPU) {
			c.A = c.sub(c.A, *c.registerIndex(src), true)
		})
	}

	// immediates
	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU) { c.A = c.add(c.A, c.readOperand(), false) }, Cycles(2))
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU) { c.A = c.add(c.A, c.readOperand(), true) }, Cycles(2))
	DefineInstruction(0xD6, "SUB A, d8", func(c *CPU) { c.A = c.sub(c.A, c.readOperand(), false) }, Cycles(2))
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU) { c.A = c.sub(c.A, c.readOperand(), true) }, Cycles(2))
}
