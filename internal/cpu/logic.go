package cpu

import (
	"fmt"
)

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register, performing the subtraction
// only for the flags; A is unchanged.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A-n == 0, true, n&0x0F > c.A&0x0F, n > c.A)
}

func init() {
	// 0xA0 - 0xBF - AND/XOR/OR/CP A, r
	for i := uint8(0); i < 8; i++ {
		src := i
		name := registerNameMap[src]
		if src == 6 {
			DefineInstruction(0xA6, "AND A, (HL)", func(c *CPU) { c.and(c.readByte(c.HL.Uint16())) }, Cycles(2))
			DefineInstruction(0xAE, "XOR A, (HL)", func(c *CPU) { c.xor(c.readByte(c.HL.Uint16())) }, Cycles(2))
			DefineInstruction(0xB6, "OR A, (HL)", func(c *CPU) { c.or(c.readByte(c.HL.Uint16())) }, Cycles(2))
			DefineInstruction(0xBE, "CP A, (HL)", func(c *CPU) { c.compare(c.readByte(c.HL.Uint16())) }, Cycles(2))
			continue
		}
		DefineInstruction(0xA0+src, fmt.Sprintf("AND A, %s", name), func(c *CPU) { c.and(*c.registerIndex(src)) })
		DefineInstruction(0xA8+src, fmt.Sprintf("XOR A, %s", name), func(c *CPU) { c.xor(*c.registerIndex(src)) })
		DefineInstruction(0xB0+src, fmt.Sprintf("OR A, %s", name), func(c *CPU) { c.or(*c.registerIndex(src)) })
		DefineInstruction(0xB8+src, fmt.Sprintf("CP A, %s", name), func(c *CPU) { c.compare(*c.registerIndex(src)) })
	}

	// immediates
	DefineInstruction(0xE6, "AND A, d8", func(c *CPU) { c.and(c.readOperand()) }, Cycles(2))
	DefineInstruction(0xEE, "XOR A, d8", func(c *CPU) { c.xor(c.readOperand()) }, Cycles(2))
	DefineInstruction(0xF6, "OR A, d8", func(c *CPU) { c.or(c.readOperand()) }, Cycles(2))
	DefineInstruction(0xFE, "CP A, d8", func(c *CPU) { c.compare(c.readOperand()) }, Cycles(2))
}
