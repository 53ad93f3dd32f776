package cpu

import "fmt"

// testBit tests the given bit of the given value, setting the zero
// flag if the bit is reset. The carry flag is left untouched.
//
//	BIT b, n
//	b = bit number (0-7)
//	n = 8-bit value
func (c *CPU) testBit(bit uint8, value uint8) {
	c.setFlags(value&(1<<bit) == 0, false, true, c.isFlagSet(FlagCarry))
}

func init() {
	generateBitInstructions()
}

// generateBitInstructions generates the CB-prefixed BIT, RES and SET
// instructions for each bit number and operand encoding.
func generateBitInstructions() {
	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		for src := uint8(0); src < 8; src++ {
			src := src
			if src == 6 {
				DefineInstructionCB(0x40+bit*8+src, fmt.Sprintf("BIT %d, (HL)", bit), func(c *CPU) {
					c.testBit(bit, c.readByte(c.HL.Uint16()))
				}, Cycles(3))
				DefineInstructionCB(0x80+bit*8+src, fmt.Sprintf("RES %d, (HL)", bit), func(c *CPU) {
					c.writeByte(c.HL.Uint16(), c.readByte(c.HL.Uint16())&^(1<<bit))
				}, Cycles(4))
				DefineInstructionCB(0xC0+bit*8+src, fmt.Sprintf("SET %d, (HL)", bit), func(c *CPU) {
					c.writeByte(c.HL.Uint16(), c.readByte(c.HL.Uint16())|1<<bit)
				}, Cycles(4))
				continue
			}
			DefineInstructionCB(0x40+bit*8+src, fmt.Sprintf("BIT %d, %s", bit, registerNameMap[src]), func(c *CPU) {
				c.testBit(bit, *c.registerIndex(src))
			})
			DefineInstructionCB(0x80+bit*8+src, fmt.Sprintf("RES %d, %s", bit, registerNameMap[src]), func(c *CPU) {
				*c.registerIndex(src) &^= 1 << bit
			})
			DefineInstructionCB(0xC0+bit*8+src, fmt.Sprintf("SET %d, %s", bit, registerNameMap[src]), func(c *CPU) {
				*c.registerIndex(src) |= 1 << bit
			})
		}
	}
}
