package cpu

import (
	"fmt"
)

// pushStack pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value&0xFF))
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.readByte(c.SP))
	c.SP++
	upper := uint16(c.readByte(c.SP)) << 8
	c.SP++
	return lower | upper
}

// call pushes the address of the next instruction onto the stack and
// jumps to the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// callConditional reads the call target and, if the given condition is
// true, pushes the address of the next instruction onto the stack and
// jumps to it.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) callConditional(condition bool) {
	address := c.readOperand16()
	if condition {
		c.branched = true
		c.call(address)
	}
}

// jumpRelative jumps to the address relative to the current PC.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative() {
	offset := int8(c.readOperand())
	c.PC = uint16(int32(c.PC) + int32(offset))
}

// jumpRelativeConditional jumps to the address relative to the current
// PC if the given condition is true.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.branched = true
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}

// jumpAbsoluteConditional reads the jump target and jumps to it if the
// given condition is true.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsoluteConditional(condition bool) {
	address := c.readOperand16()
	if condition {
		c.branched = true
		c.PC = address
	}
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// retConditional pops the top two bytes off the stack and jumps to
// that address if the given condition is true.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.branched = true
		c.ret()
	}
}

func init() {
	DefineInstruction(0x18, "JR n", func(c *CPU) { c.jumpRelative() }, Cycles(3))
	DefineInstruction(0x20, "JR NZ, n", func(c *CPU) {
		c.jumpRelativeConditional(!c.isFlagSet(FlagZero))
	}, Cycles(2), BranchedCycles(3))
	DefineInstruction(0x28, "JR Z, n", func(c *CPU) {
		c.jumpRelativeConditional(c.isFlagSet(FlagZero))
	}, Cycles(2), BranchedCycles(3))
	DefineInstruction(0x30, "JR NC, n", func(c *CPU) {
		c.jumpRelativeConditional(!c.isFlagSet(FlagCarry))
	}, Cycles(2), BranchedCycles(3))
	DefineInstruction(0x38, "JR C, n", func(c *CPU) {
		c.jumpRelativeConditional(c.isFlagSet(FlagCarry))
	}, Cycles(2), BranchedCycles(3))
	DefineInstruction(0xC0, "RET NZ", func(c *CPU) {
		c.retConditional(!c.isFlagSet(FlagZero))
	}, Cycles(2), BranchedCycles(5))
	DefineInstruction(0xC2, "JP NZ, nn", func(c *CPU) {
		c.jumpAbsoluteConditional(!c.isFlagSet(FlagZero))
	}, Cycles(3), BranchedCycles(4))
	DefineInstruction(0xC3, "JP nn", func(c *CPU) { c.PC = c.readOperand16() }, Cycles(4))
	DefineInstruction(0xC4, "CALL NZ, nn", func(c *CPU) {
		c.callConditional(!c.isFlagSet(FlagZero))
	}, Cycles(3), BranchedCycles(6))
	DefineInstruction(0xC8, "RET Z", func(c *CPU) {
		c.retConditional(c.isFlagSet(FlagZero))
	}, Cycles(2), BranchedCycles(5))
	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret() }, Cycles(4))
	DefineInstruction(0xCA, "JP Z, nn", func(c *CPU) {
		c.jumpAbsoluteConditional(c.isFlagSet(FlagZero))
	}, Cycles(3), BranchedCycles(4))
	DefineInstruction(0xCC, "CALL Z, nn", func(c *CPU) {
		c.callConditional(c.isFlagSet(FlagZero))
	}, Cycles(3), BranchedCycles(6))
	DefineInstruction(0xCD, "CALL nn", func(c *CPU) { c.call(c.readOperand16()) }, Cycles(6))
	DefineInstruction(0xD0, "RET NC", func(c *CPU) {
		c.retConditional(!c.isFlagSet(FlagCarry))
	}, Cycles(2), BranchedCycles(5))
	DefineInstruction(0xD2, "JP NC, nn", func(c *CPU) {
		c.jumpAbsoluteConditional(!c.isFlagSet(FlagCarry))
	}, Cycles(3), BranchedCycles(4))
	DefineInstruction(0xD4, "CALL NC, nn", func(c *CPU) {
		c.callConditional(!c.isFlagSet(FlagCarry))
	}, Cycles(3), BranchedCycles(6))
	DefineInstruction(0xD8, "RET C", func(c *CPU) {
		c.retConditional(c.isFlagSet(FlagCarry))
	}, Cycles(2), BranchedCycles(5))
	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		// RETI enables interrupts through the same one-instruction
		// delay as EI
		c.ret()
		c.irq.ScheduleEnable()
	}, Cycles(4))
	DefineInstruction(0xDA, "JP C, nn", func(c *CPU) {
		c.jumpAbsoluteConditional(c.isFlagSet(FlagCarry))
	}, Cycles(3), BranchedCycles(4))
	DefineInstruction(0xDC, "CALL C, nn", func(c *CPU) {
		c.callConditional(c.isFlagSet(FlagCarry))
	}, Cycles(3), BranchedCycles(6))
	DefineInstruction(0xE9, "JP HL", func(c *CPU) { c.PC = c.HL.Uint16() }, Cycles(1))

	generateRSTInstructions()
}

// generateRSTInstructions generates the 8 RST instructions.
func generateRSTInstructions() {
	for i := uint8(0); i < 8; i++ {
		address := uint16(i) * 8
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02Xh", address), func(c *CPU) {
			c.call(address)
		}, Cycles(4))
	}
}
