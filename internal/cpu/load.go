package cpu

import (
	"fmt"
)

// loadRegisterToRegister loads the value of the given Register into the
// given Register.
//
//	LD n, n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToRegister(register *Register, value *Register) {
	*register = *value
}

// loadRegister8 loads the next operand into the given Register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
//	d8 = 8-bit immediate value
func (c *CPU) loadRegister8(reg *Register) {
	*reg = c.readOperand()
}

// loadMemoryToRegister loads the value at the given memory address into
// the given Register.
//
//	LD n, (HL)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegisterToMemory loads the value of the given Register into the
// given memory address.
//
//	LD (HL), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.writeByte(address, reg)
}

// loadRegisterToHardware loads the value of the given Register into the
// given hardware address. (e.g. LD (0xFF00 + n), A)
//
//	LD (0xFF00 + n), A
//	n = C, 8-bit immediate value
func (c *CPU) loadRegisterToHardware(reg Register, address uint8) {
	c.writeByte(0xFF00+uint16(address), reg)
}

// loadRegister16 loads the next 16-bit operand into the given Register
// pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(reg *RegisterPair) {
	*reg.Low = c.readOperand()
	*reg.High = c.readOperand()
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) { c.loadRegister16(c.BC) }, Cycles(3))
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.loadRegisterToMemory(c.A, c.BC.Uint16()) }, Cycles(2))
	DefineInstruction(0x06, "LD B, d8", func(c *CPU) { c.loadRegister8(&c.B) }, Cycles(2))
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP&0xFF))
		c.writeByte(address+1, uint8(c.SP>>8))
	}, Cycles(5))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) { c.loadMemoryToRegister(&c.A, c.BC.Uint16()) }, Cycles(2))
	DefineInstruction(0x0E, "LD C, d8", func(c *CPU) { c.loadRegister8(&c.C) }, Cycles(2))
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) { c.loadRegister16(c.DE) }, Cycles(3))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.loadRegisterToMemory(c.A, c.DE.Uint16()) }, Cycles(2))
	DefineInstruction(0x16, "LD D, d8", func(c *CPU) { c.loadRegister8(&c.D) }, Cycles(2))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) { c.loadMemoryToRegister(&c.A, c.DE.Uint16()) }, Cycles(2))
	DefineInstruction(0x1E, "LD E, d8", func(c *CPU) { c.loadRegister8(&c.E) }, Cycles(2))
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) { c.loadRegister16(c.HL) }, Cycles(3))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}, Cycles(2))
	DefineInstruction(0x26, "LD H, d8", func(c *CPU) { c.loadRegister8(&c.H) }, Cycles(2))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}, Cycles(2))
	DefineInstruction(0x2E, "LD L, d8", func(c *CPU) { c.loadRegister8(&c.L) }, Cycles(2))
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) { c.SP = c.readOperand16() }, Cycles(3))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}, Cycles(2))
	DefineInstruction(0x36, "LD (HL), d8", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.readOperand())
	}, Cycles(3))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}, Cycles(2))
	DefineInstruction(0x3E, "LD A, d8", func(c *CPU) { c.loadRegister8(&c.A) }, Cycles(2))
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) {
		c.loadRegisterToHardware(c.A, c.readOperand())
	}, Cycles(3))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) { c.loadRegisterToHardware(c.A, c.C) }, Cycles(2))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.readOperand16())
	}, Cycles(4))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.readOperand()))
	}, Cycles(3))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.C))
	}, Cycles(2))
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
	}, Cycles(3))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) { c.SP = c.HL.Uint16() }, Cycles(2))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.readOperand16())
	}, Cycles(4))

	// PUSH/POP rr
	DefineInstruction(0xC5, "PUSH BC", func(c *CPU) { c.pushStack(c.BC.Uint16()) }, Cycles(4))
	DefineInstruction(0xD5, "PUSH DE", func(c *CPU) { c.pushStack(c.DE.Uint16()) }, Cycles(4))
	DefineInstruction(0xE5, "PUSH HL", func(c *CPU) { c.pushStack(c.HL.Uint16()) }, Cycles(4))
	DefineInstruction(0xF5, "PUSH AF", func(c *CPU) { c.pushStack(c.AF.Uint16()) }, Cycles(4))
	DefineInstruction(0xC1, "POP BC", func(c *CPU) { c.BC.SetUint16(c.popStack()) }, Cycles(3))
	DefineInstruction(0xD1, "POP DE", func(c *CPU) { c.DE.SetUint16(c.popStack()) }, Cycles(3))
	DefineInstruction(0xE1, "POP HL", func(c *CPU) { c.HL.SetUint16(c.popStack()) }, Cycles(3))
	DefineInstruction(0xF1, "POP AF", func(c *CPU) {
		// the low nibble of F does not exist in hardware
		c.AF.SetUint16(c.popStack() & 0xFFF0)
	}, Cycles(3))

	generateLoadRegisterToRegisterInstructions()
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		to := i

		// LD (HL), r
		if to == 6 {
			for j := uint8(0); j < 8; j++ {
				// skip 0x76 (HALT)
				if j == 6 {
					continue
				}
				from := j
				DefineInstruction(0x70+from, fmt.Sprintf("LD (HL), %s", registerNameMap[from]), func(c *CPU) {
					c.loadRegisterToMemory(*c.registerIndex(from), c.HL.Uint16())
				}, Cycles(2))
			}
			continue
		}

		for j := uint8(0); j < 8; j++ {
			from := j

			// LD r, (HL)
			if from == 6 {
				DefineInstruction(0x40+to*8+from, fmt.Sprintf("LD %s, (HL)", registerNameMap[to]), func(c *CPU) {
					c.loadMemoryToRegister(c.registerIndex(to), c.HL.Uint16())
				}, Cycles(2))
				continue
			}

			DefineInstruction(0x40+to*8+from, fmt.Sprintf("LD %s, %s", registerNameMap[to], registerNameMap[from]), func(c *CPU) {
				c.loadRegisterToRegister(c.registerIndex(to), c.registerIndex(from))
			})
		}
	}
}
