package cpu

import (
	"github.com/thelolagemann/dmg/internal/types"
)

// Instruction is a single entry of the instruction tables: a named
// handler plus its cycle cost. Handlers read their own operand bytes
// and advance PC past them; control-flow handlers leave PC at the
// jump target instead.
type Instruction struct {
	name string
	fn   func(*CPU)

	// cycles is the base cost of the instruction in T-cycles;
	// branchedCycles is the cost when a conditional branch, call or
	// return was taken.
	cycles         uint8
	branchedCycles uint8
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// InstructionOpt configures an Instruction beyond its handler.
type InstructionOpt func(*Instruction)

// Cycles sets the base cost of the instruction, in M-cycles.
func Cycles(m uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = m * 4
	}
}

// BranchedCycles sets the cost of the instruction when its condition
// held, in M-cycles.
func BranchedCycles(m uint8) InstructionOpt {
	return func(i *Instruction) {
		i.branchedCycles = m * 4
	}
}

// InstructionSet is the table of the 256 primary opcode handlers.
// Undefined entries are the illegal opcodes; executing one is reported
// and treated as a 4-cycle no-op.
var InstructionSet [256]Instruction

// InstructionSetCB is the table of the 256 CB-prefixed opcode handlers
// for the bit, rotate and shift operations. The stored cycle costs
// include the prefix fetch.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction for the given opcode in
// the InstructionSet. Instructions default to 1 M-cycle.
func DefineInstruction(opcode uint8, name string, fn func(*CPU), opts ...InstructionOpt) {
	instruction := Instruction{
		name:   name,
		fn:     fn,
		cycles: 4,
	}
	for _, opt := range opts {
		opt(&instruction)
	}
	if instruction.branchedCycles == 0 {
		instruction.branchedCycles = instruction.cycles
	}

	InstructionSet[opcode] = instruction
}

// DefineInstructionCB defines the instruction for the given opcode in
// the InstructionSetCB. CB instructions default to 2 M-cycles.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU), opts ...InstructionOpt) {
	instruction := Instruction{
		name:   name,
		fn:     fn,
		cycles: 8,
	}
	for _, opt := range opts {
		opt(&instruction)
	}
	instruction.branchedCycles = instruction.cycles

	InstructionSetCB[opcode] = instruction
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
	DefineInstruction(0x10, "STOP", func(c *CPU) {
		// STOP resets the divider
		c.writeByte(types.DIV, 0)

		// same erratum as HALT: with IME cleared and an interrupt
		// already pending, the CPU does not actually stop
		if !c.irq.IME && c.irq.HasInterrupts() {
			c.haltBug = true
		} else {
			c.mode = ModeStop
		}
	})
	DefineInstruction(0x27, "DAA", func(c *CPU) {
		if !c.isFlagSet(FlagSubtract) {
			if c.isFlagSet(FlagCarry) || c.A > 0x99 {
				c.A += 0x60
				c.setFlag(FlagCarry)
			}
			if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
				c.A += 0x06
			}
		} else {
			if c.isFlagSet(FlagCarry) {
				c.A -= 0x60
			}
			if c.isFlagSet(FlagHalfCarry) {
				c.A -= 0x06
			}
		}
		c.shouldZeroFlag(c.A)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x76, "HALT", func(c *CPU) {
		if c.irq.IME {
			c.mode = ModeHalt
		} else if c.irq.HasInterrupts() {
			// the HALT bug: the CPU stays running and the next
			// opcode byte is fetched twice
			c.haltBug = true
		} else {
			c.mode = ModeHalt
		}
	})
	DefineInstruction(0xF3, "DI", func(c *CPU) { c.irq.Disable() })
	DefineInstruction(0xFB, "EI", func(c *CPU) { c.irq.ScheduleEnable() })
}
