// Package cpu provides an emulation of the Sharp LR35902, the CPU of
// the Game Boy. It executes one instruction per Step, consulting the
// interrupt controller at every instruction boundary, and reports the
// cycle cost of each step so that the frame driver can advance the
// timer and the external collaborators.
package cpu

import (
	"github.com/thelolagemann/dmg/internal/interrupts"
	"github.com/thelolagemann/dmg/internal/mmu"
	"github.com/thelolagemann/dmg/internal/types"
	"github.com/thelolagemann/dmg/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU in T-cycles per second.
	ClockSpeed = 4194304

	// interruptCycles is the fixed cost of servicing an interrupt.
	interruptCycles = 20
)

// Register is an 8-bit CPU register.
type Register = types.Register

// RegisterPair is a 16-bit view over two 8-bit registers.
type RegisterPair = types.RegisterPair

// Registers are the 8 8-bit registers and their 16-bit pair views.
type Registers = types.Registers

type mode = uint8

const (
	// ModeNormal is the normal CPU mode; instructions are fetched
	// and executed.
	ModeNormal mode = iota
	// ModeHalt is entered by the HALT instruction; the CPU burns
	// cycles until an interrupt is pending.
	ModeHalt
	// ModeStop is entered by the STOP instruction; like ModeHalt,
	// with the divider reset on entry.
	ModeStop
)

// CPU represents the Game Boy CPU. It is responsible for executing
// instructions, and is the sole mutator of the register file.
type CPU struct {
	// PC is the program counter, it points to the next instruction
	// to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit
	// register pairs.
	Registers

	mmu *mmu.MMU
	irq *interrupts.Service
	dma *mmu.DMA

	mode mode
	// haltBug is set when HALT (or STOP) executes with IME cleared
	// while an interrupt is already pending: the next fetch does not
	// advance PC, so the following opcode byte is executed twice.
	haltBug bool
	// branched is set by conditional control flow when the condition
	// held, selecting the taken cycle cost for the current step.
	branched bool

	Debug           bool
	DebugBreakpoint bool

	log log.Logger
}

// NewCPU creates a new CPU instance with the given MMU and interrupt
// service. The registers hold the documented DMG post-boot values.
func NewCPU(b *mmu.MMU, irq *interrupts.Service, logger log.Logger) *CPU {
	c := &CPU{
		mmu: b,
		irq: irq,
		dma: b.DMA,
		log: logger,
	}
	// create register pairs
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}

	// post-boot register values
	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D
	c.SP = 0xFFFE
	c.PC = 0x0100

	// a DIV write cancels a pending STOP erratum
	b.OnDIVWrite(func() { c.haltBug = false })

	return c
}

// Step executes one instruction boundary: it services at most one
// pending interrupt, handles halt/stop and the DMA stall, or fetches
// and executes the next instruction. It returns the T-cycle cost of
// whatever it did.
func (c *CPU) Step() uint8 {
	// an active OAM DMA transfer withholds instruction dispatch
	if c.dma.Active() {
		c.dma.Tick(4)
		return 4
	}

	if c.serviceInterrupts() {
		return interruptCycles
	}

	if c.mode != ModeNormal {
		// halted or stopped, burn a machine cycle and re-check
		// interrupts next step
		return 4
	}

	opcode := c.fetch()
	instruction := InstructionSet[opcode]
	if opcode == 0xCB {
		instruction = InstructionSetCB[c.readOperand()]
	}

	if instruction.fn == nil {
		// unimplemented opcodes are reported and treated as a
		// 1-byte no-op so a malformed stream can proceed
		c.log.Errorf("unknown opcode %#02x at %#04x", opcode, c.PC-1)
		return 4
	}

	c.branched = false
	instruction.fn(c)

	cycles := instruction.cycles
	if c.branched {
		cycles = instruction.branchedCycles
	}

	if c.Debug && instruction.name == "LD B, B" {
		c.DebugBreakpoint = true
	}

	// the delayed enable of EI/RETI advances at instruction boundaries
	c.irq.TickEnable()

	return cycles
}

// serviceInterrupts dispatches at most one pending interrupt. A pending
// interrupt always wakes HALT/STOP, even with IME cleared; it is only
// serviced when IME is set.
func (c *CPU) serviceInterrupts() bool {
	if !c.irq.HasInterrupts() {
		return false
	}

	if c.mode != ModeNormal {
		c.mode = ModeNormal
	}

	if !c.irq.IME {
		// wake without service
		return false
	}

	c.irq.IME = false

	// push the PC (high byte first) and jump to the vector of the
	// highest-priority pending source
	c.SP--
	c.mmu.Write(c.SP, uint8(c.PC>>8))
	c.SP--
	c.mmu.Write(c.SP, uint8(c.PC))
	c.PC = c.irq.Vector()

	return true
}

// fetch reads the opcode byte at PC. The HALT bug suppresses the PC
// advance once, so the same byte is fetched again by the next read.
func (c *CPU) fetch() uint8 {
	value := c.mmu.Read(c.PC)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.PC++
	}
	return value
}

// readOperand reads the next operand byte from memory.
func (c *CPU) readOperand() uint8 {
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian 16-bit operand from memory.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.mmu.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.mmu.Write(addr, val)
}

// registerIndex returns a Register pointer for the given index, in the
// B, C, D, E, H, L, (HL), A order the instruction encoding uses. Index
// 6 is (HL) and has no register.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// registerNameMap maps encoding indices to operand names.
var registerNameMap = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// Halted reports whether the CPU is in halt or stop mode.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}
