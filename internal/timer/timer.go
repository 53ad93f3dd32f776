// Package timer provides an implementation of the Game Boy timer.
// It is used to generate interrupts at a configurable frequency,
// selected through the TAC register.
package timer

import (
	"github.com/thelolagemann/dmg/internal/interrupts"
	"github.com/thelolagemann/dmg/pkg/utils"
)

// divisors maps TAC bits 0-1 to the number of T-cycles per TIMA
// increment (4096 Hz, 262144 Hz, 65536 Hz and 16384 Hz).
var divisors = [4]uint32{1024, 16, 64, 256}

// Controller is the timer controller. It owns the free-running 16-bit
// divider, whose upper byte is exposed as DIV, and the TIMA/TMA/TAC
// counter. The CPU's frame driver advances it with the cycle cost of
// every executed instruction.
type Controller struct {
	// div is the internal 16-bit divider. DIV reads its upper byte;
	// writing DIV resets it to 0 regardless of the written value.
	div uint16

	tima uint8
	tma  uint8
	tac  uint8

	// acc accumulates T-cycles towards the next TIMA increment
	// while TAC's enable bit is set.
	acc uint32

	irq *interrupts.Service
}

// NewController returns a new timer controller.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		irq: irq,
	}
}

// Tick advances the timer by the given number of T-cycles. Steps larger
// than the selected divisor produce multiple TIMA increments. If TIMA
// overflows it is reloaded from TMA and a timer interrupt is requested.
func (c *Controller) Tick(cycles uint8) {
	c.div += uint16(cycles)

	if !c.enabled() {
		return
	}

	c.acc += uint32(cycles)
	divisor := divisors[c.tac&0b11]
	for c.acc >= divisor {
		c.acc -= divisor

		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		}
	}
}

// Div returns the DIV register, the upper byte of the internal divider.
func (c *Controller) Div() uint8 {
	return uint8(c.div >> 8)
}

// Reset resets the internal divider to 0. It is invoked by any write to
// the DIV address, and by the STOP instruction.
func (c *Controller) Reset() {
	c.div = 0
}

// Read reads one of the timer registers (DIV, TIMA, TMA, TAC) by its
// offset from DIV.
func (c *Controller) Read(offset uint8) uint8 {
	switch offset {
	case 0:
		return c.Div()
	case 1:
		return c.tima
	case 2:
		return c.tma
	case 3:
		return c.tac | 0b1111_1000 // unused bits read as 1
	}
	return 0xFF
}

// Write writes one of the timer registers by its offset from DIV. The
// value written to DIV is discarded; the write only resets the divider.
func (c *Controller) Write(offset uint8, value uint8) {
	switch offset {
	case 0:
		c.Reset()
	case 1:
		c.tima = value
	case 2:
		c.tma = value
	case 3:
		c.tac = value & 0b111
	}
}

func (c *Controller) enabled() bool {
	return utils.TestBit(c.tac, 2)
}
