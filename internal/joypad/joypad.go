// Package joypad provides an implementation of the Game Boy joypad
// register. The host maps its input device to Press and Release calls;
// the core only exposes the P1 register semantics.
package joypad

import (
	"github.com/thelolagemann/dmg/internal/interrupts"
	"github.com/thelolagemann/dmg/internal/types"
	"github.com/thelolagemann/dmg/pkg/utils"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right direction key.
	ButtonRight
	// ButtonLeft is the Left direction key.
	ButtonLeft
	// ButtonUp is the Up direction key.
	ButtonUp
	// ButtonDown is the Down direction key.
	ButtonDown
)

const (
	selectButtons    = types.Bit5 // 0 = buttons selected
	selectDirections = types.Bit4 // 0 = direction keys selected
)

// State holds the pressed state of the 8 inputs and the P1 selection
// bits. Input lines are active low: a pressed button reads as 0.
type State struct {
	// selection holds P1 bits 4-5 as last written; the input bits
	// 0-3 are derived from the button matrix on every read.
	selection uint8

	buttons    uint8 // A, B, Select, Start (bits 0-3)
	directions uint8 // Right, Left, Up, Down (bits 0-3)

	irq *interrupts.Service
}

// New returns a new joypad State.
func New(irq *interrupts.Service) *State {
	return &State{
		selection: selectButtons | selectDirections,
		irq:       irq,
	}
}

// Press marks the given button as pressed and requests a joypad
// interrupt if its group is currently selected.
func (s *State) Press(button Button) {
	if button < ButtonRight {
		s.buttons = utils.SetBit(s.buttons, button)
		if s.selection&selectButtons == 0 {
			s.irq.Request(interrupts.JoypadFlag)
		}
	} else {
		s.directions = utils.SetBit(s.directions, button-ButtonRight)
		if s.selection&selectDirections == 0 {
			s.irq.Request(interrupts.JoypadFlag)
		}
	}
}

// Release marks the given button as released.
func (s *State) Release(button Button) {
	if button < ButtonRight {
		s.buttons = utils.ClearBit(s.buttons, button)
	} else {
		s.directions = utils.ClearBit(s.directions, button-ButtonRight)
	}
}

// Read returns the P1 register: the selection bits as written, and the
// input bits of the selected group, active low. The unused bits 6-7
// read as 1.
func (s *State) Read() uint8 {
	v := s.selection | 0xC0 | 0x0F

	if s.selection&selectButtons == 0 {
		v &^= s.buttons
	}
	if s.selection&selectDirections == 0 {
		v &^= s.directions
	}

	return v
}

// Write writes the P1 register. Only the two selection bits are
// writable; the input bits are read-only from the bus's perspective.
func (s *State) Write(v uint8) {
	s.selection = v & (selectButtons | selectDirections)
}
