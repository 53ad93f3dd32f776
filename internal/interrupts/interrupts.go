// Package interrupts provides the interrupt controller of the Game Boy.
// Interrupts are requested by the timer, serial port, joypad and the
// external video collaborator, and serviced by the CPU at instruction
// boundaries.
package interrupts

import (
	"github.com/thelolagemann/dmg/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// requested by the video collaborator at the start of
	// the vertical blanking period.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1),
	// requested by the video collaborator when one of the
	// STAT conditions is met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// requested when TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// requested when a serial transfer completes.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4),
	// requested when a selected input line goes low.
	JoypadFlag = types.Bit4
)

// usedBits masks the 5 interrupt bits of IF and IE.
const usedBits = 0x1F

// Service is the interrupt controller. It owns the IF and IE registers,
// the IME flag, and the counter implementing the delayed activation of
// EI.
//
// When an interrupt is requested, the corresponding bit in Flag is set.
// When an interrupt is both requested and enabled, and IME is set, the
// CPU services the single highest-priority source: it clears IME and
// that source's Flag bit, pushes PC and jumps to the source's vector.
//
// EI does not set IME directly: it schedules the enable to take effect
// only after the instruction following EI has executed. DI clears IME
// immediately and cancels any pending enable. RETI enables through the
// same delayed mechanism as EI, matching the hardware's one-instruction
// latency.
type Service struct {
	// Flag is the interrupt request register (IF). Only the lower
	// 5 bits are used; the upper 3 read as 1.
	Flag uint8
	// Enable is the interrupt enable register (IE). Only the lower
	// 5 bits are used.
	Enable uint8
	// IME is the interrupt master enable. It is not memory mapped.
	IME bool

	enableDelay uint8
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// HasInterrupts returns true if any interrupt is both requested
// and enabled, regardless of IME.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&usedBits != 0
}

// Request requests the specified interrupt, by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Vector returns the vector of the highest-priority interrupt that is
// both requested and enabled, clearing its Flag bit. It returns 0 if
// no interrupt is pending; 0 is never a valid vector.
func (s *Service) Vector() uint16 {
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)

		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag ^= flag
			return types.VectorVBlank + uint16(i)*8
		}
	}

	return 0
}

// ScheduleEnable schedules IME to be set once the next instruction has
// fully executed, implementing the delayed activation of EI and RETI.
func (s *Service) ScheduleEnable() {
	if !s.IME && s.enableDelay == 0 {
		s.enableDelay = 2
	}
}

// Disable clears IME immediately and cancels any pending enable.
func (s *Service) Disable() {
	s.IME = false
	s.enableDelay = 0
}

// TickEnable advances the delayed-enable counter by one instruction
// boundary. The CPU calls it once at the end of every step.
func (s *Service) TickEnable() {
	if s.enableDelay > 0 {
		s.enableDelay--
		if s.enableDelay == 0 {
			s.IME = true
		}
	}
}

// ReadFlag returns the IF register; the unused upper 3 bits are
// always set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | ^uint8(usedBits)
}

// WriteFlag writes the IF register.
func (s *Service) WriteFlag(v uint8) {
	s.Flag = v & usedBits
}

// ReadEnable returns the IE register.
func (s *Service) ReadEnable() uint8 {
	return s.Enable
}

// WriteEnable writes the IE register.
func (s *Service) WriteEnable(v uint8) {
	s.Enable = v
}
