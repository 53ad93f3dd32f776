package gameboy

import (
	"bytes"
	"testing"

	"github.com/thelolagemann/dmg/internal/types"
	"github.com/thelolagemann/dmg/pkg/log"
)

// buildROM assembles the given code at 0x0100 into a 32kB ROM-only
// cartridge image.
func buildROM(code []byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:], "TEST")
	rom[0x0147] = 0x00 // ROM only
	rom[0x0148] = 0x00 // 32kB
	copy(rom[0x0100:], code)
	return rom
}

// serialProgram assembles a program that sends every byte of msg over
// the serial port and then halts at a debug breakpoint.
func serialProgram(msg string) []byte {
	var code []byte
	for _, b := range []byte(msg) {
		code = append(code,
			0x3E, b, // LD A, b
			0xE0, 0x01, // LDH (SB), A
			0x3E, 0x81, // LD A, 81h
			0xE0, 0x02, // LDH (SC), A
		)
	}
	code = append(code, 0x40) // LD B, B
	return code
}

func TestNewGameBoy(t *testing.T) {
	t.Run("valid rom", func(t *testing.T) {
		gb, err := NewGameBoy(buildROM(nil), WithLogger(log.NewNullLogger()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gb.MMU.Cart.Title() != "TEST" {
			t.Errorf("expected title TEST, got %q", gb.MMU.Cart.Title())
		}
	})
	t.Run("short rom", func(t *testing.T) {
		if _, err := NewGameBoy(make([]byte, 0x100)); err == nil {
			t.Error("expected an error for a ROM shorter than the header")
		}
	})
}

func TestGameBoy_SerialOutput(t *testing.T) {
	var output bytes.Buffer
	gb, err := NewGameBoy(buildROM(serialProgram("Passed all tests")),
		Debug(),
		SerialDebugger(&output),
		WithLogger(log.NewNullLogger()),
	)
	if err != nil {
		t.Fatal(err)
	}

	for frame := 0; frame < 60 && !gb.CPU.DebugBreakpoint; frame++ {
		gb.Frame()
	}

	if !gb.CPU.DebugBreakpoint {
		t.Fatal("program never reached the breakpoint")
	}
	if output.String() != "Passed all tests" {
		t.Errorf("expected serial output \"Passed all tests\", got %q", output.String())
	}
}

func TestGameBoy_Frame(t *testing.T) {
	// JR -2, spin forever
	gb, err := NewGameBoy(buildROM([]byte{0x18, 0xFE}), WithLogger(log.NewNullLogger()))
	if err != nil {
		t.Fatal(err)
	}

	gb.Frame()

	// a frame's worth of cycles must have reached the divider
	if div := gb.MMU.Read(types.DIV); div == 0 {
		t.Error("expected DIV to advance over a frame")
	}
}

// countingUnit is a bus collaborator that records the cycles it is
// ticked with.
type countingUnit struct {
	cycles uint
}

func (c *countingUnit) Read(address uint16) uint8         { return 0xFF }
func (c *countingUnit) Write(address uint16, value uint8) {}
func (c *countingUnit) Tick(cycles uint8)                 { c.cycles += uint(cycles) }

func TestGameBoy_TicksCollaborators(t *testing.T) {
	video := &countingUnit{}
	gb, err := NewGameBoy(buildROM([]byte{0x18, 0xFE}),
		WithVideo(video),
		WithLogger(log.NewNullLogger()),
	)
	if err != nil {
		t.Fatal(err)
	}

	gb.Frame()

	if video.cycles < CyclesPerFrame {
		t.Errorf("expected the video unit to see at least %d cycles, got %d", CyclesPerFrame, video.cycles)
	}
}
