// Package gameboy wires the emulated components into a complete
// Game Boy and drives them frame by frame.
package gameboy

import (
	"github.com/thelolagemann/dmg/internal/cartridge"
	"github.com/thelolagemann/dmg/internal/cpu"
	"github.com/thelolagemann/dmg/internal/interrupts"
	"github.com/thelolagemann/dmg/internal/joypad"
	"github.com/thelolagemann/dmg/internal/mmu"
	"github.com/thelolagemann/dmg/internal/serial"
	"github.com/thelolagemann/dmg/internal/timer"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = 4194304 // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224 // 4194304 / ~59.73 Hz
)

// Clocked is implemented by collaborators that consume machine
// cycles, such as a video or audio unit. Attached collaborators that
// implement it are ticked with the cycles of every executed step.
type Clocked interface {
	Tick(cycles uint8)
}

// GameBoy represents a Game Boy. It contains all the emulated
// components and is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	Joypad     *joypad.State
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller

	clocked      []Clocked
	currentCycle uint
}

// NewGameBoy returns a new GameBoy running the given ROM. The ROM is
// validated by the cartridge layer before anything is wired up.
func NewGameBoy(rom []byte, opts ...GameBoyOpt) (*GameBoy, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, err
	}
	irq := interrupts.NewService()
	pad := joypad.New(irq)
	serialCtl := serial.NewController(irq)
	if cfg.serialDevice != nil {
		serialCtl.Attach(cfg.serialDevice)
	}
	if cfg.serialDebug != nil {
		serialCtl.AttachDebugger(cfg.serialDebug)
	}
	timerCtl := timer.NewController(irq)
	memBus := mmu.NewMMU(cart, pad, serialCtl, timerCtl, irq, cfg.logger)

	g := &GameBoy{
		CPU: cpu.NewCPU(memBus, irq, cfg.logger),
		MMU: memBus,

		Joypad:     pad,
		Interrupts: irq,
		Timer:      timerCtl,
		Serial:     serialCtl,
	}
	g.CPU.Debug = cfg.debug

	if cfg.video != nil {
		memBus.AttachVideo(cfg.video)
		if c, ok := cfg.video.(Clocked); ok {
			g.clocked = append(g.clocked, c)
		}
	}
	if cfg.audio != nil {
		memBus.AttachAudio(cfg.audio)
		if c, ok := cfg.audio.(Clocked); ok {
			g.clocked = append(g.clocked, c)
		}
	}

	return g, nil
}

// Frame steps the emulation for one frame's worth of clock cycles.
// Cycles that run over the frame boundary are carried into the next
// frame, so the long-run rate stays at ClockSpeed.
func (g *GameBoy) Frame() {
	for g.currentCycle < CyclesPerFrame {
		g.currentCycle += uint(g.Step())
	}
	g.currentCycle -= CyclesPerFrame
}

// Step executes a single CPU step and forwards the consumed cycles to
// the timer and any attached collaborators. It returns the number of
// clock cycles consumed.
func (g *GameBoy) Step() uint8 {
	cycles := g.CPU.Step()
	g.Timer.Tick(cycles)
	for _, c := range g.clocked {
		c.Tick(cycles)
	}
	return cycles
}

// Press presses the given button on the joypad.
func (g *GameBoy) Press(button joypad.Button) {
	g.Joypad.Press(button)
}

// Release releases the given button on the joypad.
func (g *GameBoy) Release(button joypad.Button) {
	g.Joypad.Release(button)
}
