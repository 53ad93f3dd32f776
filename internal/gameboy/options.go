package gameboy

import (
	"io"

	"github.com/thelolagemann/dmg/internal/mmu"
	"github.com/thelolagemann/dmg/internal/serial"
	"github.com/thelolagemann/dmg/pkg/log"
)

// config collects options before the components are wired together.
type config struct {
	logger       log.Logger
	video        mmu.IOBus
	audio        mmu.IOBus
	serialDevice serial.Device
	serialDebug  io.Writer
	debug        bool
}

func newConfig() *config {
	return &config{logger: log.New()}
}

// GameBoyOpt is a function that configures a GameBoy instance.
type GameBoyOpt func(cfg *config)

// Debug enables the debug breakpoint instruction, LD B, B.
func Debug() GameBoyOpt {
	return func(cfg *config) {
		cfg.debug = true
	}
}

// WithLogger sets the logger used by the emulator components.
func WithLogger(l log.Logger) GameBoyOpt {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithVideo attaches a video unit to the memory bus.
func WithVideo(video mmu.IOBus) GameBoyOpt {
	return func(cfg *config) {
		cfg.video = video
	}
}

// WithAudio attaches an audio unit to the memory bus.
func WithAudio(audio mmu.IOBus) GameBoyOpt {
	return func(cfg *config) {
		cfg.audio = audio
	}
}

// SerialDevice attaches a device to the other end of the link cable.
func SerialDevice(d serial.Device) GameBoyOpt {
	return func(cfg *config) {
		cfg.serialDevice = d
	}
}

// SerialDebugger copies every byte sent over the link cable to w.
// Test ROMs report their results this way.
func SerialDebugger(w io.Writer) GameBoyOpt {
	return func(cfg *config) {
		cfg.serialDebug = w
	}
}
