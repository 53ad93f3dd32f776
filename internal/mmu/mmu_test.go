package mmu

import (
	"testing"

	"github.com/thelolagemann/dmg/internal/cartridge"
	"github.com/thelolagemann/dmg/internal/interrupts"
	"github.com/thelolagemann/dmg/internal/joypad"
	"github.com/thelolagemann/dmg/internal/serial"
	"github.com/thelolagemann/dmg/internal/timer"
	"github.com/thelolagemann/dmg/internal/types"
	"github.com/thelolagemann/dmg/pkg/log"
)

func newTestMMU() (*MMU, *interrupts.Service) {
	irq := interrupts.NewService()
	pad := joypad.New(irq)
	serialCtl := serial.NewController(irq)
	timerCtl := timer.NewController(irq)
	m := NewMMU(cartridge.NewEmptyCartridge(), pad, serialCtl, timerCtl, irq, log.NewNullLogger())
	return m, irq
}

func TestWorkRAM(t *testing.T) {
	m, _ := newTestMMU()

	m.Write(0xC000, 0x42)
	if m.Read(0xC000) != 0x42 {
		t.Errorf("expected 0x42, got %#02x", m.Read(0xC000))
	}
}

func TestEchoRAM(t *testing.T) {
	m, _ := newTestMMU()

	// writes in work RAM surface in the echo region
	m.Write(0xC123, 0x42)
	if m.Read(0xE123) != 0x42 {
		t.Errorf("expected the echo to read 0x42, got %#02x", m.Read(0xE123))
	}

	// and the other way round
	m.Write(0xFDFF, 0x99)
	if m.Read(0xDDFF) != 0x99 {
		t.Errorf("expected work RAM to read 0x99, got %#02x", m.Read(0xDDFF))
	}
}

func TestUnusableRegion(t *testing.T) {
	m, _ := newTestMMU()

	m.Write(0xFEA0, 0x42)
	if m.Read(0xFEA0) != 0xFF {
		t.Errorf("expected 0xFF, got %#02x", m.Read(0xFEA0))
	}
}

func TestHighRAM(t *testing.T) {
	m, _ := newTestMMU()

	m.Write(0xFF80, 0x11)
	m.Write(0xFFFE, 0x22)
	if m.Read(0xFF80) != 0x11 || m.Read(0xFFFE) != 0x22 {
		t.Errorf("expected 0x11 and 0x22, got %#02x and %#02x", m.Read(0xFF80), m.Read(0xFFFE))
	}
}

func TestVRAMAndOAM_Internal(t *testing.T) {
	m, _ := newTestMMU()

	// without a video collaborator the MMU backs VRAM and OAM itself
	m.Write(0x8000, 0x42)
	if m.Read(0x8000) != 0x42 {
		t.Errorf("expected 0x42, got %#02x", m.Read(0x8000))
	}
	m.Write(0xFE00, 0x24)
	if m.Read(0xFE00) != 0x24 {
		t.Errorf("expected 0x24, got %#02x", m.Read(0xFE00))
	}
}

// recordingBus records every access made through it.
type recordingBus struct {
	mem    map[uint16]uint8
	writes []uint16
}

func newRecordingBus() *recordingBus {
	return &recordingBus{mem: make(map[uint16]uint8)}
}

func (r *recordingBus) Read(address uint16) uint8 {
	return r.mem[address]
}

func (r *recordingBus) Write(address uint16, value uint8) {
	r.mem[address] = value
	r.writes = append(r.writes, address)
}

func TestAttachVideo(t *testing.T) {
	m, _ := newTestMMU()
	video := newRecordingBus()
	m.AttachVideo(video)

	m.Write(0x8000, 0x42)
	if video.mem[0x8000] != 0x42 {
		t.Error("expected VRAM accesses to reach the video unit")
	}
	m.Write(0xFE10, 0x24)
	if video.mem[0xFE10] != 0x24 {
		t.Error("expected OAM accesses to reach the video unit")
	}

	// LCD control writes are forwarded as well
	m.Write(types.LCDC, 0x91)
	if video.mem[types.LCDC] != 0x91 {
		t.Error("expected the LCDC write to be forwarded")
	}
	if m.Read(types.LCDC) != 0x91 {
		t.Errorf("expected LCDC to read back, got %#02x", m.Read(types.LCDC))
	}
}

func TestAttachAudio(t *testing.T) {
	m, _ := newTestMMU()
	sound := newRecordingBus()
	m.AttachAudio(sound)

	m.Write(types.NR10, 0x80)
	m.Write(types.NR52, 0xF1)
	m.Write(types.WaveRAMStart, 0x42)
	for _, addr := range []uint16{types.NR10, types.NR52, types.WaveRAMStart} {
		if _, ok := sound.mem[addr]; !ok {
			t.Errorf("expected the write to %#04x to be forwarded", addr)
		}
	}
	if m.Read(types.NR10) != 0x80 {
		t.Errorf("expected NR10 to read back, got %#02x", m.Read(types.NR10))
	}
}

func TestIORouting(t *testing.T) {
	m, irq := newTestMMU()

	t.Run("joypad", func(t *testing.T) {
		m.Write(types.P1, 0xFF)
		if m.Read(types.P1) != 0xFF {
			t.Errorf("expected P1 to be 0xFF, got %#02x", m.Read(types.P1))
		}
	})
	t.Run("timer", func(t *testing.T) {
		m.Write(types.TAC, 0x05)
		if m.Read(types.TAC) != 0xFD {
			t.Errorf("expected TAC to be 0xFD, got %#02x", m.Read(types.TAC))
		}
		m.Write(types.TMA, 0x42)
		if m.Read(types.TMA) != 0x42 {
			t.Errorf("expected TMA to be 0x42, got %#02x", m.Read(types.TMA))
		}
	})
	t.Run("interrupt flag", func(t *testing.T) {
		m.Write(types.IF, 0x01)
		if m.Read(types.IF) != 0xE1 {
			t.Errorf("expected IF to be 0xE1, got %#02x", m.Read(types.IF))
		}
	})
	t.Run("interrupt enable", func(t *testing.T) {
		m.Write(types.IE, 0x1F)
		if irq.Enable != 0x1F {
			t.Errorf("expected IE to reach the controller, got %#02x", irq.Enable)
		}
	})
	t.Run("serial", func(t *testing.T) {
		m.Write(types.SB, 0x42)
		m.Write(types.SC, 0x81)
		if irq.Flag&interrupts.SerialFlag == 0 {
			t.Error("expected the transfer to raise an interrupt")
		}
	})
	t.Run("unmapped registers store raw", func(t *testing.T) {
		m.Write(0xFF47, 0xE4)
		if m.Read(0xFF47) != 0xE4 {
			t.Errorf("expected 0xE4, got %#02x", m.Read(0xFF47))
		}
	})
}

func TestDIVWriteHook(t *testing.T) {
	m, _ := newTestMMU()
	called := false
	m.OnDIVWrite(func() { called = true })

	m.Write(types.DIV, 0x42)
	if !called {
		t.Error("expected the DIV hook to fire")
	}
	if m.Read(types.DIV) != 0 {
		t.Errorf("expected DIV to reset, got %#02x", m.Read(types.DIV))
	}
}

func TestDMA(t *testing.T) {
	m, _ := newTestMMU()

	// fill the source page with a recognizable pattern
	for i := uint16(0); i < 0xA0; i++ {
		m.Write(0xC000+i, uint8(i)^0x55)
	}

	m.Write(types.DMA, 0xC0)
	if !m.DMA.Active() {
		t.Fatal("expected the transfer to be in progress")
	}

	// the copy itself is performed up front
	for i := uint16(0); i < 0xA0; i++ {
		if got := m.Read(0xFE00 + i); got != uint8(i)^0x55 {
			t.Fatalf("expected %#02x at OAM+%d, got %#02x", uint8(i)^0x55, i, got)
		}
	}

	m.DMA.Tick(160)
	if !m.DMA.Active() {
		t.Error("expected the transfer to still be stalling the CPU")
	}
	m.DMA.Tick(160)
	m.DMA.Tick(160)
	m.DMA.Tick(160)
	if m.DMA.Active() {
		t.Error("expected the transfer to be complete after 640 cycles")
	}

	if m.Read(types.DMA) != 0xC0 {
		t.Errorf("expected the DMA register to read back, got %#02x", m.Read(types.DMA))
	}
}

func TestDMA_FromVRAM(t *testing.T) {
	m, _ := newTestMMU()

	for i := uint16(0); i < 0xA0; i++ {
		m.Write(0x8000+i, uint8(i))
	}
	m.Write(types.DMA, 0x80)

	for i := uint16(0); i < 0xA0; i++ {
		if got := m.Read(0xFE00 + i); got != uint8(i) {
			t.Fatalf("expected %#02x at OAM+%d, got %#02x", uint8(i), i, got)
		}
	}
}

func TestDMA_ReadsThroughBus(t *testing.T) {
	m, _ := newTestMMU()
	video := newRecordingBus()
	m.AttachVideo(video)

	m.Write(0xC000, 0x42)
	m.Write(types.DMA, 0xC0)

	// with a video unit attached the destination writes land in it
	if video.mem[0xFE00] != 0x42 {
		t.Errorf("expected the copy to go through the bus, got %#02x", video.mem[0xFE00])
	}
}
