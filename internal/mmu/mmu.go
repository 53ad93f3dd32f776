// Package mmu provides the memory bus of the Game Boy. The MMU routes
// every read and write in the 64kB address space to the component that
// owns the address: the cartridge controller, working RAM and its echo,
// OAM, the I/O register window, HRAM, or one of the external
// video/audio collaborators reached through the IOBus interface.
package mmu

import (
	"github.com/thelolagemann/dmg/internal/cartridge"
	"github.com/thelolagemann/dmg/internal/interrupts"
	"github.com/thelolagemann/dmg/internal/joypad"
	"github.com/thelolagemann/dmg/internal/serial"
	"github.com/thelolagemann/dmg/internal/timer"
	"github.com/thelolagemann/dmg/internal/types"
	"github.com/thelolagemann/dmg/pkg/log"
)

// IOBus is the interface through which the MMU reaches the external
// video and audio collaborators.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory bus. It holds an Address entry per location, so
// that region routing is decided once at wiring time; reads and writes
// just follow the table.
type MMU struct {
	// 64kB address-decode table
	raw [65536]*types.Address

	// 0x0000 - 0x7FFF - ROM and bank control
	// 0xA000 - 0xBFFF - external RAM
	Cart cartridge.Cartridge

	// 0x8000 - 0x9FFF - video RAM (raw storage until a video
	// collaborator is attached)
	vRAM [0x2000]uint8

	// 0xC000 - 0xDFFF - work RAM, echoed at 0xE000 - 0xFDFF
	wRAM *WRAM

	// 0xFE00 - 0xFE9F - sprite attribute table
	oam [0xA0]uint8

	// 0xFF00 - 0xFF7F - I/O register window raw storage
	io [0x80]uint8

	// 0xFF80 - 0xFFFE - high RAM
	hRAM [0x7F]uint8

	// DMA is the OAM DMA controller, triggered by writes to the
	// DMA register.
	DMA *DMA

	// Video receives LCD-control writes and owns VRAM/OAM once
	// attached.
	Video IOBus
	// Sound receives writes within the audio-register and wave-RAM
	// windows.
	Sound IOBus

	irq    *interrupts.Service
	timer  *timer.Controller
	serial *serial.Controller
	pad    *joypad.State

	// onDIVWrite is invoked on every write to the DIV address, in
	// addition to the divider reset. The CPU uses it to cancel a
	// pending STOP erratum.
	onDIVWrite func()

	Log log.Logger
}

// NewMMU returns a new MMU wired to the given components.
func NewMMU(cart cartridge.Cartridge, pad *joypad.State, serialCtl *serial.Controller, timerCtl *timer.Controller, irq *interrupts.Service, logger log.Logger) *MMU {
	m := &MMU{
		Cart:   cart,
		wRAM:   NewWRAM(),
		irq:    irq,
		timer:  timerCtl,
		serial: serialCtl,
		pad:    pad,
		Log:    logger,
	}
	m.DMA = NewDMA(m)
	m.init()

	return m
}

func (m *MMU) init() {
	addresses := []types.Address{
		{Read: m.Cart.Read, Write: m.Cart.Write},
		{Read: m.readVRAM, Write: m.writeVRAM},
		{Read: m.wRAM.Read, Write: m.wRAM.Write},
		{Read: m.readOAM, Write: m.writeOAM},
		{Read: func(uint16) uint8 { return 0xFF }, Write: func(uint16, uint8) {}},
		{Read: m.readIO, Write: m.writeIO},
		{Read: readOffset(m.readHRAM, 0xFF80), Write: writeOffset(m.writeHRAM, 0xFF80)},
	}

	// 0x0000 - 0x7FFF - ROM, bank control (32kB)
	for i := 0x0000; i < 0x8000; i++ {
		m.raw[i] = &addresses[0]
	}

	// 0x8000 - 0x9FFF - VRAM (8kB)
	for i := 0x8000; i < 0xA000; i++ {
		m.raw[i] = &addresses[1]
	}

	// 0xA000 - 0xBFFF - external RAM (8kB)
	for i := 0xA000; i < 0xC000; i++ {
		m.raw[i] = &addresses[0]
	}

	// 0xC000 - 0xFDFF - work RAM and its echo (8kB + 7.5kB)
	for i := 0xC000; i < 0xFE00; i++ {
		m.raw[i] = &addresses[2]
	}

	// 0xFE00 - 0xFE9F - sprite attribute table (OAM) (160B)
	for i := 0xFE00; i < 0xFEA0; i++ {
		m.raw[i] = &addresses[3]
	}

	// 0xFEA0 - 0xFEFF - unusable memory (96B)
	for i := 0xFEA0; i < 0xFF00; i++ {
		m.raw[i] = &addresses[4]
	}

	// 0xFF00 - 0xFF7F - I/O (128B)
	for i := 0xFF00; i < 0xFF80; i++ {
		m.raw[i] = &addresses[5]
	}

	// 0xFF80 - 0xFFFE - high RAM (127B)
	for i := 0xFF80; i < 0xFFFF; i++ {
		m.raw[i] = &addresses[6]
	}

	// 0xFFFF - interrupt enable register
	m.raw[0xFFFF] = &types.Address{
		Read:  func(uint16) uint8 { return m.irq.ReadEnable() },
		Write: func(_ uint16, v uint8) { m.irq.WriteEnable(v) },
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

// AttachVideo attaches the video collaborator to the MMU, handing it
// ownership of VRAM and OAM.
func (m *MMU) AttachVideo(video IOBus) {
	m.Video = video

	address := &types.Address{Read: video.Read, Write: video.Write}
	for i := 0x8000; i < 0xA000; i++ {
		m.raw[i] = address
	}
	for i := 0xFE00; i < 0xFEA0; i++ {
		m.raw[i] = address
	}
}

// AttachAudio attaches the audio collaborator to the MMU. Writes in the
// audio-register and wave-RAM windows are forwarded to it in addition
// to raw storage.
func (m *MMU) AttachAudio(sound IOBus) {
	m.Sound = sound
}

// OnDIVWrite registers a hook invoked by every write to the DIV
// address.
func (m *MMU) OnDIVWrite(fn func()) {
	m.onDIVWrite = fn
}

// Read reads the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the given value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}

func (m *MMU) readVRAM(address uint16) uint8 {
	return m.vRAM[address&0x1FFF]
}

func (m *MMU) writeVRAM(address uint16, value uint8) {
	m.vRAM[address&0x1FFF] = value
}

func (m *MMU) readOAM(address uint16) uint8 {
	return m.oam[address-0xFE00]
}

func (m *MMU) writeOAM(address uint16, value uint8) {
	m.oam[address-0xFE00] = value
}

func (m *MMU) readHRAM(address uint16) uint8 {
	return m.hRAM[address]
}

func (m *MMU) writeHRAM(address uint16, value uint8) {
	m.hRAM[address] = value
}

func (m *MMU) readIO(address uint16) uint8 {
	switch address {
	case types.P1:
		return m.pad.Read()
	case types.SB:
		return m.serial.ReadData()
	case types.SC:
		return m.serial.ReadControl()
	case types.DIV, types.TIMA, types.TMA, types.TAC:
		return m.timer.Read(uint8(address - types.DIV))
	case types.IF:
		return m.irq.ReadFlag()
	}
	return m.io[address&0x7F]
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch {
	case address == types.P1:
		m.pad.Write(value)
		return
	case address == types.SB:
		m.serial.WriteData(value)
		return
	case address == types.SC:
		m.serial.WriteControl(value)
		return
	case address >= types.DIV && address <= types.TAC:
		if address == types.DIV && m.onDIVWrite != nil {
			m.onDIVWrite()
		}
		m.timer.Write(uint8(address-types.DIV), value)
		return
	case address == types.IF:
		m.irq.WriteFlag(value)
		return
	case address == types.DMA:
		m.io[address&0x7F] = value
		m.DMA.Start(value)
		return
	case address == types.LCDC:
		m.io[address&0x7F] = value
		if m.Video != nil {
			m.Video.Write(address, value)
		}
		return
	case address >= types.NR10 && address <= types.NR52,
		address >= types.WaveRAMStart && address <= types.WaveRAMEnd:
		m.io[address&0x7F] = value
		if m.Sound != nil {
			m.Sound.Write(address, value)
		}
		return
	}
	m.io[address&0x7F] = value
}
