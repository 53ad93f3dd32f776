// Package cartridge provides the cartridge controller of the Game Boy.
// The cartridge owns the game ROM and any external RAM; the memory bus
// routes all accesses below 0x8000 and in the external RAM window to
// it. The concrete controller is selected once, at load time, from the
// cartridge-type byte of the ROM header.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Cartridge represents a game cartridge. Read covers both the ROM
// windows and external RAM; Write covers bank-control writes into the
// ROM window as well as external RAM writes.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() Header
	Title() string
}

// Saver is implemented by cartridges with battery-backed RAM.
type Saver interface {
	// Save returns the battery-backed RAM of the cartridge.
	Save() []byte
	// Load loads the battery-backed RAM of the cartridge.
	Load(data []byte)
}

type baseCartridge struct {
	rom    []byte
	header Header
}

func (c *baseCartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title as parsed from the header.
func (c *baseCartridge) Title() string {
	return c.header.Title
}

func (c *baseCartridge) Read(address uint16) uint8 {
	if int(address) < len(c.rom) {
		return c.rom[address]
	}
	return 0xFF
}

// Write does nothing; a ROM-only cartridge has no bank control and no
// external RAM.
func (c *baseCartridge) Write(address uint16, value uint8) {}

// NewCartridge parses the ROM header and returns the controller for
// the cartridge type it names. ROMs too small to contain a header are
// rejected.
func NewCartridge(rom []byte) (Cartridge, error) {
	if len(rom) < headerEnd {
		return nil, fmt.Errorf("cartridge: ROM too small to contain a header: %d bytes", len(rom))
	}

	// parse the cartridge header (0x0100 - 0x014F)
	header := parseHeader(rom[headerStart:headerEnd])
	header.Fingerprint = xxhash.Sum64(rom)

	switch header.CartridgeType {
	case ROM:
		return &baseCartridge{
			rom:    rom,
			header: header,
		}, nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return NewMemoryBankedCartridge1(rom, header), nil
	}

	return nil, fmt.Errorf("cartridge: unhandled cartridge type %#02x", uint8(header.CartridgeType))
}

// NewEmptyCartridge returns an empty cartridge; every read yields 0xFF,
// as an open bus would.
func NewEmptyCartridge() Cartridge {
	return &baseCartridge{}
}
