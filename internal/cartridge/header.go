package cartridge

import "fmt"

const (
	headerStart = 0x0100
	headerEnd   = 0x0150
)

// Type is the cartridge-type byte at 0x0147 of the header; it names
// the memory bank controller the cartridge carries.
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
	MBC2        Type = 0x05
	MBC2BATT    Type = 0x06
	MBC3        Type = 0x11
	MBC3RAM     Type = 0x12
	MBC3RAMBATT Type = 0x13
	MBC5        Type = 0x19
	MBC5RAM     Type = 0x1A
	MBC5RAMBATT Type = 0x1B
)

func (t Type) String() string {
	switch t {
	case ROM:
		return "ROM"
	case MBC1:
		return "MBC1"
	case MBC1RAM:
		return "MBC1+RAM"
	case MBC1RAMBATT:
		return "MBC1+RAM+BATTERY"
	case MBC2:
		return "MBC2"
	case MBC2BATT:
		return "MBC2+BATTERY"
	case MBC3:
		return "MBC3"
	case MBC3RAM:
		return "MBC3+RAM"
	case MBC3RAMBATT:
		return "MBC3+RAM+BATTERY"
	case MBC5:
		return "MBC5"
	case MBC5RAM:
		return "MBC5+RAM"
	case MBC5RAMBATT:
		return "MBC5+RAM+BATTERY"
	}
	return fmt.Sprintf("UNKNOWN (%#02x)", uint8(t))
}

// ramSizes maps the RAM-size byte at 0x0149 to the size of the
// external RAM in bytes.
var ramSizes = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header represents the header of a cartridge, located in the address
// space 0x0100-0x014F. It describes the cartridge hardware and carries
// identification of the game.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0147 - the memory bank controller the cartridge carries
	CartridgeType Type

	// 0x0148 - size of the ROM in bytes
	ROMSize uint

	// 0x0149 - size of the external RAM in bytes
	RAMSize uint

	// 0x014D - checksum over the header bytes, verified by the boot ROM
	HeaderChecksum uint8

	// Fingerprint identifies the whole ROM image; it is used to name
	// save files and in log output. It is not part of the on-cartridge
	// header.
	Fingerprint uint64
}

// String implements fmt.Stringer.
func (h Header) String() string {
	return fmt.Sprintf("%s (%s, %dkB ROM, %dkB RAM)", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}

// parseHeader parses the 0x50 header bytes starting at 0x0100.
func parseHeader(header []byte) Header {
	h := Header{}

	// parse the title, trimming trailing padding
	title := header[0x34:0x44]
	for len(title) > 0 && (title[len(title)-1] == 0 || title[len(title)-1] == ' ') {
		title = title[:len(title)-1]
	}
	h.Title = string(title)

	h.CartridgeType = Type(header[0x47])
	h.ROMSize = 32 * 1024 << header[0x48]
	h.RAMSize = ramSizes[header[0x49]]
	h.HeaderChecksum = header[0x4D]

	return h
}
