package cartridge

// MemoryBankedCartridge1 represents an MBC1 cartridge. This cartridge
// type supports up to 2MB of ROM in switchable 16kB banks and up to
// 32kB of external RAM in switchable 8kB banks.
type MemoryBankedCartridge1 struct {
	rom     []byte
	romBank uint32

	ram        []byte
	ramBank    uint32
	ramEnabled bool

	romBanking bool

	header Header
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1.
func NewMemoryBankedCartridge1(rom []byte, header Header) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		rom:        rom,
		romBank:    1,
		ram:        make([]byte, header.RAMSize),
		romBanking: true,
		header:     header,
	}
}

func (m *MemoryBankedCartridge1) Header() Header {
	return m.header
}

func (m *MemoryBankedCartridge1) Title() string {
	return m.header.Title
}

// Read returns the value from the cartridge's ROM or RAM, depending on
// the bank selected.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address] // bank 0 is always fixed
	case address < 0x8000:
		return m.rom[uint32(address-0x4000)+m.romBank*0x4000] // switchable bank
	default:
		if m.ramEnabled && len(m.ram) > 0 {
			return m.ram[(uint32(address-0xA000)+m.ramBank*0x2000)%uint32(len(m.ram))]
		}
		return 0xFF // disabled RAM reads as open bus
	}
}

// Write performs a bank-control write or a RAM write, depending on the
// address.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		// RAM enable
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// ROM bank number (lower 5 bits)
		m.romBank = (m.romBank & 0xE0) | uint32(value&0x1F)
		m.updateRomBank()
	case address < 0x6000:
		if m.romBanking {
			// upper 2 bits of the ROM bank number
			m.romBank = (m.romBank & 0x1F) | uint32(value&0x03)<<5
			m.updateRomBank()
		} else {
			m.ramBank = uint32(value) & 0x03
			if len(m.ram) <= 0x2000 {
				m.ramBank = 0
			}
		}
	case address < 0x8000:
		// ROM/RAM mode select
		m.romBanking = value&0x1 == 0x00
		if m.romBanking {
			m.ramBank = 0
		}
	default:
		// write to the selected RAM bank
		if m.ramEnabled && len(m.ram) > 0 {
			m.ram[(uint32(address-0xA000)+m.ramBank*0x2000)%uint32(len(m.ram))] = value
		}
	}
}

// updateRomBank corrects bank numbers that can never be selected: banks
// 0x00, 0x20, 0x40 and 0x60 map to the following bank, and banks past
// the end of the ROM wrap.
func (m *MemoryBankedCartridge1) updateRomBank() {
	switch m.romBank {
	case 0x00, 0x20, 0x40, 0x60:
		m.romBank++
	}
	if m.romBank*0x4000 >= uint32(len(m.rom)) {
		m.romBank %= uint32(len(m.rom) / 0x4000)
		if m.romBank == 0 {
			m.romBank = 1
		}
	}
}

// Save returns the RAM of the cartridge.
func (m *MemoryBankedCartridge1) Save() []byte {
	return m.ram
}

// Load loads the RAM of the cartridge.
func (m *MemoryBankedCartridge1) Load(data []byte) {
	copy(m.ram, data)
}
