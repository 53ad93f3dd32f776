package mmu

// WRAM is the 8kB work RAM, mapped at 0xC000 - 0xDFFF and echoed at
// 0xE000 - 0xFDFF. Both ranges resolve to the same storage, so a write
// through either is visible through the other.
type WRAM struct {
	raw [0x2000]uint8
}

// NewWRAM returns a new WRAM.
func NewWRAM() *WRAM {
	return &WRAM{}
}

// Read returns the byte at the given address; echo addresses alias
// into the work RAM by address masking.
func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw[addr&0x1FFF]
}

// Write writes the byte at the given address; echo addresses alias
// into the work RAM by address masking.
func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw[addr&0x1FFF] = v
}
