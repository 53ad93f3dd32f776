package mmu

// dmaDuration is how long the CPU is stalled by an OAM DMA transfer:
// 160 M-cycles, one per copied byte.
const dmaDuration = 640

// DMA is the OAM DMA controller. Writing a value to the DMA register
// copies the 160-byte page (value << 8) into OAM through the normal
// bus read path, so the source is subject to cartridge bank routing
// like any CPU read. The CPU withholds instruction dispatch until the
// transfer duration has elapsed.
type DMA struct {
	bus *MMU

	// remaining T-cycles of the active transfer; no instruction is
	// fetched while it is non-zero.
	remaining uint16
}

// NewDMA returns a new DMA controller for the given bus.
func NewDMA(bus *MMU) *DMA {
	return &DMA{bus: bus}
}

// Start copies the source page into OAM and begins the CPU stall.
func (d *DMA) Start(value uint8) {
	src := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		d.bus.Write(0xFE00+i, d.bus.Read(src+i))
	}
	d.remaining = dmaDuration
}

// Active returns true while a transfer is stalling the CPU.
func (d *DMA) Active() bool {
	return d.remaining > 0
}

// Tick advances the transfer by the given number of T-cycles.
func (d *DMA) Tick(cycles uint8) {
	if d.remaining > uint16(cycles) {
		d.remaining -= uint16(cycles)
	} else {
		d.remaining = 0
	}
}
