package types

// Address represents a location in the Game Boy's 64kB address space,
// which can be read from or written to. The MMU keeps one Address per
// location, so that region routing is decided once, at wiring time,
// rather than on every access.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. The P1
	// hardware register is used to select the input keys to
	// be read by the CPU, and to read the state of the joypad.
	// Only bits 4 and 5 (the selection bits) are writable.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte to transfer over the
	// serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. The SC
	// hardware register is used to control the serial port;
	// writing 0x81 requests a transfer.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. DIV exposes
	// the upper byte of the internal 16-bit divider. Writing any
	// value resets the divider to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. TIMA is
	// incremented at the rate selected by TAC. When TIMA overflows,
	// it is reloaded from TMA and a timer interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. TMA is
	// loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. Bit 2
	// enables TIMA, bits 0-1 select its rate.
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts. Only the
	// lower 5 bits are used.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// NR10 is the first register of the audio window. Writes to
	// 0xFF10 - 0xFF26 are stored and forwarded to the attached
	// audio collaborator.
	NR10 HardwareAddress = 0xFF10
	// NR52 is the last register of the audio window.
	NR52 HardwareAddress = 0xFF26
	// WaveRAMStart is the first byte of the wave pattern RAM,
	// forwarded to the audio collaborator like the audio window.
	WaveRAMStart HardwareAddress = 0xFF30
	// WaveRAMEnd is the last byte of the wave pattern RAM.
	WaveRAMEnd HardwareAddress = 0xFF3F
	// LCDC is the address of the LCDC hardware register, used to
	// control the LCD. Writes are stored and forwarded to the
	// attached video collaborator.
	LCDC HardwareAddress = 0xFF40
	// DMA is the address of the DMA hardware register. Writing a
	// value transfers 160 bytes of data from (value << 8) to OAM,
	// stalling the CPU for the duration of the transfer.
	DMA HardwareAddress = 0xFF46
	// IE is the address of the IE hardware register. The IE
	// hardware register is used to enable interrupts, with the
	// same bit layout as IF.
	IE HardwareAddress = 0xFFFF
)

// Interrupt vectors, in priority order. When an interrupt is serviced
// the CPU pushes PC and jumps to the vector of the highest-priority
// requested and enabled source.
const (
	VectorVBlank uint16 = 0x0040
	VectorLCD    uint16 = 0x0048
	VectorTimer  uint16 = 0x0050
	VectorSerial uint16 = 0x0058
	VectorJoypad uint16 = 0x0060
)
