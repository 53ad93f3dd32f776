package types

// Bit is a single bit of a byte, used for flag and register masks.
type Bit = uint8

const (
	Bit0 Bit = 1 << iota
	Bit1
	Bit2
	Bit3
	Bit4
	Bit5
	Bit6
	Bit7
)
