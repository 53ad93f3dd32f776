package utils

// SetBit sets the given bit of value.
func SetBit(value uint8, bit uint8) uint8 {
	return value | (1 << bit)
}

// ClearBit clears the given bit of value.
func ClearBit(value uint8, bit uint8) uint8 {
	return value &^ (1 << bit)
}

// TestBit returns true if the bit is set, false otherwise.
func TestBit(value uint8, bit uint8) bool {
	return value&(1<<bit) != 0
}
