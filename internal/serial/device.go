package serial

// Device is a device that can be attached to the Controller, such as
// another Game Boy or a printer. Transfer exchanges one byte: it
// receives the byte shifted out of SB and returns the byte shifted in.
type Device interface {
	Transfer(out uint8) uint8
}

// nullDevice is an implementation of Device that acts as if no device
// is attached: a disconnected link reads all bits high.
type nullDevice struct{}

// Transfer always returns 0xFF.
func (n nullDevice) Transfer(uint8) uint8 { return 0xFF }
