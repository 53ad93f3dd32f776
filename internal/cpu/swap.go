package cpu

import "fmt"

// swap exchanges the upper and lower nibbles of the given value.
//
//	SWAP n
//	n = 8-bit value
func (c *CPU) swap(value uint8) uint8 {
	swapped := value<<4 | value>>4
	c.setFlags(swapped == 0, false, false, false)
	return swapped
}

func init() {
	for src := uint8(0); src < 8; src++ {
		src := src
		if src == 6 {
			DefineInstructionCB(0x36, "SWAP (HL)", func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.swap(c.readByte(c.HL.Uint16())))
			}, Cycles(4))
			continue
		}
		DefineInstructionCB(0x30+src, fmt.Sprintf("SWAP %s", registerNameMap[src]), func(c *CPU) {
			reg := c.registerIndex(src)
			*reg = c.swap(*reg)
		})
	}
}
