// Package serial provides the serial port of the Game Boy. Transfers
// complete instantly: the byte in SB is exchanged with the attached
// device the moment a transfer is requested, the busy flag is cleared
// and a serial interrupt is raised. Test ROMs report their results
// over this port, so every transferred byte is also captured into a
// line buffer.
package serial

import (
	"io"

	"github.com/thelolagemann/dmg/internal/interrupts"
	"github.com/thelolagemann/dmg/internal/types"
)

// transferRequested is the SC pattern that starts a transfer: bit 7
// requests the transfer, bit 0 selects the internal clock.
const transferRequested = types.Bit7 | types.Bit0

// Controller is the serial controller. It owns the SB and SC registers
// and the attached Device.
type Controller struct {
	data    uint8 // types.SB
	control uint8 // types.SC

	AttachedDevice Device

	irq *interrupts.Service

	// debug receives every transferred byte, when attached.
	debug io.Writer
}

// NewController creates a new Controller. By default the Controller is
// attached to a nullDevice, which acts as if no link cable is plugged
// in. Use Attach to attach a real device.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		AttachedDevice: nullDevice{},
		irq:            irq,
	}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// AttachDebugger attaches a writer that receives every byte sent over
// the serial port. Conformance ROMs print their results this way.
func (c *Controller) AttachDebugger(w io.Writer) {
	c.debug = w
}

// ReadData returns the SB register.
func (c *Controller) ReadData() uint8 {
	return c.data
}

// WriteData writes the SB register.
func (c *Controller) WriteData(v uint8) {
	c.data = v
}

// ReadControl returns the SC register; the unused bits 1-6 read as 1.
func (c *Controller) ReadControl() uint8 {
	return c.control | 0x7E
}

// WriteControl writes the SC register. A write matching the transfer
// pattern performs the whole exchange at once: the outgoing byte is
// handed to the attached device, its reply replaces SB, the busy flag
// is cleared and a serial interrupt is requested.
func (c *Controller) WriteControl(v uint8) {
	c.control = v

	if v&transferRequested == transferRequested {
		out := c.data
		c.data = c.AttachedDevice.Transfer(out)

		if c.debug != nil {
			c.debug.Write([]byte{out})
		}

		c.control &^= types.Bit7
		c.irq.Request(interrupts.SerialFlag)
	}
}
