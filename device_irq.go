// device_irq.go - Interrupt controller stub
//
// License: GPLv3 or later

package r3000a

// IRQController stores the pending-interrupt status and mask registers.
// No interrupt is ever delivered to the CPU in this contract —
// InterruptPending is provided for a future dispatch path to consult.
type IRQController struct {
	status uint32
	mask   uint32
}

func NewIRQController() *IRQController {
	return &IRQController{}
}

func (c *IRQController) Status() uint32 { return c.status }
func (c *IRQController) Mask() uint32   { return c.mask }

// Acknowledge implements the hardware's "write 0 to clear" semantics: bits
// written as 0 clear the corresponding status bit, bits written as 1 leave
// it unchanged.
func (c *IRQController) Acknowledge(value uint32) {
	c.status &= value
}

func (c *IRQController) SetMask(value uint32) {
	c.mask = value
}

// InterruptPending reports whether any unmasked interrupt is currently
// asserted. Not consulted by the CPU step loop: live IRQ delivery would
// need a timer/GPU/DMA model that can actually assert these bits.
func (c *IRQController) InterruptPending() bool {
	return c.status&c.mask != 0
}
