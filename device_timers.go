// device_timers.go - Timer register stub
//
// License: GPLv3 or later

package r3000a

// Timers is a pure logging stub: boot code pokes the three timer blocks'
// registers but this core does not model counting/IRQ generation.
type Timers struct{}

func NewTimers() *Timers {
	return &Timers{}
}

func (t *Timers) Write32(pc, addr, val uint32) {
	logStub(pc, "Timers write32 addr=%08x value=%08x", addr, val)
}

func (t *Timers) Write16(pc, addr uint32, val uint16) {
	logStub(pc, "Timers write16 addr=%08x value=%04x", addr, val)
}
