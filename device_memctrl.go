// device_memctrl.go - Memory/cache control register stubs
//
// License: GPLv3 or later

package r3000a

// MemCtrl holds the nine 32-bit memory-control registers, the RAM-size
// register, and the cache-control register. Boot code configures bus
// timings and cache behavior through these; nothing downstream consults
// them except the CPU's own cache-isolation bit, which lives in COP0.
type MemCtrl struct {
	regs       [9]uint32
	ramSizeReg uint32
	cacheCtrl  uint32
}

func NewMemCtrl() *MemCtrl {
	return &MemCtrl{}
}

func (m *MemCtrl) Read32(addr uint32) uint32 {
	switch {
	case addr >= memCtrlStart && addr <= memCtrlEnd:
		return m.regs[(addr-memCtrlStart)>>2]
	case addr == ramSizeRegAddr:
		return m.ramSizeReg
	case addr == cacheControlAddr:
		return m.cacheCtrl
	}
	return 0
}

func (m *MemCtrl) Write32(addr, val uint32) {
	switch {
	case addr >= memCtrlStart && addr <= memCtrlEnd:
		m.regs[(addr-memCtrlStart)>>2] = val
	case addr == ramSizeRegAddr:
		m.ramSizeReg = val
	case addr == cacheControlAddr:
		m.cacheCtrl = val
	}
}
