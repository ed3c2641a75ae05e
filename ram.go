// ram.go - Main system RAM
//
// License: GPLv3 or later

package r3000a

// RAM is the console's 2 MiB of byte-addressable main memory. All widths
// are little-endian, matching the R3000A's native byte order.
type RAM struct {
	data [ramSize]byte
}

// NewRAM returns zero-initialized RAM.
func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read8(addr uint32) byte {
	return r.data[addr&(ramSize-1)]
}

func (r *RAM) Read16(addr uint32) uint16 {
	off := addr & (ramSize - 1)
	return uint16(r.data[off]) | uint16(r.data[off+1])<<8
}

func (r *RAM) Read32(addr uint32) uint32 {
	off := addr & (ramSize - 1)
	return uint32(r.data[off]) | uint32(r.data[off+1])<<8 |
		uint32(r.data[off+2])<<16 | uint32(r.data[off+3])<<24
}

func (r *RAM) Write8(addr uint32, v byte) {
	r.data[addr&(ramSize-1)] = v
}

func (r *RAM) Write16(addr uint32, v uint16) {
	off := addr & (ramSize - 1)
	r.data[off] = byte(v)
	r.data[off+1] = byte(v >> 8)
}

func (r *RAM) Write32(addr uint32, v uint32) {
	off := addr & (ramSize - 1)
	r.data[off] = byte(v)
	r.data[off+1] = byte(v >> 8)
	r.data[off+2] = byte(v >> 16)
	r.data[off+3] = byte(v >> 24)
}
