// bios.go - Read-only BIOS ROM store
//
// License: GPLv3 or later

package r3000a

import "fmt"

// BIOS holds the 512 KiB boot ROM image. Construction fails if the supplied
// image isn't exactly the expected size.
type BIOS struct {
	data [biosSize]byte
}

// NewBIOS validates and wraps a BIOS image.
func NewBIOS(image []byte) (*BIOS, error) {
	if len(image) != biosSize {
		return nil, fmt.Errorf("bios: expected %d bytes, got %d", biosSize, len(image))
	}
	b := &BIOS{}
	copy(b.data[:], image)
	return b, nil
}

func (b *BIOS) Read8(addr uint32) byte {
	return b.data[addr&(biosSize-1)]
}

func (b *BIOS) Read16(addr uint32) uint16 {
	off := addr & (biosSize - 1)
	return uint16(b.data[off]) | uint16(b.data[off+1])<<8
}

func (b *BIOS) Read32(addr uint32) uint32 {
	off := addr & (biosSize - 1)
	return uint32(b.data[off]) | uint32(b.data[off+1])<<8 |
		uint32(b.data[off+2])<<16 | uint32(b.data[off+3])<<24
}
