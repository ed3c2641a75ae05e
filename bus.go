// bus.go - System bus: virtual-to-physical masking and device dispatch
//
// License: GPLv3 or later

package r3000a

import "fmt"

// Bus routes every CPU load/store to the device that owns the physical
// address. It has no locking: the CPU is the bus's sole mutable owner and
// every step is synchronous.
type Bus struct {
	ram     *RAM
	bios    *BIOS
	spu     *SPU
	gpu     *GPU
	irq     *IRQController
	dma     *DMA
	timers  *Timers
	memCtrl *MemCtrl
	exp2    *Expansion2
}

// NewBus wires up RAM, BIOS, and every device stub.
func NewBus(bios *BIOS) *Bus {
	return &Bus{
		ram:     NewRAM(),
		bios:    bios,
		spu:     NewSPU(),
		gpu:     NewGPU(),
		irq:     NewIRQController(),
		dma:     NewDMA(),
		timers:  NewTimers(),
		memCtrl: NewMemCtrl(),
		exp2:    NewExpansion2(),
	}
}

func busFatal(pc uint32, op string, addr uint32) {
	panic(fmt.Sprintf("unimplemented bus addressing at pc %08x: %s %08x", pc, op, addr))
}

func (b *Bus) Read8(pc, addr uint32) byte {
	phys := maskRegion(addr)
	switch {
	case phys <= ramEnd:
		return b.ram.Read8(phys)
	case phys >= biosStart && phys <= biosEnd:
		return b.bios.Read8(phys)
	case phys == 0x1F000084:
		return 0
	case phys >= expansion1Start && phys <= expansion1End:
		return 0
	}
	busFatal(pc, "read8", addr)
	return 0
}

func (b *Bus) Read16(pc, addr uint32) uint16 {
	phys := maskRegion(addr)
	switch {
	case phys <= ramEnd:
		return b.ram.Read16(phys)
	case phys >= biosStart && phys <= biosEnd:
		return b.bios.Read16(phys)
	case phys >= spuStart && phys <= spuEnd:
		return b.spu.ReadHalfword(phys)
	case phys == irqStatusAddr:
		return uint16(b.irq.Status())
	case phys == irqMaskAddr:
		return uint16(b.irq.Mask())
	}
	busFatal(pc, "read16", addr)
	return 0
}

func (b *Bus) Read32(pc, addr uint32) uint32 {
	phys := maskRegion(addr)
	switch {
	case phys <= ramEnd:
		return b.ram.Read32(phys)
	case phys >= biosStart && phys <= biosEnd:
		return b.bios.Read32(phys)
	case phys == irqStatusAddr:
		return b.irq.Status()
	case phys == irqMaskAddr:
		return b.irq.Mask()
	case phys >= dmaStart && phys <= dmaEnd:
		return b.dma.Read32(phys)
	case phys >= gpuStart && phys <= gpuEnd:
		return b.gpu.Read32(phys)
	case phys >= memCtrlStart && phys <= memCtrlEnd:
		return b.memCtrl.Read32(phys)
	case phys == ramSizeRegAddr:
		return b.memCtrl.Read32(phys)
	case phys == cacheControlAddr:
		return b.memCtrl.Read32(phys)
	case phys == 0x1F000084:
		return 0
	}
	busFatal(pc, "read32", addr)
	return 0
}

func (b *Bus) Write8(pc, addr uint32, v byte) {
	phys := maskRegion(addr)
	switch {
	case phys <= ramEnd:
		b.ram.Write8(phys, v)
		return
	case phys >= spuStart && phys <= spuEnd:
		b.spu.WriteByte(phys, v)
		return
	case phys >= expansion2Start && phys <= expansion2End:
		b.exp2.WriteByte(pc, phys, v)
		return
	}
	busFatal(pc, "write8", addr)
}

func (b *Bus) Write16(pc, addr uint32, v uint16) {
	phys := maskRegion(addr)
	switch {
	case phys <= ramEnd:
		b.ram.Write16(phys, v)
		return
	case phys >= spuStart && phys <= spuEnd:
		b.spu.WriteHalfword(phys, v)
		return
	case phys >= timersStart && phys <= timersEnd:
		b.timers.Write16(pc, phys, v)
		return
	case phys == irqStatusAddr:
		b.irq.Acknowledge(uint32(v))
		return
	case phys == irqMaskAddr:
		b.irq.SetMask(uint32(v))
		return
	}
	busFatal(pc, "write16", addr)
}

func (b *Bus) Write32(pc, addr, v uint32) {
	phys := maskRegion(addr)
	switch {
	case phys <= ramEnd:
		b.ram.Write32(phys, v)
		return
	case phys >= memCtrlStart && phys <= memCtrlEnd:
		b.memCtrl.Write32(phys, v)
		return
	case phys == ramSizeRegAddr:
		b.memCtrl.Write32(phys, v)
		return
	case phys == cacheControlAddr:
		b.memCtrl.Write32(phys, v)
		return
	case phys == irqMaskAddr:
		b.irq.SetMask(v)
		return
	case phys == irqStatusAddr:
		b.irq.Acknowledge(v)
		return
	case phys >= dmaStart && phys <= dmaEnd:
		b.dma.Write32(pc, phys, v)
		return
	case phys >= gpuStart && phys <= gpuEnd:
		b.gpu.Write32(pc, phys, v)
		return
	case phys >= timersStart && phys <= timersEnd:
		b.timers.Write32(pc, phys, v)
		return
	}
	busFatal(pc, "write32", addr)
}
