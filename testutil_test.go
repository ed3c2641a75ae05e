// testutil_test.go - shared test rig for CPU/bus scenarios
//
// License: GPLv3 or later

package r3000a

// testRig wires a fresh CPU over a real RAM/BIOS-backed bus for instruction
// and exception tests. Test programs are loaded into RAM (address 0 upward)
// rather than the BIOS store, since BIOS is read-only from the bus's point
// of view; cpu.SetPC redirects the pipeline there instead of the real
// 0xBFC00000 reset vector.
type testRig struct {
	bus *Bus
	cpu *CPU
}

func newTestRig() *testRig {
	bios, err := NewBIOS(make([]byte, biosSize))
	if err != nil {
		panic(err)
	}
	bus := NewBus(bios)
	cpu := NewCPU(bus)
	return &testRig{bus: bus, cpu: cpu}
}

// load writes a sequence of little-endian instruction words into RAM
// starting at address 0 and points the pipeline at the first one.
func (r *testRig) load(words ...uint32) {
	for i, w := range words {
		r.bus.Write32(0, uint32(i*4), w)
	}
	r.cpu.SetPC(0)
}

func (r *testRig) writeWord(addr, word uint32) { r.bus.Write32(0, addr, word) }
func (r *testRig) readWord(addr uint32) uint32  { return r.bus.Read32(0, addr) }
