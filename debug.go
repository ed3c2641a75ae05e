// debug.go - Narrow read/control surface for external debugger front-ends
//
// License: GPLv3 or later

package r3000a

// CyclesPerFrame bounds one RunFrame call: 33.8688 MHz / 60 Hz, counted at
// one cycle per instruction. Real R3000A timing varies per instruction;
// nothing downstream may rely on this flat rate.
const CyclesPerFrame = 564480

// RegisterInfo describes a single CPU register for display in a debugger:
// name, value, and a display group so a front-end can cluster GPRs
// separately from HI/LO and COP0.
type RegisterInfo struct {
	Name  string
	Value uint32
	Group string
}

// DisassembledLine is one decoded-and-rendered instruction, addressed for
// display in an on-screen disassembly view.
type DisassembledLine struct {
	Address  uint32
	Word     uint32
	Mnemonic string
}

// Emulator is the whole-machine handle external collaborators (a graphical
// debugger, the interactive console, a standalone disassembler) consume.
// It owns the CPU and bus exclusively; nothing here is safe to call
// concurrently with a running Step/RunFrame from another goroutine.
type Emulator struct {
	CPU         *CPU
	Bus         *Bus
	breakpoints map[uint32]bool
}

// NewEmulator wires a fresh CPU and bus around the supplied BIOS image and
// resets the pipeline to the boot vector.
func NewEmulator(bios *BIOS) *Emulator {
	bus := NewBus(bios)
	return &Emulator{
		CPU:         NewCPU(bus),
		Bus:         bus,
		breakpoints: make(map[uint32]bool),
	}
}

// Step executes exactly one instruction.
func (e *Emulator) Step() { e.CPU.Step() }

// RunFrame executes up to CyclesPerFrame steps, stopping early the instant
// PC (the next instruction to execute) matches a configured breakpoint. It returns the address that
// stopped it and whether that stop was due to a breakpoint (as opposed to
// simply exhausting the frame budget).
func (e *Emulator) RunFrame() (stoppedAt uint32, hitBreakpoint bool) {
	for i := 0; i < CyclesPerFrame; i++ {
		if e.breakpoints[e.CPU.PC()] {
			return e.CPU.PC(), true
		}
		e.CPU.Step()
	}
	return e.CPU.PC(), false
}

// Reset restarts the pipeline at the BIOS entry point. Breakpoints survive a
// reset; they're a debugger-session concept, not CPU state.
func (e *Emulator) Reset() { e.CPU.Reset() }

// Read8/Read16/Read32 are bus reads for memory inspection. Every device this
// core models is read-idempotent: inspecting memory never trips a side
// effect the CPU wouldn't also trip on an ordinary load, so these are safe
// to call from a paused debugger at any time.
func (e *Emulator) Read8(addr uint32) byte    { return e.Bus.Read8(e.CPU.CurrentPC(), addr) }
func (e *Emulator) Read16(addr uint32) uint16 { return e.Bus.Read16(e.CPU.CurrentPC(), addr) }
func (e *Emulator) Read32(addr uint32) uint32 { return e.Bus.Read32(e.CPU.CurrentPC(), addr) }

// Registers returns a read-only view of the 32 general-purpose registers.
func (e *Emulator) Registers() [32]uint32 { return e.CPU.Registers() }

// RegisterInfos renders the full register file — GPRs, PCs, HI/LO, and
// COP0 — as display-ready RegisterInfo rows.
func (e *Emulator) RegisterInfos() []RegisterInfo {
	regs := e.CPU.Registers()
	infos := make([]RegisterInfo, 0, 32+7)
	for i, v := range regs {
		infos = append(infos, RegisterInfo{Name: registerName(uint8(i)), Value: v, Group: "general"})
	}
	hi, lo := e.CPU.HiLo()
	infos = append(infos,
		RegisterInfo{Name: "pc", Value: e.CPU.PC(), Group: "pc"},
		RegisterInfo{Name: "current_pc", Value: e.CPU.CurrentPC(), Group: "pc"},
		RegisterInfo{Name: "hi", Value: hi, Group: "muldiv"},
		RegisterInfo{Name: "lo", Value: lo, Group: "muldiv"},
		RegisterInfo{Name: "status", Value: e.CPU.COP0.Status(), Group: "cop0"},
		RegisterInfo{Name: "cause", Value: e.CPU.COP0.Cause(), Group: "cop0"},
		RegisterInfo{Name: "epc", Value: e.CPU.COP0.EPC(), Group: "cop0"},
	)
	return infos
}

// PC returns the address of the next instruction to fetch.
func (e *Emulator) PC() uint32 { return e.CPU.PC() }

// HiLo returns the multiply/divide result registers.
func (e *Emulator) HiLo() (hi, lo uint32) { return e.CPU.HiLo() }

// COP0Snapshot returns status/cause/epc for display.
func (e *Emulator) COP0Snapshot() (status, cause, epc uint32) {
	return e.CPU.COP0.Status(), e.CPU.COP0.Cause(), e.CPU.COP0.EPC()
}

// AddBreakpoint arms a breakpoint at addr; RunFrame stops just before
// executing the instruction there.
func (e *Emulator) AddBreakpoint(addr uint32) { e.breakpoints[addr] = true }

// RemoveBreakpoint disarms a previously-set breakpoint. A no-op if addr
// wasn't armed.
func (e *Emulator) RemoveBreakpoint(addr uint32) { delete(e.breakpoints, addr) }

// Breakpoints returns every currently armed breakpoint address, in no
// particular order.
func (e *Emulator) Breakpoints() []uint32 {
	addrs := make([]uint32, 0, len(e.breakpoints))
	for addr := range e.breakpoints {
		addrs = append(addrs, addr)
	}
	return addrs
}

// DisassembleAt decodes and renders the instruction word at addr without
// advancing the pipeline — a read, not a fetch.
func (e *Emulator) DisassembleAt(addr uint32) DisassembledLine {
	word := e.Bus.Read32(e.CPU.CurrentPC(), addr)
	return DisassembledLine{Address: addr, Word: word, Mnemonic: Disassemble(Decode(word))}
}

// DisassembleRange renders count consecutive instructions starting at addr,
// the on-screen disassembly view's data source.
func (e *Emulator) DisassembleRange(addr uint32, count int) []DisassembledLine {
	lines := make([]DisassembledLine, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, e.DisassembleAt(addr+uint32(i)*4))
	}
	return lines
}
