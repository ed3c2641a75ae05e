// ps1emu - interactive text console for the R3000A core
//
// License: GPLv3 or later

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/ps1core/r3000a"
)

func main() {
	biosPath := flag.String("bios", "", "path to a 524288-byte BIOS image")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ps1emu -bios SCPH1001.BIN\n\nDrives the R3000A core through an interactive text debugger.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *biosPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	image, err := os.ReadFile(*biosPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ps1emu: %v\n", err)
		os.Exit(1)
	}

	bios, err := r3000a.NewBIOS(image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ps1emu: %v\n", err)
		os.Exit(1)
	}

	emu := r3000a.NewEmulator(bios)

	fd := int(os.Stdin.Fd())
	oldState, rawErr := term.MakeRaw(fd)
	console := &console{emu: emu, fd: fd, raw: rawErr == nil}
	if rawErr != nil {
		fmt.Fprintf(os.Stderr, "ps1emu: raw terminal unavailable (%v); falling back to line mode\n", rawErr)
	} else {
		defer term.Restore(fd, oldState)
	}

	console.printf("ps1emu — R3000A debugger console. Type 'help' for commands.\r\n")
	console.run()
}

// console drives a line-oriented command prompt over stdin, reading one
// raw byte at a time so backspace/enter can be handled directly. All
// dispatch runs synchronously on the goroutine that steps the CPU; the
// core is single-threaded and nothing else may touch it while it runs.
type console struct {
	emu *r3000a.Emulator
	fd  int
	raw bool
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func (c *console) run() {
	for {
		c.printf("ps1> ")
		line, ok := c.readLine()
		if !ok {
			c.printf("\r\n")
			return
		}
		if !c.dispatch(strings.TrimSpace(line)) {
			return
		}
	}
}

// readLine reads a command line. In raw mode it reads byte-by-byte,
// echoing printable characters and honoring backspace/enter itself, since
// raw mode disables the terminal driver's own line editing. Outside raw
// mode (stdin isn't a TTY, or MakeRaw failed) it falls back to a plain
// buffered read.
func (c *console) readLine() (string, bool) {
	if !c.raw {
		return readLineCooked()
	}

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n == 0 || err != nil {
			return "", false
		}
		b := buf[0]
		switch {
		case b == '\r' || b == '\n':
			c.printf("\r\n")
			return string(line), true
		case b == 0x7F || b == 0x08:
			if len(line) > 0 {
				line = line[:len(line)-1]
				c.printf("\b \b")
			}
		case b == 0x03: // Ctrl-C
			return "", false
		default:
			line = append(line, b)
			os.Stdout.Write(buf)
		}
	}
}

func readLineCooked() (string, bool) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n == 0 || err != nil {
			if len(line) > 0 {
				return string(line), true
			}
			return "", false
		}
		if buf[0] == '\n' {
			return strings.TrimSuffix(string(line), "\r"), true
		}
		line = append(line, buf[0])
	}
}

// dispatch runs one command line; returning false ends the session.
func (c *console) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return false
	case "h", "help":
		c.printHelp()
	case "s", "step":
		n := 1
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		for i := 0; i < n; i++ {
			c.emu.Step()
		}
		c.printStatus()
	case "r", "run":
		addr, hit := c.emu.RunFrame()
		if hit {
			c.printf("breakpoint hit at 0x%08x\r\n", addr)
		} else {
			c.printf("frame budget exhausted at 0x%08x\r\n", addr)
		}
		c.printStatus()
	case "reset":
		c.emu.Reset()
		c.printf("reset\r\n")
		c.printStatus()
	case "b", "break":
		if len(fields) < 2 {
			c.printf("usage: break <hex addr>\r\n")
			break
		}
		addr, err := parseHex(fields[1])
		if err != nil {
			c.printf("bad address: %v\r\n", err)
			break
		}
		c.emu.AddBreakpoint(addr)
		c.printf("breakpoint set at 0x%08x\r\n", addr)
	case "d", "delete":
		if len(fields) < 2 {
			c.printf("usage: delete <hex addr>\r\n")
			break
		}
		addr, err := parseHex(fields[1])
		if err != nil {
			c.printf("bad address: %v\r\n", err)
			break
		}
		c.emu.RemoveBreakpoint(addr)
		c.printf("breakpoint cleared at 0x%08x\r\n", addr)
	case "bp", "breakpoints":
		for _, addr := range c.emu.Breakpoints() {
			c.printf("0x%08x\r\n", addr)
		}
	case "reg", "regs":
		c.printRegisters()
	case "m", "mem":
		if len(fields) < 2 {
			c.printf("usage: mem <hex addr> [count]\r\n")
			break
		}
		addr, err := parseHex(fields[1])
		if err != nil {
			c.printf("bad address: %v\r\n", err)
			break
		}
		count := 8
		if len(fields) > 2 {
			if v, err := strconv.Atoi(fields[2]); err == nil {
				count = v
			}
		}
		for i := 0; i < count; i++ {
			w := c.emu.Read32(addr + uint32(i)*4)
			c.printf("0x%08x: 0x%08x\r\n", addr+uint32(i)*4, w)
		}
	case "u", "disasm":
		if len(fields) < 2 {
			c.printf("usage: disasm <hex addr> [count]\r\n")
			break
		}
		addr, err := parseHex(fields[1])
		if err != nil {
			c.printf("bad address: %v\r\n", err)
			break
		}
		count := 8
		if len(fields) > 2 {
			if v, err := strconv.Atoi(fields[2]); err == nil {
				count = v
			}
		}
		for _, l := range c.emu.DisassembleRange(addr, count) {
			c.printf("0x%08x: 0x%08x  %s\r\n", l.Address, l.Word, l.Mnemonic)
		}
	default:
		c.printf("unknown command %q — try 'help'\r\n", fields[0])
	}
	return true
}

func (c *console) printHelp() {
	c.printf("step [n]            execute n instructions (default 1)\r\n")
	c.printf("run                 run one frame or until a breakpoint\r\n")
	c.printf("reset               reset the CPU to the BIOS entry point\r\n")
	c.printf("break <addr>        set a breakpoint\r\n")
	c.printf("delete <addr>       clear a breakpoint\r\n")
	c.printf("breakpoints         list breakpoints\r\n")
	c.printf("regs                dump registers\r\n")
	c.printf("mem <addr> [n]      dump n 32-bit words starting at addr\r\n")
	c.printf("disasm <addr> [n]   disassemble n instructions starting at addr\r\n")
	c.printf("quit                exit\r\n")
}

func (c *console) printStatus() {
	c.printf("pc=0x%08x\r\n", c.emu.PC())
}

func (c *console) printRegisters() {
	for i, v := range c.emu.Registers() {
		c.printf("r%-2d = 0x%08x   ", i, v)
		if i%4 == 3 {
			c.printf("\r\n")
		}
	}
	hi, lo := c.emu.HiLo()
	status, cause, epc := c.emu.COP0Snapshot()
	c.printf("\r\npc = 0x%08x   hi = 0x%08x   lo = 0x%08x\r\n", c.emu.PC(), hi, lo)
	c.printf("sr = 0x%08x   cause = 0x%08x   epc = 0x%08x\r\n", status, cause, epc)
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	return uint32(v), err
}
