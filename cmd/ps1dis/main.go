// ps1dis - standalone R3000A disassembler
//
// License: GPLv3 or later

package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/ps1core/r3000a"
)

func main() {
	outFile := flag.String("o", "", "output file (default: stdout)")
	baseAddr := flag.Uint("base", 0, "base address of the first word in the file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ps1dis [options] file.bin\n\nDisassembles a flat R3000A binary (e.g. a BIOS image) word by word.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n  ps1dis -base 0xbfc00000 SCPH1001.BIN\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ps1dis: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ps1dis: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	base := uint32(*baseAddr)
	for i := 0; i+4 <= len(data); i += 4 {
		word := binary.LittleEndian.Uint32(data[i : i+4])
		addr := base + uint32(i)
		fmt.Fprintf(w, "0x%08X, 0x%08X, %s\n", addr, word, r3000a.Disassemble(r3000a.Decode(word)))
	}
}
