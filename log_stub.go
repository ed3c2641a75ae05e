// log_stub.go - Diagnostic logging for unmodeled device behavior
//
// License: GPLv3 or later

package r3000a

import (
	"fmt"
	"os"
)

// logStub prints one line per event for device writes/reads this core
// doesn't model functionally (timers, GPU command port, DMA channel
// writes, unhandled COP0 registers). This stream is observable debugging
// output, not a functional contract — nothing in the core reads it back.
func logStub(pc uint32, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[pc=%08x] "+format+"\n", append([]any{pc}, args...)...)
}
