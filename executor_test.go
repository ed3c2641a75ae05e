// executor_test.go - instruction semantics: arithmetic, shifts, div, loads
//
// License: GPLv3 or later

package r3000a

import "testing"

func TestADDUWrapsSilently(t *testing.T) {
	r := newTestRig()
	r.cpu.SetReg(rT1, 0x7FFFFFFF)
	r.cpu.SetReg(rT2, 1)
	r.load(asmADDU(rT0, rT1, rT2))
	r.cpu.Step()

	if got := r.cpu.Reg(rT0); got != 0x80000000 {
		t.Fatalf("$t0 = %#x, want 0x80000000 (silent wrap)", got)
	}
	if r.cpu.PC() != 4 {
		t.Fatalf("pc = %#x, no exception expected", r.cpu.PC())
	}
}

func TestSUBTraps(t *testing.T) {
	r := newTestRig()
	r.cpu.COP0.MTC0(0, 12, 1<<22)
	r.cpu.SetReg(rT1, 0x80000000) // INT_MIN
	r.cpu.SetReg(rT2, 1)
	r.load(asmSUB(rT0, rT1, rT2))
	r.cpu.Step()

	if r.cpu.PC() != 0xBFC00180 {
		t.Fatalf("pc = %#x, want exception vector (SUB must trap on overflow)", r.cpu.PC())
	}
	if got := r.cpu.Reg(rT0); got != 0 {
		t.Fatalf("$t0 = %#x, want untouched", got)
	}
}

func TestDivByZero(t *testing.T) {
	cases := []struct {
		rs       int32
		wantHi   uint32
		wantLo   uint32
	}{
		{5, 5, 0xFFFFFFFF},
		{-5, 0xFFFFFFFB, 1},
	}
	for _, tc := range cases {
		c := &CPU{}
		c.div(tc.rs, 0)
		if c.hi != tc.wantHi || c.lo != tc.wantLo {
			t.Fatalf("div(%d, 0) = hi:%#x lo:%#x, want hi:%#x lo:%#x", tc.rs, c.hi, c.lo, tc.wantHi, tc.wantLo)
		}
	}
}

func TestDivOverflowCase(t *testing.T) {
	c := &CPU{}
	c.div(int32(-2147483648), -1)
	if c.hi != 0 || c.lo != 0x80000000 {
		t.Fatalf("div(INT_MIN,-1) = hi:%#x lo:%#x, want hi:0 lo:0x80000000", c.hi, c.lo)
	}
}

func TestDivUByZero(t *testing.T) {
	c := &CPU{}
	c.divu(42, 0)
	if c.hi != 42 || c.lo != 0xFFFFFFFF {
		t.Fatalf("divu(42,0) = hi:%#x lo:%#x, want hi:42 lo:0xFFFFFFFF", c.hi, c.lo)
	}
}

func TestMULTUProducesWideProduct(t *testing.T) {
	r := newTestRig()
	r.cpu.SetReg(rT0, 0xFFFFFFFF)
	r.cpu.SetReg(rT1, 2)
	r.load(encodeR(0x00, rT0, rT1, 0, 0, 0x19)) // multu $t0, $t1
	r.cpu.Step()

	hi, lo := r.cpu.HiLo()
	want := uint64(0xFFFFFFFF) * 2
	if hi != uint32(want>>32) || lo != uint32(want) {
		t.Fatalf("hi:lo = %#x:%#x, want %#x:%#x", hi, lo, uint32(want>>32), uint32(want))
	}
}

func TestSRAIsArithmetic(t *testing.T) {
	r := newTestRig()
	r.cpu.SetReg(rT1, 0x80000000)
	r.load(encodeR(0x00, 0, rT1, rT0, 1, 0x03)) // sra $t0, $t1, 1
	r.cpu.Step()

	if got := int32(r.cpu.Reg(rT0)); got != -1073741824 {
		t.Fatalf("$t0 = %d, want -1073741824 (sign-preserving shift)", got)
	}
}

func TestVariableShiftMasksShamtWith0x1F(t *testing.T) {
	r := newTestRig()
	r.cpu.SetReg(rT1, 1)
	r.cpu.SetReg(rT2, 0x20) // 32 & 0x1F == 0
	r.load(encodeR(0x00, rT2, rT1, rT0, 0, 0x04)) // sllv $t0, $t1, $t2
	r.cpu.Step()

	if got := r.cpu.Reg(rT0); got != 1 {
		t.Fatalf("$t0 = %#x, want 1 (shift amount masked to 0)", got)
	}
}

func TestLoadMisalignmentRaisesAddressError(t *testing.T) {
	r := newTestRig()
	r.cpu.COP0.MTC0(0, 12, 1<<22)
	r.cpu.SetReg(rT1, 1) // odd address
	r.load(asmLW(rT0, rT1, 0))
	r.cpu.Step()

	if r.cpu.PC() != 0xBFC00180 {
		t.Fatalf("pc = %#x, want exception vector", r.cpu.PC())
	}
}

func TestLWLAtOffsetThreeTakesWholeWord(t *testing.T) {
	r := newTestRig()
	r.writeWord(0x100, 0x11223344)
	lwl := encodeI(0x22, rZERO, rT2, 0x0103) // lwl $t2, 0x103($zero)
	r.load(lwl, asmADDIU(rZERO, rZERO, 0))   // nop, so the load commits before we read it
	r.cpu.Step()
	r.cpu.Step()

	if got := r.cpu.Reg(rT2); got != 0x11223344 {
		t.Fatalf("$t2 = %#x, want 0x11223344 (lwl at offset 3 takes the whole word)", got)
	}
}

func TestLWRLWLPairAssemblesUnalignedWord(t *testing.T) {
	r := newTestRig()
	r.writeWord(0x100, 0x44332211)
	r.writeWord(0x104, 0x88776655)
	lwr := encodeI(0x26, rZERO, rT2, 0x0102) // lwr $t2, 0x102($zero)
	lwl := encodeI(0x22, rZERO, rT2, 0x0105) // lwl $t2, 0x105($zero)
	r.load(lwr, lwl, asmADDIU(rZERO, rZERO, 0))
	r.cpu.Step()
	r.cpu.Step()
	r.cpu.Step()

	// The lwl sits in the lwr's load-delay slot and must merge with the
	// still-uncommitted lwr value, yielding the word at 0x102..0x105.
	if got := r.cpu.Reg(rT2); got != 0x66554433 {
		t.Fatalf("$t2 = %#x, want 0x66554433 (lwr/lwl pair must bypass the load delay)", got)
	}
}

func TestSWLAtOffsetThreeWritesWholeWord(t *testing.T) {
	r := newTestRig()
	r.writeWord(0x100, 0xAAAAAAAA)
	r.cpu.SetReg(rT0, 0xDEADBEEF)
	swl := encodeI(0x2A, rZERO, rT0, 0x0103) // swl $t0, 0x103($zero)
	r.load(swl)
	r.cpu.Step()

	if got := r.readWord(0x100); got != 0xDEADBEEF {
		t.Fatalf("RAM[0x100] = %#x, want 0xDEADBEEF (swl at offset 3 writes the whole word)", got)
	}
}
