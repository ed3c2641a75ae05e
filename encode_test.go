// encode_test.go - instruction-word assemblers for tests
//
// License: GPLv3 or later

package r3000a

func encodeR(op uint32, rs, rt, rd, shamt, funct uint8) uint32 {
	return op<<26 | uint32(rs)<<21 | uint32(rt)<<16 | uint32(rd)<<11 | uint32(shamt)<<6 | uint32(funct)
}

func encodeI(op uint32, rs, rt uint8, imm uint16) uint32 {
	return op<<26 | uint32(rs)<<21 | uint32(rt)<<16 | uint32(imm)
}

func encodeJ(op uint32, target uint32) uint32 {
	return op<<26 | (target>>2)&0x03FFFFFF
}

// Register mnemonics matching the R3000A ABI names, for test readability.
const (
	rZERO = 0
	rAT   = 1
	rV0   = 2
	rV1   = 3
	rA0   = 4
	rT0   = 8
	rT1   = 9
	rT2   = 10
	rS0   = 16
	rRA   = 31
)

func asmADDIU(rt, rs uint8, imm uint16) uint32 { return encodeI(0x09, rs, rt, imm) }
func asmADDI(rt, rs uint8, imm uint16) uint32  { return encodeI(0x08, rs, rt, imm) }
func asmORI(rt, rs uint8, imm uint16) uint32   { return encodeI(0x0D, rs, rt, imm) }
func asmANDI(rt, rs uint8, imm uint16) uint32  { return encodeI(0x0C, rs, rt, imm) }
func asmLUI(rt uint8, imm uint16) uint32       { return encodeI(0x0F, 0, rt, imm) }
func asmLW(rt, rs uint8, imm uint16) uint32    { return encodeI(0x23, rs, rt, imm) }
func asmSW(rt, rs uint8, imm uint16) uint32    { return encodeI(0x2B, rs, rt, imm) }
func asmBEQ(rs, rt uint8, imm uint16) uint32   { return encodeI(0x04, rs, rt, imm) }
func asmBNE(rs, rt uint8, imm uint16) uint32   { return encodeI(0x05, rs, rt, imm) }
func asmJ(target uint32) uint32                { return encodeJ(0x02, target) }
func asmJAL(target uint32) uint32              { return encodeJ(0x03, target) }

func asmADD(rd, rs, rt uint8) uint32  { return encodeR(0x00, rs, rt, rd, 0, 0x20) }
func asmADDU(rd, rs, rt uint8) uint32 { return encodeR(0x00, rs, rt, rd, 0, 0x21) }
func asmSUB(rd, rs, rt uint8) uint32  { return encodeR(0x00, rs, rt, rd, 0, 0x22) }
func asmOR(rd, rs, rt uint8) uint32   { return encodeR(0x00, rs, rt, rd, 0, 0x25) }
func asmJR(rs uint8) uint32           { return encodeR(0x00, rs, 0, 0, 0, 0x08) }
func asmJALR(rd, rs uint8) uint32     { return encodeR(0x00, rs, 0, rd, 0, 0x09) }

func asmSYSCALL() uint32 { return encodeR(0x00, 0, 0, 0, 0, 0x0C) }
func asmBREAK() uint32   { return encodeR(0x00, 0, 0, 0, 0, 0x0D) }

func asmMTC0(rt uint8, reg uint8) uint32 { return 0x10<<26 | 0x04<<21 | uint32(rt)<<16 | uint32(reg)<<11 }
func asmMFC0(rt uint8, reg uint8) uint32 { return 0x10 << 26 | uint32(rt)<<16 | uint32(reg)<<11 }
func asmRFE() uint32                     { return 0x10<<26 | 0x10<<21 | 0x10 }
