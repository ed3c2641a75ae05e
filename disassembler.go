// disassembler.go - Textual disassembly of decoded instructions
//
// License: GPLv3 or later

package r3000a

import "fmt"

var registerNames = [32]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

func registerName(r uint8) string { return registerNames[r] }

var cop0RegisterNames = [16]string{
	"indx", "rand", "tlbl", "bpc", "ctxt", "bda", "pidmask", "dcic",
	"badv", "bdam", "tlbh", "bpcm", "sr", "cause", "epc", "prid",
}

func cop0RegisterName(r uint8) string {
	if int(r) < len(cop0RegisterNames) {
		return cop0RegisterNames[r]
	}
	return fmt.Sprintf("cop0r%d", r)
}

func cop2DataRegisterName(r uint8) string  { return fmt.Sprintf("cop2dr%d", r) }
func cop2ControlRegisterName(r uint8) string { return fmt.Sprintf("cop2cr%d", r) }

func formatOffset(offset uint32) string {
	return fmt.Sprintf("%04x", uint16(offset))
}

// Disassemble renders a decoded instruction in GNU-as-like MIPS syntax.
func Disassemble(ins Instruction) string {
	switch ins.Kind {
	case OpNOOP:
		return "noop"
	case OpIllegal:
		return "illegal"
	case OpR:
		return disassembleR(ins.R)
	case OpI:
		return disassembleI(ins.I)
	case OpJ:
		return disassembleJ(ins.J)
	case OpCOP0:
		return disassembleCop0(ins.Cop0)
	case OpGTE:
		return disassembleGTE(ins.GTE)
	default:
		return "illegal"
	}
}

func disassembleR(op RTypeOp) string {
	rd, rt, rs := registerName(op.RD), registerName(op.RT), registerName(op.RS)
	switch op.Funct {
	case RSLL:
		return fmt.Sprintf("sll %s, %s, %d", rd, rt, op.Shamt)
	case RSRL:
		return fmt.Sprintf("srl %s, %s, %d", rd, rt, op.Shamt)
	case RSRA:
		return fmt.Sprintf("sra %s, %s, %d", rd, rt, op.Shamt)
	case RSLLV:
		return fmt.Sprintf("sllv %s, %s, %s", rd, rt, rs)
	case RSRLV:
		return fmt.Sprintf("srlv %s, %s, %s", rd, rt, rs)
	case RSRAV:
		return fmt.Sprintf("srav %s, %s, %s", rd, rt, rs)
	case RJR:
		return fmt.Sprintf("jr %s", rs)
	case RJALR:
		return fmt.Sprintf("jalr %s, %s", rd, rs)
	case RSYSCALL:
		return "syscall"
	case RBREAK:
		return "break"
	case RMFHI:
		return fmt.Sprintf("mfhi %s", rd)
	case RMTHI:
		return fmt.Sprintf("mthi %s", rs)
	case RMFLO:
		return fmt.Sprintf("mflo %s", rd)
	case RMTLO:
		return fmt.Sprintf("mtlo %s", rs)
	case RMULT:
		return fmt.Sprintf("mult %s, %s", rs, rt)
	case RMULTU:
		return fmt.Sprintf("multu %s, %s", rs, rt)
	case RDIV:
		return fmt.Sprintf("div %s, %s", rs, rt)
	case RDIVU:
		return fmt.Sprintf("divu %s, %s", rs, rt)
	case RADD:
		return fmt.Sprintf("add %s, %s, %s", rd, rs, rt)
	case RADDU:
		return fmt.Sprintf("addu %s, %s, %s", rd, rs, rt)
	case RSUB:
		return fmt.Sprintf("sub %s, %s, %s", rd, rs, rt)
	case RSUBU:
		return fmt.Sprintf("subu %s, %s, %s", rd, rs, rt)
	case RAND:
		return fmt.Sprintf("and %s, %s, %s", rd, rs, rt)
	case ROR:
		return fmt.Sprintf("or %s, %s, %s", rd, rs, rt)
	case RXOR:
		return fmt.Sprintf("xor %s, %s, %s", rd, rs, rt)
	case RNOR:
		return fmt.Sprintf("nor %s, %s, %s", rd, rs, rt)
	case RSLT:
		return fmt.Sprintf("slt %s, %s, %s", rd, rs, rt)
	case RSLTU:
		return fmt.Sprintf("sltu %s, %s, %s", rd, rs, rt)
	default:
		return "illegal"
	}
}

func disassembleI(op ITypeOp) string {
	rs, rt := registerName(op.RS), registerName(op.RT)
	switch op.Funct {
	case IBLTZ:
		return fmt.Sprintf("bltz %s, 0x%s", rs, formatOffset(op.ImmediateSE))
	case IBGEZ:
		return fmt.Sprintf("bgez %s, 0x%s", rs, formatOffset(op.ImmediateSE))
	case IBLTZAL:
		return fmt.Sprintf("bltzal %s, 0x%s", rs, formatOffset(op.ImmediateSE))
	case IBGEZAL:
		return fmt.Sprintf("bgezal %s, 0x%s", rs, formatOffset(op.ImmediateSE))
	case IBEQ:
		return fmt.Sprintf("beq %s, %s, 0x%s", rs, rt, formatOffset(op.ImmediateSE))
	case IBNE:
		return fmt.Sprintf("bne %s, %s, 0x%s", rs, rt, formatOffset(op.ImmediateSE))
	case IBLEZ:
		return fmt.Sprintf("blez %s, 0x%s", rs, formatOffset(op.ImmediateSE))
	case IBGTZ:
		return fmt.Sprintf("bgtz %s, 0x%s", rs, formatOffset(op.ImmediateSE))
	case IADDI:
		return fmt.Sprintf("addi %s, %s, 0x%s", rt, rs, formatOffset(op.ImmediateSE))
	case IADDIU:
		return fmt.Sprintf("addiu %s, %s, 0x%s", rt, rs, formatOffset(op.ImmediateSE))
	case ISLTI:
		return fmt.Sprintf("slti %s, %s, 0x%s", rt, rs, formatOffset(op.ImmediateSE))
	case ISLTIU:
		return fmt.Sprintf("sltiu %s, %s, 0x%s", rt, rs, formatOffset(op.ImmediateSE))
	case IANDI:
		return fmt.Sprintf("andi %s, %s, 0x%04x", rt, rs, uint16(op.Immediate))
	case IORI:
		return fmt.Sprintf("ori %s, %s, 0x%04x", rt, rs, uint16(op.Immediate))
	case IXORI:
		return fmt.Sprintf("xori %s, %s, 0x%04x", rt, rs, uint16(op.Immediate))
	case ILUI:
		return fmt.Sprintf("lui %s, 0x%04x", rt, uint16(op.Immediate))
	case ILB:
		return fmt.Sprintf("lb %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ILH:
		return fmt.Sprintf("lh %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ILWL:
		return fmt.Sprintf("lwl %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ILW:
		return fmt.Sprintf("lw %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ILBU:
		return fmt.Sprintf("lbu %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ILHU:
		return fmt.Sprintf("lhu %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ILWR:
		return fmt.Sprintf("lwr %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ISB:
		return fmt.Sprintf("sb %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ISH:
		return fmt.Sprintf("sh %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ISWL:
		return fmt.Sprintf("swl %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ISW:
		return fmt.Sprintf("sw %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	case ISWR:
		return fmt.Sprintf("swr %s, 0x%s(%s)", rt, formatOffset(op.ImmediateSE), rs)
	default:
		return "illegal"
	}
}

func disassembleJ(op JTypeOp) string {
	switch op.Funct {
	case JJ:
		return fmt.Sprintf("j 0x%08x", op.Target)
	case JJAL:
		return fmt.Sprintf("jal 0x%08x", op.Target)
	default:
		return "illegal"
	}
}

func disassembleCop0(op Cop0Op) string {
	switch op.Funct {
	case Cop0MFC0:
		return fmt.Sprintf("mfc0 %s, %s", registerName(op.RT), cop0RegisterName(op.RD))
	case Cop0MTC0:
		return fmt.Sprintf("mtc0 %s, %s", registerName(op.RT), cop0RegisterName(op.RD))
	case Cop0RFE:
		return "rfe"
	default:
		return "illegal"
	}
}

func disassembleGTE(op GTEOp) string {
	switch op.Funct {
	case GTEMFC2:
		return fmt.Sprintf("mfc2 %s, %s", registerName(op.RT), cop2DataRegisterName(op.RD))
	case GTECFC2:
		return fmt.Sprintf("cfc2 %s, %s", registerName(op.RT), cop2ControlRegisterName(op.RD))
	case GTEMTC2:
		return fmt.Sprintf("mtc2 %s, %s", registerName(op.RT), cop2DataRegisterName(op.RD))
	case GTECTC2:
		return fmt.Sprintf("ctc2 %s, %s", registerName(op.RT), cop2ControlRegisterName(op.RD))
	case GTELWC2:
		return fmt.Sprintf("lwc2 %s, 0x%s(%s)", cop2DataRegisterName(op.RT), formatOffset(op.ImmediateSE), registerName(op.RS))
	case GTESWC2:
		return fmt.Sprintf("swc2 %s, 0x%s(%s)", cop2DataRegisterName(op.RT), formatOffset(op.ImmediateSE), registerName(op.RS))
	case GTECommand:
		return "gte operation"
	default:
		return "illegal"
	}
}
