// decode.go - instruction field extraction and opcode dispatch
package main

import "fmt"

// Opcode values, bits[6:0] of the instruction word.
const (
	opRType   = 0b0110011
	opIType   = 0b0010011
	opLoad    = 0b0000011
	opStore   = 0b0100011
	opBType   = 0b1100011
	opLUI     = 0b0110111
	opAUIPC   = 0b0010111
	opJAL     = 0b1101111
	opJALR    = 0b1100111
	opFence   = 0b0001111
	opSystem  = 0b1110011
	opRType64 = 0b0111011
	opIType64 = 0b0011011
)

// decoded holds every field the decoder can pull out of a 32-bit
// instruction word, regardless of which fields a given opcode actually
// uses.
type decoded struct {
	raw    uint32
	opcode uint32
	funct3 uint32
	funct7 uint32
	rd     byte
	rs1    byte
	rs2    byte
	imm5   uint32 // instr[11:7], the low half of an S/B immediate
	imm12  int32  // sign-extended instr[31:20]
	imm20  int32  // raw instruction arithmetic-shifted right by 12
}

func decodeFields(word uint32) decoded {
	return decoded{
		raw:    word,
		opcode: word & 0x7f,
		funct3: (word >> 12) & 0x7,
		funct7: (word >> 25) & 0x7f,
		rd:     byte((word >> 7) & 0x1f),
		rs1:    byte((word >> 15) & 0x1f),
		rs2:    byte((word >> 20) & 0x1f),
		imm5:   (word >> 7) & 0x1f,
		imm12:  int32(word) >> 20,
		imm20:  int32(word) >> 12,
	}
}

// jImm reconstructs the signed J-type (JAL) offset from instr[31:12].
func jImm(word uint32) int64 {
	imm20bit := (word >> 31) & 0x1
	imm10_1 := (word >> 21) & 0x3ff
	imm11bit := (word >> 20) & 0x1
	imm19_12 := (word >> 12) & 0xff
	raw := (imm20bit << 20) | (imm19_12 << 12) | (imm11bit << 11) | (imm10_1 << 1)
	return signExtend(uint64(raw), 21)
}

// bImm reconstructs the signed B-type branch offset from instr[31:25] and
// instr[11:7].
func bImm(word uint32) int64 {
	imm12bit := (word >> 31) & 0x1
	imm10_5 := (word >> 25) & 0x3f
	imm4_1 := (word >> 8) & 0xf
	imm11bit := (word >> 7) & 0x1
	raw := (imm12bit << 12) | (imm11bit << 11) | (imm10_5 << 5) | (imm4_1 << 1)
	return signExtend(uint64(raw), 13)
}

// sImm reconstructs the signed S-type store offset from instr[31:25] (the
// high bits, passed as funct7) and instr[11:7] (imm5).
func sImm(funct7, imm5 uint32) int64 {
	raw := (funct7 << 5) | imm5
	return signExtend(uint64(raw), 12)
}

// signExtend treats the low `bits` bits of v as a two's-complement value
// and sign-extends it to 64 bits.
func signExtend(v uint64, bits uint) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

// execute decodes and dispatches one instruction word against cpu, mutating
// cpu.npc/registers/CSRs/memory as that instruction's semantics require.
// An unmatched (opcode, funct3, funct7) tuple is a fatal decode error.
func (c *CPU) execute(word uint32) error {
	d := decodeFields(word)

	switch d.opcode {
	case opLUI:
		return c.execLUI(d)
	case opAUIPC:
		return c.execAUIPC(d)
	case opJAL:
		return c.execJAL(d)
	case opJALR:
		if d.funct3 != 0 {
			return illegalInstruction(word, c.PC)
		}
		return c.execJALR(d)
	case opBType:
		return c.execBranch(d)
	case opLoad:
		return c.execLoad(d)
	case opStore:
		return c.execStore(d)
	case opIType:
		return c.execIType(d)
	case opRType:
		return c.execRType(d)
	case opIType64:
		return c.execIType64(d)
	case opRType64:
		return c.execRType64(d)
	case opFence:
		return nil // FENCE / FENCE.I: no-op, accesses already execute in order
	case opSystem:
		return c.execSystem(d)
	default:
		return illegalInstruction(word, c.PC)
	}
}

func illegalInstruction(word uint32, pc uint64) error {
	return fmt.Errorf("illegal instruction 0x%08x at pc=0x%x", word, pc)
}
