// disasm.go - human-readable decoding of a single instruction word
//
// Used by CPU.Step's trace output and the interactive shell. Disassembly
// is diagnostic only: an unrecognized word renders as a raw directive
// rather than failing, since it must never be the thing that aborts a run.
package main

import "fmt"

// Disassemble renders word as a RISC-V assembly mnemonic and operands.
func Disassemble(word uint32) string {
	d := decodeFields(word)
	rd, rs1, rs2 := RegNames[d.rd], RegNames[d.rs1], RegNames[d.rs2]

	switch d.opcode {
	case opLUI:
		return fmt.Sprintf("lui %s, 0x%x", rd, uint32(d.imm20)&0xfffff)
	case opAUIPC:
		return fmt.Sprintf("auipc %s, 0x%x", rd, uint32(d.imm20)&0xfffff)
	case opJAL:
		return fmt.Sprintf("jal %s, %d", rd, jImm(word))
	case opJALR:
		return fmt.Sprintf("jalr %s, %s, %d", rd, rs1, d.imm12)
	case opBType:
		name, ok := map[uint32]string{
			0b000: "beq", 0b001: "bne", 0b100: "blt",
			0b101: "bge", 0b110: "bltu", 0b111: "bgeu",
		}[d.funct3]
		if !ok {
			return illegalWordText(word)
		}
		return fmt.Sprintf("%s %s, %s, %d", name, rs1, rs2, bImm(word))
	case opLoad:
		name, ok := map[uint32]string{
			0b000: "lb", 0b001: "lh", 0b010: "lw", 0b011: "ld",
			0b100: "lbu", 0b101: "lhu", 0b110: "lwu",
		}[d.funct3]
		if !ok {
			return illegalWordText(word)
		}
		return fmt.Sprintf("%s %s, %d(%s)", name, rd, d.imm12, rs1)
	case opStore:
		name, ok := map[uint32]string{0b000: "sb", 0b001: "sh", 0b010: "sw", 0b011: "sd"}[d.funct3]
		if !ok {
			return illegalWordText(word)
		}
		return fmt.Sprintf("%s %s, %d(%s)", name, rs2, sImm(d.funct7, d.imm5), rs1)
	case opIType:
		return disasmIType(d, rd, rs1)
	case opRType:
		return disasmRType(d, rd, rs1, rs2)
	case opIType64:
		return disasmIType64(d, rd, rs1)
	case opRType64:
		return disasmRType64(d, rd, rs1, rs2)
	case opFence:
		if d.funct3 == 1 {
			return "fence.i"
		}
		return "fence"
	case opSystem:
		return disasmSystem(d, rd, rs1)
	default:
		return illegalWordText(word)
	}
}

func illegalWordText(word uint32) string {
	return fmt.Sprintf(".word 0x%08x (illegal)", word)
}

func disasmIType(d decoded, rd, rs1 string) string {
	switch d.funct3 {
	case 0b000:
		return fmt.Sprintf("addi %s, %s, %d", rd, rs1, d.imm12)
	case 0b010:
		return fmt.Sprintf("slti %s, %s, %d", rd, rs1, d.imm12)
	case 0b011:
		return fmt.Sprintf("sltiu %s, %s, %d", rd, rs1, d.imm12)
	case 0b100:
		return fmt.Sprintf("xori %s, %s, %d", rd, rs1, d.imm12)
	case 0b110:
		return fmt.Sprintf("ori %s, %s, %d", rd, rs1, d.imm12)
	case 0b111:
		return fmt.Sprintf("andi %s, %s, %d", rd, rs1, d.imm12)
	case 0b001:
		return fmt.Sprintf("slli %s, %s, %d", rd, rs1, d.raw>>20&0x3f)
	case 0b101:
		if d.raw&(1<<30) != 0 {
			return fmt.Sprintf("srai %s, %s, %d", rd, rs1, d.raw>>20&0x3f)
		}
		return fmt.Sprintf("srli %s, %s, %d", rd, rs1, d.raw>>20&0x3f)
	}
	return illegalWordText(d.raw)
}

func disasmRType(d decoded, rd, rs1, rs2 string) string {
	name, ok := map[[2]uint32]string{
		{0b000, 0}: "add", {0b000, 0b0100000}: "sub", {0b001, 0}: "sll",
		{0b010, 0}: "slt", {0b011, 0}: "sltu", {0b100, 0}: "xor",
		{0b101, 0}: "srl", {0b101, 0b0100000}: "sra",
		{0b110, 0}: "or", {0b111, 0}: "and",
	}[[2]uint32{d.funct3, d.funct7}]
	if !ok {
		return illegalWordText(d.raw)
	}
	return fmt.Sprintf("%s %s, %s, %s", name, rd, rs1, rs2)
}

func disasmIType64(d decoded, rd, rs1 string) string {
	switch d.funct3 {
	case 0b000:
		return fmt.Sprintf("addiw %s, %s, %d", rd, rs1, d.imm12)
	case 0b001:
		return fmt.Sprintf("slliw %s, %s, %d", rd, rs1, d.raw>>20&0x1f)
	case 0b101:
		if d.raw&(1<<30) != 0 {
			return fmt.Sprintf("sraiw %s, %s, %d", rd, rs1, d.raw>>20&0x1f)
		}
		return fmt.Sprintf("srliw %s, %s, %d", rd, rs1, d.raw>>20&0x1f)
	}
	return illegalWordText(d.raw)
}

func disasmRType64(d decoded, rd, rs1, rs2 string) string {
	name, ok := map[[2]uint32]string{
		{0b000, 0}: "addw", {0b000, 0b0100000}: "subw", {0b001, 0}: "sllw",
		{0b101, 0}: "srlw", {0b101, 0b0100000}: "sraw",
	}[[2]uint32{d.funct3, d.funct7}]
	if !ok {
		return illegalWordText(d.raw)
	}
	return fmt.Sprintf("%s %s, %s, %s", name, rd, rs1, rs2)
}

func disasmSystem(d decoded, rd, rs1 string) string {
	idx := uint32(d.imm12) & 0xfff
	switch d.funct3 {
	case 0b000:
		return "ecall"
	case 0b001:
		return fmt.Sprintf("csrrw %s, 0x%x, %s", rd, idx, rs1)
	case 0b010:
		return fmt.Sprintf("csrrs %s, 0x%x, %s", rd, idx, rs1)
	case 0b011:
		return fmt.Sprintf("csrrc %s, 0x%x, %s", rd, idx, rs1)
	case 0b101:
		return fmt.Sprintf("csrrwi %s, 0x%x, %d", rd, idx, d.rs1)
	case 0b110:
		return fmt.Sprintf("csrrsi %s, 0x%x, %d", rd, idx, d.rs1)
	case 0b111:
		return fmt.Sprintf("csrrci %s, 0x%x, %d", rd, idx, d.rs1)
	}
	return illegalWordText(d.raw)
}
