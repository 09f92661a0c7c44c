package main

// Instruction encoders used only by tests, to assemble guest programs
// in-memory without a real RISC-V toolchain. Grounded in spirit on the
// teacher's ie64Instr test helper (cpu_ie64_test.go), adapted to RV64I's
// encoding rather than IE64's.

func encodeR(opcode, funct3, funct7 uint32, rd, rs1, rs2 byte) uint32 {
	return opcode | uint32(rd)<<7 | funct3<<12 | uint32(rs1)<<15 | uint32(rs2)<<20 | funct7<<25
}

func encodeI(opcode, funct3 uint32, rd, rs1 byte, imm12 int32) uint32 {
	return opcode | uint32(rd)<<7 | funct3<<12 | uint32(rs1)<<15 | (uint32(imm12)&0xfff)<<20
}

// encodeIShift encodes SLLI/SRLI/SRAI-shaped instructions where the upper
// bits of the immediate field double as a sub-opcode (bit 30 here).
func encodeIShift(opcode, funct3, top uint32, rd, rs1, shamt byte) uint32 {
	return opcode | uint32(rd)<<7 | funct3<<12 | uint32(rs1)<<15 | uint32(shamt)<<20 | top<<25
}

func encodeS(opcode, funct3 uint32, rs1, rs2 byte, imm12 int32) uint32 {
	u := uint32(imm12) & 0xfff
	imm5 := u & 0x1f
	imm7 := u >> 5
	return opcode | imm5<<7 | funct3<<12 | uint32(rs1)<<15 | uint32(rs2)<<20 | imm7<<25
}

func encodeB(opcode, funct3 uint32, rs1, rs2 byte, imm13 int32) uint32 {
	u := uint32(imm13) & 0x1fff
	bit12 := (u >> 12) & 1
	bit11 := (u >> 11) & 1
	bits10_5 := (u >> 5) & 0x3f
	bits4_1 := (u >> 1) & 0xf
	return opcode | bit11<<7 | bits4_1<<8 | funct3<<12 | uint32(rs1)<<15 | uint32(rs2)<<20 | bits10_5<<25 | bit12<<31
}

func encodeU(opcode uint32, rd byte, imm20 uint32) uint32 {
	return opcode | uint32(rd)<<7 | (imm20&0xfffff)<<12
}

func encodeJ(opcode uint32, rd byte, imm21 int32) uint32 {
	u := uint32(imm21) & 0x1fffff
	bit20 := (u >> 20) & 1
	bits10_1 := (u >> 1) & 0x3ff
	bit11 := (u >> 11) & 1
	bits19_12 := (u >> 12) & 0xff
	return opcode | uint32(rd)<<7 | bits19_12<<12 | bit11<<20 | bits10_1<<21 | bit20<<31
}

// Named builders for the instructions exercised by the test suite.

func iADDI(rd, rs1 byte, imm int32) uint32  { return encodeI(opIType, 0b000, rd, rs1, imm) }
func iSLTI(rd, rs1 byte, imm int32) uint32  { return encodeI(opIType, 0b010, rd, rs1, imm) }
func iSLTIU(rd, rs1 byte, imm int32) uint32 { return encodeI(opIType, 0b011, rd, rs1, imm) }
func iXORI(rd, rs1 byte, imm int32) uint32  { return encodeI(opIType, 0b100, rd, rs1, imm) }
func iORI(rd, rs1 byte, imm int32) uint32   { return encodeI(opIType, 0b110, rd, rs1, imm) }
func iANDI(rd, rs1 byte, imm int32) uint32  { return encodeI(opIType, 0b111, rd, rs1, imm) }
func iSLLI(rd, rs1, shamt byte) uint32      { return encodeIShift(opIType, 0b001, 0, rd, rs1, shamt) }
func iSRLI(rd, rs1, shamt byte) uint32      { return encodeIShift(opIType, 0b101, 0, rd, rs1, shamt) }
func iSRAI(rd, rs1, shamt byte) uint32 {
	return encodeIShift(opIType, 0b101, 0b0100000, rd, rs1, shamt)
}

func iADDIW(rd, rs1 byte, imm int32) uint32 { return encodeI(opIType64, 0b000, rd, rs1, imm) }
func iSLLIW(rd, rs1, shamt byte) uint32 {
	return encodeIShift(opIType64, 0b001, 0, rd, rs1, shamt)
}
func iSRLIW(rd, rs1, shamt byte) uint32 {
	return encodeIShift(opIType64, 0b101, 0, rd, rs1, shamt)
}
func iSRAIW(rd, rs1, shamt byte) uint32 {
	return encodeIShift(opIType64, 0b101, 0b0100000, rd, rs1, shamt)
}

func rADD(rd, rs1, rs2 byte) uint32  { return encodeR(opRType, 0b000, 0, rd, rs1, rs2) }
func rSUB(rd, rs1, rs2 byte) uint32  { return encodeR(opRType, 0b000, 0b0100000, rd, rs1, rs2) }
func rSLL(rd, rs1, rs2 byte) uint32  { return encodeR(opRType, 0b001, 0, rd, rs1, rs2) }
func rSLT(rd, rs1, rs2 byte) uint32  { return encodeR(opRType, 0b010, 0, rd, rs1, rs2) }
func rSLTU(rd, rs1, rs2 byte) uint32 { return encodeR(opRType, 0b011, 0, rd, rs1, rs2) }
func rXOR(rd, rs1, rs2 byte) uint32  { return encodeR(opRType, 0b100, 0, rd, rs1, rs2) }
func rSRL(rd, rs1, rs2 byte) uint32  { return encodeR(opRType, 0b101, 0, rd, rs1, rs2) }
func rSRA(rd, rs1, rs2 byte) uint32  { return encodeR(opRType, 0b101, 0b0100000, rd, rs1, rs2) }
func rOR(rd, rs1, rs2 byte) uint32   { return encodeR(opRType, 0b110, 0, rd, rs1, rs2) }
func rAND(rd, rs1, rs2 byte) uint32  { return encodeR(opRType, 0b111, 0, rd, rs1, rs2) }

func rADDW(rd, rs1, rs2 byte) uint32 { return encodeR(opRType64, 0b000, 0, rd, rs1, rs2) }
func rSUBW(rd, rs1, rs2 byte) uint32 { return encodeR(opRType64, 0b000, 0b0100000, rd, rs1, rs2) }
func rSLLW(rd, rs1, rs2 byte) uint32 { return encodeR(opRType64, 0b001, 0, rd, rs1, rs2) }
func rSRLW(rd, rs1, rs2 byte) uint32 { return encodeR(opRType64, 0b101, 0, rd, rs1, rs2) }
func rSRAW(rd, rs1, rs2 byte) uint32 { return encodeR(opRType64, 0b101, 0b0100000, rd, rs1, rs2) }

func iLB(rd, rs1 byte, imm int32) uint32  { return encodeI(opLoad, 0b000, rd, rs1, imm) }
func iLH(rd, rs1 byte, imm int32) uint32  { return encodeI(opLoad, 0b001, rd, rs1, imm) }
func iLW(rd, rs1 byte, imm int32) uint32  { return encodeI(opLoad, 0b010, rd, rs1, imm) }
func iLD(rd, rs1 byte, imm int32) uint32  { return encodeI(opLoad, 0b011, rd, rs1, imm) }
func iLBU(rd, rs1 byte, imm int32) uint32 { return encodeI(opLoad, 0b100, rd, rs1, imm) }
func iLHU(rd, rs1 byte, imm int32) uint32 { return encodeI(opLoad, 0b101, rd, rs1, imm) }
func iLWU(rd, rs1 byte, imm int32) uint32 { return encodeI(opLoad, 0b110, rd, rs1, imm) }

func sSB(rs1, rs2 byte, imm int32) uint32 { return encodeS(opStore, 0b000, rs1, rs2, imm) }
func sSH(rs1, rs2 byte, imm int32) uint32 { return encodeS(opStore, 0b001, rs1, rs2, imm) }
func sSW(rs1, rs2 byte, imm int32) uint32 { return encodeS(opStore, 0b010, rs1, rs2, imm) }
func sSD(rs1, rs2 byte, imm int32) uint32 { return encodeS(opStore, 0b011, rs1, rs2, imm) }

func bBEQ(rs1, rs2 byte, imm int32) uint32  { return encodeB(opBType, 0b000, rs1, rs2, imm) }
func bBNE(rs1, rs2 byte, imm int32) uint32  { return encodeB(opBType, 0b001, rs1, rs2, imm) }
func bBLT(rs1, rs2 byte, imm int32) uint32  { return encodeB(opBType, 0b100, rs1, rs2, imm) }
func bBGE(rs1, rs2 byte, imm int32) uint32  { return encodeB(opBType, 0b101, rs1, rs2, imm) }
func bBLTU(rs1, rs2 byte, imm int32) uint32 { return encodeB(opBType, 0b110, rs1, rs2, imm) }
func bBGEU(rs1, rs2 byte, imm int32) uint32 { return encodeB(opBType, 0b111, rs1, rs2, imm) }

func uLUI(rd byte, imm20 uint32) uint32   { return encodeU(opLUI, rd, imm20) }
func uAUIPC(rd byte, imm20 uint32) uint32 { return encodeU(opAUIPC, rd, imm20) }

func jJAL(rd byte, imm21 int32) uint32 { return encodeJ(opJAL, rd, imm21) }
func iJALR(rd, rs1 byte, imm int32) uint32 {
	return encodeI(opJALR, 0b000, rd, rs1, imm)
}

func csrCSRRW(rd, rs1 byte, csrIdx uint32) uint32 { return encodeI(opSystem, 0b001, rd, rs1, int32(csrIdx)) }
func csrCSRRS(rd, rs1 byte, csrIdx uint32) uint32 { return encodeI(opSystem, 0b010, rd, rs1, int32(csrIdx)) }
func csrCSRRC(rd, rs1 byte, csrIdx uint32) uint32 { return encodeI(opSystem, 0b011, rd, rs1, int32(csrIdx)) }
func csrCSRRWI(rd, zimm byte, csrIdx uint32) uint32 {
	return encodeI(opSystem, 0b101, rd, zimm, int32(csrIdx))
}
func csrCSRRSI(rd, zimm byte, csrIdx uint32) uint32 {
	return encodeI(opSystem, 0b110, rd, zimm, int32(csrIdx))
}
func csrCSRRCI(rd, zimm byte, csrIdx uint32) uint32 {
	return encodeI(opSystem, 0b111, rd, zimm, int32(csrIdx))
}

// ret is jalr x0, ra, 0 — the convention the loader's halt sentinel relies on.
func ret() uint32 { return iJALR(0, regRA, 0) }
