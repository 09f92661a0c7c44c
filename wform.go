// wform.go - 32-bit "W" forms: operate on the low word, sign-extend the result
package main

// execRType64 handles ADDW, SUBW, SLLW, SRLW, SRAW.
func (c *CPU) execRType64(d decoded) error {
	rs1 := uint32(c.reg(d.rs1))
	rs2 := uint32(c.reg(d.rs2))

	var result int32
	switch {
	case d.funct3 == 0b000 && d.funct7 == 0b0000000: // ADDW
		result = int32(rs1 + rs2)
	case d.funct3 == 0b000 && d.funct7 == 0b0100000: // SUBW
		result = int32(rs1 - rs2)
	case d.funct3 == 0b001 && d.funct7 == 0b0000000: // SLLW
		result = int32(rs1 << (rs2 & 0x1f))
	case d.funct3 == 0b101 && d.funct7 == 0b0000000: // SRLW
		result = int32(rs1 >> (rs2 & 0x1f))
	case d.funct3 == 0b101 && d.funct7 == 0b0100000: // SRAW
		result = int32(rs1) >> (rs2 & 0x1f)
	default:
		return illegalInstruction(d.raw, c.PC)
	}
	c.setReg(d.rd, uint64(int64(result)))
	return nil
}

// execIType64 handles ADDIW, SLLIW, SRLIW, SRAIW.
func (c *CPU) execIType64(d decoded) error {
	rs1 := uint32(c.reg(d.rs1))

	var result int32
	switch d.funct3 {
	case 0b000: // ADDIW
		result = int32(rs1) + d.imm12
	case 0b001: // SLLIW
		shamt := d.raw >> 20 & 0x1f
		result = int32(rs1 << shamt)
	case 0b101: // SRLIW / SRAIW, discriminated by bit 30 of the instruction
		shamt := d.raw >> 20 & 0x1f
		if d.raw&(1<<30) != 0 {
			result = int32(rs1) >> shamt // SRAIW
		} else {
			result = int32(rs1 >> shamt) // SRLIW
		}
	default:
		return illegalInstruction(d.raw, c.PC)
	}
	c.setReg(d.rd, uint64(int64(result)))
	return nil
}
