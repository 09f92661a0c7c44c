// memops.go - loads and stores; effective address is always rs1 + sign-extended imm
package main

// execLoad handles LB, LH, LW, LD, LBU, LHU, LWU.
func (c *CPU) execLoad(d decoded) error {
	addr := uint64(int64(c.reg(d.rs1)) + int64(d.imm12))

	var width AccessWidth
	signed := false
	switch d.funct3 {
	case 0b000: // LB
		width, signed = WidthByte, true
	case 0b001: // LH
		width, signed = WidthHalf, true
	case 0b010: // LW
		width, signed = WidthWord, true
	case 0b011: // LD
		width, signed = WidthDouble, false
	case 0b100: // LBU
		width, signed = WidthByte, false
	case 0b101: // LHU
		width, signed = WidthHalf, false
	case 0b110: // LWU
		width, signed = WidthWord, false
	default:
		return illegalInstruction(d.raw, c.PC)
	}

	raw, err := c.bus.Read(addr, width)
	if err != nil {
		return err
	}
	value := raw
	if signed && width != WidthDouble {
		value = uint64(signExtend(raw, uint(width)*8))
	}
	c.setReg(d.rd, value)
	return nil
}

// execStore handles SB, SH, SW, SD.
func (c *CPU) execStore(d decoded) error {
	addr := uint64(int64(c.reg(d.rs1)) + sImm(d.funct7, d.imm5))
	value := c.reg(d.rs2)

	var width AccessWidth
	switch d.funct3 {
	case 0b000:
		width = WidthByte
	case 0b001:
		width = WidthHalf
	case 0b010:
		width = WidthWord
	case 0b011:
		width = WidthDouble
	default:
		return illegalInstruction(d.raw, c.PC)
	}
	return c.bus.Write(value, addr, width)
}
