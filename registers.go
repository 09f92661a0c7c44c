// registers.go - general register ABI names and introspection snapshot
package main

// RegNames gives the canonical ABI name for each of the 32 general
// registers, in index order.
var RegNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

const (
	regZero = 0
	regRA   = 1
	regSP   = 2
	regGP   = 3
)

// RegisterInfo describes a single machine register for display purposes,
// grounded on the teacher's debug_interface.go shape of the same name.
type RegisterInfo struct {
	Name     string
	BitWidth int
	Value    uint64
	Group    string
}

// Snapshot returns PC followed by all 32 general registers, in display order.
func (c *CPU) Snapshot() []RegisterInfo {
	regs := make([]RegisterInfo, 0, 33)
	regs = append(regs, RegisterInfo{Name: "pc", BitWidth: 64, Value: c.PC, Group: "general"})
	for i, name := range RegNames {
		regs = append(regs, RegisterInfo{Name: name, BitWidth: 64, Value: c.regs[i], Group: "general"})
	}
	return regs
}
