// cpu.go - register file, CSR file, and the fetch/decode/execute loop
package main

import "fmt"

const (
	numGeneralRegs = 32
	numCSRs        = 4096

	// HaltSentinel is the return address the loader plants in ra. A
	// guest "ret" (jalr zero, ra, 0) that lands here terminates the run.
	HaltSentinel uint64 = 0xFFFF_FFFF_FFFF_FFFE
)

// CPU holds the full state of one RV64I hart: the general register file,
// the control/status register file, the program counter, the next program
// counter, and the bus it executes against.
type CPU struct {
	regs   [numGeneralRegs]uint64
	csrs   [numCSRs]uint64
	PC     uint64
	npc    uint64
	bus    *Bus
	Trace  bool // when true, Step prints a disassembled line per instruction
}

// NewCPU constructs a CPU wired to bus, with all state zeroed.
func NewCPU(bus *Bus) *CPU {
	return &CPU{bus: bus}
}

// Bus exposes the underlying bus, used by the emulator façade to place
// loaded segments before the first fetch.
func (c *CPU) Bus() *Bus { return c.bus }

// reg reads general register idx. Register 0 always reads as zero
// regardless of what NewCPU or prior instructions may have stored there.
func (c *CPU) reg(idx byte) uint64 {
	if idx == regZero {
		return 0
	}
	return c.regs[idx]
}

// setReg writes val to general register idx. Writes to register 0 are
// silently dropped; together with reg's read-side check this keeps
// register 0 reading as zero.
func (c *CPU) setReg(idx byte, val uint64) {
	if idx == regZero {
		return
	}
	c.regs[idx] = val
}

// csr reads control/status register idx. An out-of-range index is a
// programmer error in this engine, not a guest-triggerable fault, and is
// therefore a panic rather than a returned error.
func (c *CPU) csr(idx uint32) uint64 {
	return c.csrs[idx]
}

func (c *CPU) setCSR(idx uint32, val uint64) {
	c.csrs[idx] = val
}

// fetch reads the 32-bit little-endian instruction word at PC.
func (c *CPU) fetch() (uint32, error) {
	word, err := c.bus.Read(c.PC, WidthWord)
	if err != nil {
		return 0, fmt.Errorf("fetch at pc=0x%x: %w", c.PC, err)
	}
	return uint32(word), nil
}

// cycle runs exactly one fetch/decode/execute/advance step. It returns
// halted=true if PC equals the halt sentinel at loop head, in which case
// nothing else happens this cycle.
func (c *CPU) cycle() (halted bool, err error) {
	if c.PC == HaltSentinel {
		return true, nil
	}
	word, err := c.fetch()
	if err != nil {
		return false, err
	}
	c.npc = c.PC + 4
	if err := c.execute(word); err != nil {
		return false, err
	}
	c.PC = c.npc
	return false, nil
}

// Run executes instructions until the halt sentinel is reached or a fatal
// error occurs. It returns the number of instructions executed, not
// counting the halted step itself.
func (c *CPU) Run() (uint64, error) {
	var count uint64
	for {
		halted, err := c.cycle()
		if err != nil {
			return count, err
		}
		if halted {
			return count, nil
		}
		count++
	}
}

// Step executes at most n instructions, stopping early if the halt
// sentinel is reached. When c.Trace is set, each executed instruction is
// printed in disassembled form before it runs. It returns the number of
// instructions actually executed and whether the run halted.
func (c *CPU) Step(n uint64) (executed uint64, halted bool, err error) {
	for executed < n {
		if c.PC == HaltSentinel {
			return executed, true, nil
		}
		if c.Trace {
			word, ferr := c.fetch()
			if ferr != nil {
				return executed, false, ferr
			}
			fmt.Printf("0x%016x: %s\n", c.PC, Disassemble(word))
		}
		h, err := c.cycle()
		if err != nil {
			return executed, false, err
		}
		if h {
			return executed, true, nil
		}
		executed++
	}
	return executed, false, nil
}
