// emulator.go - glues the loader, CPU, and bus into the public run/step surface
package main

import (
	"fmt"
	"os"
	"time"
)

const defaultDRAMSize = 4096

// Emulator owns a CPU and exposes the operations the CLI and the
// interactive shell drive: load a program, run it to completion, single
// step it, and snapshot its memory.
type Emulator struct {
	cpu *CPU
}

// NewEmulator constructs an emulator with a freshly sized DRAM region. ROM
// starts empty and is grown by the loader to fit the code segment.
func NewEmulator(dramSize int) *Emulator {
	bus := NewBus(0, dramSize)
	return &Emulator{cpu: NewCPU(bus)}
}

// CPU exposes the underlying CPU for introspection (register dumps, trace
// toggling).
func (e *Emulator) CPU() *CPU { return e.cpu }

// LoadProgram reads filename as a 64-bit little-endian ELF file, places its
// code and data segments into the bus's ROM and DRAM regions, and sets up
// the initial register state spec.md §4.3 describes: PC at the entry
// point, ra holding the halt sentinel, sp at the top of DRAM, gp at the
// midpoint of DRAM.
func (e *Emulator) LoadProgram(filename string) error {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", filename, err)
	}

	img, err := ParseELF(raw)
	if err != nil {
		return fmt.Errorf("could not parse %s: %w", filename, err)
	}

	bus := e.cpu.Bus()
	bus.SetROMBase(img.Code.GuestAddr)
	bus.SetDRAMBase(img.Data.GuestAddr)

	if img.Code.FileSize > 0 {
		bus.WriteFromBuffer(img.Code.GuestAddr, raw[img.Code.FileOffset:img.Code.FileOffset+img.Code.FileSize])
	}
	if img.Data.FileSize > 0 {
		bus.WriteFromBuffer(img.Data.GuestAddr, raw[img.Data.FileOffset:img.Data.FileOffset+img.Data.FileSize])
	}

	e.cpu.PC = img.Entry
	e.cpu.setReg(regRA, HaltSentinel)
	dramTop := img.Data.GuestAddr + uint64(bus.DRAMSize())
	e.cpu.setReg(regSP, dramTop)
	e.cpu.setReg(regGP, img.Data.GuestAddr+uint64(bus.DRAMSize())/2)

	return nil
}

// Run executes the loaded program to completion and reports the
// instruction count and host wall-clock time spent executing it.
func (e *Emulator) Run() (count uint64, elapsed time.Duration, err error) {
	start := time.Now()
	count, err = e.cpu.Run()
	return count, time.Since(start), err
}

// Step executes at most n instructions of the loaded program.
func (e *Emulator) Step(n uint64) (executed uint64, halted bool, err error) {
	return e.cpu.Step(n)
}

// DumpMemory writes the full DRAM buffer to path as raw bytes.
func (e *Emulator) DumpMemory(path string) error {
	return e.cpu.Bus().DRAM().Dump(path)
}
