// bus.go - routes guest physical addresses to ROM or DRAM
package main

import "fmt"

// Default guest base addresses, overridden by the loader per spec.
const (
	DefaultROMBase  uint64 = 0x0000_0000
	DefaultDRAMBase uint64 = 0x0002_0000
)

// Bus owns the two memory regions the CPU can see: a ROM region that the
// loader populates with the code segment, and a DRAM region that holds
// data plus the stack. Routing compares the target address against the
// DRAM base only — everything below it is ROM, everything at or above it
// is DRAM. The bus never validates that a write below the DRAM base is
// legal; the loader is the only writer expected to target ROM.
type Bus struct {
	rom      *Memory
	romBase  uint64
	dram     *Memory
	dramBase uint64
}

// NewBus constructs a bus with the given ROM and DRAM sizes and default
// base addresses.
func NewBus(romSize, dramSize int) *Bus {
	return &Bus{
		rom:      NewMemory(romSize),
		romBase:  DefaultROMBase,
		dram:     NewMemory(dramSize),
		dramBase: DefaultDRAMBase,
	}
}

// SetROMBase reassigns the guest address where ROM begins.
func (b *Bus) SetROMBase(addr uint64) { b.romBase = addr }

// SetDRAMBase reassigns the guest address where DRAM begins.
func (b *Bus) SetDRAMBase(addr uint64) { b.dramBase = addr }

// DRAMBase reports the current DRAM base address.
func (b *Bus) DRAMBase() uint64 { return b.dramBase }

// DRAMSize reports the current size of the DRAM region.
func (b *Bus) DRAMSize() int { return b.dram.Size() }

// ROMSize reports the current size of the ROM region.
func (b *Bus) ROMSize() int { return b.rom.Size() }

// DRAM exposes the DRAM region directly, used for snapshotting.
func (b *Bus) DRAM() *Memory { return b.dram }

// route returns the region and offset an address maps to.
func (b *Bus) route(addr uint64) (*Memory, uint64) {
	if addr < b.dramBase {
		return b.rom, addr - b.romBase
	}
	return b.dram, addr - b.dramBase
}

// Read loads width bytes from addr, routed to ROM or DRAM.
func (b *Bus) Read(addr uint64, width AccessWidth) (uint64, error) {
	region, offset := b.route(addr)
	v, err := region.Load(offset, width)
	if err != nil {
		return 0, fmt.Errorf("bus: read at 0x%x: %w", addr, err)
	}
	return v, nil
}

// Write stores value at addr, routed to ROM or DRAM.
func (b *Bus) Write(value, addr uint64, width AccessWidth) error {
	region, offset := b.route(addr)
	if err := region.Store(value, offset, width); err != nil {
		return fmt.Errorf("bus: write at 0x%x: %w", addr, err)
	}
	return nil
}

// WriteFromBuffer routes a bulk copy to whichever region addr falls in.
// Used exclusively by the loader to place segment bytes.
func (b *Bus) WriteFromBuffer(addr uint64, data []byte) {
	region, offset := b.route(addr)
	region.StoreBytes(data, offset)
}
