package memory

import (
	"fmt"
)

// Default memory map of the simulated board.
const (
	RAM_START     = 0x00000000
	RAM_SIZE      = 0x00800000 // 8MB
	RAM_END       = RAM_START + RAM_SIZE - 1
	BOOTROM_START = 0x80000000
	IO_START      = 0xB0000000
	IO_SIZE       = 0x00000100
	IO_END        = IO_START + IO_SIZE - 1
)

// span is the address range shared by every backing region.
type span struct {
	base uint32
	size uint32
}

func (s span) Base() uint32   { return s.base }
func (s span) Size() uint32   { return s.size }
func (s span) End() uint32    { return s.base + s.size - 1 }
func (s span) String() string { return fmt.Sprintf("[0x%08x-0x%08x]", s.base, s.End()) }

func (s span) Contains(addr uint32) bool {
	return addr >= s.base && addr-s.base < s.size
}

// offset panics when the bus routes an address the region does not own.
func (s span) offset(kind string, addr uint32) uint32 {
	if !s.Contains(addr) {
		panic(fmt.Sprintf("%s: access to out-of-bounds address 0x%08X, region %s", kind, addr, s))
	}
	return addr - s.base
}
