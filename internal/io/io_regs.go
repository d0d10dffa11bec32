package io

import (
	stdio "io"

	"GoCRIS/internal/memory"
	"GoCRIS/util/dbg"
)

// Register offsets within the peripheral block.
const (
	REG_TXDATA  = 0x00 // write: transmit one byte on the console
	REG_STATUS  = 0x04 // read: bit 0 transmitter ready, bit 1 transmit error
	REG_SCRATCH = 0x10 // start of the general scratch registers
)

const (
	STATUS_TX_READY = 1 << 0
	STATUS_TX_ERROR = 1 << 1
)

// IORegs is the memory-mapped peripheral bank: a console transmitter and
// a block of scratch registers software may use freely.
type IORegs struct {
	base uint32
	regs [memory.IO_SIZE]byte
	out  stdio.Writer
	sent uint64
	err  error
}

// NewIORegs maps the bank at base. A nil out discards console output.
func NewIORegs(base uint32, out stdio.Writer) *IORegs {
	if out == nil {
		out = stdio.Discard
	}
	i := &IORegs{base: base, out: out}
	i.regs[REG_STATUS] = STATUS_TX_READY
	return i
}

func (i *IORegs) Base() uint32   { return i.base }
func (i *IORegs) Size() uint32   { return uint32(len(i.regs)) }
func (i *IORegs) ReadOnly() bool { return false }

func (i *IORegs) Contains(addr uint32) bool {
	return addr >= i.base && addr-i.base < i.Size()
}

func (i *IORegs) Read8(addr uint32) uint8 {
	return i.GetReg(addr - i.base)
}

func (i *IORegs) Write8(addr uint32, value uint8) {
	off := addr - i.base
	switch off {
	case REG_TXDATA:
		i.transmit(value)
	case REG_STATUS:
		// read-only
		dbg.Printf("IO: ignored write 0x%02x to status register\n", value)
	default:
		i.SetReg(off, value)
	}
}

func (i *IORegs) transmit(b byte) {
	if _, err := i.out.Write([]byte{b}); err != nil {
		i.err = err
		i.regs[REG_STATUS] |= STATUS_TX_ERROR
		return
	}
	i.sent++
}

func (i *IORegs) GetReg(off uint32) uint8 {
	return i.regs[off]
}

func (i *IORegs) SetReg(off uint32, value uint8) {
	i.regs[off] = value
}

// Sent is the number of bytes transmitted so far.
func (i *IORegs) Sent() uint64 { return i.sent }

// Err is the first console write error, if any.
func (i *IORegs) Err() error { return i.err }
