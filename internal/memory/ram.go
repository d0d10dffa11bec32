package memory

import (
	"fmt"
)

// RAM is a read/write byte-addressed region.
type RAM struct {
	span
	data []byte
}

func NewRAM(base, size uint32) *RAM {
	return &RAM{
		span: span{base: base, size: size},
		data: make([]byte, size),
	}
}

func (r *RAM) Read8(addr uint32) uint8 {
	return r.data[r.offset("RAM", addr)]
}

func (r *RAM) Write8(addr uint32, value uint8) {
	r.data[r.offset("RAM", addr)] = value
}

func (r *RAM) ReadOnly() bool { return false }

// Load copies an image into the region starting at addr.
func (r *RAM) Load(addr uint32, image []byte) error {
	if !r.Contains(addr) || uint64(addr-r.base)+uint64(len(image)) > uint64(r.size) {
		return fmt.Errorf("image of %d bytes at 0x%08x does not fit RAM %s", len(image), addr, r.span)
	}
	copy(r.data[addr-r.base:], image)
	return nil
}
