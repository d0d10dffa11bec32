package memory

import (
	"fmt"
)

// ROM is a read-only region holding a boot image. The bus refuses stores
// before they reach it.
type ROM struct {
	span
	data []byte // The loaded image
}

// NewROM maps data at base. The region is exactly as large as the image.
func NewROM(base uint32, data []byte) *ROM {
	return &ROM{
		span: span{base: base, size: uint32(len(data))},
		data: data,
	}
}

func (r *ROM) Read8(addr uint32) byte {
	return r.data[r.offset("ROM", addr)]
}

// Write8 panics; the bus checks ReadOnly and reports a bus error instead.
func (r *ROM) Write8(addr uint32, value byte) {
	panic(fmt.Sprintf("ROM: Attempted to write 0x%X to read-only ROM at address 0x%X", value, addr))
}

func (r *ROM) ReadOnly() bool { return true }
