package interfaces

// MemoryDevice represents a component attached to the bus that backs one
// contiguous address range. Addresses passed to Read8/Write8 are absolute.
type MemoryDevice interface {
	Read8(addr uint32) byte
	Write8(addr uint32, value byte)
	Base() uint32
	Size() uint32
	ReadOnly() bool
	Contains(addr uint32) bool // Indicates if this device handles the given address
}
