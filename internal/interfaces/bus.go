package interfaces

// Space selects the instruction or data view of the address space.
type Space uint8

const (
	SpaceInstruction Space = iota
	SpaceData
)

func (s Space) String() string {
	if s == SpaceInstruction {
		return "instruction"
	}
	return "data"
}

// InsnFetcher reads instruction words in target byte order. Faults are
// reported as instruction-space faults.
type InsnFetcher interface {
	FetchInsn(addr uint32, width int) (uint64, error)
}

// DataMemory is the load/store primitive the semantic layer calls for
// every memory micro-operation. Values are right-aligned.
type DataMemory interface {
	Read(space Space, addr uint32, width int) (uint64, error)
	Write(space Space, addr uint32, width int, value uint64) error
}

// BusInterface is the full surface a CPU needs from the bus.
type BusInterface interface {
	InsnFetcher
	DataMemory
}
