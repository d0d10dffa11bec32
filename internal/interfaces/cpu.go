package interfaces

// CPUInterface represents one simulated CRIS v32 core.
type CPUInterface interface {
	Registers() RegistersInterface
	Bus() BusInterface
	Reset(pc uint32)
	Step() error
}
