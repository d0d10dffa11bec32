package interfaces

type RegistersInterface interface {
	GetReg(uint8) uint32
	SetReg(uint8, uint32)
	GetSpecial(uint8) uint32
	SetSpecial(uint8, uint32)
	GetPC() uint32
	SetPC(uint32)
	GetFlagC() bool
	GetFlagV() bool
	GetFlagZ() bool
	GetFlagN() bool
	SetFlagC(bool)
	SetFlagV(bool)
	SetFlagZ(bool)
	SetFlagN(bool)
}
