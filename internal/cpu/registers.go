package cpu

import (
	"GoCRIS/internal/interfaces"
	"GoCRIS/util/convert"
	"strconv"
)

// ACR is the address calculation register, R15.
const ACR = 15

// Special registers P0-P15.
const (
	SR_BZ  = 0 // reads as zero, byte
	SR_VR  = 1 // version
	SR_PID = 2
	SR_SRS = 3 // selects the support-function bank
	SR_WZ  = 4 // reads as zero, word
	SR_EXS = 5
	SR_EDA = 6
	SR_MOF = 7 // multiply overflow
	SR_DZ  = 8 // reads as zero, dword
	SR_EBP = 9
	SR_ERP = 10
	SR_SRP = 11 // subroutine return pointer
	SR_NRP = 12
	SR_CCS = 13
	SR_USP = 14
	SR_SPC = 15
)

var specialNames = [16]string{
	"bz", "vr", "pid", "srs", "wz", "exs", "eda", "mof",
	"dz", "ebp", "erp", "srp", "nrp", "ccs", "usp", "spc",
}

// CCS flag bits.
const (
	FLAG_C = 0
	FLAG_V = 1
	FLAG_Z = 2
	FLAG_N = 3
	FLAG_X = 4
	FLAG_I = 5
	FLAG_U = 6
	FLAG_P = 7
)

const (
	VERSION_V10 = 10
	VERSION_V32 = 32
)

// Registers holds the architectural register state of one CRIS core.
// R15 is ACR; the PC is separate. The zero registers BZ, WZ and DZ and the
// version register are not stored.
type Registers struct {
	R  [16]uint32
	P  [16]uint32
	PC uint32
	// SS is the support-function register file, banked by SRS.
	SS [4][16]uint32

	version uint32
}

var _ interfaces.RegistersInterface = (*Registers)(nil)

// NewRegisters returns a zeroed register file for the given core version.
func NewRegisters(version uint32) *Registers {
	return &Registers{version: version}
}

func (r *Registers) GetReg(regNum uint8) uint32 {
	if regNum > 15 {
		panic("read from undefined register R" + strconv.Itoa(int(regNum)))
	}
	return r.R[regNum]
}

func (r *Registers) SetReg(regNum uint8, value uint32) {
	if regNum > 15 {
		panic("write to undefined register R" + strconv.Itoa(int(regNum)))
	}
	r.R[regNum] = value
}

// GetSpecial reads P0-P15.
func (r *Registers) GetSpecial(regNum uint8) uint32 {
	switch regNum {
	case SR_BZ, SR_WZ, SR_DZ:
		return 0
	case SR_VR:
		return r.version
	}
	if regNum > 15 {
		panic("read from undefined special register P" + strconv.Itoa(int(regNum)))
	}
	return r.P[regNum]
}

// SetSpecial writes P0-P15. Writes to the constant registers are dropped.
func (r *Registers) SetSpecial(regNum uint8, value uint32) {
	switch regNum {
	case SR_BZ, SR_WZ, SR_DZ, SR_VR:
		return
	case SR_SRS:
		value &= 3
	}
	if regNum > 15 {
		panic("write to undefined special register P" + strconv.Itoa(int(regNum)))
	}
	r.P[regNum] = value
}

// SpecialSize is the memory operand size of a special register.
func SpecialSize(regNum uint8) int {
	switch regNum {
	case SR_BZ, SR_VR, SR_SRS:
		return 1
	case SR_WZ:
		return 2
	}
	return 4
}

// SpecialName is the assembler name of special register regNum.
func SpecialName(regNum uint8) string {
	return specialNames[regNum&15]
}

// Support returns support-function register n of the bank selected by SRS.
func (r *Registers) Support(n uint8) uint32 {
	return r.SS[r.P[SR_SRS]&3][n&15]
}

func (r *Registers) SetSupport(n uint8, value uint32) {
	r.SS[r.P[SR_SRS]&3][n&15] = value
}

func (r *Registers) GetPC() uint32      { return r.PC }
func (r *Registers) SetPC(value uint32) { r.PC = value }

func (r *Registers) flag(bit uint) bool { return (r.P[SR_CCS]>>bit)&1 == 1 }

func (r *Registers) setFlag(bit uint, b bool) {
	r.P[SR_CCS] = convert.SetBit(r.P[SR_CCS], bit, b)
}

func (r *Registers) GetFlagC() bool { return r.flag(FLAG_C) }
func (r *Registers) GetFlagV() bool { return r.flag(FLAG_V) }
func (r *Registers) GetFlagZ() bool { return r.flag(FLAG_Z) }
func (r *Registers) GetFlagN() bool { return r.flag(FLAG_N) }
func (r *Registers) GetFlagX() bool { return r.flag(FLAG_X) }

func (r *Registers) SetFlagC(b bool) { r.setFlag(FLAG_C, b) }
func (r *Registers) SetFlagV(b bool) { r.setFlag(FLAG_V, b) }
func (r *Registers) SetFlagZ(b bool) { r.setFlag(FLAG_Z, b) }
func (r *Registers) SetFlagN(b bool) { r.setFlag(FLAG_N, b) }
func (r *Registers) SetFlagX(b bool) { r.setFlag(FLAG_X, b) }
