package cpu

// Args is the argument buffer for one decoded instruction. The concrete
// type is fixed by the descriptor's Sfmt, so a semantic routine can only
// read the fields its format actually has.
type Args interface {
	isArgs()
}

// ArgsEmpty carries no fields (rfe, halt, the virtual instructions).
type ArgsEmpty struct{}

// ArgsRR is a register pair: Operand1 is bits 3..0 (Rs), Operand2 bits
// 15..12 (Rd, or a special register number for the move-special forms).
type ArgsRR struct {
	Operand1 uint8
	Operand2 uint8
}

// ArgsMem addresses memory through [Operand1], post-incremented when
// MemMode is 1.
type ArgsMem struct {
	Operand1 uint8
	Operand2 uint8
	MemMode  uint8
}

// ArgsTest is a memory operand without a register destination.
type ArgsTest struct {
	Operand1 uint8
	MemMode  uint8
}

// ArgsS6 is a signed 6-bit quick immediate.
type ArgsS6 struct {
	Operand2 uint8
	S6       int32
}

// ArgsU6 is an unsigned 6-bit quick immediate.
type ArgsU6 struct {
	Operand2 uint8
	U6       uint32
}

// ArgsU5 is a 5-bit shift count or bit number.
type ArgsU5 struct {
	Operand2 uint8
	U5       uint32
}

// ArgsS8 is a signed 8-bit offset.
type ArgsS8 struct {
	Operand2 uint8
	S8       int32
}

// ArgsConst is an immediate taken from the words following the
// instruction. Size is the operand size (1, 2 or 4); byte and word
// immediates occupy a full 16-bit word and Imm holds all of it.
type ArgsConst struct {
	Operand2 uint8
	Imm      uint32
	Size     int
}

// ArgsPCRel holds an already resolved PC-relative address. For the
// conditional branches Operand2 is the condition code.
type ArgsPCRel struct {
	Operand2 uint8
	Target   uint32
}

// ArgsBranch is an unconditional PC-relative branch.
type ArgsBranch struct {
	Target uint32
}

// ArgsSetf is the flag mask of setf/clearf, bits in CCS order.
type ArgsSetf struct {
	Mask uint8
}

type ArgsBreak struct {
	U4 uint8
}

// ArgsJumpP names the special register holding the jump target.
type ArgsJumpP struct {
	Operand2 uint8
}

type ArgsFidx struct {
	Operand1 uint8
}

func (ArgsEmpty) isArgs()  {}
func (ArgsRR) isArgs()     {}
func (ArgsMem) isArgs()    {}
func (ArgsTest) isArgs()   {}
func (ArgsS6) isArgs()     {}
func (ArgsU6) isArgs()     {}
func (ArgsU5) isArgs()     {}
func (ArgsS8) isArgs()     {}
func (ArgsConst) isArgs()  {}
func (ArgsPCRel) isArgs()  {}
func (ArgsBranch) isArgs() {}
func (ArgsSetf) isArgs()   {}
func (ArgsBreak) isArgs()  {}
func (ArgsJumpP) isArgs()  {}
func (ArgsFidx) isArgs()   {}
