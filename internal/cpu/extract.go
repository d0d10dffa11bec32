package cpu

import (
	"GoCRIS/internal/bitfield"
	"GoCRIS/internal/interfaces"
)

// Instruction fields, LSB0 positions in the 16-bit first word.
var (
	fOperand2 = bitfield.MustField(16, 15, 4)
	fOperand1 = bitfield.MustField(16, 3, 4)
	fMemMode  = bitfield.MustField(16, 10, 1)
	fS6       = bitfield.MustField(16, 5, 6)
	fU6       = bitfield.MustField(16, 5, 6)
	fU5       = bitfield.MustField(16, 4, 5)
	fS8       = bitfield.MustField(16, 7, 8)
	fU4       = bitfield.MustField(16, 3, 4)
	fDisp9Lo  = bitfield.MustField(16, 7, 7)
	fDisp9Hi  = bitfield.MustField(16, 0, 1)
	fImm16    = bitfield.MustField(32, 15, 16)
)

// ExtractContext is what an extractor may consult besides the word itself.
type ExtractContext struct {
	PC       uint32
	Fetch    interfaces.InsnFetcher
	V32      bool // v32 branch offsets are relative to the branch itself
	Prefixed bool
}

// Extractor fills the argument buffer for one format. It may fetch one
// trailing word through ctx.Fetch; a fault from that fetch is returned
// unchanged.
type Extractor func(ctx *ExtractContext, insn uint16) (Args, interfaces.RegUsage, error)

// shape is the field layout shared by a family of formats.
type shape uint8

const (
	shapeEmpty shape = iota
	shapeRR
	shapeMem
	shapeTest
	shapeS6
	shapeU6
	shapeU5
	shapeS8
	shapeConstB
	shapeConstW
	shapeConstD
	shapeLapcD
	shapeLapcq
	shapeBasC
	shapeBccB
	shapeBaB
	shapeBccW
	shapeBaW
	shapeSetf
	shapeBreak
	shapeJumpP
	shapeFidxi
)

// length is the instruction length in bytes including trailing words.
func (s shape) length() int {
	switch s {
	case shapeConstB, shapeConstW, shapeBccW, shapeBaW:
		return 4
	case shapeConstD, shapeLapcD, shapeBasC:
		return 6
	}
	return 2
}

// usage describes which registers a format reads and writes, for the
// profiling sink.
type usage uint16

const (
	uInRs       usage = 1 << iota // reads Rs (operand1)
	uInRd                         // reads Rd (operand2)
	uOutRs                        // writes Rs: post-increment or Rs destination
	uOutRd                        // writes Rd
	uInPs                         // reads special register operand2
	uOutPd                        // writes special register operand2
	uOutMemDest                   // writes Rs when prefixed without post-increment, else Rd
	uInAllGR                      // movem store reads the register block
	uOutAllGR                     // movem load writes the register block
	uOutMOF                       // multiply high word
	uCCS                          // reads and writes CCS
)

func (u usage) resolve(insn uint16, prefixed bool) interfaces.RegUsage {
	var r interfaces.RegUsage
	rs := uint16(1) << fOperand1.Uint(uint64(insn))
	rd := uint16(1) << fOperand2.Uint(uint64(insn))
	if u&uInRs != 0 {
		r.InGR |= rs
	}
	if u&uInRd != 0 {
		r.InGR |= rd
	}
	if u&uOutRs != 0 {
		r.OutGR |= rs
	}
	if u&uOutRd != 0 {
		r.OutGR |= rd
	}
	if u&uInPs != 0 {
		r.InSR |= rd
	}
	if u&uOutPd != 0 {
		r.OutSR |= rd
	}
	if u&uOutMemDest != 0 {
		if prefixed && fMemMode.Uint(uint64(insn)) == 0 {
			r.OutGR |= rs
		} else {
			r.OutGR |= rd
		}
	}
	if u&uInAllGR != 0 {
		r.InGR = 0xffff
	}
	if u&uOutAllGR != 0 {
		r.OutGR = 0xffff
	}
	if u&uOutMOF != 0 {
		r.OutSR |= 1 << SR_MOF
	}
	if u&uCCS != 0 {
		r.InSR |= 1 << SR_CCS
		r.OutSR |= 1 << SR_CCS
	}
	return r
}

type format struct {
	shape shape
	use   usage
}

var formats = [NumSfmts]format{
	SfmtEmpty:         {shapeEmpty, 0},
	SfmtMoveBR:        {shapeRR, uInRs | uOutRd},
	SfmtMoveDR:        {shapeRR, uInRs | uOutRd},
	SfmtMoveq:         {shapeS6, uOutRd},
	SfmtMovsBR:        {shapeRR, uInRs | uOutRd},
	SfmtMovecbr:       {shapeConstB, uOutRd},
	SfmtMovecwr:       {shapeConstW, uOutRd},
	SfmtMovecdr:       {shapeConstD, uOutRd},
	SfmtMovscbr:       {shapeConstB, uOutRd},
	SfmtMovscwr:       {shapeConstW, uOutRd},
	SfmtMovucbr:       {shapeConstB, uOutRd},
	SfmtMovucwr:       {shapeConstW, uOutRd},
	SfmtAddq:          {shapeU6, uInRd | uOutRd},
	SfmtCmpRBR:        {shapeRR, uInRd | uInRs},
	SfmtCmpMBM:        {shapeMem, uInRd | uInRs | uOutRs},
	SfmtCmpMWM:        {shapeMem, uInRd | uInRs | uOutRs},
	SfmtCmpMDM:        {shapeMem, uInRd | uInRs | uOutRs},
	SfmtCmpcbr:        {shapeConstB, uInRd},
	SfmtCmpcwr:        {shapeConstW, uInRd},
	SfmtCmpcdr:        {shapeConstD, uInRd},
	SfmtCmpq:          {shapeS6, uInRd},
	SfmtCmpucbr:       {shapeConstB, uInRd},
	SfmtCmpucwr:       {shapeConstW, uInRd},
	SfmtMoveMBM:       {shapeMem, uInRs | uOutRs | uOutMemDest},
	SfmtMoveMWM:       {shapeMem, uInRs | uOutRs | uOutMemDest},
	SfmtMoveMDM:       {shapeMem, uInRs | uOutRs | uOutMemDest},
	SfmtMovsMBM:       {shapeMem, uInRs | uOutRd | uOutRs},
	SfmtMovsMWM:       {shapeMem, uInRs | uOutRd | uOutRs},
	SfmtMoveRSprv32:   {shapeRR, uInRs | uOutPd},
	SfmtMoveSprRv32:   {shapeRR, uInPs | uOutRs},
	SfmtMoveMSprv32:   {shapeMem, uInRs | uOutPd | uOutRs},
	SfmtMoveCSprv32P2: {shapeConstD, uOutPd},
	SfmtMoveSprMv32:   {shapeMem, uInPs | uInRs | uOutRs},
	SfmtMoveSsR:       {shapeRR, uOutRs},
	SfmtMoveRSs:       {shapeRR, uInRs},
	SfmtMovemRMV32:    {shapeMem, uInRd | uInRs | uInAllGR | uOutRs},
	SfmtMovemMRV32:    {shapeMem, uInRd | uInRs | uOutRs | uOutAllGR},
	SfmtAddBR:         {shapeRR, uInRd | uInRs | uOutRd},
	SfmtAddDR:         {shapeRR, uInRd | uInRs | uOutRd},
	SfmtAddMBM:        {shapeMem, uInRd | uInRs | uOutRs | uOutMemDest},
	SfmtAddMWM:        {shapeMem, uInRd | uInRs | uOutRs | uOutMemDest},
	SfmtAddMDM:        {shapeMem, uInRd | uInRs | uOutRs | uOutMemDest},
	SfmtAddcbr:        {shapeConstB, uInRd | uOutRd},
	SfmtAddcwr:        {shapeConstW, uInRd | uOutRd},
	SfmtAddcdr:        {shapeConstD, uInRd | uOutRd},
	SfmtAddsMBM:       {shapeMem, uInRd | uInRs | uOutRs | uOutMemDest},
	SfmtAddsMWM:       {shapeMem, uInRd | uInRs | uOutRs | uOutMemDest},
	SfmtAddscbr:       {shapeConstB, uInRd | uOutRd},
	SfmtAddscwr:       {shapeConstW, uInRd | uOutRd},
	SfmtAddcM:         {shapeMem, uInRd | uInRs | uOutRs | uOutRd},
	SfmtLapcD:         {shapeLapcD, uOutRd},
	SfmtLapcq:         {shapeLapcq, uOutRd},
	SfmtAddiBR:        {shapeRR, uInRd | uInRs | uOutRs},
	SfmtNegBR:         {shapeRR, uInRs | uOutRd},
	SfmtNegDR:         {shapeRR, uInRs | uOutRd},
	SfmtTestMBM:       {shapeTest, uInRs | uOutRs},
	SfmtTestMWM:       {shapeTest, uInRs | uOutRs},
	SfmtTestMDM:       {shapeTest, uInRs | uOutRs},
	SfmtMoveRMBM:      {shapeMem, uInRd | uInRs | uOutRs},
	SfmtMoveRMWM:      {shapeMem, uInRd | uInRs | uOutRs},
	SfmtMoveRMDM:      {shapeMem, uInRd | uInRs | uOutRs},
	SfmtMulsB:         {shapeRR, uInRd | uInRs | uOutRd | uOutMOF},
	SfmtMcp:           {shapeRR, uInPs | uInRs | uOutRs},
	SfmtDstep:         {shapeRR, uInRd | uInRs | uOutRd},
	SfmtAndBR:         {shapeRR, uInRd | uInRs | uOutRd},
	SfmtAndDR:         {shapeRR, uInRd | uInRs | uOutRd},
	SfmtAndMBM:        {shapeMem, uInRd | uInRs | uOutRs | uOutMemDest},
	SfmtAndMWM:        {shapeMem, uInRd | uInRs | uOutRs | uOutMemDest},
	SfmtAndMDM:        {shapeMem, uInRd | uInRs | uOutRs | uOutMemDest},
	SfmtAndcbr:        {shapeConstB, uInRd | uOutRd},
	SfmtAndcwr:        {shapeConstW, uInRd | uOutRd},
	SfmtAndcdr:        {shapeConstD, uInRd | uOutRd},
	SfmtAndq:          {shapeS6, uInRd | uOutRd},
	SfmtSwap:          {shapeRR, uInRs | uOutRs},
	SfmtAsrq:          {shapeU5, uInRd | uOutRd},
	SfmtLsrrBR:        {shapeRR, uInRd | uInRs | uOutRd},
	SfmtLsrrDR:        {shapeRR, uInRd | uInRs | uOutRd},
	SfmtBtst:          {shapeRR, uInRd | uInRs},
	SfmtBtstq:         {shapeU5, uInRd},
	SfmtSetf:          {shapeSetf, 0},
	SfmtRfe:           {shapeEmpty, uCCS},
	SfmtSfe:           {shapeEmpty, uCCS},
	SfmtRfg:           {shapeEmpty, 0},
	SfmtRfn:           {shapeEmpty, uCCS},
	SfmtHalt:          {shapeEmpty, 0},
	SfmtBccB:          {shapeBccB, 0},
	SfmtBaB:           {shapeBaB, 0},
	SfmtBccW:          {shapeBccW, 0},
	SfmtBaW:           {shapeBaW, 0},
	SfmtJasR:          {shapeRR, uInRs | uOutPd},
	SfmtJasC:          {shapeConstD, uOutPd},
	SfmtJumpP:         {shapeJumpP, uInPs},
	SfmtBasC:          {shapeBasC, uOutPd},
	SfmtJascR:         {shapeRR, uInRs | uOutPd},
	SfmtBreak:         {shapeBreak, 0},
	SfmtBoundCb:       {shapeConstB, uInRd | uOutRd},
	SfmtBoundCw:       {shapeConstW, uInRd | uOutRd},
	SfmtBoundCd:       {shapeConstD, uInRd | uOutRd},
	SfmtScc:           {shapeRR, uOutRs},
	SfmtAddoq:         {shapeS8, uInRd},
	SfmtAddoMBM:       {shapeMem, uInRd | uInRs | uOutRs},
	SfmtAddoMWM:       {shapeMem, uInRd | uInRs | uOutRs},
	SfmtAddoMDM:       {shapeMem, uInRd | uInRs | uOutRs},
	SfmtAddoCb:        {shapeConstB, uInRd},
	SfmtAddoCw:        {shapeConstW, uInRd},
	SfmtAddoCd:        {shapeConstD, uInRd},
	SfmtAddiAcrBR:     {shapeRR, uInRd | uInRs},
	SfmtFidxi:         {shapeFidxi, uInRs},
}

func fetchTrailing(ctx *ExtractContext, width int) (uint32, error) {
	v, err := ctx.Fetch.FetchInsn(ctx.PC+2, width)
	return uint32(v), err
}

func (s shape) extract(ctx *ExtractContext, insn uint16) (Args, error) {
	w := uint64(insn)
	op1 := uint8(fOperand1.Uint(w))
	op2 := uint8(fOperand2.Uint(w))

	switch s {
	case shapeEmpty:
		return ArgsEmpty{}, nil
	case shapeRR:
		return ArgsRR{Operand1: op1, Operand2: op2}, nil
	case shapeMem:
		return ArgsMem{Operand1: op1, Operand2: op2, MemMode: uint8(fMemMode.Uint(w))}, nil
	case shapeTest:
		return ArgsTest{Operand1: op1, MemMode: uint8(fMemMode.Uint(w))}, nil
	case shapeS6:
		return ArgsS6{Operand2: op2, S6: int32(fS6.Sint(w))}, nil
	case shapeU6:
		return ArgsU6{Operand2: op2, U6: uint32(fU6.Uint(w))}, nil
	case shapeU5:
		return ArgsU5{Operand2: op2, U5: uint32(fU5.Uint(w))}, nil
	case shapeS8:
		return ArgsS8{Operand2: op2, S8: int32(fS8.Sint(w))}, nil
	case shapeConstB, shapeConstW:
		word, err := fetchTrailing(ctx, 2)
		if err != nil {
			return nil, err
		}
		size := 1
		if s == shapeConstW {
			size = 2
		}
		return ArgsConst{Operand2: op2, Imm: uint32(fImm16.Uint(uint64(word))), Size: size}, nil
	case shapeConstD:
		dword, err := fetchTrailing(ctx, 4)
		if err != nil {
			return nil, err
		}
		return ArgsConst{Operand2: op2, Imm: dword, Size: 4}, nil
	case shapeLapcD, shapeBasC:
		dword, err := fetchTrailing(ctx, 4)
		if err != nil {
			return nil, err
		}
		return ArgsPCRel{Operand2: op2, Target: ctx.PC + dword}, nil
	case shapeLapcq:
		return ArgsPCRel{Operand2: op2, Target: ctx.PC + uint32(fOperand1.Uint(w))<<1}, nil
	case shapeBccB, shapeBaB:
		target := ctx.PC + disp9(w) + versionOffset(ctx, 2)
		if s == shapeBaB {
			return ArgsBranch{Target: target}, nil
		}
		return ArgsPCRel{Operand2: op2, Target: target}, nil
	case shapeBccW, shapeBaW:
		word, err := fetchTrailing(ctx, 2)
		if err != nil {
			return nil, err
		}
		target := uint32(int32(int16(word))) + ctx.PC + versionOffset(ctx, 4)
		if s == shapeBaW {
			return ArgsBranch{Target: target}, nil
		}
		return ArgsPCRel{Operand2: op2, Target: target}, nil
	case shapeSetf:
		return ArgsSetf{Mask: (op1 | op2<<4) & 0xff}, nil
	case shapeBreak:
		return ArgsBreak{U4: uint8(fU4.Uint(w))}, nil
	case shapeJumpP:
		return ArgsJumpP{Operand2: op2}, nil
	case shapeFidxi:
		return ArgsFidx{Operand1: op1}, nil
	}
	panic("cpu: unhandled field shape")
}

// disp9 is the 9-bit branch displacement: bits 7..1 are the offset in
// halfwords, bit 0 the sign.
func disp9(w uint64) uint32 {
	abs := uint32(fDisp9Lo.Uint(w)) << 1
	if fDisp9Hi.Sint(w) != 0 {
		abs |= ^uint32(255)
	}
	return abs
}

// versionOffset is the extra branch-base adjustment of pre-v32 cores.
func versionOffset(ctx *ExtractContext, n uint32) uint32 {
	if ctx.V32 {
		return 0
	}
	return n
}

func makeExtractor(f format) Extractor {
	return func(ctx *ExtractContext, insn uint16) (Args, interfaces.RegUsage, error) {
		args, err := f.shape.extract(ctx, insn)
		if err != nil {
			return nil, interfaces.RegUsage{}, err
		}
		return args, f.use.resolve(insn, ctx.Prefixed), nil
	}
}

// extractors is indexed by Sfmt.
var extractors = func() [NumSfmts]Extractor {
	var e [NumSfmts]Extractor
	for i, f := range formats {
		e[i] = makeExtractor(f)
	}
	return e
}()
