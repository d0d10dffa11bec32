package cpu

// Attr is a set of instruction attribute flags.
type Attr uint16

const (
	AttrVirtual   Attr = 1 << iota // simulator-internal, never decoded from a real word
	AttrUncondCTI                  // always changes the PC
	AttrCondCTI                    // may change the PC
	AttrDelaySlot                  // the next instruction executes before the transfer
	AttrMemory                     // has a memory operand
	AttrPrefix                     // forms an address for the following instruction
)

func (a Attr) Has(f Attr) bool { return a&f != 0 }

// InsnData is the static, model-independent part of a descriptor.
type InsnData struct {
	Mnemonic string
	BitSize  int
	Attrs    Attr
}

type insnEntry struct {
	num  IType
	sfmt Sfmt
	data InsnData
}

// insnTable lists every instruction the decoder can produce with its
// field format. Multiple ITypes share a format when their fields match.
var insnTable = [...]insnEntry{
	{XInvalid, SfmtEmpty, InsnData{"--invalid--", 16, AttrVirtual}},
	{XAfter, SfmtEmpty, InsnData{"--after--", 16, AttrVirtual}},
	{XBefore, SfmtEmpty, InsnData{"--before--", 16, AttrVirtual}},
	{XCtiChain, SfmtEmpty, InsnData{"--cti-chain--", 16, AttrVirtual}},
	{XChain, SfmtEmpty, InsnData{"--chain--", 16, AttrVirtual}},
	{XBegin, SfmtEmpty, InsnData{"--begin--", 16, AttrVirtual}},
	{MoveBR, SfmtMoveBR, InsnData{"move.b", 16, 0}},
	{MoveWR, SfmtMoveBR, InsnData{"move.w", 16, 0}},
	{MoveDR, SfmtMoveDR, InsnData{"move.d", 16, 0}},
	{Moveq, SfmtMoveq, InsnData{"moveq", 16, 0}},
	{MovsBR, SfmtMovsBR, InsnData{"movs.b", 16, 0}},
	{MovsWR, SfmtMovsBR, InsnData{"movs.w", 16, 0}},
	{MovuBR, SfmtMovsBR, InsnData{"movu.b", 16, 0}},
	{MovuWR, SfmtMovsBR, InsnData{"movu.w", 16, 0}},
	{Movecbr, SfmtMovecbr, InsnData{"move.b", 32, 0}},
	{Movecwr, SfmtMovecwr, InsnData{"move.w", 32, 0}},
	{Movecdr, SfmtMovecdr, InsnData{"move.d", 48, 0}},
	{Movscbr, SfmtMovscbr, InsnData{"movs.b", 32, 0}},
	{Movscwr, SfmtMovscwr, InsnData{"movs.w", 32, 0}},
	{Movucbr, SfmtMovucbr, InsnData{"movu.b", 32, 0}},
	{Movucwr, SfmtMovucwr, InsnData{"movu.w", 32, 0}},
	{Addq, SfmtAddq, InsnData{"addq", 16, 0}},
	{Subq, SfmtAddq, InsnData{"subq", 16, 0}},
	{CmpRBR, SfmtCmpRBR, InsnData{"cmp.b", 16, 0}},
	{CmpRWR, SfmtCmpRBR, InsnData{"cmp.w", 16, 0}},
	{CmpRDR, SfmtCmpRBR, InsnData{"cmp.d", 16, 0}},
	{CmpMBM, SfmtCmpMBM, InsnData{"cmp.b", 16, AttrMemory}},
	{CmpMWM, SfmtCmpMWM, InsnData{"cmp.w", 16, AttrMemory}},
	{CmpMDM, SfmtCmpMDM, InsnData{"cmp.d", 16, AttrMemory}},
	{Cmpcbr, SfmtCmpcbr, InsnData{"cmp.b", 32, 0}},
	{Cmpcwr, SfmtCmpcwr, InsnData{"cmp.w", 32, 0}},
	{Cmpcdr, SfmtCmpcdr, InsnData{"cmp.d", 48, 0}},
	{Cmpq, SfmtCmpq, InsnData{"cmpq", 16, 0}},
	{CmpsMBM, SfmtCmpMBM, InsnData{"cmps.b", 16, AttrMemory}},
	{CmpsMWM, SfmtCmpMWM, InsnData{"cmps.w", 16, AttrMemory}},
	{Cmpscbr, SfmtCmpcbr, InsnData{"cmps.b", 32, 0}},
	{Cmpscwr, SfmtCmpcwr, InsnData{"cmps.w", 32, 0}},
	{CmpuMBM, SfmtCmpMBM, InsnData{"cmpu.b", 16, AttrMemory}},
	{CmpuMWM, SfmtCmpMWM, InsnData{"cmpu.w", 16, AttrMemory}},
	{Cmpucbr, SfmtCmpucbr, InsnData{"cmpu.b", 32, 0}},
	{Cmpucwr, SfmtCmpucwr, InsnData{"cmpu.w", 32, 0}},
	{MoveMBM, SfmtMoveMBM, InsnData{"move.b", 16, AttrMemory}},
	{MoveMWM, SfmtMoveMWM, InsnData{"move.w", 16, AttrMemory}},
	{MoveMDM, SfmtMoveMDM, InsnData{"move.d", 16, AttrMemory}},
	{MovsMBM, SfmtMovsMBM, InsnData{"movs.b", 16, AttrMemory}},
	{MovsMWM, SfmtMovsMWM, InsnData{"movs.w", 16, AttrMemory}},
	{MovuMBM, SfmtMovsMBM, InsnData{"movu.b", 16, AttrMemory}},
	{MovuMWM, SfmtMovsMWM, InsnData{"movu.w", 16, AttrMemory}},
	{MoveRSprv32, SfmtMoveRSprv32, InsnData{"move", 16, 0}},
	{MoveSprRv32, SfmtMoveSprRv32, InsnData{"move", 16, 0}},
	{MoveMSprv32, SfmtMoveMSprv32, InsnData{"move", 16, AttrMemory}},
	{MoveCSprv32P2, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P3, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P5, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P6, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P7, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P9, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P10, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P11, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P12, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P13, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P14, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveCSprv32P15, SfmtMoveCSprv32P2, InsnData{"move", 48, 0}},
	{MoveSprMv32, SfmtMoveSprMv32, InsnData{"move", 16, AttrMemory}},
	{MoveSsR, SfmtMoveSsR, InsnData{"move", 16, 0}},
	{MoveRSs, SfmtMoveRSs, InsnData{"move", 16, 0}},
	{MovemRMV32, SfmtMovemRMV32, InsnData{"movem", 16, AttrMemory}},
	{MovemMRV32, SfmtMovemMRV32, InsnData{"movem", 16, AttrMemory}},
	{AddBR, SfmtAddBR, InsnData{"add.b", 16, 0}},
	{AddWR, SfmtAddBR, InsnData{"add.w", 16, 0}},
	{AddDR, SfmtAddDR, InsnData{"add.d", 16, 0}},
	{AddMBM, SfmtAddMBM, InsnData{"add.b", 16, AttrMemory}},
	{AddMWM, SfmtAddMWM, InsnData{"add.w", 16, AttrMemory}},
	{AddMDM, SfmtAddMDM, InsnData{"add.d", 16, AttrMemory}},
	{Addcbr, SfmtAddcbr, InsnData{"add.b", 32, 0}},
	{Addcwr, SfmtAddcwr, InsnData{"add.w", 32, 0}},
	{Addcdr, SfmtAddcdr, InsnData{"add.d", 48, 0}},
	{AddsBR, SfmtAddDR, InsnData{"adds.b", 16, 0}},
	{AddsWR, SfmtAddDR, InsnData{"adds.w", 16, 0}},
	{AddsMBM, SfmtAddsMBM, InsnData{"adds.b", 16, AttrMemory}},
	{AddsMWM, SfmtAddsMWM, InsnData{"adds.w", 16, AttrMemory}},
	{Addscbr, SfmtAddscbr, InsnData{"adds.b", 32, 0}},
	{Addscwr, SfmtAddscwr, InsnData{"adds.w", 32, 0}},
	{AdduBR, SfmtAddDR, InsnData{"addu.b", 16, 0}},
	{AdduWR, SfmtAddDR, InsnData{"addu.w", 16, 0}},
	{AdduMBM, SfmtAddsMBM, InsnData{"addu.b", 16, AttrMemory}},
	{AdduMWM, SfmtAddsMWM, InsnData{"addu.w", 16, AttrMemory}},
	{Adducbr, SfmtAddscbr, InsnData{"addu.b", 32, 0}},
	{Adducwr, SfmtAddscwr, InsnData{"addu.w", 32, 0}},
	{SubBR, SfmtAddBR, InsnData{"sub.b", 16, 0}},
	{SubWR, SfmtAddBR, InsnData{"sub.w", 16, 0}},
	{SubDR, SfmtAddDR, InsnData{"sub.d", 16, 0}},
	{SubMBM, SfmtAddMBM, InsnData{"sub.b", 16, AttrMemory}},
	{SubMWM, SfmtAddMWM, InsnData{"sub.w", 16, AttrMemory}},
	{SubMDM, SfmtAddMDM, InsnData{"sub.d", 16, AttrMemory}},
	{Subcbr, SfmtAddcbr, InsnData{"sub.b", 32, 0}},
	{Subcwr, SfmtAddcwr, InsnData{"sub.w", 32, 0}},
	{Subcdr, SfmtAddcdr, InsnData{"sub.d", 48, 0}},
	{SubsBR, SfmtAddDR, InsnData{"subs.b", 16, 0}},
	{SubsWR, SfmtAddDR, InsnData{"subs.w", 16, 0}},
	{SubsMBM, SfmtAddsMBM, InsnData{"subs.b", 16, AttrMemory}},
	{SubsMWM, SfmtAddsMWM, InsnData{"subs.w", 16, AttrMemory}},
	{Subscbr, SfmtAddscbr, InsnData{"subs.b", 32, 0}},
	{Subscwr, SfmtAddscwr, InsnData{"subs.w", 32, 0}},
	{SubuBR, SfmtAddDR, InsnData{"subu.b", 16, 0}},
	{SubuWR, SfmtAddDR, InsnData{"subu.w", 16, 0}},
	{SubuMBM, SfmtAddsMBM, InsnData{"subu.b", 16, AttrMemory}},
	{SubuMWM, SfmtAddsMWM, InsnData{"subu.w", 16, AttrMemory}},
	{Subucbr, SfmtAddscbr, InsnData{"subu.b", 32, 0}},
	{Subucwr, SfmtAddscwr, InsnData{"subu.w", 32, 0}},
	{AddcR, SfmtAddDR, InsnData{"addc", 16, 0}},
	{AddcM, SfmtAddcM, InsnData{"addc", 16, AttrMemory}},
	{AddcC, SfmtAddcdr, InsnData{"addc", 48, 0}},
	{LapcD, SfmtLapcD, InsnData{"lapc.d", 48, 0}},
	{Lapcq, SfmtLapcq, InsnData{"lapcq", 16, 0}},
	{AddiBR, SfmtAddiBR, InsnData{"addi.b", 16, 0}},
	{AddiWR, SfmtAddiBR, InsnData{"addi.w", 16, 0}},
	{AddiDR, SfmtAddiBR, InsnData{"addi.d", 16, 0}},
	{NegBR, SfmtNegBR, InsnData{"neg.b", 16, 0}},
	{NegWR, SfmtNegBR, InsnData{"neg.w", 16, 0}},
	{NegDR, SfmtNegDR, InsnData{"neg.d", 16, 0}},
	{TestMBM, SfmtTestMBM, InsnData{"test.b", 16, AttrMemory}},
	{TestMWM, SfmtTestMWM, InsnData{"test.w", 16, AttrMemory}},
	{TestMDM, SfmtTestMDM, InsnData{"test.d", 16, AttrMemory}},
	{MoveRMBM, SfmtMoveRMBM, InsnData{"move.b", 16, AttrMemory}},
	{MoveRMWM, SfmtMoveRMWM, InsnData{"move.w", 16, AttrMemory}},
	{MoveRMDM, SfmtMoveRMDM, InsnData{"move.d", 16, AttrMemory}},
	{MulsB, SfmtMulsB, InsnData{"muls.b", 16, 0}},
	{MulsW, SfmtMulsB, InsnData{"muls.w", 16, 0}},
	{MulsD, SfmtMulsB, InsnData{"muls.d", 16, 0}},
	{MuluB, SfmtMulsB, InsnData{"mulu.b", 16, 0}},
	{MuluW, SfmtMulsB, InsnData{"mulu.w", 16, 0}},
	{MuluD, SfmtMulsB, InsnData{"mulu.d", 16, 0}},
	{Mcp, SfmtMcp, InsnData{"mcp", 16, 0}},
	{Dstep, SfmtDstep, InsnData{"dstep", 16, 0}},
	{Abs, SfmtMovsBR, InsnData{"abs", 16, 0}},
	{AndBR, SfmtAndBR, InsnData{"and.b", 16, 0}},
	{AndWR, SfmtAndBR, InsnData{"and.w", 16, 0}},
	{AndDR, SfmtAndDR, InsnData{"and.d", 16, 0}},
	{AndMBM, SfmtAndMBM, InsnData{"and.b", 16, AttrMemory}},
	{AndMWM, SfmtAndMWM, InsnData{"and.w", 16, AttrMemory}},
	{AndMDM, SfmtAndMDM, InsnData{"and.d", 16, AttrMemory}},
	{Andcbr, SfmtAndcbr, InsnData{"and.b", 32, 0}},
	{Andcwr, SfmtAndcwr, InsnData{"and.w", 32, 0}},
	{Andcdr, SfmtAndcdr, InsnData{"and.d", 48, 0}},
	{Andq, SfmtAndq, InsnData{"andq", 16, 0}},
	{OrrBR, SfmtAndBR, InsnData{"or.b", 16, 0}},
	{OrrWR, SfmtAndBR, InsnData{"or.w", 16, 0}},
	{OrrDR, SfmtAndDR, InsnData{"or.d", 16, 0}},
	{OrMBM, SfmtAndMBM, InsnData{"or.b", 16, AttrMemory}},
	{OrMWM, SfmtAndMWM, InsnData{"or.w", 16, AttrMemory}},
	{OrMDM, SfmtAndMDM, InsnData{"or.d", 16, AttrMemory}},
	{Orcbr, SfmtAndcbr, InsnData{"or.b", 32, 0}},
	{Orcwr, SfmtAndcwr, InsnData{"or.w", 32, 0}},
	{Orcdr, SfmtAndcdr, InsnData{"or.d", 48, 0}},
	{Orq, SfmtAndq, InsnData{"orq", 16, 0}},
	{Xor, SfmtDstep, InsnData{"xor", 16, AttrVirtual}},
	{Swap, SfmtSwap, InsnData{"swap", 16, 0}},
	{AsrrBR, SfmtAndBR, InsnData{"asr.b", 16, 0}},
	{AsrrWR, SfmtAndBR, InsnData{"asr.w", 16, 0}},
	{AsrrDR, SfmtAndDR, InsnData{"asr.d", 16, 0}},
	{Asrq, SfmtAsrq, InsnData{"asrq", 16, 0}},
	{LsrrBR, SfmtLsrrBR, InsnData{"lsr.b", 16, 0}},
	{LsrrWR, SfmtLsrrBR, InsnData{"lsr.w", 16, 0}},
	{LsrrDR, SfmtLsrrDR, InsnData{"lsr.d", 16, 0}},
	{Lsrq, SfmtAsrq, InsnData{"lsrq", 16, 0}},
	{LslrBR, SfmtLsrrBR, InsnData{"lsl.b", 16, 0}},
	{LslrWR, SfmtLsrrBR, InsnData{"lsl.w", 16, 0}},
	{LslrDR, SfmtLsrrDR, InsnData{"lsl.d", 16, 0}},
	{Lslq, SfmtAsrq, InsnData{"lslq", 16, 0}},
	{Btst, SfmtBtst, InsnData{"btst", 16, 0}},
	{Btstq, SfmtBtstq, InsnData{"btstq", 16, 0}},
	{Setf, SfmtSetf, InsnData{"setf", 16, 0}},
	{Clearf, SfmtSetf, InsnData{"clearf", 16, 0}},
	{Rfe, SfmtRfe, InsnData{"rfe", 16, AttrUncondCTI}},
	{Sfe, SfmtSfe, InsnData{"sfe", 16, AttrUncondCTI}},
	{Rfg, SfmtRfg, InsnData{"rfg", 16, AttrUncondCTI}},
	{Rfn, SfmtRfn, InsnData{"rfn", 16, AttrUncondCTI}},
	{Halt, SfmtHalt, InsnData{"halt", 16, AttrUncondCTI}},
	{BccB, SfmtBccB, InsnData{"bcc.b", 16, AttrCondCTI | AttrDelaySlot}},
	{BaB, SfmtBaB, InsnData{"ba.b", 16, AttrUncondCTI | AttrDelaySlot}},
	{BccW, SfmtBccW, InsnData{"bcc.w", 32, AttrCondCTI | AttrDelaySlot}},
	{BaW, SfmtBaW, InsnData{"ba.w", 32, AttrUncondCTI | AttrDelaySlot}},
	{JasR, SfmtJasR, InsnData{"jas", 16, AttrUncondCTI | AttrDelaySlot}},
	{JasC, SfmtJasC, InsnData{"jas", 48, AttrUncondCTI | AttrDelaySlot}},
	{JumpP, SfmtJumpP, InsnData{"jump", 16, AttrUncondCTI | AttrDelaySlot}},
	{BasC, SfmtBasC, InsnData{"bas", 48, AttrUncondCTI | AttrDelaySlot}},
	{JascR, SfmtJascR, InsnData{"jasc", 16, AttrUncondCTI | AttrDelaySlot}},
	{JascC, SfmtJasC, InsnData{"jasc", 48, AttrUncondCTI | AttrDelaySlot}},
	{BascC, SfmtBasC, InsnData{"basc", 48, AttrUncondCTI | AttrDelaySlot}},
	{Break, SfmtBreak, InsnData{"break", 16, AttrUncondCTI}},
	{BoundRBR, SfmtDstep, InsnData{"bound.b", 16, 0}},
	{BoundRWR, SfmtDstep, InsnData{"bound.w", 16, 0}},
	{BoundRDR, SfmtDstep, InsnData{"bound.d", 16, 0}},
	{BoundCb, SfmtBoundCb, InsnData{"bound.b", 32, 0}},
	{BoundCw, SfmtBoundCw, InsnData{"bound.w", 32, 0}},
	{BoundCd, SfmtBoundCd, InsnData{"bound.d", 48, 0}},
	{Scc, SfmtScc, InsnData{"scc", 16, 0}},
	{Lz, SfmtMovsBR, InsnData{"lz", 16, 0}},
	{Addoq, SfmtAddoq, InsnData{"addoq", 16, AttrPrefix}},
	{AddoMBM, SfmtAddoMBM, InsnData{"addo.b", 16, AttrMemory | AttrPrefix}},
	{AddoMWM, SfmtAddoMWM, InsnData{"addo.w", 16, AttrMemory | AttrPrefix}},
	{AddoMDM, SfmtAddoMDM, InsnData{"addo.d", 16, AttrMemory | AttrPrefix}},
	{AddoCb, SfmtAddoCb, InsnData{"addo.b", 32, AttrPrefix}},
	{AddoCw, SfmtAddoCw, InsnData{"addo.w", 32, AttrPrefix}},
	{AddoCd, SfmtAddoCd, InsnData{"addo.d", 48, AttrPrefix}},
	{AddiAcrBR, SfmtAddiAcrBR, InsnData{"addi.b", 16, AttrPrefix}},
	{AddiAcrWR, SfmtAddiAcrBR, InsnData{"addi.w", 16, AttrPrefix}},
	{AddiAcrDR, SfmtAddiAcrBR, InsnData{"addi.d", 16, AttrPrefix}},
	{Fidxi, SfmtFidxi, InsnData{"fidxi", 16, 0}},
	{Ftagi, SfmtFidxi, InsnData{"ftagi", 16, 0}},
	{Fidxd, SfmtFidxi, InsnData{"fidxd", 16, 0}},
	{Ftagd, SfmtFidxi, InsnData{"ftagd", 16, 0}},
}

// insnSfmt maps an IType straight to its format, for Decode.
var insnSfmt = func() [NumITypes]Sfmt {
	var t [NumITypes]Sfmt
	for _, e := range insnTable {
		t[e.num] = e.sfmt
	}
	return t
}()
