package cpu

import "fmt"

// IType is the abstract identity of a decoded instruction. Several encodings
// may share one IType; the numeric value is stable and indexes the
// descriptor table.
type IType uint16

const (
	XInvalid IType = iota
	XAfter
	XBefore
	XCtiChain
	XChain
	XBegin
	MoveBR
	MoveWR
	MoveDR
	Moveq
	MovsBR
	MovsWR
	MovuBR
	MovuWR
	Movecbr
	Movecwr
	Movecdr
	Movscbr
	Movscwr
	Movucbr
	Movucwr
	Addq
	Subq
	CmpRBR
	CmpRWR
	CmpRDR
	CmpMBM
	CmpMWM
	CmpMDM
	Cmpcbr
	Cmpcwr
	Cmpcdr
	Cmpq
	CmpsMBM
	CmpsMWM
	Cmpscbr
	Cmpscwr
	CmpuMBM
	CmpuMWM
	Cmpucbr
	Cmpucwr
	MoveMBM
	MoveMWM
	MoveMDM
	MovsMBM
	MovsMWM
	MovuMBM
	MovuMWM
	MoveRSprv32
	MoveSprRv32
	MoveMSprv32
	MoveCSprv32P2
	MoveCSprv32P3
	MoveCSprv32P5
	MoveCSprv32P6
	MoveCSprv32P7
	MoveCSprv32P9
	MoveCSprv32P10
	MoveCSprv32P11
	MoveCSprv32P12
	MoveCSprv32P13
	MoveCSprv32P14
	MoveCSprv32P15
	MoveSprMv32
	MoveSsR
	MoveRSs
	MovemRMV32
	MovemMRV32
	AddBR
	AddWR
	AddDR
	AddMBM
	AddMWM
	AddMDM
	Addcbr
	Addcwr
	Addcdr
	AddsBR
	AddsWR
	AddsMBM
	AddsMWM
	Addscbr
	Addscwr
	AdduBR
	AdduWR
	AdduMBM
	AdduMWM
	Adducbr
	Adducwr
	SubBR
	SubWR
	SubDR
	SubMBM
	SubMWM
	SubMDM
	Subcbr
	Subcwr
	Subcdr
	SubsBR
	SubsWR
	SubsMBM
	SubsMWM
	Subscbr
	Subscwr
	SubuBR
	SubuWR
	SubuMBM
	SubuMWM
	Subucbr
	Subucwr
	AddcR
	AddcM
	AddcC
	LapcD
	Lapcq
	AddiBR
	AddiWR
	AddiDR
	NegBR
	NegWR
	NegDR
	TestMBM
	TestMWM
	TestMDM
	MoveRMBM
	MoveRMWM
	MoveRMDM
	MulsB
	MulsW
	MulsD
	MuluB
	MuluW
	MuluD
	Mcp
	Dstep
	Abs
	AndBR
	AndWR
	AndDR
	AndMBM
	AndMWM
	AndMDM
	Andcbr
	Andcwr
	Andcdr
	Andq
	OrrBR
	OrrWR
	OrrDR
	OrMBM
	OrMWM
	OrMDM
	Orcbr
	Orcwr
	Orcdr
	Orq
	Xor
	Swap
	AsrrBR
	AsrrWR
	AsrrDR
	Asrq
	LsrrBR
	LsrrWR
	LsrrDR
	Lsrq
	LslrBR
	LslrWR
	LslrDR
	Lslq
	Btst
	Btstq
	Setf
	Clearf
	Rfe
	Sfe
	Rfg
	Rfn
	Halt
	BccB
	BaB
	BccW
	BaW
	JasR
	JasC
	JumpP
	BasC
	JascR
	JascC
	BascC
	Break
	BoundRBR
	BoundRWR
	BoundRDR
	BoundCb
	BoundCw
	BoundCd
	Scc
	Lz
	Addoq
	AddoMBM
	AddoMWM
	AddoMDM
	AddoCb
	AddoCw
	AddoCd
	AddiAcrBR
	AddiAcrWR
	AddiAcrDR
	Fidxi
	Ftagi
	Fidxd
	Ftagd

	NumITypes int = iota
)

var itypeNames = [...]string{
	XInvalid:       "x-invalid",
	XAfter:         "x-after",
	XBefore:        "x-before",
	XCtiChain:      "x-cti-chain",
	XChain:         "x-chain",
	XBegin:         "x-begin",
	MoveBR:         "move-b-r",
	MoveWR:         "move-w-r",
	MoveDR:         "move-d-r",
	Moveq:          "moveq",
	MovsBR:         "movs-b-r",
	MovsWR:         "movs-w-r",
	MovuBR:         "movu-b-r",
	MovuWR:         "movu-w-r",
	Movecbr:        "movecbr",
	Movecwr:        "movecwr",
	Movecdr:        "movecdr",
	Movscbr:        "movscbr",
	Movscwr:        "movscwr",
	Movucbr:        "movucbr",
	Movucwr:        "movucwr",
	Addq:           "addq",
	Subq:           "subq",
	CmpRBR:         "cmp-r-b-r",
	CmpRWR:         "cmp-r-w-r",
	CmpRDR:         "cmp-r-d-r",
	CmpMBM:         "cmp-m-b-m",
	CmpMWM:         "cmp-m-w-m",
	CmpMDM:         "cmp-m-d-m",
	Cmpcbr:         "cmpcbr",
	Cmpcwr:         "cmpcwr",
	Cmpcdr:         "cmpcdr",
	Cmpq:           "cmpq",
	CmpsMBM:        "cmps-m-b-m",
	CmpsMWM:        "cmps-m-w-m",
	Cmpscbr:        "cmpscbr",
	Cmpscwr:        "cmpscwr",
	CmpuMBM:        "cmpu-m-b-m",
	CmpuMWM:        "cmpu-m-w-m",
	Cmpucbr:        "cmpucbr",
	Cmpucwr:        "cmpucwr",
	MoveMBM:        "move-m-b-m",
	MoveMWM:        "move-m-w-m",
	MoveMDM:        "move-m-d-m",
	MovsMBM:        "movs-m-b-m",
	MovsMWM:        "movs-m-w-m",
	MovuMBM:        "movu-m-b-m",
	MovuMWM:        "movu-m-w-m",
	MoveRSprv32:    "move-r-sprv32",
	MoveSprRv32:    "move-spr-rv32",
	MoveMSprv32:    "move-m-sprv32",
	MoveCSprv32P2:  "move-c-sprv32-p2",
	MoveCSprv32P3:  "move-c-sprv32-p3",
	MoveCSprv32P5:  "move-c-sprv32-p5",
	MoveCSprv32P6:  "move-c-sprv32-p6",
	MoveCSprv32P7:  "move-c-sprv32-p7",
	MoveCSprv32P9:  "move-c-sprv32-p9",
	MoveCSprv32P10: "move-c-sprv32-p10",
	MoveCSprv32P11: "move-c-sprv32-p11",
	MoveCSprv32P12: "move-c-sprv32-p12",
	MoveCSprv32P13: "move-c-sprv32-p13",
	MoveCSprv32P14: "move-c-sprv32-p14",
	MoveCSprv32P15: "move-c-sprv32-p15",
	MoveSprMv32:    "move-spr-mv32",
	MoveSsR:        "move-ss-r",
	MoveRSs:        "move-r-ss",
	MovemRMV32:     "movem-r-m-v32",
	MovemMRV32:     "movem-m-r-v32",
	AddBR:          "add-b-r",
	AddWR:          "add-w-r",
	AddDR:          "add-d-r",
	AddMBM:         "add-m-b-m",
	AddMWM:         "add-m-w-m",
	AddMDM:         "add-m-d-m",
	Addcbr:         "addcbr",
	Addcwr:         "addcwr",
	Addcdr:         "addcdr",
	AddsBR:         "adds-b-r",
	AddsWR:         "adds-w-r",
	AddsMBM:        "adds-m-b-m",
	AddsMWM:        "adds-m-w-m",
	Addscbr:        "addscbr",
	Addscwr:        "addscwr",
	AdduBR:         "addu-b-r",
	AdduWR:         "addu-w-r",
	AdduMBM:        "addu-m-b-m",
	AdduMWM:        "addu-m-w-m",
	Adducbr:        "adducbr",
	Adducwr:        "adducwr",
	SubBR:          "sub-b-r",
	SubWR:          "sub-w-r",
	SubDR:          "sub-d-r",
	SubMBM:         "sub-m-b-m",
	SubMWM:         "sub-m-w-m",
	SubMDM:         "sub-m-d-m",
	Subcbr:         "subcbr",
	Subcwr:         "subcwr",
	Subcdr:         "subcdr",
	SubsBR:         "subs-b-r",
	SubsWR:         "subs-w-r",
	SubsMBM:        "subs-m-b-m",
	SubsMWM:        "subs-m-w-m",
	Subscbr:        "subscbr",
	Subscwr:        "subscwr",
	SubuBR:         "subu-b-r",
	SubuWR:         "subu-w-r",
	SubuMBM:        "subu-m-b-m",
	SubuMWM:        "subu-m-w-m",
	Subucbr:        "subucbr",
	Subucwr:        "subucwr",
	AddcR:          "addc-r",
	AddcM:          "addc-m",
	AddcC:          "addc-c",
	LapcD:          "lapc-d",
	Lapcq:          "lapcq",
	AddiBR:         "addi-b-r",
	AddiWR:         "addi-w-r",
	AddiDR:         "addi-d-r",
	NegBR:          "neg-b-r",
	NegWR:          "neg-w-r",
	NegDR:          "neg-d-r",
	TestMBM:        "test-m-b-m",
	TestMWM:        "test-m-w-m",
	TestMDM:        "test-m-d-m",
	MoveRMBM:       "move-r-m-b-m",
	MoveRMWM:       "move-r-m-w-m",
	MoveRMDM:       "move-r-m-d-m",
	MulsB:          "muls-b",
	MulsW:          "muls-w",
	MulsD:          "muls-d",
	MuluB:          "mulu-b",
	MuluW:          "mulu-w",
	MuluD:          "mulu-d",
	Mcp:            "mcp",
	Dstep:          "dstep",
	Abs:            "abs",
	AndBR:          "and-b-r",
	AndWR:          "and-w-r",
	AndDR:          "and-d-r",
	AndMBM:         "and-m-b-m",
	AndMWM:         "and-m-w-m",
	AndMDM:         "and-m-d-m",
	Andcbr:         "andcbr",
	Andcwr:         "andcwr",
	Andcdr:         "andcdr",
	Andq:           "andq",
	OrrBR:          "orr-b-r",
	OrrWR:          "orr-w-r",
	OrrDR:          "orr-d-r",
	OrMBM:          "or-m-b-m",
	OrMWM:          "or-m-w-m",
	OrMDM:          "or-m-d-m",
	Orcbr:          "orcbr",
	Orcwr:          "orcwr",
	Orcdr:          "orcdr",
	Orq:            "orq",
	Xor:            "xor",
	Swap:           "swap",
	AsrrBR:         "asrr-b-r",
	AsrrWR:         "asrr-w-r",
	AsrrDR:         "asrr-d-r",
	Asrq:           "asrq",
	LsrrBR:         "lsrr-b-r",
	LsrrWR:         "lsrr-w-r",
	LsrrDR:         "lsrr-d-r",
	Lsrq:           "lsrq",
	LslrBR:         "lslr-b-r",
	LslrWR:         "lslr-w-r",
	LslrDR:         "lslr-d-r",
	Lslq:           "lslq",
	Btst:           "btst",
	Btstq:          "btstq",
	Setf:           "setf",
	Clearf:         "clearf",
	Rfe:            "rfe",
	Sfe:            "sfe",
	Rfg:            "rfg",
	Rfn:            "rfn",
	Halt:           "halt",
	BccB:           "bcc-b",
	BaB:            "ba-b",
	BccW:           "bcc-w",
	BaW:            "ba-w",
	JasR:           "jas-r",
	JasC:           "jas-c",
	JumpP:          "jump-p",
	BasC:           "bas-c",
	JascR:          "jasc-r",
	JascC:          "jasc-c",
	BascC:          "basc-c",
	Break:          "break",
	BoundRBR:       "bound-r-b-r",
	BoundRWR:       "bound-r-w-r",
	BoundRDR:       "bound-r-d-r",
	BoundCb:        "bound-cb",
	BoundCw:        "bound-cw",
	BoundCd:        "bound-cd",
	Scc:            "scc",
	Lz:             "lz",
	Addoq:          "addoq",
	AddoMBM:        "addo-m-b-m",
	AddoMWM:        "addo-m-w-m",
	AddoMDM:        "addo-m-d-m",
	AddoCb:         "addo-cb",
	AddoCw:         "addo-cw",
	AddoCd:         "addo-cd",
	AddiAcrBR:      "addi-acr-b-r",
	AddiAcrWR:      "addi-acr-w-r",
	AddiAcrDR:      "addi-acr-d-r",
	Fidxi:          "fidxi",
	Ftagi:          "ftagi",
	Fidxd:          "fidxd",
	Ftagd:          "ftagd",
}

func (t IType) String() string {
	if int(t) < len(itypeNames) {
		return itypeNames[t]
	}
	return fmt.Sprintf("itype(%d)", uint16(t))
}
