package cpu

// The decoder is an explicit decision tree. A branch node selects a child
// with (insn >> shift) & mask; a leaf names the itype, optionally guarded
// by an exact match of the masked word. Every child slot is filled, so
// classification is total: anything unmatched lands on XInvalid.

type decodeNode struct {
	shift    uint8
	mask     uint16
	children []*decodeNode

	itype     IType
	checkMask uint16
	checkVal  uint16
}

var invalidLeaf = &decodeNode{itype: XInvalid}

func leaf(t IType) *decodeNode { return &decodeNode{itype: t} }

// exact is a leaf that only matches when insn&mask == val.
func exact(t IType, mask, val uint16) *decodeNode {
	return &decodeNode{itype: t, checkMask: mask, checkVal: val}
}

// choose branches on (insn>>shift)&mask. Selector values missing from
// cases fall to def.
func choose(shift uint8, mask uint16, def *decodeNode, cases map[uint16]*decodeNode) *decodeNode {
	n := &decodeNode{shift: shift, mask: mask, children: make([]*decodeNode, int(mask)+1)}
	for i := range n.children {
		n.children[i] = def
	}
	for v, c := range cases {
		n.children[v] = c
	}
	return n
}

// memOrConst splits the memory-operand form from its immediate form, which
// uses [pc+] (Rs == 15).
func memOrConst(mem, konst IType) *decodeNode {
	return choose(0, 0xf, leaf(mem), map[uint16]*decodeNode{15: leaf(konst)})
}

func (n *decodeNode) decode(insn uint16) IType {
	for n.children != nil {
		n = n.children[(insn>>n.shift)&n.mask]
	}
	if n.checkMask != 0 && insn&n.checkMask != n.checkVal {
		return XInvalid
	}
	return n.itype
}

// registerForms are the register-register instructions, 64..127 of the
// primary selector (bits 11..4).
var registerForms = [64]IType{
	AdduBR, AdduWR, AddsBR, AddsWR, MovuBR, MovuWR, MovsBR, MovsWR,
	SubuBR, SubuWR, SubsBR, SubsWR, LslrBR, LslrWR, LslrDR, Btst,
	AddiBR, AddiWR, AddiDR, Scc, AddiAcrBR, AddiAcrWR, AddiAcrDR, AddcR,
	NegBR, NegWR, NegDR, Setf, BoundRBR, BoundRWR, BoundRDR, Clearf,
	AddBR, AddWR, AddDR, MoveRSprv32, MoveBR, MoveWR, MoveDR, MoveSprRv32,
	SubBR, SubWR, SubDR, Abs, CmpRBR, CmpRWR, CmpRDR, Dstep,
	AndBR, AndWR, AndDR, Lz, OrrBR, OrrWR, OrrDR, Swap,
	AsrrBR, AsrrWR, AsrrDR, Xor, LsrrBR, LsrrWR, LsrrDR, Mcp,
}

// Extended-operand forms: 128..143 take only memory, 192..207 also accept
// an immediate.
var (
	extendedMem = [16]IType{
		AdduMBM, AdduMWM, AddsMBM, AddsMWM, MovuMBM, MovuMWM, MovsMBM, MovsMWM,
		SubuMBM, SubuMWM, SubsMBM, SubsMWM, CmpuMBM, CmpuMWM, CmpsMBM, CmpsMWM,
	}
	extendedConst = [16]IType{
		Adducbr, Adducwr, Addscbr, Addscwr, Movucbr, Movucwr, Movscbr, Movscwr,
		Subucbr, Subucwr, Subscbr, Subscwr, Cmpucbr, Cmpucwr, Cmpscbr, Cmpscwr,
	}
)

// Sized memory/immediate groups at 224..246, one per operation, .b .w .d.
var sizedGroups = []struct {
	base  int
	mem   [3]IType
	konst [3]IType
}{
	{224, [3]IType{AddMBM, AddMWM, AddMDM}, [3]IType{Addcbr, Addcwr, Addcdr}},
	{228, [3]IType{MoveMBM, MoveMWM, MoveMDM}, [3]IType{Movecbr, Movecwr, Movecdr}},
	{232, [3]IType{SubMBM, SubMWM, SubMDM}, [3]IType{Subcbr, Subcwr, Subcdr}},
	{236, [3]IType{CmpMBM, CmpMWM, CmpMDM}, [3]IType{Cmpcbr, Cmpcwr, Cmpcdr}},
	{240, [3]IType{AndMBM, AndMWM, AndMDM}, [3]IType{Andcbr, Andcwr, Andcdr}},
	{244, [3]IType{OrMBM, OrMWM, OrMDM}, [3]IType{Orcbr, Orcwr, Orcdr}},
}

// constSpecial maps a special register number to its move-immediate
// instruction. P0, P1, P4 and P8 have no immediate form.
var constSpecial = map[uint16]IType{
	2: MoveCSprv32P2, 3: MoveCSprv32P3, 5: MoveCSprv32P5, 6: MoveCSprv32P6,
	7: MoveCSprv32P7, 9: MoveCSprv32P9, 10: MoveCSprv32P10, 11: MoveCSprv32P11,
	12: MoveCSprv32P12, 13: MoveCSprv32P13, 14: MoveCSprv32P14, 15: MoveCSprv32P15,
}

func buildDecodeTree() *decodeNode {
	var top [256]*decodeNode
	for i := range top {
		top[i] = invalidLeaf
	}
	span := func(lo, hi int, n *decodeNode) {
		for v := lo; v <= hi; v++ {
			top[v] = n
		}
	}
	at := func(n *decodeNode, vals ...int) {
		for _, v := range vals {
			top[v] = n
		}
	}

	// Quick-immediate forms. Low selector bits belong to the immediate,
	// so each instruction owns a run of values.
	span(0, 15, choose(12, 0xf, leaf(BccB), map[uint16]*decodeNode{14: leaf(BaB)}))
	span(16, 31, leaf(Addoq))
	span(32, 35, leaf(Addq))
	span(36, 39, leaf(Moveq))
	span(40, 43, leaf(Subq))
	span(44, 47, leaf(Cmpq))
	span(48, 51, leaf(Andq))
	span(52, 55, leaf(Orq))
	span(56, 57, leaf(Btstq))
	span(58, 59, leaf(Asrq))
	span(60, 61, leaf(Lslq))
	span(62, 63, leaf(Lsrq))

	for i, t := range registerForms {
		top[64+i] = leaf(t)
	}
	for i := range extendedMem {
		top[128+i] = leaf(extendedMem[i])
		top[192+i] = memOrConst(extendedMem[i], extendedConst[i])
	}

	at(leaf(MuluB), 144)
	at(leaf(MuluW), 145)
	at(leaf(MuluD), 146)
	top[147] = choose(12, 0xf, invalidLeaf, map[uint16]*decodeNode{
		2:  exact(Rfe, 0xffff, 0x2930),
		3:  exact(Sfe, 0xffff, 0x3930),
		4:  exact(Rfg, 0xffff, 0x4930),
		5:  exact(Rfn, 0xffff, 0x5930),
		14: leaf(Break),
		15: exact(Halt, 0xffff, 0xf930),
	})
	at(leaf(AddoMBM), 148)
	at(leaf(AddoMWM), 149)
	at(leaf(AddoMDM), 150)
	at(leaf(Lapcq), 151)
	at(leaf(AddcM), 154)
	at(leaf(JasR), 155)
	at(exact(JumpP, 0xfff, 0x9f0), 159)

	at(leaf(AddMBM), 160)
	at(leaf(AddMWM), 161)
	at(leaf(AddMDM), 162)
	at(leaf(MoveMSprv32), 163)
	at(leaf(MoveMBM), 164)
	at(leaf(MoveMWM), 165)
	at(leaf(MoveMDM), 166)
	at(leaf(MoveSprMv32), 167, 231)
	at(leaf(SubMBM), 168)
	at(leaf(SubMWM), 169)
	at(leaf(SubMDM), 170)
	top[171] = choose(12, 1, invalidLeaf, map[uint16]*decodeNode{
		0: exact(Fidxd, 0xfff0, 0x0ab0),
		1: exact(Ftagd, 0xfff0, 0x1ab0),
	})
	at(leaf(CmpMBM), 172)
	at(leaf(CmpMWM), 173)
	at(leaf(CmpMDM), 174)
	at(leaf(AndMBM), 176)
	at(leaf(AndMWM), 177)
	at(leaf(AndMDM), 178)
	at(leaf(JascR), 179)
	at(leaf(OrMBM), 180)
	at(leaf(OrMWM), 181)
	at(leaf(OrMDM), 182)
	at(leaf(MoveRSs), 183)

	// 184..191 alias 248..255: bit 10 (memory mode) is not part of the opcode.
	at(exact(TestMBM, 0xfbf0, 0x0b80), 184, 248)
	at(exact(TestMWM, 0xfbf0, 0x0b90), 185, 249)
	at(exact(TestMDM, 0xfbf0, 0x0ba0), 186, 250)
	at(leaf(MovemMRV32), 187, 251)
	at(leaf(MoveRMBM), 188, 252)
	at(leaf(MoveRMWM), 189, 253)
	at(leaf(MoveRMDM), 190, 254)
	at(leaf(MovemRMV32), 191, 255)

	at(leaf(MulsB), 208)
	at(leaf(MulsW), 209)
	at(leaf(MulsD), 210)
	top[211] = choose(12, 1, invalidLeaf, map[uint16]*decodeNode{
		0: exact(Fidxi, 0xfff0, 0x0d30),
		1: exact(Ftagi, 0xfff0, 0x1d30),
	})
	top[212] = memOrConst(AddoMBM, AddoCb)
	top[213] = memOrConst(AddoMWM, AddoCw)
	top[214] = memOrConst(AddoMDM, AddoCd)
	at(exact(LapcD, 0xfff, 0xd7f), 215)
	top[218] = memOrConst(AddcM, AddcC)
	at(exact(JasC, 0xfff, 0xdbf), 219)
	at(exact(BoundCb, 0xfff, 0xdcf), 220)
	at(exact(BoundCw, 0xfff, 0xddf), 221)
	at(exact(BoundCd, 0xfff, 0xdef), 222)
	top[223] = choose(12, 0xf, exact(BccW, 0xfff, 0xdff), map[uint16]*decodeNode{
		14: exact(BaW, 0xffff, 0xedff),
	})

	for _, g := range sizedGroups {
		for i := 0; i < 3; i++ {
			top[g.base+i] = memOrConst(g.mem[i], g.konst[i])
		}
	}

	special := make(map[uint16]*decodeNode, len(constSpecial))
	for p, t := range constSpecial {
		special[p] = memOrConst(MoveMSprv32, t)
	}
	top[227] = choose(12, 0xf, leaf(MoveMSprv32), special)

	at(exact(BasC, 0xfff, 0xebf), 235)
	at(exact(BascC, 0xfff, 0xeff), 239)
	at(exact(JascC, 0xfff, 0xf3f), 243)
	at(leaf(MoveSsR), 247)

	return &decodeNode{shift: 4, mask: 0xff, children: top[:]}
}

var decodeTree = buildDecodeTree()

// Decode classifies a 16-bit instruction word and returns its itype with
// the extractor for its format. It never fails: unknown words classify as
// XInvalid.
func Decode(insn uint16) (IType, Extractor) {
	t := decodeTree.decode(insn)
	return t, extractors[insnSfmt[t]]
}
