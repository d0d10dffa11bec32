package cpu

import (
	"GoCRIS/internal/fault"
	"GoCRIS/internal/interfaces"
	"GoCRIS/util/convert"
	"GoCRIS/util/dbg"
)

// opSize is the operand size of a sized instruction, 4 for the rest.
func opSize(num IType) int {
	switch num {
	case MoveBR, MovsBR, MovuBR, Movecbr, Movscbr, Movucbr,
		CmpRBR, CmpMBM, Cmpcbr,
		MoveMBM, MovsMBM, MovuMBM, MoveRMBM,
		AddBR, Addcbr, AddsBR, AdduBR,
		SubBR, Subcbr, SubsBR, SubuBR,
		NegBR, MulsB, MuluB,
		AndBR, Andcbr, OrrBR, Orcbr:
		return 1
	case MoveWR, MovsWR, MovuWR, Movecwr, Movscwr, Movucwr,
		CmpRWR, CmpMWM, Cmpcwr,
		MoveMWM, MovsMWM, MovuMWM, MoveRMWM,
		AddWR, Addcwr, AddsWR, AdduWR,
		SubWR, Subcwr, SubsWR, SubuWR,
		NegWR, MulsW, MuluW,
		AndWR, Andcwr, OrrWR, Orcwr:
		return 2
	}
	return 4
}

// execute runs the semantics of one instruction and returns the address of
// the next one. Memory is accessed before any register is written, so a
// failing access leaves the register file untouched.
func (c *CPU) execute(desc *IDesc, args Args, pc uint32, insn uint16) (uint32, error) {
	r := c.registers
	num := desc.Num
	size := opSize(num)
	next := pc + uint32(desc.Length)

	switch num {
	case Moveq:
		a := args.(ArgsS6)
		v := uint32(a.S6)
		r.R[a.Operand2] = v
		r.setFlags(logicFlags(v, 4))

	case MoveBR, MoveWR, MoveDR:
		a := args.(ArgsRR)
		v := r.R[a.Operand1]
		r.R[a.Operand2] = merge(r.R[a.Operand2], v, size)
		r.setFlags(logicFlags(v, size))

	case MovsBR, MovsWR, MovuBR, MovuWR:
		a := args.(ArgsRR)
		v := extend(r.R[a.Operand1], size, num == MovsBR || num == MovsWR)
		r.R[a.Operand2] = v
		r.setFlags(logicFlags(v, 4))

	case Movecbr, Movecwr, Movecdr:
		a := args.(ArgsConst)
		r.R[a.Operand2] = merge(r.R[a.Operand2], a.Imm, size)
		r.setFlags(logicFlags(a.Imm, size))

	case Movscbr, Movscwr, Movucbr, Movucwr:
		a := args.(ArgsConst)
		v := extend(a.Imm, size, num == Movscbr || num == Movscwr)
		r.R[a.Operand2] = v
		r.setFlags(logicFlags(v, 4))

	case Addq, Subq:
		a := args.(ArgsU6)
		op := add
		if num == Subq {
			op = sub
		}
		v, f := op(r.R[a.Operand2], a.U6, 4)
		r.R[a.Operand2] = v
		r.setFlags(f)

	case Cmpq:
		a := args.(ArgsS6)
		_, f := sub(r.R[a.Operand2], uint32(a.S6), 4)
		r.setFlags(f)

	case Andq, Orq:
		a := args.(ArgsS6)
		v := r.R[a.Operand2] & uint32(a.S6)
		if num == Orq {
			v = r.R[a.Operand2] | uint32(a.S6)
		}
		r.R[a.Operand2] = v
		r.setFlags(logicFlags(v, 4))

	case AddBR, AddWR, AddDR, SubBR, SubWR, SubDR,
		AndBR, AndWR, AndDR, OrrBR, OrrWR, OrrDR:
		a := args.(ArgsRR)
		v, f := c.binary(num, r.R[a.Operand2], r.R[a.Operand1], size)
		r.R[a.Operand2] = merge(r.R[a.Operand2], v, size)
		r.setFlags(f)

	case Addcbr, Addcwr, Addcdr, Subcbr, Subcwr, Subcdr,
		Andcbr, Andcwr, Andcdr, Orcbr, Orcwr, Orcdr:
		a := args.(ArgsConst)
		v, f := c.binary(num, r.R[a.Operand2], a.Imm, size)
		r.R[a.Operand2] = merge(r.R[a.Operand2], v, size)
		r.setFlags(f)

	case CmpRBR, CmpRWR, CmpRDR:
		a := args.(ArgsRR)
		_, f := sub(r.R[a.Operand2], r.R[a.Operand1], size)
		r.setFlags(f)

	case Cmpcbr, Cmpcwr, Cmpcdr:
		a := args.(ArgsConst)
		_, f := sub(r.R[a.Operand2], a.Imm, size)
		r.setFlags(f)

	case AddsBR, AddsWR, AdduBR, AdduWR, SubsBR, SubsWR, SubuBR, SubuWR:
		a := args.(ArgsRR)
		signed := num == AddsBR || num == AddsWR || num == SubsBR || num == SubsWR
		src := extend(r.R[a.Operand1], size, signed)
		op := add
		if num == SubsBR || num == SubsWR || num == SubuBR || num == SubuWR {
			op = sub
		}
		v, f := op(r.R[a.Operand2], src, 4)
		r.R[a.Operand2] = v
		r.setFlags(f)

	case NegBR, NegWR, NegDR:
		a := args.(ArgsRR)
		v, f := sub(0, r.R[a.Operand1], size)
		r.R[a.Operand2] = merge(r.R[a.Operand2], v, size)
		r.setFlags(f)

	case Asrq, Lslq, Lsrq:
		a := args.(ArgsU5)
		v := r.R[a.Operand2]
		switch num {
		case Asrq:
			v = uint32(int32(v) >> a.U5)
		case Lslq:
			v <<= a.U5
		default:
			v >>= a.U5
		}
		r.R[a.Operand2] = v
		r.setFlags(logicFlags(v, 4))

	case Btstq:
		a := args.(ArgsU5)
		v := r.R[a.Operand2]
		r.setFlags(flags{
			N: (v>>a.U5)&1 == 1,
			Z: v<<(31-a.U5) == 0,
		})

	case MulsB, MulsW, MulsD, MuluB, MuluW, MuluD:
		a := args.(ArgsRR)
		signed := num == MulsB || num == MulsW || num == MulsD
		lo, hi, f := mul(r.R[a.Operand2], r.R[a.Operand1], size, signed)
		r.R[a.Operand2] = lo
		r.P[SR_MOF] = hi
		r.setFlags(f)

	case MoveMBM, MoveMWM, MoveMDM, MovsMBM, MovsMWM, MovuMBM, MovuMWM:
		a := args.(ArgsMem)
		addr := r.R[a.Operand1]
		v, err := c.load(addr, size)
		if err != nil {
			return 0, err
		}
		if a.MemMode == 1 {
			r.R[a.Operand1] = addr + uint32(size)
		}
		dest := a.Operand2
		if c.prefixed && a.MemMode == 0 {
			dest = a.Operand1
		}
		switch num {
		case MovsMBM, MovsMWM:
			v = extend(v, size, true)
			size = 4
		case MovuMBM, MovuMWM:
			v = extend(v, size, false)
			size = 4
		}
		c.writeReg(dest, merge(r.R[dest], v, size))
		r.setFlags(logicFlags(v, size))

	case MoveRMBM, MoveRMWM, MoveRMDM:
		a := args.(ArgsMem)
		addr := r.R[a.Operand1]
		if err := c.store(addr, size, r.R[a.Operand2]); err != nil {
			return 0, err
		}
		if a.MemMode == 1 {
			r.R[a.Operand1] = addr + uint32(size)
		}

	case MoveRSprv32:
		a := args.(ArgsRR)
		r.SetSpecial(a.Operand2, r.R[a.Operand1])
		traceSpecial("write", a.Operand2, r.GetSpecial(a.Operand2))

	case MoveSprRv32:
		a := args.(ArgsRR)
		r.R[a.Operand1] = r.GetSpecial(a.Operand2)
		traceSpecial("read", a.Operand2, r.R[a.Operand1])

	case MoveMSprv32:
		a := args.(ArgsMem)
		addr := r.R[a.Operand1]
		n := SpecialSize(a.Operand2)
		v, err := c.load(addr, n)
		if err != nil {
			return 0, err
		}
		if a.MemMode == 1 {
			r.R[a.Operand1] = addr + uint32(n)
		}
		r.SetSpecial(a.Operand2, v)
		traceSpecial("load", a.Operand2, v)

	case MoveSprMv32:
		a := args.(ArgsMem)
		addr := r.R[a.Operand1]
		n := SpecialSize(a.Operand2)
		if err := c.store(addr, n, r.GetSpecial(a.Operand2)); err != nil {
			return 0, err
		}
		if a.MemMode == 1 {
			r.R[a.Operand1] = addr + uint32(n)
		}

	case MoveCSprv32P2, MoveCSprv32P3, MoveCSprv32P5, MoveCSprv32P6,
		MoveCSprv32P7, MoveCSprv32P9, MoveCSprv32P10, MoveCSprv32P11,
		MoveCSprv32P12, MoveCSprv32P13, MoveCSprv32P14, MoveCSprv32P15:
		a := args.(ArgsConst)
		r.SetSpecial(a.Operand2, a.Imm)
		traceSpecial("write", a.Operand2, r.GetSpecial(a.Operand2))

	case MoveSsR:
		a := args.(ArgsRR)
		r.R[a.Operand1] = r.Support(a.Operand2)

	case MoveRSs:
		a := args.(ArgsRR)
		r.SetSupport(a.Operand2, r.R[a.Operand1])

	case LapcD, Lapcq:
		a := args.(ArgsPCRel)
		r.R[a.Operand2] = a.Target

	case Addoq:
		a := args.(ArgsS8)
		r.R[ACR] = r.R[a.Operand2] + uint32(a.S8)
		c.prefixed = true

	case Setf, Clearf:
		a := args.(ArgsSetf)
		c.setFlagMask(a.Mask, num == Setf)

	case BccB, BccW:
		a := args.(ArgsPCRel)
		if r.condition(a.Operand2) {
			c.delay(a.Target)
		}

	case BaB, BaW:
		c.delay(args.(ArgsBranch).Target)

	case JumpP:
		c.delay(r.GetSpecial(args.(ArgsJumpP).Operand2))

	case JasR:
		a := args.(ArgsRR)
		c.delay(r.R[a.Operand1])
		r.SetSpecial(a.Operand2, next+2)

	case JasC:
		a := args.(ArgsConst)
		c.delay(a.Imm)
		r.SetSpecial(a.Operand2, next+2)

	case BasC:
		a := args.(ArgsPCRel)
		c.delay(a.Target)
		r.SetSpecial(a.Operand2, next+2)

	case Halt:
		c.halted = true
		return 0, &fault.Fault{Kind: fault.Halt}

	case Break:
		return 0, &fault.Fault{Kind: fault.Break, Code: uint32(args.(ArgsBreak).U4)}

	default:
		return 0, &fault.Fault{Kind: fault.Unimplemented, Code: uint32(insn), Name: desc.Data.Mnemonic}
	}

	return next, nil
}

func (c *CPU) binary(num IType, a, b uint32, size int) (uint32, flags) {
	switch num {
	case AddBR, AddWR, AddDR, Addcbr, Addcwr, Addcdr:
		return add(a, b, size)
	case SubBR, SubWR, SubDR, Subcbr, Subcwr, Subcdr:
		return sub(a, b, size)
	case AndBR, AndWR, AndDR, Andcbr, Andcwr, Andcdr:
		return a & b, logicFlags(a&b, size)
	}
	return a | b, logicFlags(a|b, size)
}

func (c *CPU) delay(target uint32) {
	c.branch = delayedBranch{target: target, armed: true}
}

func (c *CPU) load(addr uint32, size int) (uint32, error) {
	v, err := c.bus.Read(interfaces.SpaceData, addr, size)
	return uint32(v), err
}

func (c *CPU) store(addr uint32, size int, v uint32) error {
	return c.bus.Write(interfaces.SpaceData, addr, size, uint64(v)&uint64(sizeMask(size)))
}

// writeReg writes a loaded value, through the pending ring when loads have
// latency.
func (c *CPU) writeReg(n uint8, v uint32) {
	if c.cfg.LoadLatency > 0 {
		c.pending.Enqueue32(&c.registers.R[n], v, c.cfg.LoadLatency)
		return
	}
	c.registers.R[n] = v
}

func (c *CPU) setFlagMask(mask uint8, set bool) {
	for bit := uint(0); bit < 8; bit++ {
		if mask&(1<<bit) == 0 {
			continue
		}
		if c.cfg.FlagLatency > 0 {
			c.pending.EnqueueBit(&c.registers.P[SR_CCS], bit, set, c.cfg.FlagLatency)
			continue
		}
		c.registers.P[SR_CCS] = convert.SetBit(c.registers.P[SR_CCS], bit, set)
	}
}

func traceSpecial(op string, reg uint8, v uint32) {
	if dbg.Enabled() {
		dbg.Printf("%s %s = 0x%08x", op, SpecialName(reg), v)
	}
}
