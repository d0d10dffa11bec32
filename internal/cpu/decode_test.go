package cpu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"GoCRIS/internal/cpu"
	"GoCRIS/internal/interfaces"
)

// decodeCounts is how many of the 65536 first words classify as each
// instruction. Instructions not listed are never produced by the decoder.
var decodeCounts = map[cpu.IType]int{
	cpu.XInvalid: 6571, cpu.MoveBR: 256, cpu.MoveWR: 256, cpu.MoveDR: 256, cpu.Moveq: 1024,
	cpu.MovsBR: 256, cpu.MovsWR: 256, cpu.MovuBR: 256, cpu.MovuWR: 256, cpu.Movecbr: 16,
	cpu.Movecwr: 16, cpu.Movecdr: 16, cpu.Movscbr: 16, cpu.Movscwr: 16, cpu.Movucbr: 16,
	cpu.Movucwr: 16, cpu.Addq: 1024, cpu.Subq: 1024, cpu.CmpRBR: 256, cpu.CmpRWR: 256,
	cpu.CmpRDR: 256, cpu.CmpMBM: 496, cpu.CmpMWM: 496, cpu.CmpMDM: 496, cpu.Cmpcbr: 16,
	cpu.Cmpcwr: 16, cpu.Cmpcdr: 16, cpu.Cmpq: 1024, cpu.CmpsMBM: 496, cpu.CmpsMWM: 496,
	cpu.Cmpscbr: 16, cpu.Cmpscwr: 16, cpu.CmpuMBM: 496, cpu.CmpuMWM: 496, cpu.Cmpucbr: 16,
	cpu.Cmpucwr: 16, cpu.MoveMBM: 496, cpu.MoveMWM: 496, cpu.MoveMDM: 496, cpu.MovsMBM: 496,
	cpu.MovsMWM: 496, cpu.MovuMBM: 496, cpu.MovuMWM: 496, cpu.MoveRSprv32: 256, cpu.MoveSprRv32: 256,
	cpu.MoveMSprv32: 500, cpu.MoveCSprv32P2: 1, cpu.MoveCSprv32P3: 1, cpu.MoveCSprv32P5: 1,
	cpu.MoveCSprv32P6: 1, cpu.MoveCSprv32P7: 1, cpu.MoveCSprv32P9: 1, cpu.MoveCSprv32P10: 1,
	cpu.MoveCSprv32P11: 1, cpu.MoveCSprv32P12: 1, cpu.MoveCSprv32P13: 1, cpu.MoveCSprv32P14: 1,
	cpu.MoveCSprv32P15: 1, cpu.MoveSprMv32: 512, cpu.MoveSsR: 256, cpu.MoveRSs: 256,
	cpu.MovemRMV32: 512, cpu.MovemMRV32: 512, cpu.AddBR: 256, cpu.AddWR: 256, cpu.AddDR: 256,
	cpu.AddMBM: 496, cpu.AddMWM: 496, cpu.AddMDM: 496, cpu.Addcbr: 16, cpu.Addcwr: 16, cpu.Addcdr: 16,
	cpu.AddsBR: 256, cpu.AddsWR: 256, cpu.AddsMBM: 496, cpu.AddsMWM: 496, cpu.Addscbr: 16,
	cpu.Addscwr: 16, cpu.AdduBR: 256, cpu.AdduWR: 256, cpu.AdduMBM: 496, cpu.AdduMWM: 496,
	cpu.Adducbr: 16, cpu.Adducwr: 16, cpu.SubBR: 256, cpu.SubWR: 256, cpu.SubDR: 256, cpu.SubMBM: 496,
	cpu.SubMWM: 496, cpu.SubMDM: 496, cpu.Subcbr: 16, cpu.Subcwr: 16, cpu.Subcdr: 16, cpu.SubsBR: 256,
	cpu.SubsWR: 256, cpu.SubsMBM: 496, cpu.SubsMWM: 496, cpu.Subscbr: 16, cpu.Subscwr: 16,
	cpu.SubuBR: 256, cpu.SubuWR: 256, cpu.SubuMBM: 496, cpu.SubuMWM: 496, cpu.Subucbr: 16,
	cpu.Subucwr: 16, cpu.AddcR: 256, cpu.AddcM: 496, cpu.AddcC: 16, cpu.LapcD: 16, cpu.Lapcq: 256,
	cpu.AddiBR: 256, cpu.AddiWR: 256, cpu.AddiDR: 256, cpu.NegBR: 256, cpu.NegWR: 256, cpu.NegDR: 256,
	cpu.TestMBM: 32, cpu.TestMWM: 32, cpu.TestMDM: 32, cpu.MoveRMBM: 512, cpu.MoveRMWM: 512,
	cpu.MoveRMDM: 512, cpu.MulsB: 256, cpu.MulsW: 256, cpu.MulsD: 256, cpu.MuluB: 256, cpu.MuluW: 256,
	cpu.MuluD: 256, cpu.Mcp: 256, cpu.Dstep: 256, cpu.Abs: 256, cpu.AndBR: 256, cpu.AndWR: 256,
	cpu.AndDR: 256, cpu.AndMBM: 496, cpu.AndMWM: 496, cpu.AndMDM: 496, cpu.Andcbr: 16, cpu.Andcwr: 16,
	cpu.Andcdr: 16, cpu.Andq: 1024, cpu.OrrBR: 256, cpu.OrrWR: 256, cpu.OrrDR: 256, cpu.OrMBM: 496,
	cpu.OrMWM: 496, cpu.OrMDM: 496, cpu.Orcbr: 16, cpu.Orcwr: 16, cpu.Orcdr: 16, cpu.Orq: 1024,
	cpu.Xor: 256, cpu.Swap: 256, cpu.AsrrBR: 256, cpu.AsrrWR: 256, cpu.AsrrDR: 256, cpu.Asrq: 512,
	cpu.LsrrBR: 256, cpu.LsrrWR: 256, cpu.LsrrDR: 256, cpu.Lsrq: 512, cpu.LslrBR: 256,
	cpu.LslrWR: 256, cpu.LslrDR: 256, cpu.Lslq: 512, cpu.Btst: 256, cpu.Btstq: 512, cpu.Setf: 256,
	cpu.Clearf: 256, cpu.Rfe: 1, cpu.Sfe: 1, cpu.Rfg: 1, cpu.Rfn: 1, cpu.Halt: 1, cpu.BccB: 3840,
	cpu.BaB: 256, cpu.BccW: 15, cpu.BaW: 1, cpu.JasR: 256, cpu.JasC: 16, cpu.JumpP: 16, cpu.BasC: 16,
	cpu.JascR: 256, cpu.JascC: 16, cpu.BascC: 16, cpu.Break: 16, cpu.BoundRBR: 256, cpu.BoundRWR: 256,
	cpu.BoundRDR: 256, cpu.BoundCb: 16, cpu.BoundCw: 16, cpu.BoundCd: 16, cpu.Scc: 256, cpu.Lz: 256,
	cpu.Addoq: 4096, cpu.AddoMBM: 496, cpu.AddoMWM: 496, cpu.AddoMDM: 496, cpu.AddoCb: 16,
	cpu.AddoCw: 16, cpu.AddoCd: 16, cpu.AddiAcrBR: 256, cpu.AddiAcrWR: 256, cpu.AddiAcrDR: 256,
	cpu.Fidxi: 16, cpu.Ftagi: 16, cpu.Fidxd: 16, cpu.Ftagd: 16,
}

// firstWord is the lowest word that decodes to each instruction.
var firstWord = map[cpu.IType]uint16{
	cpu.XInvalid: 0x0930, cpu.MoveBR: 0x0640, cpu.MoveWR: 0x0650, cpu.MoveDR: 0x0660,
	cpu.Moveq: 0x0240, cpu.MovsBR: 0x0460, cpu.MovsWR: 0x0470, cpu.MovuBR: 0x0440, cpu.MovuWR: 0x0450,
	cpu.Movecbr: 0x0e4f, cpu.Movecwr: 0x0e5f, cpu.Movecdr: 0x0e6f, cpu.Movscbr: 0x0c6f,
	cpu.Movscwr: 0x0c7f, cpu.Movucbr: 0x0c4f, cpu.Movucwr: 0x0c5f, cpu.Addq: 0x0200, cpu.Subq: 0x0280,
	cpu.CmpRBR: 0x06c0, cpu.CmpRWR: 0x06d0, cpu.CmpRDR: 0x06e0, cpu.CmpMBM: 0x0ac0,
	cpu.CmpMWM: 0x0ad0, cpu.CmpMDM: 0x0ae0, cpu.Cmpcbr: 0x0ecf, cpu.Cmpcwr: 0x0edf,
	cpu.Cmpcdr: 0x0eef, cpu.Cmpq: 0x02c0, cpu.CmpsMBM: 0x08e0, cpu.CmpsMWM: 0x08f0,
	cpu.Cmpscbr: 0x0cef, cpu.Cmpscwr: 0x0cff, cpu.CmpuMBM: 0x08c0, cpu.CmpuMWM: 0x08d0,
	cpu.Cmpucbr: 0x0ccf, cpu.Cmpucwr: 0x0cdf, cpu.MoveMBM: 0x0a40, cpu.MoveMWM: 0x0a50,
	cpu.MoveMDM: 0x0a60, cpu.MovsMBM: 0x0860, cpu.MovsMWM: 0x0870, cpu.MovuMBM: 0x0840,
	cpu.MovuMWM: 0x0850, cpu.MoveRSprv32: 0x0630, cpu.MoveSprRv32: 0x0670, cpu.MoveMSprv32: 0x0a30,
	cpu.MoveCSprv32P2: 0x2e3f, cpu.MoveCSprv32P3: 0x3e3f, cpu.MoveCSprv32P5: 0x5e3f,
	cpu.MoveCSprv32P6: 0x6e3f, cpu.MoveCSprv32P7: 0x7e3f, cpu.MoveCSprv32P9: 0x9e3f,
	cpu.MoveCSprv32P10: 0xae3f, cpu.MoveCSprv32P11: 0xbe3f, cpu.MoveCSprv32P12: 0xce3f,
	cpu.MoveCSprv32P13: 0xde3f, cpu.MoveCSprv32P14: 0xee3f, cpu.MoveCSprv32P15: 0xfe3f,
	cpu.MoveSprMv32: 0x0a70, cpu.MoveSsR: 0x0f70, cpu.MoveRSs: 0x0b70, cpu.MovemRMV32: 0x0bf0,
	cpu.MovemMRV32: 0x0bb0, cpu.AddBR: 0x0600, cpu.AddWR: 0x0610, cpu.AddDR: 0x0620,
	cpu.AddMBM: 0x0a00, cpu.AddMWM: 0x0a10, cpu.AddMDM: 0x0a20, cpu.Addcbr: 0x0e0f,
	cpu.Addcwr: 0x0e1f, cpu.Addcdr: 0x0e2f, cpu.AddsBR: 0x0420, cpu.AddsWR: 0x0430,
	cpu.AddsMBM: 0x0820, cpu.AddsMWM: 0x0830, cpu.Addscbr: 0x0c2f, cpu.Addscwr: 0x0c3f,
	cpu.AdduBR: 0x0400, cpu.AdduWR: 0x0410, cpu.AdduMBM: 0x0800, cpu.AdduMWM: 0x0810,
	cpu.Adducbr: 0x0c0f, cpu.Adducwr: 0x0c1f, cpu.SubBR: 0x0680, cpu.SubWR: 0x0690, cpu.SubDR: 0x06a0,
	cpu.SubMBM: 0x0a80, cpu.SubMWM: 0x0a90, cpu.SubMDM: 0x0aa0, cpu.Subcbr: 0x0e8f,
	cpu.Subcwr: 0x0e9f, cpu.Subcdr: 0x0eaf, cpu.SubsBR: 0x04a0, cpu.SubsWR: 0x04b0,
	cpu.SubsMBM: 0x08a0, cpu.SubsMWM: 0x08b0, cpu.Subscbr: 0x0caf, cpu.Subscwr: 0x0cbf,
	cpu.SubuBR: 0x0480, cpu.SubuWR: 0x0490, cpu.SubuMBM: 0x0880, cpu.SubuMWM: 0x0890,
	cpu.Subucbr: 0x0c8f, cpu.Subucwr: 0x0c9f, cpu.AddcR: 0x0570, cpu.AddcM: 0x09a0, cpu.AddcC: 0x0daf,
	cpu.LapcD: 0x0d7f, cpu.Lapcq: 0x0970, cpu.AddiBR: 0x0500, cpu.AddiWR: 0x0510, cpu.AddiDR: 0x0520,
	cpu.NegBR: 0x0580, cpu.NegWR: 0x0590, cpu.NegDR: 0x05a0, cpu.TestMBM: 0x0b80, cpu.TestMWM: 0x0b90,
	cpu.TestMDM: 0x0ba0, cpu.MoveRMBM: 0x0bc0, cpu.MoveRMWM: 0x0bd0, cpu.MoveRMDM: 0x0be0,
	cpu.MulsB: 0x0d00, cpu.MulsW: 0x0d10, cpu.MulsD: 0x0d20, cpu.MuluB: 0x0900, cpu.MuluW: 0x0910,
	cpu.MuluD: 0x0920, cpu.Mcp: 0x07f0, cpu.Dstep: 0x06f0, cpu.Abs: 0x06b0, cpu.AndBR: 0x0700,
	cpu.AndWR: 0x0710, cpu.AndDR: 0x0720, cpu.AndMBM: 0x0b00, cpu.AndMWM: 0x0b10, cpu.AndMDM: 0x0b20,
	cpu.Andcbr: 0x0f0f, cpu.Andcwr: 0x0f1f, cpu.Andcdr: 0x0f2f, cpu.Andq: 0x0300, cpu.OrrBR: 0x0740,
	cpu.OrrWR: 0x0750, cpu.OrrDR: 0x0760, cpu.OrMBM: 0x0b40, cpu.OrMWM: 0x0b50, cpu.OrMDM: 0x0b60,
	cpu.Orcbr: 0x0f4f, cpu.Orcwr: 0x0f5f, cpu.Orcdr: 0x0f6f, cpu.Orq: 0x0340, cpu.Xor: 0x07b0,
	cpu.Swap: 0x0770, cpu.AsrrBR: 0x0780, cpu.AsrrWR: 0x0790, cpu.AsrrDR: 0x07a0, cpu.Asrq: 0x03a0,
	cpu.LsrrBR: 0x07c0, cpu.LsrrWR: 0x07d0, cpu.LsrrDR: 0x07e0, cpu.Lsrq: 0x03e0, cpu.LslrBR: 0x04c0,
	cpu.LslrWR: 0x04d0, cpu.LslrDR: 0x04e0, cpu.Lslq: 0x03c0, cpu.Btst: 0x04f0, cpu.Btstq: 0x0380,
	cpu.Setf: 0x05b0, cpu.Clearf: 0x05f0, cpu.Rfe: 0x2930, cpu.Sfe: 0x3930, cpu.Rfg: 0x4930,
	cpu.Rfn: 0x5930, cpu.Halt: 0xf930, cpu.BccB: 0x0000, cpu.BaB: 0xe000, cpu.BccW: 0x0dff,
	cpu.BaW: 0xedff, cpu.JasR: 0x09b0, cpu.JasC: 0x0dbf, cpu.JumpP: 0x09f0, cpu.BasC: 0x0ebf,
	cpu.JascR: 0x0b30, cpu.JascC: 0x0f3f, cpu.BascC: 0x0eff, cpu.Break: 0xe930, cpu.BoundRBR: 0x05c0,
	cpu.BoundRWR: 0x05d0, cpu.BoundRDR: 0x05e0, cpu.BoundCb: 0x0dcf, cpu.BoundCw: 0x0ddf,
	cpu.BoundCd: 0x0def, cpu.Scc: 0x0530, cpu.Lz: 0x0730, cpu.Addoq: 0x0100, cpu.AddoMBM: 0x0940,
	cpu.AddoMWM: 0x0950, cpu.AddoMDM: 0x0960, cpu.AddoCb: 0x0d4f, cpu.AddoCw: 0x0d5f,
	cpu.AddoCd: 0x0d6f, cpu.AddiAcrBR: 0x0540, cpu.AddiAcrWR: 0x0550, cpu.AddiAcrDR: 0x0560,
	cpu.Fidxi: 0x0d30, cpu.Ftagi: 0x1d30, cpu.Fidxd: 0x0ab0, cpu.Ftagd: 0x1ab0,
}

var _ = Describe("Decode", func() {
	It("classifies every 16-bit word", func() {
		counts := map[cpu.IType]int{}
		for w := 0; w <= 0xffff; w++ {
			t, ext := cpu.Decode(uint16(w))
			Expect(int(t)).To(BeNumerically("<", cpu.NumITypes))
			Expect(ext).NotTo(BeNil())
			counts[t]++
		}
		Expect(counts).To(Equal(decodeCounts))
	})

	It("is deterministic", func() {
		for w := 0; w <= 0xffff; w += 7 {
			a, _ := cpu.Decode(uint16(w))
			b, _ := cpu.Decode(uint16(w))
			Expect(a).To(Equal(b))
		}
	})

	It("extracts the same operands and usage on every run", func() {
		for w := 0; w <= 0xffff; w++ {
			insn := uint16(w)
			run := func() (cpu.Args, interfaces.RegUsage, error) {
				f := &fetcher{words: map[uint32]uint64{0x102: 0x8765, 0x104: 0x4321}}
				ctx := cpu.ExtractContext{PC: 0x100, Fetch: f, V32: true, Prefixed: w&1 == 1}
				return extract(insn, ctx)
			}
			a1, u1, err1 := run()
			a2, u2, err2 := run()
			Expect(err1).NotTo(HaveOccurred(), "word 0x%04x", w)
			Expect(err2).NotTo(HaveOccurred(), "word 0x%04x", w)
			Expect(a2).To(Equal(a1), "word 0x%04x", w)
			Expect(u2).To(Equal(u1), "word 0x%04x", w)
		}
	})

	It("finds each instruction at its first word", func() {
		for t, w := range firstWord {
			got, _ := cpu.Decode(w)
			Expect(got).To(Equal(t), "word 0x%04x", w)
		}
	})

	It("never produces the virtual instructions", func() {
		for _, t := range []cpu.IType{cpu.XAfter, cpu.XBefore, cpu.XCtiChain, cpu.XChain, cpu.XBegin} {
			Expect(decodeCounts).NotTo(HaveKey(t))
		}
	})

	It("ignores the bits a leaf does not test", func() {
		// moveq: bits 15..12 and 5..0 are operands.
		for _, w := range []uint16{0x0240, 0x2245, 0xf27f, 0x9260} {
			t, _ := cpu.Decode(w)
			Expect(t).To(Equal(cpu.Moveq), "word 0x%04x", w)
		}
		// addoq: every s8 and register value.
		for w := 0x0100; w < 0x0200; w++ {
			t, _ := cpu.Decode(uint16(w) | 0x5000)
			Expect(t).To(Equal(cpu.Addoq))
		}
	})

	DescribeTable("sample words",
		func(w uint16, want cpu.IType) {
			got, _ := cpu.Decode(w)
			Expect(got).To(Equal(want))
		},
		Entry("moveq #5,r2", uint16(0x2245), cpu.Moveq),
		Entry("halt", uint16(0xf930), cpu.Halt),
		Entry("rfe", uint16(0x2930), cpu.Rfe),
		Entry("ba.b", uint16(0xe000), cpu.BaB),
		Entry("bcc.b", uint16(0x0000), cpu.BccB),
		Entry("addq", uint16(0x0200), cpu.Addq),
	)
})
