package cpu

import (
	"GoCRIS/internal/fault"
)

// Timing is the per-instruction cost in a CPU model.
type Timing struct {
	Num    IType
	Cycles int
}

// Model is a named CPU timing model. Timing is indexed by IType.
type Model struct {
	Name   string
	Timing []Timing
}

// CRISv32Model returns the cycle model of the v32 core.
func CRISv32Model() *Model {
	m := &Model{Name: "crisv32", Timing: make([]Timing, NumITypes)}
	for i := range m.Timing {
		m.Timing[i] = Timing{Num: IType(i), Cycles: 1}
	}
	for _, e := range insnTable {
		m.Timing[e.num].Cycles = baseCycles(e)
	}
	return m
}

func baseCycles(e insnEntry) int {
	switch e.num {
	case MovemRMV32, MovemMRV32,
		MulsB, MulsW, MulsD, MuluB, MuluW, MuluD:
		return 3
	}
	cycles := 1
	if e.data.Attrs.Has(AttrMemory) {
		cycles++
	}
	if e.data.BitSize > 16 {
		cycles++
	}
	return cycles
}

// IDesc describes one instruction. Timing is nil unless the table was
// built for profiling.
type IDesc struct {
	Num    IType
	Sfmt   Sfmt
	Data   *InsnData
	Length int
	Timing *Timing
}

func (d *IDesc) String() string {
	return d.Num.String()
}

var invalidData = InsnData{Mnemonic: "--invalid--", BitSize: 16, Attrs: AttrVirtual}

// Table maps every IType to its descriptor. It is read-only once built
// and can be shared between CPUs.
type Table struct {
	Model *Model
	descs [NumITypes]IDesc
}

// NewTable builds the descriptor table for model. With profile set every
// descriptor points at its model timing entry.
func NewTable(model *Model, profile bool) *Table {
	t := &Table{Model: model}

	invalid := IDesc{Num: XInvalid, Sfmt: SfmtEmpty, Data: &invalidData, Length: invalidData.BitSize / 8}
	for i := range t.descs {
		t.descs[i] = invalid
	}

	for i := range insnTable {
		e := &insnTable[i]
		d := &t.descs[e.num]
		d.Num = e.num
		d.Sfmt = e.sfmt
		d.Data = &e.data
		d.Length = e.data.BitSize / 8
		if n := formats[e.sfmt].shape.length(); n != d.Length {
			panic(fault.Internalf("cpu: %s is %d bytes but format %s extracts %d", e.num, d.Length, e.sfmt, n))
		}
		if profile {
			tm := &model.Timing[e.num]
			if tm.Num != e.num {
				panic(fault.Internalf("cpu: model %s timing slot %d holds %s, want %s", model.Name, int(e.num), tm.Num, e.num))
			}
			d.Timing = tm
		}
	}

	return t
}

// Lookup returns the descriptor of num.
func (t *Table) Lookup(num IType) *IDesc {
	return &t.descs[num]
}

// Len is the number of descriptor slots.
func (t *Table) Len() int {
	return len(t.descs)
}
