package cpu

import (
	"sort"

	"GoCRIS/internal/interfaces"
)

// NopProfiler discards every record.
type NopProfiler struct{}

func (NopProfiler) Record(uint32, int, interfaces.RegUsage) {}

// UsageProfiler counts executions per instruction and register reads and
// writes per register.
type UsageProfiler struct {
	Counts [NumITypes]uint64
	InGR   [16]uint64
	OutGR  [16]uint64
	InSR   [16]uint64
	OutSR  [16]uint64
}

func NewUsageProfiler() *UsageProfiler {
	return &UsageProfiler{}
}

func (p *UsageProfiler) Record(_ uint32, num int, u interfaces.RegUsage) {
	if num >= 0 && num < NumITypes {
		p.Counts[num]++
	}
	for i := 0; i < 16; i++ {
		bit := uint16(1) << i
		if u.InGR&bit != 0 {
			p.InGR[i]++
		}
		if u.OutGR&bit != 0 {
			p.OutGR[i]++
		}
		if u.InSR&bit != 0 {
			p.InSR[i]++
		}
		if u.OutSR&bit != 0 {
			p.OutSR[i]++
		}
	}
}

// InsnCount is one row of a profile summary.
type InsnCount struct {
	Num   IType
	Count uint64
}

// Top returns the n most executed instructions, most frequent first.
func (p *UsageProfiler) Top(n int) []InsnCount {
	var rows []InsnCount
	for i, c := range p.Counts {
		if c > 0 {
			rows = append(rows, InsnCount{Num: IType(i), Count: c})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}
