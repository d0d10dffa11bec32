package cpu

import (
	"context"
	"fmt"

	"GoCRIS/internal/fault"
	"GoCRIS/internal/interfaces"
	"GoCRIS/internal/pending"
	"GoCRIS/util/dbg"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// Config selects core behaviour that is not part of the instruction set.
type Config struct {
	// V32 selects v32 branch offsets and the v32 version register.
	V32 bool
	// LoadLatency delays register writes from memory loads by this many
	// ticks through the pending-write ring. Zero writes immediately.
	LoadLatency int
	// FlagLatency delays setf/clearf the same way.
	FlagLatency int
}

func DefaultConfig() Config {
	return Config{V32: true}
}

type Option func(*CPU)

// WithTable shares an already built descriptor table.
func WithTable(t *Table) Option {
	return func(c *CPU) { c.table = t }
}

func WithProfiler(p interfaces.ProfileSink) Option {
	return func(c *CPU) { c.profiler = p }
}

func WithConfig(cfg Config) Option {
	return func(c *CPU) { c.cfg = cfg }
}

type loopState struct {
	top, end uint32
	count    uint32
	active   bool
}

type delayedBranch struct {
	target uint32
	armed  bool
}

// CPU is one simulated CRIS core. It is not safe for concurrent use; run
// one goroutine per core.
type CPU struct {
	registers *Registers
	bus       interfaces.BusInterface
	table     *Table
	profiler  interfaces.ProfileSink
	cfg       Config

	pending  pending.Queue
	branch   delayedBranch
	loop     loopState
	prefixed bool
	halted   bool

	Insts  uint64
	Cycles uint64
}

var _ interfaces.CPUInterface = (*CPU)(nil)

func New(bus interfaces.BusInterface, opts ...Option) *CPU {
	c := &CPU{
		bus:      bus,
		profiler: NopProfiler{},
		cfg:      DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.table == nil {
		_, profiling := c.profiler.(NopProfiler)
		c.table = NewTable(CRISv32Model(), !profiling)
	}
	c.registers = NewRegisters(c.version())
	return c
}

func (c *CPU) version() uint32 {
	if c.cfg.V32 {
		return VERSION_V32
	}
	return VERSION_V10
}

func (c *CPU) Registers() interfaces.RegistersInterface {
	return c.registers
}

// Regs is the concrete register file, for callers that need the special
// and support registers.
func (c *CPU) Regs() *Registers {
	return c.registers
}

func (c *CPU) Bus() interfaces.BusInterface {
	return c.bus
}

func (c *CPU) Table() *Table {
	return c.table
}

func (c *CPU) Pending() *pending.Queue {
	return &c.pending
}

func (c *CPU) Halted() bool {
	return c.halted
}

// Reset clears all core state and starts execution at pc.
func (c *CPU) Reset(pc uint32) {
	c.registers = NewRegisters(c.version())
	c.registers.SetPC(pc)
	c.pending.Flush()
	c.branch = delayedBranch{}
	c.loop = loopState{}
	c.prefixed = false
	c.halted = false
	c.Insts = 0
	c.Cycles = 0
}

// SetLoop arms hardware loop control: each time execution reaches end the
// PC returns to top, count times in total.
func (c *CPU) SetLoop(top, end, count uint32) {
	c.loop = loopState{top: top, end: end, count: count, active: count > 0}
}

// Step executes one instruction. A fault leaves the registers as they were
// after the previous instruction and is returned with the faulting PC.
func (c *CPU) Step() error {
	if c.halted {
		return &fault.Fault{Kind: fault.Halt, PC: c.registers.PC, HasPC: true}
	}

	pc := c.registers.PC
	word, err := c.bus.FetchInsn(pc, 2)
	if err != nil {
		return c.fail(err, pc, XInvalid)
	}
	insn := uint16(word)

	num, extract := Decode(insn)
	desc := c.table.Lookup(num)

	ctx := ExtractContext{PC: pc, Fetch: c.bus, V32: c.cfg.V32, Prefixed: c.prefixed}
	args, usage, err := extract(&ctx, insn)
	if err != nil {
		return c.fail(err, pc, num)
	}

	c.profiler.Record(pc, int(num), usage)

	if dbg.Enabled() {
		dbg.WithFields(logrus.Fields{
			"pc":    fmt.Sprintf("0x%08x", pc),
			"insn":  fmt.Sprintf("0x%04x", insn),
			"itype": num.String(),
		}, "step")
		dbg.Printf("%s", spew.Sdump(args))
	}

	if num == XInvalid {
		return c.fail(&fault.Fault{Kind: fault.IllegalInsn, Code: uint32(insn)}, pc, num)
	}

	armed := c.branch
	c.branch = delayedBranch{}

	next, err := c.execute(desc, args, pc, insn)
	if err != nil {
		c.branch = armed
		return c.fail(err, pc, num)
	}

	if armed.armed {
		next = armed.target
	}

	if c.loop.active && next == c.loop.end {
		c.loop.count--
		if c.loop.count == 0 {
			c.loop.active = false
		} else {
			next = c.loop.top
		}
	}
	c.registers.PC = next

	if !desc.Data.Attrs.Has(AttrPrefix) {
		c.prefixed = false
	}
	if num != Setf && num != Clearf {
		c.registers.SetFlagX(false)
	}

	c.Insts++
	c.Cycles += uint64(c.cycles(desc))
	c.pending.Tick()
	return nil
}

func (c *CPU) cycles(desc *IDesc) int {
	if desc.Timing != nil {
		return desc.Timing.Cycles
	}
	if m := c.table.Model; m != nil && int(desc.Num) < len(m.Timing) {
		return m.Timing[desc.Num].Cycles
	}
	return 1
}

func (c *CPU) fail(err error, pc uint32, num IType) error {
	err = fault.WithPC(err, pc)
	if fault.Is(err, fault.Halt) {
		return err
	}
	dbg.WithFields(logrus.Fields{
		"pc":    fmt.Sprintf("0x%08x", pc),
		"itype": num.String(),
		"error": err,
	}, "step aborted")
	return err
}

// Run steps until the core halts, faults, executes max instructions or ctx
// is cancelled. A halt is not an error. max == 0 means no limit.
func (c *CPU) Run(ctx context.Context, max uint64) error {
	for n := uint64(0); max == 0 || n < max; n++ {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := c.Step(); err != nil {
			if fault.Is(err, fault.Halt) {
				c.halted = true
				return nil
			}
			return err
		}
	}
	return nil
}
