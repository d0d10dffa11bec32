package bus

import (
	"fmt"
	"sort"
	"sync"

	"GoCRIS/internal/fault"
	"GoCRIS/internal/interfaces"
	"GoCRIS/util/dbg"
)

// Endian is the target byte order.
type Endian uint8

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// CCA is the cache coherence algorithm of an access. No cache is modelled,
// so every value behaves as uncached.
type CCA uint8

const (
	Uncached CCA = iota
	Cached
)

// Access widths in bytes. The odd widths exist for misaligned multi-byte
// accesses split across word boundaries.
const (
	BYTE      = 1
	HALFWORD  = 2
	TRIPLE    = 3
	WORD      = 4
	QUINT     = 5
	SEXT      = 6
	SEPT      = 7
	DOUBLE    = 8
	QUADWORD  = 16
	maxUnit   = 8
	quadAlign = 16
)

// ValidWidth reports whether width is one of the supported access widths.
func ValidWidth(width int) bool {
	return (width >= BYTE && width <= DOUBLE) || width == QUADWORD
}

type Config struct {
	Endian    Endian
	AlignUnit int // 4 or 8; 0 means 8
}

type region struct {
	name string
	dev  interfaces.MemoryDevice
}

// Bus is the simulated address space: a set of non-overlapping regions and
// the load/store engine in front of them. Each call is atomic over the
// bytes it touches.
type Bus struct {
	mu      sync.RWMutex
	endian  Endian
	unit    uint32
	regions []region
}

var _ interfaces.BusInterface = (*Bus)(nil)

// NewBus creates an empty address space.
func NewBus(cfg Config) *Bus {
	unit := cfg.AlignUnit
	if unit == 0 {
		unit = maxUnit
	}
	if unit != 4 && unit != 8 {
		panic(fmt.Sprintf("Bus: alignment unit must be 4 or 8, got %d", unit))
	}
	return &Bus{endian: cfg.Endian, unit: uint32(unit)}
}

func (b *Bus) Endian() Endian    { return b.endian }
func (b *Bus) AlignUnit() uint32 { return b.unit }

// Attach maps dev under name. Overlapping another region is an error.
func (b *Bus) Attach(name string, dev interfaces.MemoryDevice) error {
	if dev == nil || dev.Size() == 0 {
		return fmt.Errorf("attach %s: empty region", name)
	}
	lo := uint64(dev.Base())
	hi := lo + uint64(dev.Size())
	if hi > 1<<32 {
		return fmt.Errorf("attach %s: region 0x%08x+0x%x wraps the address space", name, lo, dev.Size())
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.regions {
		rlo := uint64(r.dev.Base())
		rhi := rlo + uint64(r.dev.Size())
		if lo < rhi && rlo < hi {
			return fmt.Errorf("attach %s: overlaps %s at 0x%08x", name, r.name, rlo)
		}
	}
	b.regions = append(b.regions, region{name: name, dev: dev})
	sort.Slice(b.regions, func(i, j int) bool { return b.regions[i].dev.Base() < b.regions[j].dev.Base() })
	dbg.Printf("Bus: attached %s at 0x%08x (%d bytes)\n", name, lo, dev.Size())
	return nil
}

// find returns the region holding every byte of [addr, addr+width).
func (b *Bus) find(addr uint32, width int) interfaces.MemoryDevice {
	last := uint64(addr) + uint64(width) - 1
	for _, r := range b.regions {
		if r.dev.Contains(addr) {
			if last > uint64(r.dev.Base())+uint64(r.dev.Size())-1 {
				return nil
			}
			return r.dev
		}
	}
	return nil
}

// laneShift is the bit offset of a width-byte value at paddr inside its
// alignment unit. Loads shift left by it and stores shift right, so the
// two are inverses.
func (b *Bus) laneShift(paddr uint32, width int) uint {
	off := paddr & (b.unit - 1)
	if b.endian == BigEndian {
		return uint(((b.unit - 1 - off) - uint32(width-1)) * 8)
	}
	return uint(off * 8)
}

func widthMask(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << (uint(width) * 8)) - 1
}

// check validates alignment and mapping before any byte moves.
func (b *Bus) check(space interfaces.Space, dir fault.Direction, width int, paddr uint32) (interfaces.MemoryDevice, error) {
	if !ValidWidth(width) {
		panic(fault.Internalf("access width %d is not supported", width))
	}
	if width == QUADWORD {
		if paddr&(quadAlign-1) != 0 {
			return nil, fault.Memory(fault.BusError, space, dir, paddr, width)
		}
	} else if paddr&(b.unit-1)+uint32(width) > b.unit {
		return nil, fault.Memory(fault.BusError, space, dir, paddr, width)
	}
	dev := b.find(paddr, width)
	if dev == nil {
		return nil, fault.Memory(fault.Unmapped, space, dir, paddr, width)
	}
	if dir == fault.Write && dev.ReadOnly() {
		return nil, fault.Memory(fault.BusError, space, dir, paddr, width)
	}
	return dev, nil
}

// gather reads width bytes at addr as a target-order integer.
func (b *Bus) gather(dev interfaces.MemoryDevice, addr uint32, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		c := uint64(dev.Read8(addr + uint32(i)))
		if b.endian == BigEndian {
			v = v<<8 | c
		} else {
			v |= c << (uint(i) * 8)
		}
	}
	return v
}

// scatter writes the low width bytes of v at addr in target order.
func (b *Bus) scatter(dev interfaces.MemoryDevice, addr uint32, width int, v uint64) {
	for i := 0; i < width; i++ {
		var c byte
		if b.endian == BigEndian {
			c = byte(v >> (uint(width-1-i) * 8))
		} else {
			c = byte(v >> (uint(i) * 8))
		}
		dev.Write8(addr+uint32(i), c)
	}
}

// LoadMemory reads width bytes at paddr and returns them positioned in
// their byte lane of the alignment unit. 16-byte accesses return the low
// and high 64-bit halves of the 128-bit value.
func (b *Bus) LoadMemory(space interfaces.Space, _ CCA, width int, paddr uint32) (lo, hi uint64, err error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.load(space, width, paddr)
}

func (b *Bus) load(space interfaces.Space, width int, paddr uint32) (lo, hi uint64, err error) {
	dev, err := b.check(space, fault.Read, width, paddr)
	if err != nil {
		return 0, 0, err
	}
	if width == QUADWORD {
		first := b.gather(dev, paddr, 8)
		second := b.gather(dev, paddr+8, 8)
		if b.endian == BigEndian {
			return second, first, nil
		}
		return first, second, nil
	}
	return b.gather(dev, paddr, width) << b.laneShift(paddr, width), 0, nil
}

// StoreMemory is the inverse of LoadMemory: lo (and hi for 16-byte
// accesses) hold the value in its byte lane. Nothing is written when the
// access faults.
func (b *Bus) StoreMemory(space interfaces.Space, _ CCA, width int, paddr uint32, lo, hi uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	dev, err := b.check(space, fault.Write, width, paddr)
	if err != nil {
		return err
	}
	if width == QUADWORD {
		first, second := lo, hi
		if b.endian == BigEndian {
			first, second = hi, lo
		}
		b.scatter(dev, paddr, 8, first)
		b.scatter(dev, paddr+8, 8, second)
		return nil
	}
	b.scatter(dev, paddr, width, (lo>>b.laneShift(paddr, width))&widthMask(width))
	return nil
}

// Read returns a right-aligned value of width bytes (at most 8).
func (b *Bus) Read(space interfaces.Space, addr uint32, width int) (uint64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.read(space, addr, width)
}

func (b *Bus) read(space interfaces.Space, addr uint32, width int) (uint64, error) {
	if width > DOUBLE {
		panic(fault.Internalf("Read of %d bytes; use LoadMemory", width))
	}
	lane, _, err := b.load(space, width, addr)
	if err != nil {
		return 0, err
	}
	return (lane >> b.laneShift(addr, width)) & widthMask(width), nil
}

// Write stores the low width bytes (at most 8) of value.
func (b *Bus) Write(space interfaces.Space, addr uint32, width int, value uint64) error {
	if width > DOUBLE {
		panic(fault.Internalf("Write of %d bytes; use StoreMemory", width))
	}
	return b.StoreMemory(space, Uncached, width, addr, (value&widthMask(width))<<b.laneShift(addr, width), 0)
}

// ReadUnaligned reads width bytes that may straddle an alignment unit by
// composing aligned byte accesses. A fault names the whole request.
func (b *Bus) ReadUnaligned(space interfaces.Space, addr uint32, width int) (uint64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if addr&(b.unit-1)+uint32(width) <= b.unit {
		return b.read(space, addr, width)
	}
	var v uint64
	for i := 0; i < width; i++ {
		c, err := b.read(space, addr+uint32(i), BYTE)
		if err != nil {
			if f, ok := err.(*fault.Fault); ok {
				f.Addr, f.Width = addr, width
			}
			return 0, err
		}
		if b.endian == BigEndian {
			v = v<<8 | c
		} else {
			v |= c << (uint(i) * 8)
		}
	}
	return v, nil
}

// FetchInsn reads an instruction word. CRIS instruction streams are only
// halfword aligned, so trailing immediates may straddle the unit.
func (b *Bus) FetchInsn(addr uint32, width int) (uint64, error) {
	return b.ReadUnaligned(interfaces.SpaceInstruction, addr, width)
}
