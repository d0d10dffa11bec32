// Package pending models delayed register writes: a fixed ring of slots
// counted down once per simulated tick and committed strictly in issue
// order.
package pending

import (
	"GoCRIS/internal/fault"
	"GoCRIS/util/dbg"
)

// Slots is the ring capacity, sized to the deepest modelled pipeline.
const Slots = 32

const noBit = -1

// Slot is one in-flight write.
type Slot struct {
	dest32 *uint32
	dest64 *uint64
	value  uint64
	bit    int // noBit for a whole-value assignment
	set    bool
	size   int // 4 or 8
	delay  int
}

// Ready reports whether the slot's delay has expired.
func (s *Slot) Ready() bool { return s.delay == 0 }

func (s *Slot) commit() {
	switch {
	case s.bit != noBit && s.set:
		*s.dest32 |= 1 << uint(s.bit)
	case s.bit != noBit:
		*s.dest32 &^= 1 << uint(s.bit)
	case s.size == 8:
		*s.dest64 = s.value
	default:
		*s.dest32 = uint32(s.value)
	}
}

// Queue is the per-core ring. The zero value is an empty queue.
type Queue struct {
	slots [Slots]Slot
	in    int
	out   int
	total int
}

func (q *Queue) push(s Slot) {
	if q.total == Slots {
		panic(fault.Internalf("pending write ring overflow (%d slots)", Slots))
	}
	if s.delay < 0 {
		s.delay = 0
	}
	q.slots[q.in] = s
	q.in = (q.in + 1) % Slots
	q.total++
}

// Enqueue32 assigns value to dest after delay ticks.
func (q *Queue) Enqueue32(dest *uint32, value uint32, delay int) {
	q.push(Slot{dest32: dest, value: uint64(value), bit: noBit, size: 4, delay: delay})
}

// Enqueue64 assigns value to dest after delay ticks.
func (q *Queue) Enqueue64(dest *uint64, value uint64, delay int) {
	q.push(Slot{dest64: dest, value: value, bit: noBit, size: 8, delay: delay})
}

// EnqueueBit sets or clears one bit of dest after delay ticks, leaving the
// other bits alone.
func (q *Queue) EnqueueBit(dest *uint32, bit uint, set bool, delay int) {
	q.push(Slot{dest32: dest, bit: int(bit), set: set, size: 4, delay: delay})
}

// Tick counts every occupied slot down by one, then commits and pops the
// head for as long as it is ready. A ready slot behind a waiting head
// stays queued. It returns the number of writes committed.
func (q *Queue) Tick() int {
	for i, n := q.out, 0; n < q.total; i, n = (i+1)%Slots, n+1 {
		if q.slots[i].delay > 0 {
			q.slots[i].delay--
		}
	}

	committed := 0
	for q.total > 0 && q.slots[q.out].Ready() {
		q.slots[q.out].commit()
		q.slots[q.out] = Slot{}
		q.out = (q.out + 1) % Slots
		q.total--
		committed++
	}
	if committed > 0 {
		dbg.Printf("pending: committed %d, %d in flight\n", committed, q.total)
	}
	return committed
}

// Flush commits everything in issue order regardless of delay.
func (q *Queue) Flush() {
	for q.total > 0 {
		q.slots[q.out].commit()
		q.slots[q.out] = Slot{}
		q.out = (q.out + 1) % Slots
		q.total--
	}
}

// Len is the number of writes in flight.
func (q *Queue) Len() int { return q.total }

// Empty reports whether nothing is in flight; it holds exactly when the
// in and out cursors meet with no slot occupied.
func (q *Queue) Empty() bool { return q.total == 0 }

// Peek returns the slot at position i from the head, for inspection.
func (q *Queue) Peek(i int) (Slot, bool) {
	if i < 0 || i >= q.total {
		return Slot{}, false
	}
	return q.slots[(q.out+i)%Slots], true
}
