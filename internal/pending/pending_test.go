package pending_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"GoCRIS/internal/fault"
	"GoCRIS/internal/pending"
)

var _ = Describe("Queue", func() {
	var q *pending.Queue

	BeforeEach(func() {
		q = &pending.Queue{}
	})

	It("commits in issue order even when a later write is ready first", func() {
		var a, b, c uint32
		q.Enqueue32(&a, 1, 3)
		q.Enqueue32(&b, 2, 1)
		q.Enqueue32(&c, 3, 2)

		Expect(q.Tick()).To(Equal(0))
		second, ok := q.Peek(1)
		Expect(ok).To(BeTrue())
		Expect(second.Ready()).To(BeTrue())
		Expect(b).To(BeZero())

		Expect(q.Tick()).To(Equal(0))
		Expect([]uint32{a, b, c}).To(Equal([]uint32{0, 0, 0}))

		Expect(q.Tick()).To(Equal(3))
		Expect([]uint32{a, b, c}).To(Equal([]uint32{1, 2, 3}))
		Expect(q.Empty()).To(BeTrue())
	})

	It("keeps issue order for writes to the same destination", func() {
		var r uint32
		q.Enqueue32(&r, 10, 2)
		q.Enqueue32(&r, 20, 1)
		q.Tick()
		q.Tick()
		Expect(r).To(Equal(uint32(20)))
	})

	It("commits a zero-delay write on the next tick", func() {
		var r uint32
		q.Enqueue32(&r, 7, 0)
		Expect(r).To(BeZero())
		Expect(q.Tick()).To(Equal(1))
		Expect(r).To(Equal(uint32(7)))
	})

	It("sets and clears single bits without touching their neighbours", func() {
		flags := uint32(0xf0)
		q.EnqueueBit(&flags, 0, true, 1)
		q.EnqueueBit(&flags, 4, false, 1)
		q.Tick()
		Expect(flags).To(Equal(uint32(0xe1)))
	})

	It("assigns eight-byte values", func() {
		var wide uint64
		q.Enqueue64(&wide, 0x0123456789abcdef, 1)
		q.Tick()
		Expect(wide).To(Equal(uint64(0x0123456789abcdef)))
	})

	It("wraps around the ring", func() {
		var r uint32
		for i := 0; i < 3*pending.Slots; i++ {
			q.Enqueue32(&r, uint32(i), 1)
			q.Tick()
			Expect(r).To(Equal(uint32(i)))
		}
		Expect(q.Len()).To(BeZero())
	})

	It("flushes everything in order", func() {
		var r uint32
		q.Enqueue32(&r, 1, 5)
		q.Enqueue32(&r, 2, 9)
		q.Flush()
		Expect(r).To(Equal(uint32(2)))
		Expect(q.Empty()).To(BeTrue())
	})

	It("treats overflow as an internal fault", func() {
		var r uint32
		for i := 0; i < pending.Slots; i++ {
			q.Enqueue32(&r, 1, 100)
		}
		Expect(func() { q.Enqueue32(&r, 1, 1) }).To(PanicWith(BeAssignableToTypeOf(fault.Internal{})))
	})
})
