package bitfield_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"GoCRIS/internal/bitfield"
)

var _ = Describe("Bitfield", func() {
	DescribeTable("unsigned extraction",
		func(word uint64, start, length uint, want uint64) {
			Expect(bitfield.Uint(word, 16, start, length)).To(Equal(want))
		},
		Entry("top nibble", uint64(0x2245), uint(15), uint(4), uint64(0x2)),
		Entry("low nibble", uint64(0x2245), uint(3), uint(4), uint64(0x5)),
		Entry("bits 11..4", uint64(0x2245), uint(11), uint(8), uint64(0x24)),
		Entry("single bit", uint64(0x0400), uint(10), uint(1), uint64(1)),
		Entry("whole word", uint64(0xbeef), uint(15), uint(16), uint64(0xbeef)),
	)

	DescribeTable("signed extraction",
		func(word uint64, start, length uint, want int64) {
			Expect(bitfield.Sint(word, 16, start, length)).To(Equal(want))
		},
		Entry("positive s6", uint64(0x2245), uint(5), uint(6), int64(5)),
		Entry("negative s6", uint64(0x003f), uint(5), uint(6), int64(-1)),
		Entry("min s6", uint64(0x0020), uint(5), uint(6), int64(-32)),
		Entry("negative s8", uint64(0x0080), uint(7), uint(8), int64(-128)),
		Entry("one-bit sign", uint64(0x0001), uint(0), uint(1), int64(-1)),
	)

	It("agrees with a validated Field", func() {
		f := bitfield.MustField(16, 15, 4)
		for w := uint64(0); w < 0x10000; w += 0x111 {
			Expect(f.Uint(w)).To(Equal(bitfield.Uint(w, 16, 15, 4)))
			Expect(f.Sint(w)).To(Equal(bitfield.Sint(w, 16, 15, 4)))
		}
	})

	It("does not depend on the word width", func() {
		for w := uint64(0); w < 0x10000; w += 0x101 {
			Expect(bitfield.Uint(w, 16, 11, 8)).To(Equal(bitfield.Uint(w, 32, 11, 8)))
			Expect(bitfield.Sint(w, 16, 7, 8)).To(Equal(bitfield.Sint(w, 64, 7, 8)))
		}
	})

	It("rejects fields that do not fit the word", func() {
		Expect(func() { bitfield.MustField(16, 16, 1) }).To(Panic())
		Expect(func() { bitfield.MustField(16, 3, 5) }).To(Panic())
		Expect(func() { bitfield.MustField(16, 3, 0) }).To(Panic())
	})
})
