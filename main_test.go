package main

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"GoCRIS/rom"
)

var _ = Describe("placeImage", func() {
	var img *rom.Image

	BeforeEach(func() {
		var err error
		img, err = rom.New("prog.bin", []byte{0x45, 0x22, 0x30, 0xf9})
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns the load address and RAM size", func() {
		entry, size, err := placeImage(img, 0x100, 0x1000, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(entry).To(Equal(uint32(0x100)))
		Expect(size).To(Equal(uint32(0x1000)))
	})

	It("rejects a RAM size that does not fit 32 bits", func() {
		if uint64(^uint(0)) <= math.MaxUint32 {
			Skip("uint is 32 bits")
		}
		big := uint(math.MaxUint32)
		_, _, err := placeImage(img, 0, big+1, false)
		Expect(err).To(MatchError(ContainSubstring("out of range")))
	})

	It("rejects an empty RAM", func() {
		_, _, err := placeImage(img, 0, 0, false)
		Expect(err).To(MatchError(ContainSubstring("out of range")))
	})

	It("rejects an image that overruns RAM", func() {
		_, _, err := placeImage(img, 0xffe, 0x1000, false)
		Expect(err).To(MatchError(ContainSubstring("does not fit")))
		_, _, err = placeImage(img, 0xffc, 0x1000, false)
		Expect(err).NotTo(HaveOccurred())
	})

	It("only checks the RAM size for a boot ROM", func() {
		_, size, err := placeImage(img, 0xffe, 0x1000, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(uint32(0x1000)))
	})
})
