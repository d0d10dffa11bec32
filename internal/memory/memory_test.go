package memory_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"GoCRIS/internal/interfaces"
	"GoCRIS/internal/memory"
)

var _ = Describe("Regions", func() {
	var _ interfaces.MemoryDevice = memory.NewRAM(0, 1)
	var _ interfaces.MemoryDevice = memory.NewROM(0, []byte{0})

	Describe("RAM", func() {
		var ram *memory.RAM

		BeforeEach(func() {
			ram = memory.NewRAM(0x1000, 0x100)
		})

		It("stores bytes at absolute addresses", func() {
			ram.Write8(0x1010, 0xab)
			Expect(ram.Read8(0x1010)).To(Equal(uint8(0xab)))
			Expect(ram.Contains(0x10ff)).To(BeTrue())
			Expect(ram.Contains(0x1100)).To(BeFalse())
			Expect(ram.Contains(0x0fff)).To(BeFalse())
		})

		It("loads images that fit and rejects ones that do not", func() {
			Expect(ram.Load(0x10fe, []byte{1, 2})).To(Succeed())
			Expect(ram.Read8(0x10ff)).To(Equal(uint8(2)))
			Expect(ram.Load(0x10ff, []byte{1, 2})).To(HaveOccurred())
			Expect(ram.Load(0x2000, []byte{1})).To(HaveOccurred())
		})

		It("panics when routed an address it does not own", func() {
			Expect(func() { ram.Read8(0x2000) }).To(Panic())
		})
	})

	Describe("ROM", func() {
		It("is read-only", func() {
			rom := memory.NewROM(memory.BOOTROM_START, []byte{0x45, 0x22})
			Expect(rom.ReadOnly()).To(BeTrue())
			Expect(rom.Size()).To(Equal(uint32(2)))
			Expect(rom.Read8(memory.BOOTROM_START + 1)).To(Equal(byte(0x22)))
			Expect(func() { rom.Write8(memory.BOOTROM_START, 0) }).To(Panic())
		})
	})
})
