package rom_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"GoCRIS/rom"
)

var _ = Describe("Image", func() {
	It("loads a raw file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "prog.bin")
		Expect(os.WriteFile(path, []byte{0x45, 0x22, 0x30, 0xf9}, 0o644)).To(Succeed())

		img, err := rom.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Data).To(Equal([]byte{0x45, 0x22, 0x30, 0xf9}))
		Expect(img.Size()).To(Equal(uint32(4)))
	})

	It("wraps a missing file error", func() {
		_, err := rom.Load(filepath.Join(GinkgoT().TempDir(), "missing.bin"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("rejects an empty image", func() {
		_, err := rom.New("empty", nil)
		Expect(err).To(MatchError(rom.ErrEmpty))
	})

	It("pads odd images to a halfword", func() {
		src := []byte{1, 2, 3}
		img, err := rom.New("odd", src)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Data).To(Equal([]byte{1, 2, 3, 0}))
		Expect(src).To(HaveLen(3))
	})

	It("checks that it fits a region", func() {
		img, _ := rom.New("four", []byte{1, 2, 3, 4})
		Expect(img.Fits(0, 4)).To(BeTrue())
		Expect(img.Fits(2, 4)).To(BeFalse())
	})
})
