package io_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"GoCRIS/internal/io"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("line down") }

var _ = Describe("IORegs", func() {
	const base = 0xb0000000

	It("transmits bytes written to the data register", func() {
		var out bytes.Buffer
		regs := io.NewIORegs(base, &out)
		for _, b := range []byte("hi\n") {
			regs.Write8(base+io.REG_TXDATA, b)
		}
		Expect(out.String()).To(Equal("hi\n"))
		Expect(regs.Sent()).To(Equal(uint64(3)))
		Expect(regs.Read8(base + io.REG_STATUS)).To(Equal(uint8(io.STATUS_TX_READY)))
	})

	It("keeps scratch registers and protects status", func() {
		regs := io.NewIORegs(base, nil)
		regs.Write8(base+io.REG_SCRATCH+3, 0x5a)
		regs.Write8(base+io.REG_STATUS, 0)
		Expect(regs.Read8(base + io.REG_SCRATCH + 3)).To(Equal(uint8(0x5a)))
		Expect(regs.Read8(base + io.REG_STATUS)).To(Equal(uint8(io.STATUS_TX_READY)))
		Expect(regs.Contains(base + regs.Size())).To(BeFalse())
	})

	It("latches transmit errors", func() {
		regs := io.NewIORegs(base, brokenWriter{})
		regs.Write8(base+io.REG_TXDATA, 'x')
		Expect(regs.Err()).To(MatchError("line down"))
		Expect(regs.Read8(base+io.REG_STATUS) & io.STATUS_TX_ERROR).NotTo(BeZero())
	})
})
