package fault_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"GoCRIS/internal/fault"
	"GoCRIS/internal/interfaces"
)

var _ = Describe("Fault", func() {
	It("reports the whole access and the pc", func() {
		f := fault.Memory(fault.Unmapped, interfaces.SpaceData, fault.Write, 0x1000, 4)
		err := fault.WithPC(f, 0x80)
		Expect(err.Error()).To(Equal("unmapped memory: write of 4 bytes at 0x00001000 (data space) at pc 0x00000080"))
	})

	It("stamps the pc through wrapping only once", func() {
		f := fault.Memory(fault.BusError, interfaces.SpaceInstruction, fault.Read, 6, 4)
		err := fmt.Errorf("fetch: %w", f)
		fault.WithPC(err, 0x10)
		fault.WithPC(err, 0x20)

		var got *fault.Fault
		Expect(errors.As(err, &got)).To(BeTrue())
		Expect(got.PC).To(Equal(uint32(0x10)))
		Expect(fault.Is(err, fault.BusError)).To(BeTrue())
		Expect(fault.Is(err, fault.Unmapped)).To(BeFalse())
	})

	It("leaves foreign errors alone", func() {
		err := errors.New("boom")
		Expect(fault.WithPC(err, 4)).To(BeIdenticalTo(err))
	})
})
