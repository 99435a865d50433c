package hamming

import (
	"errors"

	"github.com/harlequix/lofi/parity"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Block", func() {
	var data []byte

	BeforeEach(func() {
		data = []byte("lofi!")
	})

	It("packs pairs and an odd trailing byte", func() {
		p := EncodeBlock(data)
		Expect(p).To(HaveLen(3))
		Expect(p[0]).To(Equal(PairParity('l', 'o')))
		Expect(p[2]).To(Equal(Parity('!')))
	})

	It("repairs one flip per byte", func() {
		p := EncodeBlock(data)
		for i := range data {
			data[i] ^= 1 << uint(i%8)
		}
		report, err := CorrectBlock(data, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("lofi!"))
		Expect(report.Corrected).To(Equal(5))
		Expect(report.Clean).To(BeZero())
		Expect(report.Worst).To(Equal(DoubleCorrected))
		Expect(report.OK()).To(BeTrue())
	})

	It("records uncorrectable pairs", func() {
		p := EncodeBlock(data)
		// flips at positions 3 and 5 with parity bit 8 give syndrome 14
		data[2] ^= 0x01 | 0x02
		p[1] ^= 0x08
		report, err := CorrectBlock(data, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Uncorrectable).To(Equal([]int{2}))
		Expect(report.Clean).To(Equal(3))
		Expect(report.OK()).To(BeFalse())
	})

	It("rejects mismatched parity", func() {
		_, err := CorrectBlock(data, []byte{0})
		Expect(errors.Is(err, ErrParityLength)).To(BeTrue())
	})

	It("handles empty input", func() {
		Expect(EncodeBlock(nil)).To(BeEmpty())
		report, err := CorrectBlock(nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.OK()).To(BeTrue())
	})

	It("agrees across strategies", func() {
		for _, s := range parity.Strategies() {
			Expect(New(s).EncodeBlock(data)).To(Equal(EncodeBlock(data)))
		}
	})
})
