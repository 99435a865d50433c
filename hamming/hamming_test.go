package hamming

import (
	"math/bits"

	"github.com/harlequix/lofi/parity"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// flipCodeword flips codeword position pos (1..12) of a value/parity pair.
func flipCodeword(value, p byte, pos int) (byte, byte) {
	if bits.OnesCount(uint(pos)) == 1 {
		return value, p ^ byte(pos)
	}
	for i, dp := range parity.Positions {
		if int(dp) == pos {
			return value ^ 1<<uint(i), p
		}
	}
	panic("position out of range")
}

var _ = Describe("Correct", func() {
	It("leaves clean bytes alone", func() {
		for v := 0; v < 256; v++ {
			value := byte(v)
			Expect(Correct(&value, Parity(value))).To(Equal(Clean))
			Expect(value).To(Equal(byte(v)))
		}
	})

	It("restores every single flipped data bit", func() {
		for v := 0; v < 256; v++ {
			p := Parity(byte(v))
			for bit := uint(0); bit < 8; bit++ {
				value := byte(v) ^ 1<<bit
				Expect(Correct(&value, p)).To(Equal(Corrected))
				Expect(value).To(Equal(byte(v)))
			}
		}
	})

	It("accepts the data when only the parity was hit", func() {
		for v := 0; v < 256; v++ {
			for bit := uint(0); bit < 4; bit++ {
				value := byte(v)
				Expect(Correct(&value, Parity(value)^1<<bit)).To(Equal(Corrected))
				Expect(value).To(Equal(byte(v)))
			}
		}
	})

	It("reports syndromes 13 to 15 as uncorrectable and never fixes two flips", func() {
		for v := 0; v < 256; v++ {
			for a := 1; a <= 12; a++ {
				for b := a + 1; b <= 12; b++ {
					value, p := flipCodeword(byte(v), Parity(byte(v)), a)
					value, p = flipCodeword(value, p, b)
					received := value
					level := Correct(&value, p)
					Expect(level).NotTo(Equal(Clean))
					if a^b >= 13 {
						Expect(level).To(Equal(Uncorrectable))
						Expect(value).To(Equal(received))
					} else {
						Expect(level).To(Equal(Corrected))
						Expect(value).NotTo(Equal(byte(v)))
					}
				}
			}
		}
	})

	It("is idempotent once corrected", func() {
		value := byte(0xA5)
		p := Parity(value)
		value ^= 0x10
		Expect(Correct(&value, p)).To(Equal(Corrected))
		Expect(Correct(&value, p)).To(Equal(Clean))
		Expect(value).To(Equal(byte(0xA5)))
	})

	It("rejects a nil reference", func() {
		Expect(Correct(nil, 0)).To(Equal(Uncorrectable))
	})

	It("ignores the high nibble of the received parity", func() {
		value := byte(0x42)
		Expect(Correct(&value, Parity(value)|0xA0)).To(Equal(Clean))
		Expect(value).To(Equal(byte(0x42)))
	})

	It("repairs by value", func() {
		got, level := Repair(0x01^0x80, Parity(0x01))
		Expect(level).To(Equal(Corrected))
		Expect(got).To(Equal(byte(0x01)))
	})
})

var _ = Describe("CorrectPair", func() {
	It("restores the first byte and leaves the second alone", func() {
		first, second := byte(0x00), byte(0xFF)
		p := PairParity(first, second)
		first ^= 0x08
		Expect(CorrectPair(&first, &second, p)).To(Equal(Corrected))
		Expect(first).To(Equal(byte(0x00)))
		Expect(second).To(Equal(byte(0xFF)))
	})

	It("restores one flip in each byte", func() {
		first, second := byte(0x3C), byte(0xC3)
		p := PairParity(first, second)
		first ^= 0x01
		second ^= 0x80
		Expect(CorrectPair(&first, &second, p)).To(Equal(DoubleCorrected))
		Expect(first).To(Equal(byte(0x3C)))
		Expect(second).To(Equal(byte(0xC3)))
	})

	It("keeps the raw sum when one byte is beyond repair", func() {
		first, second := byte(0x00), byte(0x00)
		// parity-only fault on the first byte, syndrome 13 on the second
		p := byte(0xD1)
		level := CorrectPair(&first, &second, p)
		Expect(level).To(Equal(Level(4)))
		Expect(level.Uncorrectable()).To(BeTrue())
		Expect(first).To(Equal(byte(0x00)))
		Expect(second).To(Equal(byte(0x00)))
	})

	It("is clean for matching parity", func() {
		first, second, level := RepairPair(0x12, 0x34, PairParity(0x12, 0x34))
		Expect(level).To(Equal(Clean))
		Expect([]byte{first, second}).To(Equal([]byte{0x12, 0x34}))
	})

	It("rejects nil references", func() {
		value := byte(1)
		Expect(CorrectPair(nil, &value, 0)).To(Equal(Uncorrectable))
		Expect(CorrectPair(&value, nil, 0)).To(Equal(Uncorrectable))
	})
})

var _ = Describe("Codec", func() {
	It("behaves the same for every strategy", func() {
		for _, s := range parity.Strategies() {
			codec := New(s)
			for v := 0; v < 256; v++ {
				Expect(codec.Parity(byte(v))).To(Equal(Parity(byte(v))))
				for bit := uint(0); bit < 8; bit++ {
					got, level := codec.Repair(byte(v)^1<<bit, codec.Parity(byte(v)))
					Expect(level).To(Equal(Corrected))
					Expect(got).To(Equal(byte(v)))
				}
			}
			first, second, level := codec.RepairPair(0x00^0x40, 0xFF, codec.PairParity(0x00, 0xFF))
			Expect(level).To(Equal(Corrected))
			Expect(first).To(Equal(byte(0x00)))
			Expect(second).To(Equal(byte(0xFF)))
		}
	})

	It("falls back to the default strategy", func() {
		Expect(New(nil).Strategy()).To(Equal(parity.Default))
	})
})

var _ = Describe("Syndrome", func() {
	It("classifies all sixteen values", func() {
		kinds := map[Kind][]Syndrome{}
		for s := Syndrome(0); s < 16; s++ {
			kinds[s.Kind()] = append(kinds[s.Kind()], s)
		}
		Expect(kinds[None]).To(Equal([]Syndrome{0}))
		Expect(kinds[ParityBit]).To(Equal([]Syndrome{1, 2, 4, 8}))
		Expect(kinds[DataBit]).To(Equal([]Syndrome{3, 5, 6, 7, 9, 10, 11, 12}))
		Expect(kinds[Invalid]).To(Equal([]Syndrome{13, 14, 15}))
	})

	It("maps data positions to their bit", func() {
		for i, pos := range parity.Positions {
			s := Syndrome(pos)
			Expect(s.Mask()).To(Equal(byte(1) << uint(i)))
			Expect(s.Position()).To(Equal(int(pos)))
		}
		Expect(Syndrome(8).Mask()).To(BeZero())
		Expect(Syndrome(14).Position()).To(BeZero())
	})

	It("is computed from a received byte", func() {
		Expect(NewSyndrome(0x01, 0x00)).To(Equal(Syndrome(3)))
		Expect(NewSyndrome(0x01, 0x03)).To(Equal(Syndrome(0)))
	})
})

var _ = Describe("Level", func() {
	It("has readable names", func() {
		Expect(Clean.String()).To(Equal("clean"))
		Expect(DoubleCorrected.String()).To(Equal("double-corrected"))
		Expect(Level(6).String()).To(Equal("uncorrectable(6)"))
		Expect(Corrected.Uncorrectable()).To(BeFalse())
	})
})
