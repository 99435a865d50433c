// Package channel models an unreliable link for exercising the codec. It
// flips bits of packed codewords and derives reproducible payloads.
package channel

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrInvalidBER = errors.New("channel: bit error rate must be within [0, 1]")
var ErrTooManyFlips = errors.New("channel: more flips requested than bits in the codeword")

const (
	// SingleWidth is the number of bits in a byte codeword: 8 data, 4 parity.
	SingleWidth = 12
	// PairWidth is the number of bits in a byte pair codeword: 16 data, 8 parity.
	PairWidth = 24
)

// PackSingle lays out a byte codeword as data | parity<<8.
func PackSingle(value, parity byte) uint32 {
	return uint32(value) | uint32(parity&0x0F)<<8
}

func UnpackSingle(word uint32) (value, parity byte) {
	return byte(word), byte(word>>8) & 0x0F
}

// PackPair lays out a pair codeword as first | second<<8 | parity<<16.
func PackPair(first, second, parity byte) uint32 {
	return uint32(first) | uint32(second)<<8 | uint32(parity)<<16
}

func UnpackPair(word uint32) (first, second, parity byte) {
	return byte(word), byte(word >> 8), byte(word >> 16)
}

// Channel corrupts codewords. It is not safe for concurrent use; give
// each goroutine its own Channel.
type Channel struct {
	rng *rand.Rand
	ber float64
}

func New(ber float64, seed int64) (*Channel, error) {
	if ber < 0.0 || ber > 1.0 {
		return nil, fmt.Errorf("%w: %.4f", ErrInvalidBER, ber)
	}
	return &Channel{
		rng: rand.New(rand.NewSource(seed)),
		ber: ber,
	}, nil
}

func (self *Channel) BER() float64 {
	return self.ber
}

// Transmit flips each of the low width bits of word with probability BER
// and returns the received word with the number of flipped bits.
func (self *Channel) Transmit(word uint32, width int) (uint32, int) {
	flips := 0
	for i := 0; i < width; i++ {
		if self.rng.Float64() < self.ber {
			word ^= 1 << uint(i)
			flips++
		}
	}
	return word, flips
}

// FlipN flips exactly n distinct bits among the low width bits of word.
func (self *Channel) FlipN(word uint32, width, n int) (uint32, error) {
	if n > width || n < 0 {
		return word, fmt.Errorf("%w: %d of %d", ErrTooManyFlips, n, width)
	}
	for _, i := range self.rng.Perm(width)[:n] {
		word ^= 1 << uint(i)
	}
	return word, nil
}
