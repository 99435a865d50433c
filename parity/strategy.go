// Package parity computes the 4-bit extended Hamming parity of a byte.
//
// Each data bit of the payload occupies a fixed position in a virtual
// 12-bit codeword: bit 1 (least significant) sits at position 3, then
// 5, 6, 7, 9, 10, 11 and 12. Positions 1, 2, 4 and 8 hold the check bits.
// The parity nibble is the XOR of the positions of every set data bit.
//
// Several strategies compute the same nibble with different size and
// speed tradeoffs. Which one backs Calculate is fixed at build time:
//
//	go build                          # Table, 256 byte lookup
//	go build -tags hamming_balanced   # Nibble, two 16 byte lookups
//	go build -tags hamming_small      # Serial, no table
//	go build -tags hamming_textbook   # Textbook, per check bit XOR
package parity

import (
	"errors"
	"fmt"
)

// Strategy computes the parity nibble of a single payload byte.
type Strategy interface {
	Parity(value byte) byte
	Name() string
}

// Positions holds the codeword position of data bits 1 through 8.
var Positions = [8]byte{3, 5, 6, 7, 9, 10, 11, 12}

var ErrUnknownStrategy = errors.New("parity: unknown strategy")

const (
	NameTable    string = "table"
	NameNibble   string = "nibble"
	NameSerial   string = "serial"
	NameTextbook string = "textbook"
)

// Strategies lists every available backend in order of decreasing table size.
func Strategies() []Strategy {
	return []Strategy{Table{}, Nibble{}, Serial{}, Textbook{}}
}

// ByName returns the strategy registered under name. An empty name
// resolves to the build-selected default.
func ByName(name string) (Strategy, error) {
	if name == "" {
		return Default, nil
	}
	for _, s := range Strategies() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Pair packs the parity of first into the low nibble and the parity of
// second into the high nibble. The two nibbles are independent.
func Pair(s Strategy, first, second byte) byte {
	return s.Parity(second)<<4 | s.Parity(first)
}

// Calculate returns the parity nibble of value using the build-selected strategy.
func Calculate(value byte) byte {
	return calculate(value)
}

// CalculatePair is Pair for the build-selected strategy.
func CalculatePair(first, second byte) byte {
	return calculate(second)<<4 | calculate(first)
}
