// Package hamming corrects single bit errors in bytes protected by the
// 4-bit parity nibble of package parity.
//
// A received byte and its received parity are checked by recomputing the
// parity and XORing the two. The resulting syndrome is zero for a clean
// codeword, names a check bit (1, 2, 4, 8) when only the parity was hit,
// names a data bit (3, 5, 6, 7, 9, 10, 11, 12) that is then flipped back,
// or is 13, 14 or 15, which no single bit error can produce.
//
// Two bytes can share one parity byte: the low nibble belongs to the first
// byte and the high nibble to the second. They are corrected independently.
//
// All functions are reentrant and allocation free. The package-level
// functions use the parity strategy selected at build time; a Codec binds
// the same operations to an explicit strategy.
package hamming

import "github.com/harlequix/lofi/parity"

var calculate = parity.Calculate

// Parity returns the parity nibble to transmit with value.
func Parity(value byte) byte {
	return calculate(value)
}

// PairParity returns the combined parity byte for first and second.
func PairParity(first, second byte) byte {
	return calculate(second)<<4 | calculate(first)
}

// Correct checks *value against its received parity nibble and flips the
// erroneous data bit if there is one. A nil value is Uncorrectable.
func Correct(value *byte, parity byte) Level {
	if value == nil {
		return Uncorrectable
	}
	return correctWith(calculate, value, parity)
}

// CorrectPair checks two bytes against their combined parity. The result is
// the sum of the per-byte levels; it is Uncorrectable if either is nil.
func CorrectPair(first, second *byte, parity byte) Level {
	if first == nil || second == nil {
		return Uncorrectable
	}
	return correctPairWith(calculate, first, second, parity)
}

// Repair is Correct for callers holding the byte by value.
func Repair(value, parity byte) (byte, Level) {
	level := Correct(&value, parity)
	return value, level
}

// RepairPair is CorrectPair for callers holding the bytes by value.
func RepairPair(first, second, parity byte) (byte, byte, Level) {
	level := CorrectPair(&first, &second, parity)
	return first, second, level
}

func correctWith(calc func(byte) byte, value *byte, parity byte) Level {
	syndrome := calc(*value) ^ parity
	if syndrome != 0 {
		return correctSyndrome(value, syndrome)
	}
	return Clean
}

func correctPairWith(calc func(byte) byte, first, second *byte, parity byte) Level {
	syndrome := (calc(*second)<<4 | calc(*first)) ^ parity
	if syndrome != 0 {
		return correctSyndrome(first, syndrome) + correctSyndrome(second, syndrome>>4)
	}
	return Clean
}
