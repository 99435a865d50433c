//go:build hamming_textbook

package parity

// Default is the strategy compiled into Calculate.
var Default Strategy = Textbook{}

func calculate(value byte) byte {
	return Textbook{}.Parity(value)
}
