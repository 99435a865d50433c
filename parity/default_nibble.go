//go:build hamming_balanced && !hamming_small && !hamming_textbook

package parity

// Default is the strategy compiled into Calculate.
var Default Strategy = Nibble{}

func calculate(value byte) byte {
	return lowNibbleTable[value&0x0F] ^ highNibbleTable[value>>4]
}
