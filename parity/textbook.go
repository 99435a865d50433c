package parity

// Textbook computes each check bit as the XOR of the data bits it covers,
// most significant check bit first, shifting the result into place.
type Textbook struct{}

var _ Strategy = Textbook{}

// bit returns data bit n of value, numbered from 1 at the least significant end.
func bit(value byte, n uint) byte {
	return (value >> (n - 1)) & 1
}

func (Textbook) Parity(value byte) byte {
	// check bit for position 8
	parity := bit(value, 5) ^ bit(value, 6) ^ bit(value, 7) ^ bit(value, 8)
	parity <<= 1
	// position 4
	parity |= bit(value, 2) ^ bit(value, 3) ^ bit(value, 4) ^ bit(value, 8)
	parity <<= 1
	// position 2
	parity |= bit(value, 1) ^ bit(value, 3) ^ bit(value, 4) ^ bit(value, 6) ^ bit(value, 7)
	parity <<= 1
	// position 1
	parity |= bit(value, 1) ^ bit(value, 2) ^ bit(value, 4) ^ bit(value, 5) ^ bit(value, 7)
	return parity
}

func (Textbook) Name() string {
	return NameTextbook
}
