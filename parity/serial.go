package parity

// Serial XORs in the codeword position of each set bit, one branch per
// bit. No table; the smallest and slowest strategy.
type Serial struct{}

var _ Strategy = Serial{}

func (Serial) Parity(value byte) byte {
	var parity byte
	if value&0x01 != 0 {
		parity = 0x3
	}
	if value&0x02 != 0 {
		parity ^= 0x5
	}
	if value&0x04 != 0 {
		parity ^= 0x6
	}
	if value&0x08 != 0 {
		parity ^= 0x7
	}
	if value&0x10 != 0 {
		parity ^= 0x9
	}
	if value&0x20 != 0 {
		parity ^= 0xA
	}
	if value&0x40 != 0 {
		parity ^= 0xB
	}
	if value&0x80 != 0 {
		parity ^= 0xC
	}
	return parity
}

func (Serial) Name() string {
	return NameSerial
}
