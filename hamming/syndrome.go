package hamming

import "fmt"

const (
	noError       byte = 0x00
	errorInParity byte = 0xFE
	uncorrectable byte = 0xFF
)

// correctionTable maps a syndrome to the data bit it names.
var correctionTable = [16]byte{
	noError,       // 0
	errorInParity, // 1
	errorInParity, // 2
	0x01,          // 3
	errorInParity, // 4
	0x02,          // 5
	0x04,          // 6
	0x08,          // 7
	errorInParity, // 8
	0x10,          // 9
	0x20,          // 10
	0x40,          // 11
	0x80,          // 12
	uncorrectable, // 13
	uncorrectable, // 14
	uncorrectable, // 15
}

// Syndrome is the received parity XOR the recomputed parity, low nibble only.
type Syndrome byte

// Kind classifies a syndrome.
type Kind uint8

const (
	// None means the received codeword is consistent.
	None Kind = iota
	// ParityBit means a check bit was flipped; the data is intact.
	ParityBit
	// DataBit means a single data bit was flipped and can be restored.
	DataBit
	// Invalid means no single bit error explains the syndrome.
	Invalid
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case ParityBit:
		return "parity"
	case DataBit:
		return "data"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// NewSyndrome computes the syndrome of value against its received parity.
// Bits above the low nibble of received are ignored.
func NewSyndrome(value, received byte) Syndrome {
	return syndromeOf(calculate(value) ^ received)
}

func syndromeOf(diff byte) Syndrome {
	return Syndrome(diff & 0x0F)
}

func (s Syndrome) Kind() Kind {
	switch correctionTable[s&0x0F] {
	case noError:
		return None
	case errorInParity:
		return ParityBit
	case uncorrectable:
		return Invalid
	}
	return DataBit
}

// Position is the codeword position the syndrome points at, or 0 when it
// points nowhere.
func (s Syndrome) Position() int {
	if s.Kind() == Invalid {
		return 0
	}
	return int(s & 0x0F)
}

// Mask is the bit to XOR into the data byte, or 0 if the data is not touched.
func (s Syndrome) Mask() byte {
	if s.Kind() != DataBit {
		return 0
	}
	return correctionTable[s&0x0F]
}

// correctSyndrome applies the correction named by the low nibble of syndrome.
func correctSyndrome(value *byte, syndrome byte) Level {
	correction := correctionTable[syndrome&0x0F]
	if correction == noError {
		return Clean
	}
	if correction == uncorrectable || value == nil {
		return Uncorrectable
	}
	if correction != errorInParity {
		*value ^= correction
	}
	return Corrected
}
