package hamming

import "fmt"

// Level reports what a correction call did. A pair correction returns the
// sum of the two per-byte levels, so values above Uncorrectable occur.
type Level uint8

const (
	Clean           Level = 0
	Corrected       Level = 1
	DoubleCorrected Level = 2
	Uncorrectable   Level = 3
)

// Uncorrectable reports whether at least one byte could not be repaired.
func (l Level) Uncorrectable() bool {
	return l >= Uncorrectable
}

func (l Level) String() string {
	switch l {
	case Clean:
		return "clean"
	case Corrected:
		return "corrected"
	case DoubleCorrected:
		return "double-corrected"
	case Uncorrectable:
		return "uncorrectable"
	}
	return fmt.Sprintf("uncorrectable(%d)", uint8(l))
}
