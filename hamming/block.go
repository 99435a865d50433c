package hamming

import (
	"errors"
	"fmt"

	log "github.com/harlequix/lofi/log"
)

var ErrParityLength = errors.New("hamming: parity length does not match data")

var logger = log.NewLogger("hamming")

// Report summarizes a CorrectBlock call.
type Report struct {
	// Clean and Corrected count bytes.
	Clean     int
	Corrected int
	// Uncorrectable holds the index of the first byte of each pair that
	// could not be repaired.
	Uncorrectable []int
	// Worst is the highest level returned for any pair.
	Worst Level
}

// OK reports whether every pair was clean or repaired.
func (r *Report) OK() bool {
	return len(r.Uncorrectable) == 0
}

// BlockParityLen is the number of parity bytes protecting n data bytes.
func BlockParityLen(n int) int {
	return (n + 1) / 2
}

// EncodeBlock returns one combined parity byte per pair of data bytes. An
// odd trailing byte has its parity in the low nibble.
func EncodeBlock(data []byte) []byte {
	return encodeBlock(calculate, data)
}

// CorrectBlock repairs data in place against parity produced by EncodeBlock.
func CorrectBlock(data, parity []byte) (Report, error) {
	return correctBlock(calculate, data, parity)
}

func (self *Codec) EncodeBlock(data []byte) []byte {
	return encodeBlock(self.strategy.Parity, data)
}

func (self *Codec) CorrectBlock(data, parity []byte) (Report, error) {
	return correctBlock(self.strategy.Parity, data, parity)
}

func encodeBlock(calc func(byte) byte, data []byte) []byte {
	out := make([]byte, BlockParityLen(len(data)))
	for i := 0; i < len(data); i += 2 {
		p := calc(data[i])
		if i+1 < len(data) {
			p |= calc(data[i+1]) << 4
		}
		out[i/2] = p
	}
	return out
}

func correctBlock(calc func(byte) byte, data, parity []byte) (Report, error) {
	var report Report
	if len(parity) != BlockParityLen(len(data)) {
		return report, fmt.Errorf("%w: %d parity bytes for %d data bytes", ErrParityLength, len(parity), len(data))
	}
	for i := 0; i < len(data); i += 2 {
		var level Level
		if i+1 < len(data) {
			level = correctPairWith(calc, &data[i], &data[i+1], parity[i/2])
		} else {
			level = correctWith(calc, &data[i], parity[i/2])
		}
		report.tally(level, i, i+1 < len(data))
	}
	return report, nil
}

func (r *Report) tally(level Level, index int, pair bool) {
	if level > r.Worst {
		r.Worst = level
	}
	if level.Uncorrectable() {
		r.Uncorrectable = append(r.Uncorrectable, index)
		logger.WithField("index", index).WithField("outcome", level.String()).Trace("uncorrectable pair")
		return
	}
	width := 1
	if pair {
		width = 2
	}
	r.Corrected += int(level)
	r.Clean += width - int(level)
}
