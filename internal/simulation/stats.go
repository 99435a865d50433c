package simulation

import (
	"fmt"

	"github.com/harlequix/lofi/hamming"
)

// Outcome is what the receiver ended up with after decoding one codeword.
type Outcome uint8

const (
	// Clean: nothing reported, data intact.
	Clean Outcome = iota
	// Corrected: a correction was reported and the data is intact.
	Corrected
	// Detected: the decoder reported the codeword as uncorrectable.
	Detected
	// Miscorrected: a correction was reported but the data is wrong.
	Miscorrected
	// Undetected: nothing reported but the data is wrong.
	Undetected
)

var outcomeNames = []string{"clean", "corrected", "detected", "miscorrected", "undetected"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// Outcomes lists every outcome in report order.
func Outcomes() []Outcome {
	return []Outcome{Clean, Corrected, Detected, Miscorrected, Undetected}
}

func classify(level hamming.Level, intact bool) Outcome {
	switch {
	case level.Uncorrectable():
		return Detected
	case level == hamming.Clean && intact:
		return Clean
	case level == hamming.Clean:
		return Undetected
	case intact:
		return Corrected
	}
	return Miscorrected
}

// Stats aggregates a simulation run.
type Stats struct {
	Strategy    string         `yaml:"strategy"`
	Pair        bool           `yaml:"pair"`
	Trials      int            `yaml:"trials"`
	BitsSent    int            `yaml:"bits_sent"`
	BitsFlipped int            `yaml:"bits_flipped"`
	Outcomes    map[string]int `yaml:"outcomes"`
	Levels      map[uint8]int  `yaml:"levels"`
	// ErrorDistribution counts codewords by number of flipped bits.
	ErrorDistribution map[int]int `yaml:"error_distribution"`
}

func newStats(opts *Options, strategy string) *Stats {
	outcomes := make(map[string]int)
	for _, o := range Outcomes() {
		outcomes[o.String()] = 0
	}
	return &Stats{
		Strategy:          strategy,
		Pair:              opts.Pair,
		Outcomes:          outcomes,
		Levels:            make(map[uint8]int),
		ErrorDistribution: make(map[int]int),
	}
}

func (self *Stats) add(r result, width int) {
	self.Trials++
	self.BitsSent += width
	self.BitsFlipped += r.flips
	self.Outcomes[r.outcome.String()]++
	self.Levels[uint8(r.level)]++
	self.ErrorDistribution[r.flips]++
}

// Count returns how many trials ended with outcome o.
func (self *Stats) Count(o Outcome) int {
	return self.Outcomes[o.String()]
}

// ObservedBER is the fraction of transmitted bits that were flipped.
func (self *Stats) ObservedBER() float64 {
	if self.BitsSent == 0 {
		return 0
	}
	return float64(self.BitsFlipped) / float64(self.BitsSent)
}

// Delivered is the fraction of trials whose data arrived intact.
func (self *Stats) Delivered() float64 {
	if self.Trials == 0 {
		return 0
	}
	return float64(self.Count(Clean)+self.Count(Corrected)) / float64(self.Trials)
}
