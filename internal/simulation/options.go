package simulation

import (
	"errors"
	"fmt"

	"github.com/harlequix/lofi/internal/channel"
)

var ErrNoTrials = errors.New("simulation: trials must be positive")

// Options configure a simulation run. Field names match the Simulation
// section of the configuration file.
type Options struct {
	Trials int
	// BER is the per-bit flip probability. Ignored when Errors is set.
	BER float64
	// Errors, when positive, flips exactly that many bits per codeword.
	Errors   int
	Seed     int64
	Secret   string
	Workers  int
	Strategy string
	// Pair protects two bytes with one combined parity byte.
	Pair bool
}

func (o *Options) width() int {
	if o.Pair {
		return channel.PairWidth
	}
	return channel.SingleWidth
}

func (o *Options) validate() error {
	if o.Trials <= 0 {
		return fmt.Errorf("%w: %d", ErrNoTrials, o.Trials)
	}
	if o.Errors > o.width() || o.Errors < 0 {
		return fmt.Errorf("%w: %d of %d", channel.ErrTooManyFlips, o.Errors, o.width())
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Workers > o.Trials {
		o.Workers = o.Trials
	}
	return nil
}
