package hamming

import "github.com/harlequix/lofi/parity"

// Codec runs the correction procedure on top of a chosen parity strategy.
// Its results are identical to the package-level functions for every
// strategy; it exists so tooling can compare strategies side by side.
type Codec struct {
	strategy parity.Strategy
}

// New returns a Codec for strategy, or for the build default if nil.
func New(strategy parity.Strategy) *Codec {
	if strategy == nil {
		strategy = parity.Default
	}
	return &Codec{strategy: strategy}
}

func (self *Codec) Strategy() parity.Strategy {
	return self.strategy
}

func (self *Codec) Parity(value byte) byte {
	return self.strategy.Parity(value)
}

func (self *Codec) PairParity(first, second byte) byte {
	return parity.Pair(self.strategy, first, second)
}

func (self *Codec) Correct(value *byte, parity byte) Level {
	if value == nil {
		return Uncorrectable
	}
	return correctWith(self.strategy.Parity, value, parity)
}

func (self *Codec) CorrectPair(first, second *byte, parity byte) Level {
	if first == nil || second == nil {
		return Uncorrectable
	}
	return correctPairWith(self.strategy.Parity, first, second, parity)
}

func (self *Codec) Repair(value, parity byte) (byte, Level) {
	level := self.Correct(&value, parity)
	return value, level
}

func (self *Codec) RepairPair(first, second, parity byte) (byte, byte, Level) {
	level := self.CorrectPair(&first, &second, parity)
	return first, second, level
}
