// Package simulation pushes payloads through encoder, noisy channel and
// decoder, and tallies what the receiver ends up with.
package simulation

import (
	"context"
	"sync"

	"github.com/harlequix/lofi/hamming"
	"github.com/harlequix/lofi/internal/channel"
	log "github.com/harlequix/lofi/log"
	"github.com/harlequix/lofi/parity"
)

var logger = log.NewLogger("simulation")

type result struct {
	outcome Outcome
	level   hamming.Level
	flips   int
}

type worker struct {
	id      int
	opts    *Options
	codec   *hamming.Codec
	channel *channel.Channel
	source  *channel.PayloadSource
	logger  *log.Logger
}

// Run executes opts.Trials trials across opts.Workers goroutines. Results
// are deterministic for fixed Seed, Secret and Workers.
func Run(ctx context.Context, opts Options) (*Stats, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	strategy, err := parity.ByName(opts.Strategy)
	if err != nil {
		return nil, err
	}
	codec := hamming.New(strategy)
	source := channel.NewPayloadSource(opts.Secret)

	workers := make([]*worker, opts.Workers)
	for i := range workers {
		ch, err := channel.New(opts.BER, opts.Seed+int64(i))
		if err != nil {
			return nil, err
		}
		workers[i] = &worker{
			id:      i,
			opts:    &opts,
			codec:   codec,
			channel: ch,
			source:  source,
			logger:  &log.Logger{Entry: logger.WithField("workerID", i)},
		}
	}

	logger.WithField("trials", opts.Trials).WithField("workers", opts.Workers).WithField("strategy", strategy.Name()).Debug("starting simulation")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	results := make(chan result, 128)
	errs := make(chan error, len(workers))
	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			if err := w.run(ctx, results); err != nil {
				errs <- err
				cancel()
			}
		}(w)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	stats := newStats(&opts, strategy.Name())
	width := opts.width()
	for r := range results {
		stats.add(r, width)
	}
	select {
	case err := <-errs:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil && stats.Trials < opts.Trials {
		return nil, err
	}
	logger.WithField("delivered", stats.Delivered()).WithField("observedBER", stats.ObservedBER()).Debug("simulation finished")
	return stats, nil
}

func (self *worker) run(ctx context.Context, results chan<- result) error {
	self.logger.Trace("worker started")
	for trial := self.id; trial < self.opts.Trials; trial += self.opts.Workers {
		r, err := self.trial(uint64(trial))
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			self.logger.Trace("worker cancelled")
			return nil
		case results <- r:
		}
	}
	return nil
}

func (self *worker) transmit(word uint32) (uint32, int, error) {
	width := self.opts.width()
	if self.opts.Errors > 0 {
		received, err := self.channel.FlipN(word, width, self.opts.Errors)
		return received, self.opts.Errors, err
	}
	received, flips := self.channel.Transmit(word, width)
	return received, flips, nil
}

func (self *worker) trial(index uint64) (result, error) {
	var payload [2]byte
	self.source.At(index, payload[:])

	if self.opts.Pair {
		word := channel.PackPair(payload[0], payload[1], self.codec.PairParity(payload[0], payload[1]))
		received, flips, err := self.transmit(word)
		if err != nil {
			return result{}, err
		}
		first, second, p := channel.UnpackPair(received)
		level := self.codec.CorrectPair(&first, &second, p)
		intact := first == payload[0] && second == payload[1]
		return result{outcome: classify(level, intact), level: level, flips: flips}, nil
	}

	word := channel.PackSingle(payload[0], self.codec.Parity(payload[0]))
	received, flips, err := self.transmit(word)
	if err != nil {
		return result{}, err
	}
	value, p := channel.UnpackSingle(received)
	level := self.codec.Correct(&value, p)
	return result{outcome: classify(level, value == payload[0]), level: level, flips: flips}, nil
}
