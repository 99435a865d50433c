package cmd

import (
	"fmt"
	"strconv"

	"github.com/harlequix/lofi/hamming"
	"github.com/harlequix/lofi/internal/config"
	"github.com/harlequix/lofi/parity"
)

// parseByte accepts decimal, 0x hex, 0b binary or 0o octal.
func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%q is not a byte: %w", s, err)
	}
	return byte(v), nil
}

func parseBytes(args []string) ([]byte, error) {
	out := make([]byte, len(args))
	for i, arg := range args {
		b, err := parseByte(arg)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func codecFromConfig() (*hamming.Codec, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, err
	}
	strategy, err := parity.ByName(cfg.Backend)
	if err != nil {
		return nil, err
	}
	return hamming.New(strategy), nil
}
