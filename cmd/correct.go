package cmd

import (
	"fmt"

	"github.com/harlequix/lofi/hamming"
	"github.com/spf13/cobra"
)

var correctCmd = &cobra.Command{
	Use:   "correct BYTE [BYTE] PARITY",
	Short: "Repair received byte(s) against their received parity",
	Long: `Check one received byte against its parity nibble, or two received
bytes against their combined parity byte, and print the repaired data with
the outcome level (0 clean, 1 corrected, 2 two corrections, 3 or more
uncorrectable).

The command exits non-zero when the data could not be repaired.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: correct,
}

func init() {
	rootCmd.AddCommand(correctCmd)
}

func correct(cmd *cobra.Command, args []string) error {
	values, err := parseBytes(args)
	if err != nil {
		return err
	}
	codec, err := codecFromConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	var level hamming.Level
	if len(values) == 2 {
		var value byte
		value, level = codec.Repair(values[0], values[1])
		fmt.Fprintf(out, "data=0x%02X level=%d (%s)\n", value, level, level)
	} else {
		var first, second byte
		first, second, level = codec.RepairPair(values[0], values[1], values[2])
		fmt.Fprintf(out, "data=0x%02X 0x%02X level=%d (%s)\n", first, second, level, level)
	}
	if level.Uncorrectable() {
		return fmt.Errorf("uncorrectable: level %d", level)
	}
	return nil
}
