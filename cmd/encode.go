package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode BYTE [BYTE]",
	Short: "Print the parity of one byte or the combined parity of a pair",
	Long: `Print the parity nibble of one byte, or the combined parity byte of
two bytes (low nibble first byte, high nibble second byte).

Bytes are given as decimal, 0x hex or 0b binary.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: encode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	values, err := parseBytes(args)
	if err != nil {
		return err
	}
	codec, err := codecFromConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(values) == 1 {
		fmt.Fprintf(out, "data=0x%02X parity=0x%X\n", values[0], codec.Parity(values[0]))
		return nil
	}
	fmt.Fprintf(out, "data=0x%02X 0x%02X parity=0x%02X\n", values[0], values[1], codec.PairParity(values[0], values[1]))
	return nil
}
