package cmd

import (
	"fmt"
	"strconv"

	"github.com/harlequix/lofi/hamming"
	"github.com/harlequix/lofi/parity"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the parity of every byte under every strategy",
	Long: `Print the parity nibble of all 256 byte values as computed by each
parity strategy, and flag any value where the strategies disagree.
With --syndromes, print the syndrome correction table instead.`,
	Args: cobra.NoArgs,
	RunE: table,
}

func init() {
	tableCmd.Flags().Bool("syndromes", false, "print the syndrome correction table")
	rootCmd.AddCommand(tableCmd)
}

func table(cmd *cobra.Command, args []string) error {
	syndromes, err := cmd.Flags().GetBool("syndromes")
	if err != nil {
		return err
	}
	if syndromes {
		return syndromeTable(cmd)
	}

	strategies := parity.Strategies()
	header := []string{"value"}
	for _, s := range strategies {
		header = append(header, s.Name())
	}
	header = append(header, "agree")

	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader(header)
	out.SetAutoFormatHeaders(false)
	mismatches := 0
	for v := 0; v < 256; v++ {
		row := []string{fmt.Sprintf("0x%02X", v)}
		agree := true
		for _, s := range strategies {
			p := s.Parity(byte(v))
			if p != strategies[0].Parity(byte(v)) {
				agree = false
			}
			row = append(row, fmt.Sprintf("0x%X", p))
		}
		if !agree {
			mismatches++
		}
		row = append(row, strconv.FormatBool(agree))
		out.Append(row)
	}
	out.SetCaption(true, fmt.Sprintf("Compiled in: %s", parity.Default.Name()))
	out.Render()
	if mismatches > 0 {
		return fmt.Errorf("%d values disagree between strategies", mismatches)
	}
	return nil
}

func syndromeTable(cmd *cobra.Command) error {
	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"syndrome", "kind", "position", "mask"})
	out.SetAutoFormatHeaders(false)
	for s := hamming.Syndrome(0); s < 16; s++ {
		out.Append([]string{
			strconv.Itoa(int(s)),
			s.Kind().String(),
			strconv.Itoa(s.Position()),
			fmt.Sprintf("0x%02X", s.Mask()),
		})
	}
	out.Render()
	return nil
}
