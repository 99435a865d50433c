package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/harlequix/lofi/internal/config"
	"github.com/harlequix/lofi/internal/simulation"
	log "github.com/harlequix/lofi/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Measure the code against a simulated noisy channel",
	Long: `Send payloads derived from --secret through the encoder, a channel
that flips bits with probability --ber (or exactly --errors bits per
codeword), and the decoder. Report how many codewords arrived clean,
corrected, detected as uncorrectable, miscorrected or silently corrupted.`,
	Args: cobra.NoArgs,
	RunE: simulate,
}

func init() {
	flags := simulateCmd.Flags()
	flags.Int("trials", 0, "number of codewords to send")
	flags.Float64("ber", 0, "bit error rate of the channel")
	flags.Int("errors", 0, "flip exactly this many bits per codeword instead of using --ber")
	flags.Int64("seed", 0, "channel seed")
	flags.String("secret", "", "secret the payloads are derived from")
	flags.Int("workers", 0, "number of worker goroutines")
	flags.Bool("pair", false, "protect byte pairs with a combined parity byte")
	flags.String("format", "", "output format: table or yaml")
	for flag, key := range map[string]string{
		"trials":  "Simulation.Trials",
		"ber":     "Simulation.BER",
		"errors":  "Simulation.Errors",
		"seed":    "Simulation.Seed",
		"secret":  "Simulation.Secret",
		"workers": "Simulation.Workers",
		"pair":    "Simulation.Pair",
		"format":  "Format",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
	rootCmd.AddCommand(simulateCmd)
}

var simLogger = log.NewLogger("cmd")

func simulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}
	opts, err := cfg.SimulationOptions()
	if err != nil {
		return err
	}
	simLogger.WithField("options", opts).Info("running simulation")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	stats, err := simulation.Run(ctx, opts)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "yaml":
		out, err := yaml.Marshal(stats)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	case "table", "":
		renderStats(cmd, stats)
		return nil
	}
	return fmt.Errorf("unknown format %q", cfg.Format)
}

func renderStats(cmd *cobra.Command, stats *simulation.Stats) {
	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"outcome", "count", "share"})
	out.SetAutoFormatHeaders(false)
	out.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	for _, o := range simulation.Outcomes() {
		n := stats.Count(o)
		out.Append([]string{
			o.String(),
			strconv.Itoa(n),
			fmt.Sprintf("%.2f%%", 100*float64(n)/float64(stats.Trials)),
		})
	}
	out.SetCaption(true, fmt.Sprintf("%d trials, strategy %s, observed BER %.4f, delivered %.2f%%",
		stats.Trials, stats.Strategy, stats.ObservedBER(), 100*stats.Delivered()))
	out.Render()
}
