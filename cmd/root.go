// Package cmd implements the lofi command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/harlequix/lofi/internal/config"
	log "github.com/harlequix/lofi/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "lofi",
	Short: "Extended Hamming single error correction for bytes and byte pairs",
	Long: `lofi protects each byte with a 4-bit parity nibble and corrects any
single flipped bit on receipt. Two bytes may share one parity byte.

Use it to compute parity, repair received values, inspect the parity
strategies, or measure the code against a simulated noisy channel.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().String("backend", "", "parity strategy: table, nibble, serial or textbook (default: compiled in)")
	rootCmd.PersistentFlags().String("log-level", "", "log level")
	rootCmd.PersistentFlags().String("trace", "", "write trace and warn logs to this path prefix")
	_ = viper.BindPFlag("Backend", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("LogLevel", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("TraceFile", rootCmd.PersistentFlags().Lookup("trace"))
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.SetConfigFile(configFile); err != nil {
		return err
	}
	cfg, err := config.Get()
	if err != nil {
		return err
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	if cfg.TraceFile != "" {
		log.AddTracer(log.Base(), cfg.TraceFile)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
