// Package config loads lofi settings from defaults, an optional config
// file and LOFI_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/harlequix/lofi/internal/simulation"
	"github.com/jinzhu/copier"
	"github.com/spf13/viper"
)

type SimulationConfig struct {
	Trials  int
	BER     float64
	Errors  int
	Seed    int64
	Secret  string
	Workers int
	Pair    bool
}

type Config struct {
	Backend    string
	LogLevel   string
	TraceFile  string
	Format     string
	Simulation SimulationConfig
}

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("Backend", "")
	viper.SetDefault("LogLevel", "error")
	viper.SetDefault("TraceFile", "")
	viper.SetDefault("Format", "table")
	viper.SetDefault("Simulation.Trials", 10000)
	viper.SetDefault("Simulation.BER", 0.01)
	viper.SetDefault("Simulation.Errors", 0)
	viper.SetDefault("Simulation.Seed", 1)
	viper.SetDefault("Simulation.Secret", "lofi")
	viper.SetDefault("Simulation.Workers", 4)
	viper.SetDefault("Simulation.Pair", false)

	viper.SetEnvPrefix("lofi")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// SetConfigFile reads configFile into the global viper instance. An empty
// name keeps the defaults.
func SetConfigFile(configFile string) error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	return nil
}

// Get unmarshals the current settings.
func Get() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &config, nil
}

// SimulationOptions returns the simulation section as run options, using
// the top level Backend as the parity strategy.
func (self *Config) SimulationOptions() (simulation.Options, error) {
	var opts simulation.Options
	if err := copier.Copy(&opts, &self.Simulation); err != nil {
		return opts, err
	}
	opts.Strategy = self.Backend
	return opts, nil
}
