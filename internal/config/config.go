// Package config loads runtime settings from flags and environment
// variables (WXP_ prefix), flags winning.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Addr       string `mapstructure:"addr"`
	ProfileDir string `mapstructure:"profiles"`
	LogLevel   string `mapstructure:"log-level"`
	TickRate   int    `mapstructure:"tick-rate"`
}

func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("webxr-input-profiles", pflag.ContinueOnError)
	flags.String("addr", ":8080", "HTTP listen address")
	flags.String("profiles", "./profiles", "directory of input-profile JSON files")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("tick-rate", 60, "update loop ticks per second")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("WXP")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.TickRate <= 0 {
		return nil, fmt.Errorf("tick-rate must be positive, got %d", cfg.TickRate)
	}
	return &cfg, nil
}
