// Package config resolves where spendwise keeps its files. Values come
// from, in increasing precedence: defaults, an optional YAML config
// file, SPENDWISE_* environment variables (a .env file is honored), and
// command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds the storage layout: one shared users file plus one
// directory per username under DataDir.
type Config struct {
	DataDir   string `mapstructure:"data_dir"`
	UsersFile string `mapstructure:"users_file"`
}

// Build loads configuration. cfgFile may be empty, in which case
// spendwise.yaml in the working directory is used when present.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Best effort; a missing .env is normal.
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("data_dir", "user_data")
	v.SetDefault("users_file", "users.json")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("spendwise")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SPENDWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for flagName, key := range map[string]string{
			"data-dir":   "data_dir",
			"users-file": "users_file",
		} {
			if f := flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
