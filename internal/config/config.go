package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Map MapConfig `mapstructure:"map"`
}

type MapConfig struct {
	Size     int64   `mapstructure:"size"`
	Seed     int64   `mapstructure:"seed"`
	Density  float64 `mapstructure:"density"`
	Scenario string  `mapstructure:"scenario"`
}

// Load reads the configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".wayfind"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("wayfind")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WAYFIND")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("map.size", 10)
	viper.SetDefault("map.seed", 1)
	viper.SetDefault("map.density", 0.5)
	viper.SetDefault("map.scenario", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
