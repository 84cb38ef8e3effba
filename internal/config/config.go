// Package config loads CLI configuration via viper, with defaults for every key.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from vds.cfg.json in configDir and sets default
// values. A missing config file is not an error; the defaults apply.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("sim.runTime", 20.0)
	viper.SetDefault("sim.timeStep", 0.01)

	viper.SetDefault("output.trace", "")
	viper.SetDefault("output.plot", "")

	viper.SetConfigName("vds.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetFloat64 returns a float64 config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}
