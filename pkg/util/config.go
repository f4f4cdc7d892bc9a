package util

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/baybridges/pkg"
	"github.com/spf13/viper"
)

func setConfigDefaults() {
	viper.SetDefault("CROSSING_MODEL", "planar")
	viper.SetDefault("USE_SPATIAL_INDEX", true)
	viper.SetDefault("COUNT_WORKERS", 1)
	viper.SetDefault("MAX_BRIDGES", pkg.DEFAULT_MAX_BRIDGES)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
}

// ReadConfig. read config.{yaml,json,toml,...} from configDir (./data/ when empty).
// a missing config file is not an error, defaults and environment variables are used instead.
func ReadConfig(configDir string) error {
	if configDir == "" {
		configDir = "./data/"
	}
	setConfigDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath(configDir)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
