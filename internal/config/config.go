// Package config loads runtime configuration from the environment.
package config

import "github.com/spf13/viper"

// Environment mode values. Outside production, 500 responses echo the
// underlying error detail.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

// Load reads PORT, APP_ENV and LOG_LEVEL from the environment, falling back
// to the defaults below.
func Load() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("APP_ENV", EnvDevelopment)
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
