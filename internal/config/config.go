// Package config loads the tuning tables of the underwriting core from
// built-in defaults, an optional YAML file and UNDERWRITING_* environment
// variables, in that order of precedence.
package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"underwriting-risk/internal/alerts"
	"underwriting-risk/internal/logger"
	"underwriting-risk/internal/risk"
	"underwriting-risk/internal/validation"
)

// EnvPrefix namespaces environment overrides, e.g.
// UNDERWRITING_RISK_SCORING_NSF_INCIDENT_POINTS=35.
const EnvPrefix = "UNDERWRITING"

// Config is the full configuration of the underwriter.
type Config struct {
	Log    logger.Config     `yaml:"log" mapstructure:"log"`
	Risk   risk.Config       `yaml:"risk" mapstructure:"risk"`
	Alerts alerts.Thresholds `yaml:"alerts" mapstructure:"alerts"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    logger.DefaultConfig(),
		Risk:   risk.DefaultConfig(),
		Alerts: alerts.DefaultThresholds(),
	}
}

// Load builds the configuration. An empty path skips the file layer.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Seeding every key lets AutomaticEnv resolve overrides on Unmarshal.
	defaults, err := yaml.Marshal(Default())
	if err != nil {
		return Config{}, fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, fmt.Errorf("failed to seed default config: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks struct constraints and that the Veritas weights sum to 1.
func Validate(cfg Config) error {
	if err := validation.New().Struct(cfg); err != nil {
		return err
	}
	return cfg.Risk.CheckWeights()
}
