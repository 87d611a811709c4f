package config

import (
	"errors"
	"fmt"
	"strings"

	"shared-data/internal/logger"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SHAREDDATA_DATA_FILE.
const EnvPrefix = "SHAREDDATA"

// Config represents the application configuration
type Config struct {
	DataFile string       `mapstructure:"data_file"`
	Log      LogConfig    `mapstructure:"log"`
	Window   WindowConfig `mapstructure:"window"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// WindowConfig holds the initial window geometry
type WindowConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

// NewViper returns a viper instance with defaults and environment binding in
// place. Callers may bind command-line flags onto it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_file", "data.json")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("window.width", 400)
	v.SetDefault("window.height", 300)
}

// Load reads an optional config file and unmarshals the merged settings.
// Precedence: flags, environment, file, defaults.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load(NewViper(), "")
	if err != nil {
		// defaults are static and always valid
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file must not be empty")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %vx%v must be positive", c.Window.Width, c.Window.Height)
	}
	return nil
}
