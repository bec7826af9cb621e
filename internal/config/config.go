package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all billable-hours configuration.
type Config struct {
	Hours   HoursConfig   `mapstructure:"hours"`
	Goals   GoalsConfig   `mapstructure:"goals"`
	Cycle   CycleConfig   `mapstructure:"cycle"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// HoursConfig defines hour entry limits.
type HoursConfig struct {
	MaxPerDay float64 `mapstructure:"max_per_day"`
}

// GoalsConfig defines billing targets.
type GoalsConfig struct {
	DailyHours   float64 `mapstructure:"daily_hours"`
	MonthlyHours float64 `mapstructure:"monthly_hours"`
}

// CycleConfig defines billing cycle listing settings.
type CycleConfig struct {
	Count int `mapstructure:"count"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}

		v.AddConfigPath(filepath.Join(home, ".bht"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("hours.max_per_day", 24.0)
	v.SetDefault("goals.daily_hours", 8.0)
	v.SetDefault("goals.monthly_hours", 160.0)
	v.SetDefault("cycle.count", 12)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetEnvPrefix("BHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings no command can work with.
func (c *Config) Validate() error {
	if c.Hours.MaxPerDay < 0 {
		return fmt.Errorf("hours.max_per_day must not be negative, got %v", c.Hours.MaxPerDay)
	}
	if c.Goals.DailyHours < 0 || c.Goals.MonthlyHours < 0 {
		return errors.New("goals must not be negative")
	}
	if c.Cycle.Count < 1 {
		return fmt.Errorf("cycle.count must be at least 1, got %d", c.Cycle.Count)
	}
	return nil
}
