// Package config handles configuration loading for confgen.
// Values come from defaults, an optional YAML config file, and
// CONFGEN_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for confgen.
type Config struct {
	// Root is the output root; category directories live beneath it.
	Root    string        `mapstructure:"root"`
	Workers int           `mapstructure:"workers"`
	Report  ReportConfig  `mapstructure:"report"`
	History HistoryConfig `mapstructure:"history"`
}

// ReportConfig controls where and how the implementation report is written.
type ReportConfig struct {
	// Mode is "fresh" (overwrite per run) or "append" (additive merge).
	Mode string `mapstructure:"mode"`
	// Path overrides the default report location under Root.
	Path string `mapstructure:"path"`
}

// HistoryConfig controls the SQLite run history.
type HistoryConfig struct {
	// Path overrides the default database location under Root.
	Path string `mapstructure:"path"`
	// Disabled turns off run recording entirely.
	Disabled bool `mapstructure:"disabled"`
}

// Load reads configuration from cfgFile, or from .confgen.yaml in the
// home directory and the working directory when cfgFile is empty.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Every key needs a default so env-only overrides are visible to
	// Unmarshal.
	v.SetDefault("root", "admin")
	v.SetDefault("workers", 10)
	v.SetDefault("report.mode", "fresh")
	v.SetDefault("report.path", "")
	v.SetDefault("history.path", "")
	v.SetDefault("history.disabled", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".confgen")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CONFGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A config file nowhere in the search path is fine; defaults
		// apply. A file that exists but cannot be parsed is an error no
		// matter how it was found.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ReportPath returns the configured report path, defaulting to the report
// file under Root.
func (c *Config) ReportPath() string {
	if c.Report.Path != "" {
		return c.Report.Path
	}
	return filepath.Join(c.Root, "parallel_implementation_report.json")
}

// HistoryPath returns the configured history database path, defaulting to
// a database under Root.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(c.Root, "confgen_history.db")
}
