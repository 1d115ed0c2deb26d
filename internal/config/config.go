package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vburojevic/logstat/internal/domain"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Color   string `mapstructure:"color"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Report command defaults
	Report string `mapstructure:"report"`
	Strict bool   `mapstructure:"strict"`

	// JSON keys read from each log line
	Fields domain.Fields `mapstructure:"fields"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format: "table",
		Color:  "auto",
		Report: "average",
		Fields: domain.DefaultFields(),
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.logstat.yaml or ./.logstat.yml (also without the leading dot)
// 2. ~/.logstat.yaml or ~/.logstat.yml
// 3. $XDG_CONFIG_HOME/logstat/config.yaml (or ~/.config/logstat/config.yaml)
// 4. /etc/logstat/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".logstat.yaml", ".logstat.yml", "logstat.yaml", "logstat.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	var searchPaths []string

	// 1. Current directory
	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}

	// 2. Home directory
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}

	// 3. Config directory (e.g., ~/.config/logstat/)
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "logstat"))
	}

	// 4. System config
	searchPaths = append(searchPaths, "/etc/logstat")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		// config.yaml only counts inside a logstat directory
		if filepath.Base(dir) == "logstat" {
			path := filepath.Join(dir, "config.yaml")
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGSTAT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOGSTAT_REPORT"); v != "" {
		cfg.Report = v
	}
	if v := os.Getenv("LOGSTAT_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("LOGSTAT_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("LOGSTAT_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("LOGSTAT_STRICT"); v == "true" || v == "1" {
		cfg.Strict = true
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.Fields = cfg.Fields.WithDefaults()

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
