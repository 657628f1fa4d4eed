package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file. Credentials may also come from
// the ADZUNA_APP_ID/ADZUNA_APP_KEY environment variables (API_ID/API_KEY
// are accepted as fallbacks), in which case no config file is required.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".adzuna"))
		}

		// Check /etc
		v.AddConfigPath("/etc/adzuna/")
	}

	// Read config file; a missing file is fine when credentials come from
	// the environment.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Search defaults
	v.SetDefault("search.country", "us")
	v.SetDefault("search.results_per_page", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv wires credential environment variables into the config keys.
func bindEnv(v *viper.Viper) {
	v.BindEnv("adzuna.app_id", "ADZUNA_APP_ID", "API_ID")
	v.BindEnv("adzuna.app_key", "ADZUNA_APP_KEY", "API_KEY")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Adzuna.AppID == "" {
		return fmt.Errorf("adzuna.app_id is required (or set ADZUNA_APP_ID)")
	}

	if cfg.Adzuna.AppKey == "" || cfg.Adzuna.AppKey == "your-app-key-here" {
		return fmt.Errorf("adzuna.app_key must be set to a valid application key")
	}

	if cfg.Search.ResultsPerPage < 0 {
		return fmt.Errorf("search.results_per_page must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
