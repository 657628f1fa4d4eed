package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Adzuna: AdzunaConfig{
			AppID:  "some-app-id",
			AppKey: "some-app-key",
		},
		Search: SearchConfig{
			Country:        "us",
			ResultsPerPage: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing app id",
			mutate:  func(c *Config) { c.Adzuna.AppID = "" },
			wantErr: true,
		},
		{
			name:    "missing app key",
			mutate:  func(c *Config) { c.Adzuna.AppKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder app key",
			mutate:  func(c *Config) { c.Adzuna.AppKey = "your-app-key-here" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "info console", level: "info", format: "console", wantErr: false},
		{name: "debug json", level: "debug", format: "json", wantErr: false},
		{name: "trace console", level: "trace", format: "console", wantErr: false},
		{name: "invalid level", level: "verbose", format: "console", wantErr: true},
		{name: "invalid format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateResultsPerPage(t *testing.T) {
	cfg := validConfig()
	cfg.Search.ResultsPerPage = -1
	if err := validate(cfg); err == nil {
		t.Error("expected error for negative results_per_page")
	}
}
