package config

// Config represents the complete configuration structure
type Config struct {
	Adzuna  AdzunaConfig  `mapstructure:"adzuna"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AdzunaConfig holds the Adzuna application credentials
type AdzunaConfig struct {
	AppID  string `mapstructure:"app_id"`
	AppKey string `mapstructure:"app_key"`
}

// SearchConfig contains default search settings applied by the CLI
type SearchConfig struct {
	Country        string `mapstructure:"country"`
	ResultsPerPage int    `mapstructure:"results_per_page"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
