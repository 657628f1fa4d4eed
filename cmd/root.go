package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kamui-fin/adzuna-go/adzuna"
	"github.com/kamui-fin/adzuna-go/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *adzuna.Client

	appVersion = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "adzuna",
	Short: "Query the Adzuna job search API from the command line",
	Long: `adzuna is a CLI for the Adzuna job search API. It can search job
advertisements, rank companies by ad volume, chart salary distributions
and history, and list the categories and locations the API knows about.

Credentials are read from the config file or from the ADZUNA_APP_ID and
ADZUNA_APP_KEY environment variables.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build metadata for the version output.
func SetVersion(version, buildTime string) {
	appVersion = version
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client = adzuna.NewClient(
		cfg.Adzuna.AppID,
		cfg.Adzuna.AppKey,
		logger,
		adzuna.WithUserAgent("adzuna-go/"+appVersion),
	)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; disable color when stderr is not a terminal.
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// resolveCountry maps the configured or flag-provided country code.
func resolveCountry(flagValue string) adzuna.Country {
	if flagValue != "" {
		return adzuna.Country(strings.ToLower(flagValue))
	}
	return adzuna.Country(strings.ToLower(cfg.Search.Country))
}
