package cli

import (
	"io"
	"log"
	"os"

	"github.com/SirClappington/competitor-watch/internal/config"
	"github.com/SirClappington/competitor-watch/internal/services"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagBackendURL string
	flagVerbose    bool
)

// app holds what every command needs once flags and config are resolved.
type app struct {
	client *services.CompetitorAPIClient
	logger *log.Logger
}

var current app

var rootCmd = &cobra.Command{
	Use:           "competitors",
	Short:         "Track competitor sites and watch their scans",
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine.
		godotenv.Load()

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagBackendURL != "" {
			cfg.Backend.BaseURL = flagBackendURL
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		var out io.Writer = io.Discard
		if flagVerbose {
			out = os.Stderr
		}
		logger := log.New(out, "[COMPETITOR-WATCH] ", log.LstdFlags)

		current = app{
			client: services.NewCompetitorAPIClient(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout, logger),
			logger: logger,
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagBackendURL, "backend-url", "", "Competitor API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log requests to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
