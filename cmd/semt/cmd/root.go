// Package cmd implements the semt command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/semtui/semt"
	"github.com/semtui/semt/internal/config"
	"github.com/semtui/semt/pkg/logging"
)

var (
	flagBaseURL string
	flagToken   string
	flagDataset string
	flagVerbose bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "semt",
	Short: "SemTUI table enrichment CLI",
	Long: `Semt drives a SemTUI semantic enrichment backend from the command
line: upload tables into datasets, reconcile columns against external
knowledge bases, extend reconciled columns with derived properties, and
push the annotated results back.

Configuration comes from flags, SEMT_* environment variables, or a .env
file in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute runs the root command with signal-aware cancellation.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "backend base URL (SEMT_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token (SEMT_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&flagDataset, "dataset", "d", "", "dataset id (SEMT_DATASET_ID)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig merges the environment configuration with command line flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagToken != "" {
		cfg.Token = flagToken
	}
	if flagDataset != "" {
		cfg.DatasetID = flagDataset
	}
	return cfg, nil
}

// newClient builds a client from the resolved configuration.
func newClient() (*semt.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	opts := []semt.Option{semt.WithLogger(logging.Default())}
	switch {
	case cfg.Token != "":
		opts = append(opts, semt.WithToken(cfg.Token))
	default:
		opts = append(opts, semt.WithCredentials(cfg.Username, cfg.Password))
	}
	if cfg.RateLimit > 0 {
		opts = append(opts, semt.WithRateLimit(cfg.RateLimit, 1))
	}

	client, err := semt.New(cfg.BaseURL, opts...)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// requireDataset returns the dataset id or an error directing the user to
// set one.
func requireDataset(cfg *config.Config) (string, error) {
	if cfg.DatasetID == "" {
		return "", fmt.Errorf("no dataset selected: pass --dataset or set SEMT_DATASET_ID")
	}
	return cfg.DatasetID, nil
}
