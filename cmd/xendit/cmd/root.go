package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrfansi/xendit-go/internal/config"
	"github.com/mrfansi/xendit-go/internal/gateway"
	"github.com/mrfansi/xendit-go/internal/logger"
)

var (
	version = "0.1.0"

	// Global flags
	verbose      bool
	outputFormat string
	secretKey    string
	baseURL      string
	forUserID    string
	envFile      string

	cfg    config.Config
	cfgErr error
)

var rootCmd = &cobra.Command{
	Use:   "xendit",
	Short: "Manage Xendit invoices from the terminal",
	Long: `xendit is a CLI for the Xendit Invoice API.

It lists, finds, creates and expires invoices, exports them as PDF, and
can run a local sandbox speaking the same endpoints.

Examples:
  # List pending invoices
  xendit invoice all

  # Create an invoice interactively
  xendit invoice new

  # Expire an invoice
  xendit invoice expire --id 579c8d61f23fa4ca35e52da4

  # Run the sandbox and point the CLI at it
  xendit serve --addr :4000
  xendit invoice all --base-url http://localhost:4000 --secret-key xnd_development_local`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVar(&secretKey, "secret-key", "", "Xendit secret API key (env: XENDIT_SECRET_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Xendit API base URL (env: XENDIT_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&forUserID, "for-user-id", "", "Act for a xenPlatform sub-account (env: XENDIT_FOR_USER_ID)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load settings from this file instead of .env")

	// Load from the environment if not set via flags
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	cfg, cfgErr = config.Load(envFile)
	if cfgErr != nil {
		return
	}
	if secretKey == "" {
		secretKey = cfg.SecretKey
	}
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	if forUserID == "" {
		forUserID = cfg.ForUserID
	}
}

// newLogger returns a console logger in verbose mode and a no-op otherwise
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return logger.New(cfg.LogLevel, true)
}

func newClient() (*gateway.Client, error) {
	if cfgErr != nil {
		return nil, cfgErr
	}
	log, err := newLogger()
	if err != nil {
		return nil, err
	}

	client, err := gateway.New(gateway.Config{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		Timeout:   cfg.Timeout,
	}, gateway.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if forUserID != "" {
		client = client.WithUserID(forUserID)
	}
	printVerbose("Using %s\n", client.BaseURL())
	return client, nil
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
