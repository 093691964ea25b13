package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrfansi/xendit-go/internal/logger"
	"github.com/mrfansi/xendit-go/internal/server"
)

var (
	serverAddr     string
	serverDebug    bool
	serverKey      string
	expirySchedule string
	readTimeout    time.Duration
	writeTimeout   time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local sandbox gateway",
	Long: `Start a local HTTP server speaking the Xendit invoice endpoints.

Endpoints:
  - GET  /v2/invoices             - List invoices
  - POST /v2/invoices             - Create invoice
  - GET  /v2/invoices/:id         - Retrieve invoice
  - POST /v2/invoices/:id/expire  - Expire invoice
  - GET  /health                  - Health check
  - GET  /metrics                 - Prometheus metrics

Invoices live in memory. PENDING invoices past their expiry date are
expired on the --expiry-schedule cron spec.

Examples:
  # Start the sandbox on the default address
  xendit serve

  # Require a specific key and sweep every 10 seconds
  xendit serve --addr :4000 --sandbox-key xnd_development_local --expiry-schedule "@every 10s"`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "addr", "", "Server listen address (env: SANDBOX_ADDR, default :4000)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().StringVar(&serverKey, "sandbox-key", "", "Accept only this secret key (env: SANDBOX_SECRET_KEY)")
	serveCmd.Flags().StringVar(&expirySchedule, "expiry-schedule", "", "Cron spec of the expiry sweep (env: SANDBOX_EXPIRY_SCHEDULE)")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	if serverAddr == "" {
		serverAddr = cfg.SandboxAddr
	}
	if serverKey == "" {
		serverKey = cfg.SandboxSecretKey
	}
	if expirySchedule == "" {
		expirySchedule = cfg.SandboxExpirySchedule
	}

	log, err := logger.New(cfg.LogLevel, verbose || serverDebug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.NewServer(&server.Config{
		Address:        serverAddr,
		SecretKey:      serverKey,
		ExpirySchedule: expirySchedule,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		Debug:          serverDebug,
	}, server.WithLogger(log))
	if err != nil {
		return fmt.Errorf("invalid expiry schedule %q: %w", expirySchedule, err)
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Starting sandbox on %s\n", serverAddr)
	if serverKey == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Any secret key is accepted (no --sandbox-key)")
	}
	return srv.Run(ctx)
}
