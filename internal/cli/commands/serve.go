package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/schemabridge-labs/schemabridge/internal/config"
	"github.com/schemabridge-labs/schemabridge/internal/server"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Host        string
	Port        int
	MaxUploadMB int64
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the SchemaBridge HTTP server",
		Long: `Start a local web server exposing the schema matching API.

Endpoints:
  GET  /                  upload and compare form
  GET  /healthz           liveness probe
  POST /api/match         match two comma-delimited column lists
  POST /api/match/upload  match the header schemas of two uploaded files`,
		Example: `  # Start on the default port
  schemabridge serve

  # Custom port and a tighter upload cap
  schemabridge serve --port 3000 --max-upload-mb 4`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "", "Host interface to bind (default: all)")
	cmd.Flags().IntVar(&opts.Port, "port", 0, fmt.Sprintf("Port to serve on (default: %d)", config.DefaultPort))
	cmd.Flags().Int64Var(&opts.MaxUploadMB, "max-upload-mb", 0, "Maximum upload size in MiB")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	// Command flags override config file and env vars.
	host := cfg.Host
	if cmd.Flags().Changed("host") {
		host = opts.Host
	}
	port := cfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}
	maxUploadMB := cfg.MaxUploadMB
	if opts.MaxUploadMB != 0 {
		maxUploadMB = opts.MaxUploadMB
	}

	srv := server.New(server.Config{
		Host:           host,
		Port:           port,
		MaxUploadBytes: maxUploadMB << 20,
		Logger:         logger,
	})

	fmt.Printf("Starting server on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
