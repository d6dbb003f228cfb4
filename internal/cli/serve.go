package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"risk-assessor/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Serve starts the HTTP API for risk assessments.

Endpoints:
  POST /analyze          run an assessment and return the report
  GET  /assessments      list stored assessment history
  GET  /assessments/{id} fetch a stored assessment
  GET  /healthz          health check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverCfg := app.Config.Server
			if port > 0 {
				serverCfg.Port = port
			}

			srv := server.New(app.Logger, app.Engine, app.Store, serverCfg)

			// Graceful shutdown on SIGINT/SIGTERM
			done := make(chan error, 1)
			go func() {
				done <- srv.Start()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-done:
				return err
			case sig := <-sigCh:
				app.Logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides config)")

	return cmd
}
