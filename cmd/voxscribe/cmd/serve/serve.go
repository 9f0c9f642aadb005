package serve

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"voxscribe/cmd/voxscribe/cmd/cli"
	"voxscribe/internal/app"
)

var shutdownTimeout time.Duration

func init() {
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second,
		"how long to wait for in-flight requests on shutdown")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API

- POST /api/v1/intake accepts one audio file at a time
- /api/v1/history searches and pages past transcriptions
- /metrics, /health and /swagger are served alongside`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := cli.LoadSettings()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, cleanup, err := app.InitializeApp(ctx, settings)
		if err != nil {
			return err
		}
		defer cleanup()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return a.Server.Run(gctx, shutdownTimeout)
		})
		g.Go(func() error {
			<-gctx.Done()
			if a.Pipeline.Busy() {
				a.Logger.Info("Cancelling in-flight submission")
				if err := a.Pipeline.Cancel(); err != nil {
					a.Logger.Warn("Failed to cancel submission", zap.Error(err))
				}
			}
			return nil
		})

		return g.Wait()
	},
}
