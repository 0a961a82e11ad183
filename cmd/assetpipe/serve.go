package assetpipe

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/arthur-debert/assetpipe/pkg/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgServeShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.serve")

			cfg, p, err := opts.loadPipeline()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			handler := server.WithRequestLogging(server.Handler(p, cfg.AssetURL, !cfg.IsProduction()))
			srv := server.New(addr, handler)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info().Msg(MsgServerStopping)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return <-errCh
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", MsgFlagAddr)
	return cmd
}
