package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/igris/config"
	"github.com/katalvlaran/igris/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := config.NewStore(a.cfg, a.logger)
			store.OnChange(func(c *config.Config) {
				a.logger.Info("generator defaults updated",
					zap.Float64("rewiring", c.Generator.RewiringProb),
					zap.Int("hubs", c.Generator.HubConnectivity),
					zap.String("policy", c.Generator.RewirePolicy),
				)
			})
			store.Watch(a.v)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(store, a.logger, server.NewMetrics("igris")).Run(ctx)
		},
	}
	cmd.Flags().String("addr", config.Default().Server.Address, "listen address")

	return cmd
}
