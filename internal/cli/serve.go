package cli

import (
	"context"

	"ratebank/internal/app"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func serveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the refresh scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				logrus.WithFields(logrus.Fields{
					"driver": a.Config.Store.Driver,
					"key":    a.Store.Key(),
				}).Info("Config initialization successful")
				return a.Serve(ctx)
			})
		},
	}
}
