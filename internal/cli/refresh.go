package cli

import (
	"context"

	"ratebank/internal/app"

	"github.com/spf13/cobra"
)

func refreshCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch a fresh rate table from the provider and overwrite the stored one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				return a.Refresh(ctx)
			})
		},
	}
}
