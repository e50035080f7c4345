package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"ratebank/internal/app"
	"ratebank/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func ratesCommand(opts *rootOptions) *cobra.Command {
	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Inspect and edit the stored rate table",
	}
	ratesCmd.AddCommand(
		ratesListCommand(opts),
		ratesGetCommand(opts),
		ratesSetCommand(opts),
		ratesKeyCommand(opts),
	)
	return ratesCmd
}

func ratesListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				lookup, err := a.Store.LookupAllRates(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, key := range slices.Sorted(maps.Keys(lookup.Table)) {
					fmt.Fprintf(out, "%s\t%s\n", key, lookup.Table[key])
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%d rates (%s)\n", len(lookup.Table), lookup.Source)
				return nil
			})
		},
	}
}

func ratesGetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get FROM TO",
		Short: "Print the FROM -> TO rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				lookup, err := a.Store.LookupRate(ctx, domain.Code(args[0]), domain.Code(args[1]))
				if err != nil {
					return err
				}
				if !lookup.Rate.Valid {
					return fmt.Errorf("%w: %s -> %s", domain.ErrUnknownRate, args[0], args[1])
				}
				fmt.Fprintln(cmd.OutOrStdout(), lookup.Rate.Decimal.String())
				return nil
			})
		},
	}
}

func ratesSetCommand(opts *rootOptions) *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set FROM TO RATE",
		Short: "Store the FROM -> TO rate",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", args[2], err)
			}
			if !r.IsPositive() {
				return errors.New("rate must be positive")
			}
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				key, err := a.Store.RateKeyFor(domain.Code(args[0]), domain.Code(args[1]))
				if err != nil {
					return err
				}
				stored, err := a.Store.SetRate(ctx, domain.Code(args[0]), domain.Code(args[1]), r)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, stored)
				return nil
			})
		},
	}
	// flags end at the first argument, so a negative RATE reaches validation
	setCmd.Flags().SetInterspersed(false)
	return setCmd
}

func ratesKeyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "key FROM TO",
		Short: "Print the hash field the FROM -> TO rate is stored under",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(_ context.Context, a *app.App) error {
				key, err := a.Store.RateKeyFor(domain.Code(args[0]), domain.Code(args[1]))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), key)
				return nil
			})
		},
	}
}
