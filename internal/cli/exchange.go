package cli

import (
	"context"
	"fmt"
	"strconv"

	"ratebank/internal/app"
	"ratebank/internal/domain"
	"ratebank/internal/exchange"

	"github.com/spf13/cobra"
)

func exchangeCommand(opts *rootOptions) *cobra.Command {
	var rounding string

	exchangeCmd := &cobra.Command{
		Use:   "exchange AMOUNT FROM TO",
		Short: "Convert AMOUNT subunits (cents) of FROM into TO",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cents, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			round, err := exchange.RoundingByName(rounding)
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				from, err := a.Currencies.Resolve(domain.Code(args[1]))
				if err != nil {
					return err
				}
				converted, err := a.Converter.ExchangeWith(ctx, domain.NewMoney(cents, from), domain.Code(args[2]), round)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), converted.String())
				return nil
			})
		},
	}
	exchangeCmd.Flags().StringVar(&rounding, "rounding", "", "Rounding policy: truncate, floor, ceil, half_up, half_even (default from config)")
	return exchangeCmd
}
