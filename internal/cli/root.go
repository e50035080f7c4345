package cli

import (
	"context"

	"ratebank/internal/app"
	"ratebank/internal/config"

	"github.com/spf13/cobra"
)

// AppFactory builds the application for one command run.
type AppFactory func(ctx context.Context, cfg *config.AppConfig) (*app.App, error)

type rootOptions struct {
	configFile string
	newApp     AppFactory
}

// NewRootCommand returns the ratebank command tree. A nil factory uses app.New.
func NewRootCommand(newApp AppFactory) *cobra.Command {
	if newApp == nil {
		newApp = app.New
	}
	opts := &rootOptions{newApp: newApp}

	rootCmd := &cobra.Command{
		Use:           "ratebank",
		Short:         "Exchange rate store and money converter",
		Version:       "v1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", config.DefaultFile, "Path to config file")

	rootCmd.AddCommand(
		serveCommand(opts),
		ratesCommand(opts),
		exchangeCommand(opts),
		refreshCommand(opts),
	)
	return rootCmd
}

// Execute runs the command tree with ctx, typically bound to OS signals.
func Execute(ctx context.Context) error {
	return NewRootCommand(nil).ExecuteContext(ctx)
}

func (o *rootOptions) loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Init(o.configFile)
	if err != nil {
		return nil, err
	}
	app.SetupLogging(cfg.Logging)
	return cfg, nil
}

// withApp loads the config, builds the app and closes it once fn returns.
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	a, err := o.newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}
