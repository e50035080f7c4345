package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ratebank/internal/cli"

	"github.com/sirupsen/logrus"
)

// @title ratebank API
// @version 1.0
// @description Exchange rate store and money converter.
// @BasePath /api/v1
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		logrus.WithError(err).Error("Command failed")
		stop()
		os.Exit(1)
	}
}
