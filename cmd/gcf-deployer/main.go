package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/savaki/gcf-deployer/cmd/gcf-deployer/commands"
	"github.com/savaki/gcf-deployer/internal/di"
)

func main() {
	logger := di.ProvideLogger(os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL"))
	os.Exit(run(logger, os.Args))
}

// run executes the app. Exit codes from gcloud are applied by urfave/cli
// itself; any other error is logged and reported as 1.
func run(logger zerolog.Logger, args []string) int {
	ctx := logger.WithContext(context.Background())

	app := commands.NewApp()
	if err := app.RunContext(ctx, args); err != nil {
		logger.Error().Err(err).Msg("Application error")
		return 1
	}
	return 0
}
