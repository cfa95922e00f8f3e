package commands

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/savaki/gcf-deployer/internal/di"
	"github.com/urfave/cli/v2"
)

// logOutput receives all log lines; stdout belongs to gcloud.
var logOutput io.Writer = os.Stderr

// NewApp builds the gcf-deployer CLI. Running it without a subcommand deploys,
// the same as "gcf-deployer deploy". opts are forwarded to the DI container.
// The log flags are accepted both before and after the deploy subcommand.
func NewApp(opts ...di.Option) *cli.App {
	var (
		logger = zerolog.Nop()
		format string
		level  string
	)

	deploy := DeployCommand(&logger, opts...)
	deploy.Flags = append(logFlags(), deploy.Flags...)
	deploy.Before = func(c *cli.Context) error {
		if c.IsSet("log-format") {
			format = c.String("log-format")
		}
		if c.IsSet("log-level") {
			level = c.String("log-level")
		}
		logger = di.NewLogger(logOutput, format, level)
		return nil
	}

	return &cli.App{
		Name:  "gcf-deployer",
		Usage: "Deploy the register_no_msisdn cloud function",
		Description: `Validates REGION and FUNCTIONS_BUCKET and then runs:

  gcloud functions deploy register_no_msisdn --region=$REGION --source=. \
    --runtime=python37 --stage-bucket=$FUNCTIONS_BUCKET --trigger-http \
    --allow-unauthenticated --entry-point register_no_msisdn

The exit status of gcloud is the exit status of gcf-deployer.`,
		Flags: append(logFlags(), deployFlags()...),
		Before: func(c *cli.Context) error {
			format = c.String("log-format")
			level = c.String("log-level")
			logger = di.NewLogger(logOutput, format, level)
			return nil
		},
		Action: deploy.Action,
		Commands: []*cli.Command{
			deploy,
		},
	}
}

func logFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format: console or json",
			Value:   "console",
			EnvVars: []string{"LOG_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warn, error",
			Value:   "info",
			EnvVars: []string{"LOG_LEVEL"},
		},
	}
}
