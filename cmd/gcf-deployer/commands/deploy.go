package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/savaki/gcf-deployer/internal/deploy"
	"github.com/savaki/gcf-deployer/internal/di"
	deployerrors "github.com/savaki/gcf-deployer/internal/errors"
	"github.com/segmentio/ksuid"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// DeployCommand returns the deploy command
func DeployCommand(logger *zerolog.Logger, opts ...di.Option) *cli.Command {
	return &cli.Command{
		Name:  "deploy",
		Usage: "Deploy register_no_msisdn with gcloud",
		Description: `Reads REGION and FUNCTIONS_BUCKET from the environment and deploys the
register_no_msisdn HTTP function from the current directory.

Examples:
  # Deploy
  REGION=us-central1 FUNCTIONS_BUCKET=my-bucket gcf-deployer deploy

  # Show the gcloud command without running it
  REGION=us-central1 FUNCTIONS_BUCKET=my-bucket gcf-deployer deploy --dry-run

  # Machine-readable plan
  gcf-deployer deploy --dry-run --output yaml`,
		Flags: deployFlags(),
		Action: func(c *cli.Context) error {
			return deployAction(c, logger, opts)
		},
	}
}

// deployFlags returns new flag instances for each flag set that needs them.
func deployFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the deployment command without running it",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Dry run output format: text, json or yaml",
			Value:   "text",
		},
		&cli.StringFlag{
			Name:    "gcloud",
			Usage:   "Path to the gcloud binary",
			Value:   deploy.DefaultBinary,
			EnvVars: []string{"GCLOUD_BIN"},
		},
	}
}

// plan is the dry run rendering of a deployment
type plan struct {
	Binary  string         `json:"binary" yaml:"binary"`
	Args    []string       `json:"args" yaml:"args"`
	Request deploy.Request `json:"request" yaml:"request"`
}

func deployAction(c *cli.Context, logger *zerolog.Logger, opts []di.Option) error {
	dryRun := c.Bool("dry-run")
	output := c.String("output")

	log := logger.With().Str("deployment_id", ksuid.New().String()).Logger()
	ctx := log.WithContext(c.Context)

	container, err := di.New(append([]di.Option{di.WithBinary(c.String("gcloud"))}, opts...)...)
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}
	invoker := di.MustGet[*deploy.Invoker](container)

	if dryRun {
		req, err := invoker.Plan()
		if err != nil {
			return configurationExit(c.App.Writer, err)
		}
		if output != "text" && output != "json" && output != "yaml" {
			return fmt.Errorf("output must be 'text', 'json' or 'yaml'")
		}
		return writePlan(c.App.Writer, output, invoker.Binary(), req)
	}

	code, err := invoker.Deploy(ctx)
	if err != nil {
		if errors.Is(err, deployerrors.ErrConfiguration) {
			return configurationExit(c.App.Writer, err)
		}
		log.Error().Err(err).Str("binary", invoker.Binary()).Msg("Failed to run deployment tool")
		return cli.Exit("", code)
	}

	if code != 0 {
		return cli.Exit("", code)
	}
	return nil
}

// configurationExit prints the configuration diagnostic surrounded by blank lines and exits 1.
func configurationExit(w io.Writer, err error) error {
	if !errors.Is(err, deployerrors.ErrConfiguration) {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "ERROR: %s\n", deployerrors.ErrConfiguration)
	fmt.Fprintln(w)
	return cli.Exit("", 1)
}

func writePlan(w io.Writer, output, binary string, req deploy.Request) error {
	p := plan{
		Binary:  binary,
		Args:    req.Args(),
		Request: req,
	}

	switch output {
	case "json":
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		return enc.Close()

	default:
		line, err := req.CommandLine(binary)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, line)
		return err
	}
}
