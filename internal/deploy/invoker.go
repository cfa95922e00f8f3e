package deploy

import (
	"context"

	"github.com/rs/zerolog"
)

// DefaultBinary is the deployment CLI looked up on PATH.
const DefaultBinary = "gcloud"

// Invoker validates the environment and runs the deployment CLI once.
type Invoker struct {
	env    Environment
	runner Runner
	binary string
}

func NewInvoker(env Environment, runner Runner, binary string) *Invoker {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Invoker{
		env:    env,
		runner: runner,
		binary: binary,
	}
}

func (i *Invoker) Binary() string {
	return i.binary
}

// Plan validates the environment without running anything.
func (i *Invoker) Plan() (Request, error) {
	return LoadRequest(i.env)
}

// Deploy validates the environment and runs the deployment CLI.
// On a configuration error it returns exit code 1 and the runner is never called.
// Otherwise the runner's exit code is returned verbatim.
func (i *Invoker) Deploy(ctx context.Context) (int, error) {
	logger := zerolog.Ctx(ctx)

	req, err := LoadRequest(i.env)
	if err != nil {
		logger.Debug().Err(err).Msg("Deployment request rejected")
		return 1, err
	}

	logger.Info().
		Str("function", req.FunctionName).
		Str("region", req.Region).
		Str("stage_bucket", req.FunctionsBucket).
		Str("runtime", req.Runtime).
		Msg("Deploying function")

	code, err := i.runner.Run(ctx, i.binary, req.Args())
	if err != nil {
		return code, err
	}

	if code != 0 {
		logger.Warn().Int("exit_code", code).Msg("Deployment tool failed")
	} else {
		logger.Info().Msg("Deployment complete")
	}
	return code, nil
}
