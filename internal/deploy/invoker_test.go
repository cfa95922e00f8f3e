package deploy

import (
	"context"
	"errors"
	"testing"

	deployerrors "github.com/savaki/gcf-deployer/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

// recordingRunner records invocations and returns a canned result.
type recordingRunner struct {
	calls []call
	code  int
	err   error
}

func (r *recordingRunner) Run(_ context.Context, name string, args []string) (int, error) {
	r.calls = append(r.calls, call{name: name, args: append([]string(nil), args...)})
	return r.code, r.err
}

func validEnv() MapEnvironment {
	return MapEnvironment{
		EnvRegion:          "us-central1",
		EnvFunctionsBucket: "my-bucket",
	}
}

func TestInvoker_Deploy_Rejected(t *testing.T) {
	envs := map[string]MapEnvironment{
		"empty":          {},
		"region empty":   {EnvRegion: "", EnvFunctionsBucket: "my-bucket"},
		"bucket missing": {EnvRegion: "us-central1"},
	}

	for name, env := range envs {
		t.Run(name, func(t *testing.T) {
			runner := &recordingRunner{}
			invoker := NewInvoker(env, runner, "")

			code, err := invoker.Deploy(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, deployerrors.ErrConfiguration))
			assert.Equal(t, 1, code)
			assert.Empty(t, runner.calls)
		})
	}
}

func TestInvoker_Deploy_Invoked(t *testing.T) {
	tests := []struct {
		name     string
		toolCode int
	}{
		{name: "tool succeeds", toolCode: 0},
		{name: "tool fails", toolCode: 1},
		{name: "tool fails with custom code", toolCode: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &recordingRunner{code: tt.toolCode}
			invoker := NewInvoker(validEnv(), runner, "")

			code, err := invoker.Deploy(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.toolCode, code)

			require.Len(t, runner.calls, 1)
			assert.Equal(t, DefaultBinary, runner.calls[0].name)
			assert.Equal(t, []string{
				"functions", "deploy", "register_no_msisdn",
				"--region=us-central1",
				"--source=.",
				"--runtime=python37",
				"--stage-bucket=my-bucket",
				"--trigger-http",
				"--allow-unauthenticated",
				"--entry-point", "register_no_msisdn",
			}, runner.calls[0].args)
		})
	}
}

func TestInvoker_Deploy_SameInputsSameCommand(t *testing.T) {
	runner := &recordingRunner{}
	invoker := NewInvoker(validEnv(), runner, "/opt/google-cloud-sdk/bin/gcloud")

	_, err := invoker.Deploy(context.Background())
	require.NoError(t, err)
	_, err = invoker.Deploy(context.Background())
	require.NoError(t, err)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, runner.calls[0], runner.calls[1])
	assert.Equal(t, "/opt/google-cloud-sdk/bin/gcloud", runner.calls[0].name)
}

func TestInvoker_Deploy_RunnerError(t *testing.T) {
	startErr := errors.New("exec: \"gcloud\": executable file not found in $PATH")
	runner := &recordingRunner{code: 1, err: startErr}
	invoker := NewInvoker(validEnv(), runner, "")

	code, err := invoker.Deploy(context.Background())
	assert.ErrorIs(t, err, startErr)
	assert.Equal(t, 1, code)
	assert.Len(t, runner.calls, 1)
}

func TestInvoker_Plan(t *testing.T) {
	runner := &recordingRunner{}
	invoker := NewInvoker(validEnv(), runner, "gcloud")

	req, err := invoker.Plan()
	require.NoError(t, err)
	assert.Equal(t, "us-central1", req.Region)
	assert.Equal(t, "gcloud", invoker.Binary())
	assert.Empty(t, runner.calls)
}
