// Package di provides a lightweight wrapper around uber's dig dependency injection framework.
// It wires the deployment invoker and lets tests substitute its collaborators.
package di

import (
	"github.com/savaki/gcf-deployer/internal/deploy"
	"go.uber.org/dig"
)

// Container defines a dependency injection container based on uber's dig.
type Container interface {
	// Invoke executes a function, injecting its dependencies from the container.
	Invoke(function any, opts ...dig.InvokeOption) error

	// Provide registers a constructor function in the container.
	Provide(constructor any, opts ...dig.ProvideOption) error

	// Scope creates a scoped sub-container with its own set of values.
	Scope(name string, opts ...dig.ScopeOption) *dig.Scope
}

// MustGet returns an instance constructed via dependency injection or panics.
//
// Example:
//
//	invoker := MustGet[*deploy.Invoker](container)
func MustGet[T any](container Container) (want T) {
	callback := func(got T) {
		want = got
	}
	if err := container.Invoke(callback); err != nil {
		panic(err)
	}
	return want
}

// New creates a container holding the deployment Environment, Runner and Invoker.
// Defaults read the process environment and exec the gcloud binary.
//
// Example:
//
//	container, err := New(
//	    WithEnvironment(deploy.MapEnvironment{"REGION": "us-central1", "FUNCTIONS_BUCKET": "b"}),
//	    WithRunner(fakeRunner),
//	)
func New(opts ...Option) (Container, error) {
	o := options{
		binary: Binary(deploy.DefaultBinary),
	}
	for _, opt := range opts {
		opt(&o)
	}

	env := o.environment
	if env == nil {
		env = deploy.OSEnvironment{}
	}
	runner := o.runner
	if runner == nil {
		runner = deploy.NewExecRunner()
	}

	container := dig.New()
	if err := container.Provide(func() deploy.Environment { return env }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() deploy.Runner { return runner }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() Binary { return o.binary }); err != nil {
		return nil, err
	}

	for _, provider := range core {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	for _, provider := range o.providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

var core = []any{
	ProvideInvoker,
}

func ProvideInvoker(env deploy.Environment, runner deploy.Runner, binary Binary) *deploy.Invoker {
	return deploy.NewInvoker(env, runner, string(binary))
}
