package di

import "github.com/savaki/gcf-deployer/internal/deploy"

// Binary is the path or name of the deployment CLI.
type Binary string

// Option is a function that configures the dependency injection container.
type Option func(*options)

func WithBinary(binary string) Option {
	return func(opts *options) {
		if binary != "" {
			opts.binary = Binary(binary)
		}
	}
}

func WithEnvironment(env deploy.Environment) Option {
	return func(opts *options) {
		opts.environment = env
	}
}

func WithRunner(runner deploy.Runner) Option {
	return func(opts *options) {
		opts.runner = runner
	}
}

// WithProviders adds constructor functions to the dependency injection container.
// Providers can declare dependencies as function parameters, which will be
// automatically resolved by the container.
func WithProviders(providers ...any) Option {
	return func(opts *options) {
		opts.providers = append(opts.providers, providers...)
	}
}

type options struct {
	binary      Binary
	environment deploy.Environment
	runner      deploy.Runner
	providers   []any
}
