package deploy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/savaki/gcf-deployer/internal/errors"
	"mvdan.cc/sh/v3/syntax"
)

const (
	FunctionName = "register_no_msisdn"
	EntryPoint   = "register_no_msisdn"
	SourcePath   = "."
	Runtime      = "python37"
)

// shellSafe matches words that need no quoting anywhere in a bash command line.
var shellSafe = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// Request is a validated deployment of the register function.
// A Request is only obtained from LoadRequest, so Region and FunctionsBucket are never empty.
type Request struct {
	Region          string `json:"region" yaml:"region"`
	FunctionsBucket string `json:"functions_bucket" yaml:"functions_bucket"`
	FunctionName    string `json:"function_name" yaml:"function_name"`
	SourcePath      string `json:"source" yaml:"source"`
	Runtime         string `json:"runtime" yaml:"runtime"`
	EntryPoint      string `json:"entry_point" yaml:"entry_point"`
	TriggerHTTP     bool   `json:"trigger_http" yaml:"trigger_http"`
	AllowUnauth     bool   `json:"allow_unauthenticated" yaml:"allow_unauthenticated"`
}

// LoadRequest reads REGION and FUNCTIONS_BUCKET from env.
// Returns *errors.ConfigurationError if either is unset or empty.
func LoadRequest(env Environment) (Request, error) {
	region, _ := env.LookupEnv(EnvRegion)
	bucket, _ := env.LookupEnv(EnvFunctionsBucket)

	var missing []string
	if region == "" {
		missing = append(missing, EnvRegion)
	}
	if bucket == "" {
		missing = append(missing, EnvFunctionsBucket)
	}
	if len(missing) > 0 {
		return Request{}, &errors.ConfigurationError{Missing: missing}
	}

	return Request{
		Region:          region,
		FunctionsBucket: bucket,
		FunctionName:    FunctionName,
		SourcePath:      SourcePath,
		Runtime:         Runtime,
		EntryPoint:      EntryPoint,
		TriggerHTTP:     true,
		AllowUnauth:     true,
	}, nil
}

// Args returns the arguments passed to the deployment CLI.
func (r Request) Args() []string {
	return []string{
		"functions",
		"deploy",
		r.FunctionName,
		"--region=" + r.Region,
		"--source=" + r.SourcePath,
		"--runtime=" + r.Runtime,
		"--stage-bucket=" + r.FunctionsBucket,
		"--trigger-http",
		"--allow-unauthenticated",
		"--entry-point",
		r.EntryPoint,
	}
}

// CommandLine renders binary plus Args as a single shell-quoted line.
func (r Request) CommandLine(binary string) (string, error) {
	words := append([]string{binary}, r.Args()...)
	quoted := make([]string, 0, len(words))
	for _, word := range words {
		if shellSafe.MatchString(word) {
			quoted = append(quoted, word)
			continue
		}
		q, err := syntax.Quote(word, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("failed to quote %q: %w", word, err)
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " "), nil
}
