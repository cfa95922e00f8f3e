package deploy

import "os"

const (
	EnvRegion          = "REGION"
	EnvFunctionsBucket = "FUNCTIONS_BUCKET"
)

// Environment provides read access to configuration values.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// OSEnvironment reads from the process environment.
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is a fixed set of values, used for tests and embedding.
type MapEnvironment map[string]string

func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
