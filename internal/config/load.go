package config

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// EnvPrefix is the prefix of every environment variable read by LoadEnv,
// e.g. CPUCHESS_LEVEL or CPUCHESS_VALUE_QUEEN.
const EnvPrefix = "CPUCHESS"

// LoadFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user's --config flag
	if err != nil {
		return &errors.ConfigError{Err: err, Source: path}
	}
	return c.LoadYAML(data, path)
}

// LoadYAML overlays YAML data onto c. source names the data in errors.
func (c *Config) LoadYAML(data []byte, source string) error {
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return &errors.ConfigError{
			Err:    fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
			Source: source,
		}
	}
	return nil
}

// LoadEnv overlays CPUCHESS_* environment variables onto c. When envFile is
// not empty it is loaded first with godotenv; a missing file is not an
// error, and variables already set in the environment win over the file.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, os.ErrNotExist) {
			return &errors.ConfigError{Err: err, Source: envFile}
		}
	}

	targets := []struct {
		prefix string
		spec   interface{}
	}{
		{EnvPrefix, &c.Engine},
		{EnvPrefix + "_VALUE", &c.Values},
	}
	for _, target := range targets {
		if err := envconfig.Process(target.prefix, target.spec); err != nil {
			return envError(err)
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "_VERBOSITY"); ok {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
			return &errors.ConfigError{Err: errors.ErrInvalidConfig, Source: "env", Key: EnvPrefix + "_VERBOSITY", Value: v}
		}
		c.Verbosity = n
	}
	return nil
}

// envError converts an envconfig failure to a ConfigError.
func envError(err error) error {
	var pe *envconfig.ParseError
	if stderrors.As(err, &pe) {
		return &errors.ConfigError{
			Err:    fmt.Errorf("%w: %v", errors.ErrInvalidConfig, pe.Err),
			Source: "env",
			Key:    pe.KeyName,
			Value:  pe.Value,
		}
	}
	return &errors.ConfigError{Err: fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err), Source: "env"}
}
