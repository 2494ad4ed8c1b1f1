// Package config resolves metricpush settings from an optional YAML file,
// .env files, and the process environment.
//
// Precedence, highest first: CLI flags (applied by the caller) > process
// environment > config file > built-in defaults. Credentials and the
// pipeline identifier come exclusively from the environment; missing values
// resolve to empty strings rather than failing, so a misconfigured pipeline
// stage still attempts the push and surfaces the gateway's rejection.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/metricpush/internal/errors"
)

// DefaultEndpoint is the Grafana Cloud OTLP metrics gateway.
const DefaultEndpoint = "https://otlp-gateway-prod-us-east-2.grafana.net/otlp/v1/metrics"

// DefaultConfigFile is probed when no --config flag is given.
const DefaultConfigFile = "metricpush.yaml"

// Environment variable names consumed at load time.
const (
	EnvUser       = "GRAFANA_USER"
	EnvKey        = "GRAFANA_KEY"
	EnvPipelineID = "PIPELINE_ID"
)

// Config represents the resolved application configuration.
type Config struct {
	Endpoint   string            `yaml:"endpoint,omitempty"`
	Job        string            `yaml:"job,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`

	// Environment-sourced; never read from the file.
	User       string `yaml:"-"`
	Key        string `yaml:"-"`
	PipelineID string `yaml:"-"`
}

// Attribute is one extra data-point attribute from the config file.
type Attribute struct {
	Key   string
	Value string
}

// Default returns a configuration with built-in defaults and no credentials.
func Default() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		Job:      "gitops_pipeline",
	}
}

// Load builds the configuration for one invocation.
//
// The file at path is optional: a missing file yields defaults, a present
// but malformed file is a configuration error. explicit marks whether the
// path came from a CLI flag; an explicitly named file must exist.
func Load(path string, explicit bool) (*Config, error) {
	loadEnvFiles()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigError("failed to parse config file").
				WithCause(err).
				WithContext("path", path).
				Build()
		}
		cfg.applyFileDefaults()
	case os.IsNotExist(err) && !explicit:
		// Optional file absent: defaults apply.
	default:
		return nil, errors.ConfigError("failed to read config file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}

	cfg.User = os.Getenv(EnvUser)
	cfg.Key = os.Getenv(EnvKey)
	cfg.PipelineID = os.Getenv(EnvPipelineID)

	return cfg, nil
}

// applyFileDefaults restores defaults the file may have blanked out.
func (c *Config) applyFileDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Job == "" {
		c.Job = "gitops_pipeline"
	}
}

// HasCredentials reports whether both Basic-auth components are present.
func (c *Config) HasCredentials() bool {
	return c.User != "" && c.Key != ""
}

// MissingEnv lists the consumed environment variables that are unset or empty.
func (c *Config) MissingEnv() []string {
	var missing []string
	if c.User == "" {
		missing = append(missing, EnvUser)
	}
	if c.Key == "" {
		missing = append(missing, EnvKey)
	}
	if c.PipelineID == "" {
		missing = append(missing, EnvPipelineID)
	}
	return missing
}

// SortedAttributes returns the extra attributes in deterministic key order.
func (c *Config) SortedAttributes() []Attribute {
	if len(c.Attributes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.Attributes))
	for k := range c.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]Attribute, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, Attribute{Key: k, Value: c.Attributes[k]})
	}
	return attrs
}

// Validate checks the parts of the configuration that must be well-formed.
// Credentials are deliberately not validated here.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	if c.Job == "" {
		return fmt.Errorf("job must not be empty")
	}
	return nil
}
