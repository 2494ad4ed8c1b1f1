package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir switches to a scratch directory so .env probing never picks up
// files from the repository root.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return dir
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t)
	t.Setenv(EnvUser, "u")
	t.Setenv(EnvKey, "k")
	t.Setenv(EnvPipelineID, "run-123")

	cfg, err := Load(DefaultConfigFile, false)
	require.NoError(t, err)

	require.Equal(t, DefaultEndpoint, cfg.Endpoint)
	require.Equal(t, "gitops_pipeline", cfg.Job)
	require.Equal(t, "u", cfg.User)
	require.Equal(t, "k", cfg.Key)
	require.Equal(t, "run-123", cfg.PipelineID)
	require.True(t, cfg.HasCredentials())
	require.Empty(t, cfg.MissingEnv())
}

func TestLoadMissingEnvStaysEmpty(t *testing.T) {
	chdir(t)
	t.Setenv(EnvUser, "")
	t.Setenv(EnvKey, "")
	t.Setenv(EnvPipelineID, "")

	cfg, err := Load(DefaultConfigFile, false)
	require.NoError(t, err)

	// Lax on purpose: the push is still attempted with empty values.
	require.Equal(t, "", cfg.User)
	require.Equal(t, "", cfg.Key)
	require.Equal(t, "", cfg.PipelineID)
	require.False(t, cfg.HasCredentials())
	require.Equal(t, []string{EnvUser, EnvKey, EnvPipelineID}, cfg.MissingEnv())
	require.NoError(t, cfg.Validate())
}

func TestLoadYAMLFile(t *testing.T) {
	dir := chdir(t)
	t.Setenv(EnvUser, "u")
	t.Setenv(EnvKey, "k")
	t.Setenv(EnvPipelineID, "run-1")

	path := filepath.Join(dir, "metricpush.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoint: https://gateway.example.com/otlp/v1/metrics
job: nightly_pipeline
attributes:
  team: platform
  branch: main
`), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)

	require.Equal(t, "https://gateway.example.com/otlp/v1/metrics", cfg.Endpoint)
	require.Equal(t, "nightly_pipeline", cfg.Job)
	require.Equal(t, []Attribute{
		{Key: "branch", Value: "main"},
		{Key: "team", Value: "platform"},
	}, cfg.SortedAttributes())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "metricpush.yaml")
	require.NoError(t, os.WriteFile(path, []byte("attributes:\n  team: platform\n"), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)

	require.Equal(t, DefaultEndpoint, cfg.Endpoint)
	require.Equal(t, "gitops_pipeline", cfg.Job)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "metricpush.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [unclosed"), 0o644))

	_, err := Load(path, true)
	require.Error(t, err)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	dir := chdir(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"), true)
	require.Error(t, err)
}

func TestEnvFileLoading(t *testing.T) {
	dir := chdir(t)
	t.Setenv(EnvUser, "placeholder") // registers restore of the original value
	require.NoError(t, os.Unsetenv(EnvUser))
	t.Setenv(EnvKey, "")
	t.Setenv(EnvPipelineID, "from-process")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"GRAFANA_USER=dotenv-user\nPIPELINE_ID=from-dotenv\n"), 0o644))

	cfg, err := Load(DefaultConfigFile, false)
	require.NoError(t, err)

	// .env fills unset variables but never overrides the process environment.
	require.Equal(t, "dotenv-user", cfg.User)
	require.Equal(t, "from-process", cfg.PipelineID)
}
