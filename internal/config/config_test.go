package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "outputs", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.DataSource.BaseURL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_source:
  base_url: "http://localhost:9999"
output:
  dir: "reports"
log:
  level: "debug"
proxy: "http://proxy:8080"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.DataSource.BaseURL)
	assert.Equal(t, "reports", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://proxy:8080", cfg.Proxy)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  dir: from_file\n"), 0o644))

	t.Setenv("OUTPUT_DIR", "from_env")
	t.Setenv("YAHOO_BASE_URL", "http://localhost:1234")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Output.Dir)
	assert.Equal(t, "http://localhost:1234", cfg.DataSource.BaseURL)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
