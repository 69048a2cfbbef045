package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `chart:
  service_color: "rgb(200,10,10)"
  deadhead_color: "#ffe629"
  width: "1600px"
logging:
  level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rgb(200,10,10)", cfg.Chart.ServiceColor)
	assert.Equal(t, "#ffe629", cfg.Chart.DeadheadColor)
	assert.Equal(t, "1600px", cfg.Chart.Width)
	assert.Equal(t, "600px", cfg.Chart.Height) // default kept
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RSVIZ_CHART__SERVICE_COLOR", "rgb(1,2,3)")
	t.Setenv("RSVIZ_LOGGING__LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "rgb(1,2,3)", cfg.Chart.ServiceColor)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// untouched fields keep their defaults
	assert.Equal(t, Default().Chart.DeadheadColor, cfg.Chart.DeadheadColor)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart:\n  width: \"800px\"\n"), 0o644))
	t.Setenv("RSVIZ_CHART__WIDTH", "1600px")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1600px", cfg.Chart.Width)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Chart, cfg.Chart)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load("config.toml")
	require.Error(t, err)
}

func TestLoadRejectsBadLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"logging":{"level":"loud"}}`), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
