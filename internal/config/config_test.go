package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "text", cfg.Render.Variant)
	assert.Empty(t, cfg.Render.Environment)
	assert.Nil(t, cfg.Render.BlankCell)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "1s", cfg.Watch.Interval)
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Render.Variant)
}

func TestLoadFrom_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[render]
variant = "math"
environment = "tabular"
blank_cell = " "
escape = true

[output]
format = "yaml"
copy = true

[watch]
interval = "250ms"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFrom(configPath)
	require.NoError(t, err)

	assert.Equal(t, "math", cfg.Render.Variant)
	assert.Equal(t, "tabular", cfg.Render.Environment)
	require.NotNil(t, cfg.Render.BlankCell)
	assert.Equal(t, " ", *cfg.Render.BlankCell)
	assert.True(t, cfg.Render.Escape)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.True(t, cfg.Output.Copy)

	interval, err := cfg.WatchInterval()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, interval)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[render]\nvariant = \"math\"\n"), 0644))

	t.Setenv("XLTEX_VARIANT", "preview")
	t.Setenv("XLTEX_BLANK_CELL", "")
	t.Setenv("XLTEX_COPY", "true")

	cfg, err := LoadFrom(configPath)
	require.NoError(t, err)

	assert.Equal(t, "preview", cfg.Render.Variant)
	require.NotNil(t, cfg.Render.BlankCell)
	assert.Equal(t, "", *cfg.Render.BlankCell)
	assert.True(t, cfg.Output.Copy)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"variant", "[render]\nvariant = \"html\"\n"},
		{"environment", "[render]\nenvironment = \"tabularx\"\n"},
		{"format", "[output]\nformat = \"csv\"\n"},
		{"interval", "[watch]\ninterval = \"soon\"\n"},
		{"negative interval", "[watch]\ninterval = \"-1s\"\n"},
		{"syntax", "[render\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0644))

			_, err := LoadFrom(configPath)
			assert.Error(t, err)
		})
	}
}

func TestLoadFrom_InvalidEnvBool(t *testing.T) {
	t.Setenv("XLTEX_ESCAPE", "maybe")
	_, err := LoadFrom("/nonexistent/path/config.toml")
	assert.Error(t, err)
}
