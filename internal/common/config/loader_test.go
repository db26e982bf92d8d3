// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ==========================
// LoadFromFile Tests
// ==========================

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: activities-server
  environment: test
server:
  host: 127.0.0.1
  port: 9090
registry:
  seed_path: configs/activities.json
logging:
  level: debug
  format: console
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "activities-server", cfg.App.Name)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "configs/activities.json", cfg.Registry.SeedPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: activities-server
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10000, cfg.Server.ReadTimeout)
	assert.Equal(t, 15000, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "static", cfg.Server.StaticDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Registry.SeedPath)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "port out of range",
			content: `
server:
  port: 70000
`,
		},
		{
			name: "tracing enabled without collector",
			content: `
tracing:
  enabled: true
`,
		},
		{
			name: "bad logging format",
			content: `
logging:
  format: xml
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			_, err := LoadFromFile(path)
			assert.Error(t, err)
		})
	}
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, "1.5s", GetDuration(1500).String())
	assert.Equal(t, "0s", GetDuration(0).String())
}
