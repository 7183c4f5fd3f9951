package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	repo := NewConfigRepository()

	t.Run("TOML", func(t *testing.T) {
		path := writeTempConfig(t, "config.toml", `
listen_addr = ":8080"
temp_dir = "/tmp/uploads"
max_upload_mb = 25
`)
		cfg, err := repo.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "/tmp/uploads", cfg.TempDir)
		assert.Equal(t, 25, cfg.MaxUploadMB)
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeTempConfig(t, "config.yaml", `
listen_addr: ":9090"
report_dir: /var/reports
aws_profile: prod
`)
		cfg, err := repo.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.ListenAddr)
		assert.Equal(t, "/var/reports", cfg.ReportDir)
		assert.Equal(t, "prod", cfg.AWSProfile)
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeTempConfig(t, "config.json", `{"listen_addr": ":5000", "max_upload_mb": 100}`)
		cfg, err := repo.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, ":5000", cfg.ListenAddr)
		assert.Equal(t, 100, cfg.MaxUploadMB)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempConfig(t, "config.ini", "listen_addr=:8080")
		_, err := repo.LoadConfigFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
