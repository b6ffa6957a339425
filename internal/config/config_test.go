package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5433
user = "svc"
password = "secret"
dbname = "room_booking"

[logs]
file = "logs/app.log"

[metrics]
enabled = true

[directory_service]
url = "http://directory:8081"
timeout = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "http://directory:8081", cfg.DirectoryService.URL)
	assert.Equal(t, 3, cfg.DirectoryService.Timeout)

	// Незаданные значения получают дефолты
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingRequired(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db.local"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dbname")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		DBName:   "room_booking",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "dbname=room_booking")
	assert.Contains(t, dsn, "sslmode=disable")
}
