package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NilError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://kanban@localhost/kanban")

	cfg, err := Load("")
	assert.NilError(t, err)

	assert.Equal(t, cfg.HTTP.Port, 3000)
	assert.Equal(t, cfg.Address(), ":3000")
	assert.Equal(t, cfg.HTTP.Timeout, 5*time.Second)
	assert.Equal(t, cfg.HTTP.ShutdownTimeout, 10*time.Second)
	assert.Equal(t, cfg.DB.Driver, "pgx")
	assert.Equal(t, cfg.LogLevel, "INFO")
	assert.DeepEqual(t, cfg.HTTP.AllowedOrigins, []string{"http://localhost:5173"})
	assert.Equal(t, cfg.GRPC.Address, "")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "kanban:secret@tcp(localhost:3306)/kanban")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", " debug ")
	t.Setenv("FRONTEND_URL", "http://localhost:5173,https://board.example.com")
	t.Setenv("GRPC_ADDRESS", ":9090")

	cfg, err := Load("")
	assert.NilError(t, err)

	assert.Equal(t, cfg.DB.Driver, "mysql")
	assert.Equal(t, cfg.Address(), ":8081")
	assert.Equal(t, cfg.LogLevel, "DEBUG")
	assert.DeepEqual(t, cfg.HTTP.AllowedOrigins, []string{"http://localhost:5173", "https://board.example.com"})
	assert.Equal(t, cfg.GRPC.Address, ":9090")
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load("")
	assert.Assert(t, is.ErrorContains(err, "db address is required"))
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level: error
http:
  port: 4000
  timeout: 2s
db:
  driver: pgx
  address: postgres://file@localhost/kanban
grpc:
  address: ":9191"
  health_interval: 3s
`)

	cfg, err := Load(path)
	assert.NilError(t, err)

	assert.Equal(t, cfg.LogLevel, "ERROR")
	assert.Equal(t, cfg.HTTP.Port, 4000)
	assert.Equal(t, cfg.HTTP.Timeout, 2*time.Second)
	assert.Equal(t, cfg.DB.Address, "postgres://file@localhost/kanban")
	assert.Equal(t, cfg.GRPC.HealthInterval, 3*time.Second)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env@localhost/kanban")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NilError(t, err)
	assert.Equal(t, cfg.DB.Address, "postgres://env@localhost/kanban")
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "port", env: map[string]string{"PORT": "70000"}, want: "invalid port"},
		{name: "driver", env: map[string]string{"DB_DRIVER": "sqlite3"}, want: "invalid db driver"},
		{name: "timeout", env: map[string]string{"HTTP_TIMEOUT": "0s"}, want: "invalid http timeout"},
		{name: "health interval", env: map[string]string{"HEALTH_INTERVAL": "-1s"}, want: "invalid health interval"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://kanban@localhost/kanban")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Assert(t, is.ErrorContains(err, tc.want))
		})
	}
}
