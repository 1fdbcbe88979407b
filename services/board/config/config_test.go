package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	cfg, err := Load("")
	assert.NilError(t, err)

	assert.Equal(t, cfg.LogLevel, "ERROR")
	assert.Equal(t, cfg.API.URL, "http://localhost:3000/api")
	assert.Equal(t, cfg.API.Timeout, 10*time.Second)
	assert.Equal(t, cfg.Cache.Backend, BackendFile)
	assert.Equal(t, cfg.Cache.Key, "kanban_tasks")
	assert.Assert(t, cfg.Cache.Dir != "")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("API_URL", "https://kanban.example.com/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/3")
	t.Setenv("CACHE_KEY", " board ")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	assert.NilError(t, err)

	assert.Equal(t, cfg.API.URL, "https://kanban.example.com/")
	assert.Equal(t, cfg.API.Timeout, 3*time.Second)
	assert.Equal(t, cfg.Cache.Backend, BackendRedis)
	assert.Equal(t, cfg.Cache.RedisURL, "redis://cache:6379/3")
	assert.Equal(t, cfg.Cache.Key, "board")
	assert.Equal(t, cfg.LogLevel, "WARN")
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.yaml")
	body := "api:\n  url: http://tasks:3000\ncache:\n  dir: " + dir + "\n"
	assert.NilError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.API.URL, "http://tasks:3000")
	assert.Equal(t, cfg.Cache.Dir, dir)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("CACHE_DIR", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NilError(t, err)
	assert.Equal(t, cfg.Cache.Backend, BackendFile)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{name: "backend", key: "CACHE_BACKEND", val: "memcached", want: "invalid cache backend"},
		{name: "timeout", key: "API_TIMEOUT", val: "0s", want: "invalid api timeout"},
		{name: "key", key: "CACHE_KEY", val: "  ", want: "cache key must not be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CACHE_DIR", t.TempDir())
			t.Setenv(tc.key, tc.val)

			_, err := Load("")
			assert.Assert(t, is.ErrorContains(err, tc.want))
		})
	}
}
