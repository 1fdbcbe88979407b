package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type APIConfig struct {
	URL     string        `yaml:"url" env:"API_URL" env-default:"http://localhost:3000/api"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"10s"`
}

type CacheConfig struct {
	Backend string `yaml:"backend" env:"CACHE_BACKEND" env-default:"file"`
	// Dir of the file backend; empty means <user config dir>/kanban.
	Dir      string `yaml:"dir" env:"CACHE_DIR"`
	Key      string `yaml:"key" env:"CACHE_KEY" env-default:"kanban_tasks"`
	RedisURL string `yaml:"redis_url" env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
}

type Config struct {
	LogLevel string      `yaml:"log_level" env:"LOG_LEVEL" env-default:"ERROR"`
	API      APIConfig   `yaml:"api"`
	Cache    CacheConfig `yaml:"cache"`
}

// Load reads configPath when it exists and falls back to the environment.
func Load(configPath string) (Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
		return validated(cfg)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("cannot read config %q: %w", configPath, err)
		}
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
	}

	return validated(cfg)
}

func validated(cfg Config) (Config, error) {
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func MustLoad(configPath string) Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid api timeout %v: must be positive", c.API.Timeout)
	}

	c.Cache.Key = strings.TrimSpace(c.Cache.Key)
	if c.Cache.Key == "" {
		return errors.New("cache key must not be empty")
	}

	switch c.Cache.Backend {
	case BackendFile:
		if c.Cache.Dir == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return fmt.Errorf("cannot resolve cache dir: %w", err)
			}
			c.Cache.Dir = filepath.Join(dir, "kanban")
		}
	case BackendRedis:
		if strings.TrimSpace(c.Cache.RedisURL) == "" {
			return errors.New("redis cache backend needs REDIS_URL")
		}
	default:
		return fmt.Errorf("invalid cache backend %q: must be file or redis", c.Cache.Backend)
	}

	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	return nil
}
