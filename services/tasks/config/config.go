package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPConfig struct {
	Port            int           `yaml:"port" env:"PORT" env-default:"3000"`
	Timeout         time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"5s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string `yaml:"allowed_origins" env:"FRONTEND_URL" env-separator:"," env-default:"http://localhost:5173"`
}

type DBConfig struct {
	Driver  string `yaml:"driver" env:"DB_DRIVER" env-default:"pgx"`
	Address string `yaml:"address" env:"DATABASE_URL" env-required:"true"`
}

type GRPCConfig struct {
	// Address of the gRPC health listener; empty disables it.
	Address        string        `yaml:"address" env:"GRPC_ADDRESS"`
	HealthInterval time.Duration `yaml:"health_interval" env:"HEALTH_INTERVAL" env-default:"10s"`
}

type Config struct {
	LogLevel string     `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	HTTP     HTTPConfig `yaml:"http"`
	DB       DBConfig   `yaml:"db"`
	GRPC     GRPCConfig `yaml:"grpc"`
}

// Address returns the HTTP listen address in ":port" form.
func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

// Load reads configPath when it exists and falls back to the environment.
func Load(configPath string) (Config, error) {
	var cfg Config

	// no file: environment only
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
		return validated(cfg)
	}

	// a missing file falls back to the environment
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
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.HTTP.Port)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("invalid http timeout %v: must be positive", c.HTTP.Timeout)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %v: must be positive", c.HTTP.ShutdownTimeout)
	}
	if c.GRPC.HealthInterval <= 0 {
		return fmt.Errorf("invalid health interval %v: must be positive", c.GRPC.HealthInterval)
	}

	if strings.TrimSpace(c.DB.Address) == "" {
		return errors.New("db address is required")
	}

	switch c.DB.Driver {
	case "pgx", "mysql":
	default:
		return fmt.Errorf("invalid db driver %q: must be pgx or mysql", c.DB.Driver)
	}

	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	return nil
}
