package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Driver selects the persistence backend for the shared stores.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverFile     Driver = "file"
	DriverMemory   Driver = "memory"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"BillingSoftware"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		Driver  Driver `envconfig:"STORAGE_DRIVER" default:"file"`
		DataDir string `envconfig:"DATA_DIR" default:"data"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"billing"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Storage.Driver {
	case DriverPostgres, DriverFile, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return &cfg, nil
}
