package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const defaultEnvPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

// Config reads settings from the environment. Values from the env file
// never override variables that are already set.
type Config struct {
}

func New() *Config {
	once.Do(func() {
		path := os.Getenv("UNBROKEN_ENV_FILE")
		if path == "" {
			path = defaultEnvPath
		}
		err := godotenv.Load(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("env file not found, using process environment", slog.String("path", path))
			} else {
				slog.Warn("loading envs error", slog.String("path", path), slog.String("error", err.Error()))
			}
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid int setting, using default", slog.String("key", key), slog.String("value", v))
		return def
	}
	return n
}

func (c *Config) GetBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool setting, using default", slog.String("key", key), slog.String("value", v))
		return def
	}
	return b
}

// GetDuration accepts Go duration strings such as "5s" or "1m30s".
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration setting, using default", slog.String("key", key), slog.String("value", v))
		return def
	}
	return d
}
