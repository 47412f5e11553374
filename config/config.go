package config

import (
	"os"
	"strconv"
	"time"

	gookit "github.com/gookit/config/v2"
	"github.com/gookit/config/v2/yaml"
)

// Config holds everything the server reads at startup.
type Config struct {
	// DBToken is the MongoDB connection string.
	DBToken          string `config:"db_token"`
	Database         string `config:"database"`
	Collection       string `config:"collection"`
	Port             string `config:"api_port"`
	StoreBackend     string `config:"store_backend"`
	DataDir          string `config:"data_dir"`
	DBTimeoutSeconds int    `config:"db_timeout_seconds"`
	LogLevel         string `config:"log_level"`
	LogFormat        string `config:"log_format"`
	// RateLimitMax is the number of requests allowed per window; 0 disables the limiter.
	RateLimitMax           int  `config:"rate_limit_max"`
	RateLimitWindowSeconds int  `config:"rate_limit_window_seconds"`
	Swagger                bool `config:"swagger"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Database:               "ToDos",
		Collection:             "todos",
		Port:                   "8000",
		StoreBackend:           "mongo",
		DataDir:                "./data",
		DBTimeoutSeconds:       10,
		LogLevel:               "info",
		LogFormat:              "text",
		RateLimitWindowSeconds: 30,
		Swagger:                true,
	}
}

// Load reads .env, then the YAML file named by CONFIG_FILE (config.yml by
// default) if it exists, then applies environment overrides.
func Load() (*Config, error) {
	if err := LoadENV(); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := LoadFile(GetEnv("CONFIG_FILE", "config.yml"), cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile binds the YAML file at path over cfg. A missing file leaves cfg untouched.
func LoadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	c := gookit.New("spatial-todo")
	c.WithOptions(func(opt *gookit.Options) {
		opt.DecoderConfig.TagName = "config"
	})
	c.AddDriver(yaml.Driver)

	if err := c.LoadFiles(path); err != nil {
		return err
	}
	return c.BindStruct("", cfg)
}

func (c *Config) applyEnv() {
	c.DBToken = GetEnv("DB_TOKEN", c.DBToken)
	c.Database = GetEnv("DATABASE", c.Database)
	c.Collection = GetEnv("COLLECTION", c.Collection)
	c.Port = GetEnv("API_PORT", c.Port)
	c.StoreBackend = GetEnv("STORE_BACKEND", c.StoreBackend)
	c.DataDir = GetEnv("DATA_DIR", c.DataDir)
	c.LogLevel = GetEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = GetEnv("LOG_FORMAT", c.LogFormat)
	if n, err := strconv.Atoi(os.Getenv("RATE_LIMIT_MAX")); err == nil {
		c.RateLimitMax = n
	}
}

func (c *Config) DBTimeout() time.Duration {
	return time.Duration(c.DBTimeoutSeconds) * time.Second
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// Addr is the listen address for Fiber.
func (c *Config) Addr() string {
	return ":" + c.Port
}
