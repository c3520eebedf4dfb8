package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Transport selects how the MCP server talks to its host.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds the process configuration, loaded from the environment and an
// optional .env file. Nexus credentials are never part of it: they arrive
// per call, as tool arguments or request headers.
type Config struct {
	Host      string `validate:"required"`
	Port      int    `validate:"required,min=1,max=65535"`
	Transport string `validate:"required,oneof=stdio http"`
	LogLevel  string
}

// Addr returns the host:port pair for the HTTP transport.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load loads and validates the process configuration.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.SetEnvPrefix("NEXUS_MCP")
	v.AutomaticEnv()
	v.SetDefault("HOST", "127.0.0.1")
	v.SetDefault("PORT", 8000)
	v.SetDefault("TRANSPORT", TransportStdio)
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		// A missing .env is fine; the environment alone is a full config.
		if !errors.As(err, &cfgErr) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Host:      v.GetString("HOST"),
		Port:      v.GetInt("PORT"),
		Transport: v.GetString("TRANSPORT"),
		LogLevel:  v.GetString("LOG_LEVEL"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return cfg, nil
}
