package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"orderdesk/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "orderdesk.yaml"
	defaultEnvFile    = ".env"

	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Store           string `yaml:"store"`
	HTTPPort        string `yaml:"http_port"`
	DBHost          string `yaml:"db_host"`
	DBPort          string `yaml:"db_port"`
	DBUser          string `yaml:"db_user"`
	DBPassword      string `yaml:"db_password"`
	DBName          string `yaml:"db_name"`
	DBSslMode       string `yaml:"db_sslmode"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	OverdueSchedule string `yaml:"overdue_schedule"`
}

// envKeys maps every environment variable onto its Config field.
var envKeys = map[string]func(*Config) *string{
	"ORDERDESK_STORE":  func(c *Config) *string { return &c.Store },
	"HTTP_PORT":        func(c *Config) *string { return &c.HTTPPort },
	"DB_HOST":          func(c *Config) *string { return &c.DBHost },
	"DB_PORT":          func(c *Config) *string { return &c.DBPort },
	"DB_USER":          func(c *Config) *string { return &c.DBUser },
	"DB_PASSWORD":      func(c *Config) *string { return &c.DBPassword },
	"DB_NAME":          func(c *Config) *string { return &c.DBName },
	"DB_SSLMODE":       func(c *Config) *string { return &c.DBSslMode },
	"LOG_LEVEL":        func(c *Config) *string { return &c.LogLevel },
	"LOG_FORMAT":       func(c *Config) *string { return &c.LogFormat },
	"OVERDUE_SCHEDULE": func(c *Config) *string { return &c.OverdueSchedule },
}

func DefaultConfig() Config {
	return Config{
		Store:           StorePostgres,
		HTTPPort:        "8080",
		DBHost:          "localhost",
		DBPort:          "5432",
		DBUser:          "postgres",
		DBName:          "orderdesk",
		DBSslMode:       "disable",
		LogLevel:        "info",
		LogFormat:       "text",
		OverdueSchedule: "@every 1h",
	}
}

// LoadConfig layers, from lowest to highest precedence: defaults, the YAML file named
// by ORDERDESK_CONFIG (orderdesk.yaml when unset), the .env file and the process
// environment. Missing files are skipped; malformed values are errors.
func LoadConfig() (Config, error) {
	configFile := defaultConfigFile
	if path, ok := os.LookupEnv("ORDERDESK_CONFIG"); ok && path != "" {
		configFile = path
	}
	return loadConfig(configFile, defaultEnvFile, os.LookupEnv)
}

func loadConfig(configFile, envFile string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading %s: %w", configFile, err)
	default:
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", configFile, err)
		}
	}

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
	}

	for key, field := range envKeys {
		if value, ok := dotenv[key]; ok {
			*field(&cfg) = value
		}
		if value, ok := lookupEnv(key); ok {
			*field(&cfg) = value
		}
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate reports every malformed value together.
func (c Config) Validate() error {
	var problems []error

	switch c.Store {
	case StorePostgres:
		if c.DBHost == "" {
			problems = append(problems, errs.NewValueIsRequiredError("DB_HOST"))
		}
		if c.DBName == "" {
			problems = append(problems, errs.NewValueIsRequiredError("DB_NAME"))
		}
		problems = append(problems, validPort("DB_PORT", c.DBPort))
	case StoreMemory:
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("ORDERDESK_STORE",
			fmt.Errorf("%q is not one of %s, %s", c.Store, StorePostgres, StoreMemory)))
	}

	problems = append(problems, validPort("HTTP_PORT", c.HTTPPort))

	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	if format := strings.ToLower(c.LogFormat); format != "text" && format != "json" {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_FORMAT",
			fmt.Errorf("%q is not text or json", c.LogFormat)))
	}
	if _, err := cron.ParseStandard(c.OverdueSchedule); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("OVERDUE_SCHEDULE", err))
	}

	return errors.Join(problems...)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

// NewLogger builds the process logger described by the configuration.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	options := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}

func validPort(param, raw string) error {
	port, err := strconv.Atoi(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a port number", raw))
	}
	if port < 1 || port > 65535 {
		return errs.NewValueIsOutOfRangeError(param, port, 1, 65535)
	}
	return nil
}
