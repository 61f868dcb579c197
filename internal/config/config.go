package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration required by the API process and the CLI.
// All values come from env, optionally seeded from a .env file.
// No business logic should depend on raw environment variables.
type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	HTTP  HTTPConfig
}

type AppConfig struct {
	Env  string
	Port int
}

type DBConfig struct {
	// URL is the Postgres connection string. Empty means mock mode.
	URL string

	// SSLMode applies only when URL does not carry sslmode itself.
	// Accepts: disable, require, verify-ca, verify-full
	SSLMode string

	MaxOpenConns int
}

type RedisConfig struct {
	// URL is optional; serve counters are disabled without it.
	URL string
}

type HTTPConfig struct {
	AllowOrigins []string
}

// Load reads the process environment. A .env file in the working directory is
// loaded first when present; variables already set in the environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the current environment only.
func FromEnv() (Config, error) {
	c := Config{}
	var parseErrs []error

	c.App.Env = strings.TrimSpace(os.Getenv("APP_ENV"))
	{
		n, err := mustInt("APP_PORT")
		n, parseErrs = appendParseErr(parseErrs, n, err)
		c.App.Port = n
	}

	c.DB.URL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	c.DB.SSLMode = strings.TrimSpace(os.Getenv("DB_SSLMODE"))
	{
		n, err := optionalInt("DB_MAX_OPEN_CONNS")
		n, parseErrs = appendParseErr(parseErrs, n, err)
		c.DB.MaxOpenConns = n
	}

	c.Redis.URL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	c.HTTP.AllowOrigins = splitList(os.Getenv("CORS_ALLOW_ORIGINS"))

	if err := joinErrors(parseErrs); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values and fills env-dependent defaults.
func (c *Config) Validate() error {
	var errs []error

	if c.App.Env == "" {
		errs = append(errs, errors.New("APP_ENV is required"))
	} else if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %d", c.App.Port))
	}

	if c.DB.SSLMode == "" {
		if c.IsProduction() {
			c.DB.SSLMode = "require"
		} else {
			c.DB.SSLMode = "disable"
		}
	}
	if !isValidSSLMode(c.DB.SSLMode) {
		errs = append(errs, fmt.Errorf("DB_SSLMODE must be one of disable, require, verify-ca, verify-full, got %q", c.DB.SSLMode))
	}
	if c.DB.MaxOpenConns < 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_OPEN_CONNS must not be negative, got %d", c.DB.MaxOpenConns))
	}
	if c.DB.URL != "" {
		if _, err := withSSLMode(c.DB.URL, c.DB.SSLMode); err != nil {
			// never echo the URL; it contains credentials
			errs = append(errs, errors.New("DATABASE_URL is not a valid connection string"))
		}
	}

	if c.Redis.URL != "" && !strings.HasPrefix(c.Redis.URL, "redis://") && !strings.HasPrefix(c.Redis.URL, "rediss://") {
		errs = append(errs, errors.New("REDIS_URL must use redis:// or rediss://"))
	}

	if len(c.HTTP.AllowOrigins) == 0 {
		c.HTTP.AllowOrigins = []string{"*"}
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

// LiveMode reports whether a backing store is configured.
func (c Config) LiveMode() bool {
	return c.DB.URL != ""
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// PostgresDSN returns the connection string with sslmode applied.
// Avoid logging this string; it contains secrets.
func (c Config) PostgresDSN() string {
	dsn, err := withSSLMode(c.DB.URL, c.DB.SSLMode)
	if err != nil {
		return c.DB.URL
	}
	return dsn
}

// withSSLMode adds sslmode to a URL or keyword/value DSN unless it is already present.
func withSSLMode(dsn, mode string) (string, error) {
	if dsn == "" || mode == "" {
		return dsn, nil
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", err
		}
		q := u.Query()
		if q.Get("sslmode") == "" {
			q.Set("sslmode", mode)
			u.RawQuery = q.Encode()
		}
		return u.String(), nil
	}
	if strings.Contains(dsn, "sslmode=") {
		return dsn, nil
	}
	if !strings.Contains(dsn, "=") {
		return "", fmt.Errorf("unrecognized dsn format")
	}
	return dsn + " sslmode=" + mode, nil
}

func mustInt(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func optionalInt(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func appendParseErr(errs []error, n int, err error) (int, []error) {
	if err != nil {
		errs = append(errs, err)
	}
	return n, errs
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func isValidSSLMode(v string) bool {
	switch v {
	case "disable", "require", "verify-ca", "verify-full":
		return true
	default:
		return false
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
