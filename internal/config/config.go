package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration required by the API process.
// Values come from the environment, optionally seeded from a dotenv file.
// No business logic should depend on raw environment variables.
type Config struct {
	App      AppConfig
	Provider ProviderConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Env      string `env:"APP_ENV" envDefault:"local"`
	Port     int    `env:"PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL"`

	// StrictStatus maps dispatch failures to 400/502/503 instead of a blanket 500.
	StrictStatus bool `env:"NOTIFY_STRICT_STATUS" envDefault:"false"`
}

// ProviderConfig carries the telephony provider credentials and sender identity.
// AccessKeyID is deliberately not validated here: a missing key leaves the
// provider capabilities unavailable but must not stop the process.
type ProviderConfig struct {
	AccessKeyID     string        `env:"PROVIDER_ACCESS_KEY_ID"`
	AccessKeySecret string        `env:"PROVIDER_ACCESS_KEY_SECRET"`
	Endpoint        string        `env:"PROVIDER_ENDPOINT" envDefault:"https://api.fonoster.com"`
	Number          string        `env:"PROVIDER_NUMBER"`
	Timeout         time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"30s"`
}

// AuthConfig enables bearer-token protection of the notify routes when JWTSecret is set.
type AuthConfig struct {
	JWTSecret   string        `env:"AUTH_JWT_SECRET"`
	JWTIssuer   string        `env:"AUTH_JWT_ISSUER"`
	JWTAudience string        `env:"AUTH_JWT_AUDIENCE"`
	TokenTTL    time.Duration `env:"AUTH_TOKEN_TTL"`
}

const envFileKey = "ENV_FILE"

// Load reads the dotenv file (if present), parses the environment and validates the result.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse failed: %w", err)
	}
	c.trim()

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func loadEnvFile() error {
	path := strings.TrimSpace(os.Getenv(envFileKey))
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	// The default file is optional; an explicitly requested one is not.
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%s %q could not be loaded: %w", envFileKey, path, err)
}

func (c *Config) trim() {
	c.App.Env = strings.TrimSpace(c.App.Env)
	c.App.LogLevel = strings.TrimSpace(c.App.LogLevel)
	c.Provider.AccessKeyID = strings.TrimSpace(c.Provider.AccessKeyID)
	c.Provider.Endpoint = strings.TrimSpace(c.Provider.Endpoint)
	c.Provider.Number = strings.TrimSpace(c.Provider.Number)
	c.Auth.JWTIssuer = strings.TrimSpace(c.Auth.JWTIssuer)
	c.Auth.JWTAudience = strings.TrimSpace(c.Auth.JWTAudience)
}

// Validate reports every problem at once and fills env-dependent defaults.
func (c *Config) Validate() error {
	var errs []error

	if c.App.Env == "" {
		errs = append(errs, errors.New("APP_ENV is required"))
	} else if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a valid port, got %d", c.App.Port))
	}
	if c.App.LogLevel != "" && !isValidLogLevel(c.App.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.App.LogLevel))
	}

	if c.Provider.Endpoint != "" {
		if u, err := url.Parse(c.Provider.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("PROVIDER_ENDPOINT must be an absolute URL, got %q", c.Provider.Endpoint))
		}
	}
	if c.Provider.Timeout < 0 {
		errs = append(errs, errors.New("PROVIDER_TIMEOUT must not be negative"))
	}

	if c.AuthEnabled() {
		if c.Auth.TokenTTL <= 0 {
			c.Auth.TokenTTL = 15 * time.Minute
		}
		if c.IsProduction() {
			if c.Auth.JWTIssuer == "" {
				errs = append(errs, errors.New("AUTH_JWT_ISSUER is required in production"))
			}
			if c.Auth.JWTAudience == "" {
				errs = append(errs, errors.New("AUTH_JWT_AUDIENCE is required in production"))
			}
		}
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

// AuthEnabled reports whether the notify routes require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func isValidLogLevel(v string) bool {
	switch strings.ToLower(v) {
	case "debug", "info", "warn", "error":
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
