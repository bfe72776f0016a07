package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

var validEnvs = map[string]bool{
	"local": true,
	"alpha": true,
	"beta":  true,
	"prod":  true,
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	AuthModeNone = "none"
	AuthModeJWT  = "jwt"
)

type Config struct {
	ServerPort         string
	AppEnv             string
	LogLevel           string
	StorageDriver      string
	DB                 DBConfig
	CORSAllowedOrigins []string
	Auth               AuthConfig
}

// IsLocal reports whether the server runs in local development, which
// enables any-origin CORS and the admin reset endpoint.
func (c Config) IsLocal() bool {
	return c.AppEnv == "local"
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q: %w", c.ServerPort, err)
	}
	if !validEnvs[c.AppEnv] {
		return fmt.Errorf("invalid APP_ENV %q: must be one of local, alpha, beta, prod", c.AppEnv)
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DB.Host == "" {
			return fmt.Errorf("DB_HOST is required when STORAGE_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: must be memory or postgres", c.StorageDriver)
	}

	switch c.Auth.Mode {
	case AuthModeNone:
		if c.AppEnv == "prod" {
			return fmt.Errorf("AUTH_MODE=none must not be used in prod environment")
		}
	case AuthModeJWT:
		if c.Auth.JWKSURL == "" {
			return fmt.Errorf("JWT_JWKS_URL is required when AUTH_MODE is jwt")
		}
		if c.Auth.Issuer == "" {
			return fmt.Errorf("JWT_ISSUER is required when AUTH_MODE is jwt")
		}
		if c.Auth.Audience == "" {
			return fmt.Errorf("JWT_AUDIENCE is required when AUTH_MODE is jwt")
		}
	default:
		return fmt.Errorf("invalid AUTH_MODE %q: must be none or jwt", c.Auth.Mode)
	}
	return nil
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     d.Name,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(d.SSLMode)),
	}
	return u.String()
}

type AuthConfig struct {
	Mode     string
	JWKSURL  string
	Issuer   string
	Audience string
}

func Load() Config {
	return Config{
		ServerPort:    envOrDefault("SERVER_PORT", "8080"),
		AppEnv:        envOrDefault("APP_ENV", "local"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		StorageDriver: strings.ToLower(envOrDefault("STORAGE_DRIVER", StorageMemory)),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     envOrDefault("DB_PORT", "5432"),
			User:     envOrDefault("DB_USER", "todo"),
			Password: envOrDefault("DB_PASSWORD", "todo"),
			Name:     envOrDefault("DB_NAME", "todo"),
			SSLMode:  envOrDefault("DB_SSLMODE", "disable"),
		},
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Auth: AuthConfig{
			Mode:     strings.ToLower(envOrDefault("AUTH_MODE", AuthModeNone)),
			JWKSURL:  os.Getenv("JWT_JWKS_URL"),
			Issuer:   os.Getenv("JWT_ISSUER"),
			Audience: os.Getenv("JWT_AUDIENCE"),
		},
	}
}

// ClientConfig holds defaults for the command-line client.
type ClientConfig struct {
	APIURL string
	Token  string
}

func LoadClient() ClientConfig {
	return ClientConfig{
		APIURL: envOrDefault("TODO_API_URL", "http://localhost:8080"),
		Token:  os.Getenv("TODO_API_TOKEN"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
