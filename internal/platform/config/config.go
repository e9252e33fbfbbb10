package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const DefaultAuthorizedEmail = "testingcheckuser1234@gmail.com"

type Config struct {
	API  APIConfig  `toml:"api"`
	Auth AuthConfig `toml:"auth"`
	Log  LogConfig  `toml:"log"`
	UI   UIConfig   `toml:"ui"`
}

type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type AuthConfig struct {
	AuthorizedEmail string `toml:"authorized_email"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type UIConfig struct {
	GlamourStyle string `toml:"glamour_style"`
}

// Options carries the command-line overrides. Empty fields are ignored.
type Options struct {
	ConfigFile string
	APIURL     string
}

// Load resolves configuration from defaults, an optional TOML file, a .env
// file, the process environment and finally the command-line options.
func Load(opts Options) (Config, error) {
	cfg := defaultConfig()

	_ = godotenv.Load()

	path := opts.ConfigFile
	if path == "" {
		path = getEnv("BRAIN_CONFIG_FILE", "configs/brain.toml")
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
		}
	} else if opts.ConfigFile != "" {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	overrideByEnv(&cfg)
	if opts.APIURL != "" {
		cfg.API.BaseURL = opts.APIURL
	}
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api base url is required (set BRAIN_API_URL or --api-url)")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api base url must be an absolute http(s) url, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api timeout must be non-negative")
	}
	if c.Auth.AuthorizedEmail == "" {
		return fmt.Errorf("authorized email is required")
	}
	return nil
}

// Timeout is zero when requests should never time out.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        "http://127.0.0.1:8000",
			TimeoutSeconds: 0,
		},
		Auth: AuthConfig{
			AuthorizedEmail: DefaultAuthorizedEmail,
		},
		Log: LogConfig{
			File:  "brain.log",
			Level: "info",
		},
		UI: UIConfig{
			GlamourStyle: "dark",
		},
	}
}

func overrideByEnv(cfg *Config) {
	// NEXT_PUBLIC_API_URL is what the web deployment already exports.
	cfg.API.BaseURL = getEnv("NEXT_PUBLIC_API_URL", cfg.API.BaseURL)
	cfg.API.BaseURL = getEnv("BRAIN_API_URL", cfg.API.BaseURL)
	cfg.API.TimeoutSeconds = getEnvAsInt("BRAIN_API_TIMEOUT_SECONDS", cfg.API.TimeoutSeconds)
	cfg.Auth.AuthorizedEmail = getEnv("BRAIN_AUTHORIZED_EMAIL", cfg.Auth.AuthorizedEmail)
	cfg.Log.File = getEnv("BRAIN_LOG_FILE", cfg.Log.File)
	cfg.Log.Level = getEnv("BRAIN_LOG_LEVEL", cfg.Log.Level)
	cfg.UI.GlamourStyle = getEnv("BRAIN_GLAMOUR_STYLE", cfg.UI.GlamourStyle)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
