package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task store and scheduling
	Storage        StorageConfig
	Timezone       string
	Voice          VoiceConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies may set X-Forwarded-For. Empty trusts none, so the
	// client IP is always the peer address.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// StorageConfig selects the key-value backend holding the task collection.
type StorageConfig struct {
	Driver string // memory, file or sqlite
	Path   string // directory for file, database file for sqlite
	Key    string
}

type VoiceConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

// GoogleCalendarConfig enables mirroring new tasks as calendar events when
// CredentialsPath is set.
type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	EventDuration   time.Duration
}

var validDrivers = map[string]bool{"memory": true, "file": true, "sqlite": true}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load reading an explicit config file instead of searching.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Task store and scheduling
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Storage.Key = v.GetString("storage.key")
	cfg.Timezone = v.GetString("timezone")
	cfg.Voice.SessionTTL = v.GetDuration("voice.session_ttl")
	cfg.Voice.MaxSessions = v.GetInt("voice.max_sessions")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.EventDuration = v.GetDuration("google_calendar.event_duration")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if !validDrivers[c.Storage.Driver] {
		return fmt.Errorf("storage.driver: unknown driver %q (want memory, file or sqlite)", c.Storage.Driver)
	}
	if c.Storage.Driver != "memory" && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for the %s driver", c.Storage.Driver)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if c.Voice.SessionTTL <= 0 {
		return fmt.Errorf("voice.session_ttl must be positive, got %s", c.Voice.SessionTTL)
	}
	if c.Voice.MaxSessions <= 0 {
		return fmt.Errorf("voice.max_sessions must be positive, got %d", c.Voice.MaxSessions)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.trusted_proxies", []string{})
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", "./data")
	v.SetDefault("storage.key", "tasks")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("voice.session_ttl", "30m")
	v.SetDefault("voice.max_sessions", 1024)

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.event_duration", "1h")
}
