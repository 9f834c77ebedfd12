package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
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

	// Scheduling advisor specifics
	Backend        BackendConfig
	Scheduler      SchedulerConfig
	Preferences    PreferencesConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables inbound limiting
}

// BackendConfig points at the REST API that serves recommendations and owns tasks.
type BackendConfig struct {
	URL             string
	AccessToken     string
	Timeout         time.Duration
	RateLimitPerSec float64
	Burst           int
}

type SchedulerConfig struct {
	ConfidenceThreshold float64
	MaxSlots            int
	MaxPayloadSlots     int
}

type PreferencesConfig struct {
	Timezone               string
	Clock24h               bool
	DefaultDurationMinutes int
}

// GoogleCalendarConfig enables the calendar mirror when CredentialsPath is set.
type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Enabled reports whether committed schedules should be mirrored.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

var (
	ErrMissingBackendURL = errors.New("backend.url is required")
	ErrInvalidThreshold  = errors.New("scheduler.confidence_threshold must be within (0, 1]")
	ErrInvalidMaxSlots   = errors.New("scheduler.max_slots must be at least 1")
	ErrInvalidTimezone   = errors.New("preferences.timezone is not a valid IANA zone")
)

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Backend
	cfg.Backend.URL = v.GetString("backend.url")
	cfg.Backend.AccessToken = v.GetString("backend.access_token")
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")
	cfg.Backend.RateLimitPerSec = v.GetFloat64("backend.rate_limit_per_sec")
	cfg.Backend.Burst = v.GetInt("backend.burst")

	// Scheduling policy
	cfg.Scheduler.ConfidenceThreshold = v.GetFloat64("scheduler.confidence_threshold")
	cfg.Scheduler.MaxSlots = v.GetInt("scheduler.max_slots")
	cfg.Scheduler.MaxPayloadSlots = v.GetInt("scheduler.max_payload_slots")

	cfg.Preferences.Timezone = v.GetString("preferences.timezone")
	cfg.Preferences.Clock24h = v.GetBool("preferences.clock_24h")
	cfg.Preferences.DefaultDurationMinutes = v.GetInt("preferences.default_duration_minutes")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the advisor cannot run without.
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return ErrMissingBackendURL
	}
	if c.Scheduler.ConfidenceThreshold <= 0 || c.Scheduler.ConfidenceThreshold > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, c.Scheduler.ConfidenceThreshold)
	}
	if c.Scheduler.MaxSlots < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxSlots, c.Scheduler.MaxSlots)
	}
	if _, err := c.Preferences.Location(); err != nil {
		return err
	}
	return nil
}

// Location loads the preference timezone.
func (p PreferencesConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, p.Timezone, err)
	}
	return loc, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.rate_limit_per_sec", 5)
	v.SetDefault("backend.burst", 5)

	v.SetDefault("scheduler.confidence_threshold", 0.30)
	v.SetDefault("scheduler.max_slots", 4)
	v.SetDefault("scheduler.max_payload_slots", 10)

	v.SetDefault("preferences.timezone", "UTC")
	v.SetDefault("preferences.clock_24h", false)
	v.SetDefault("preferences.default_duration_minutes", 30)

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}
