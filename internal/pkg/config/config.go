package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	API         APIConfig
	Session     SessionConfig
	Reservation ReservationConfig
	Admin       AdminConfig
	CORS        CORSConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// APIConfig points at the external parking REST API.
type APIConfig struct {
	BaseURL string        `envconfig:"PARKING_API_BASE_URL" default:"http://localhost:8081/api"`
	Timeout time.Duration `envconfig:"PARKING_API_TIMEOUT" default:"10s"`
}

type SessionConfig struct {
	Backend string `envconfig:"SESSION_BACKEND" default:"sqlite"`
	DBPath  string `envconfig:"SESSION_DB_PATH" default:"./data/session.db"`
}

type ReservationConfig struct {
	TimeZone             string `envconfig:"RESERVATION_TIMEZONE" default:"Africa/Casablanca"`
	DefaultDurationHours int    `envconfig:"RESERVATION_DEFAULT_DURATION_HOURS" default:"2"`
	// FlowIdleTTL drops reservation dialogs nobody touched for that long.
	FlowIdleTTL time.Duration `envconfig:"RESERVATION_FLOW_IDLE_TTL" default:"30m"`
}

type AdminConfig struct {
	StatsConcurrency int `envconfig:"ADMIN_STATS_CONCURRENCY" default:"4"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Casablanca"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// Location resolves the reservation time zone, falling back to UTC for unknown names.
func (c ReservationConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Reservation.DefaultDurationHours <= 0 {
		return Config{}, fmt.Errorf("RESERVATION_DEFAULT_DURATION_HOURS must be positive, got %d", cfg.Reservation.DefaultDurationHours)
	}
	if cfg.Reservation.FlowIdleTTL <= 0 {
		return Config{}, fmt.Errorf("RESERVATION_FLOW_IDLE_TTL must be positive, got %s", cfg.Reservation.FlowIdleTTL)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		API: APIConfig{
			BaseURL: "http://localhost:18081/api",
			Timeout: 2 * time.Second,
		},
		Session: SessionConfig{
			Backend: "memory",
		},
		Reservation: ReservationConfig{
			TimeZone:             "UTC",
			DefaultDurationHours: 2,
			FlowIdleTTL:          30 * time.Minute,
		},
		Admin: AdminConfig{
			StatsConcurrency: 2,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
