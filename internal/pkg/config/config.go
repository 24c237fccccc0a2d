package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, API location, etc.)
// - default: Values common across all environments (timezone, cookie names, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Gateway   GatewayConfig
	CORS      CORSConfig
	Log       LogConfig
	Cookie    CookieConfig
	Session   SessionConfig
	Notify    NotifyConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// GatewayConfig locates the remote hotel API. Each resource may live behind its own
// base URL; an empty resource URL falls back to BaseURL.
type GatewayConfig struct {
	BaseURL         string `envconfig:"API_BASE_URL" required:"true"`
	GuestsURL       string `envconfig:"API_GUESTS_URL"`
	RoomsURL        string `envconfig:"API_ROOMS_URL"`
	ReservationsURL string `envconfig:"API_RESERVATIONS_URL"`
	AccountsURL     string `envconfig:"API_ACCOUNTS_URL"`
	LoginURL        string `envconfig:"API_LOGIN_URL"`
	ServiceName     string `envconfig:"API_TRACE_NAME" default:"hotel-api"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:4200,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Mexico_City"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type CookieConfig struct {
	Domain   string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string        `envconfig:"COOKIE_SAMESITE" default:"Lax"`
	TokenTTL time.Duration `envconfig:"COOKIE_TOKEN_TTL" default:"8h"`
}

type SessionConfig struct {
	IdleTimeout   time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"30m"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
}

// TelemetryConfig configures trace export. An empty endpoint keeps spans in process.
type TelemetryConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"false"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"hotel-console"`
}

type NotifyConfig struct {
	AutoDismiss time.Duration `envconfig:"NOTIFY_AUTO_DISMISS" default:"2s"`
}

// URLFor returns the configured base URL of a resource, or BaseURL joined with path.
func (c GatewayConfig) URLFor(specific, path string) string {
	if specific != "" {
		return specific
	}
	return c.BaseURL + path
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Session.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c SessionConfig) validate() error {
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive, got %s", c.IdleTimeout)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Gateway: GatewayConfig{
			BaseURL:     "http://localhost:18082/api",
			ServiceName: "hotel-api-test",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:4200"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Mexico_City",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -21600,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
			TokenTTL: time.Hour,
		},
		Session: SessionConfig{
			IdleTimeout:   30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Notify: NotifyConfig{
			AutoDismiss: 2 * time.Second,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "hotel-console-test",
		},
	}
}
