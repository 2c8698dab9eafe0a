package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DemoAPIKey is NASA's shared, heavily rate-limited key.
const DemoAPIKey = "DEMO_KEY"

// Endpoints holds the upstream base URLs. Every one can be overridden from
// the environment, which is how tests and local proxies redirect traffic.
type Endpoints struct {
	APOD        string
	NEO         string
	Exoplanets  string
	MarsWeather string
	EPIC        string
	SolarWind   string
	KIndex      string
	SpaceAlerts string
}

// Config is built once at startup and shared read-only for the process lifetime.
type Config struct {
	NASAAPIKey     string
	Port           string
	FetchTimeout   time.Duration
	LogLevel       string
	LogFormat      string
	LogFile        string
	AllowedOrigins []string
	Endpoints      Endpoints
}

var defaults = map[string]any{
	"nasa_api_key":     DemoAPIKey,
	"port":             "5000",
	"fetch_timeout":    10 * time.Second,
	"log_level":        "info",
	"log_format":       "text",
	"log_file":         "",
	"allowed_origins":  "*",
	"apod_url":         "https://api.nasa.gov/planetary/apod",
	"neo_url":          "https://api.nasa.gov/neo/rest/v1/feed",
	"exoplanet_url":    "https://exoplanetarchive.ipac.caltech.edu/TAP/sync",
	"mars_weather_url": "https://api.maas2.apollorion.com/",
	"epic_url":         "https://api.nasa.gov/EPIC/api/natural/images",
	"solar_wind_url":   "https://services.swpc.noaa.gov/products/solar-wind/plasma-1-day.json",
	"k_index_url":      "https://services.swpc.noaa.gov/products/noaa-planetary-k-index.json",
	"space_alerts_url": "https://services.swpc.noaa.gov/products/alerts.json",
}

// NewViper returns a viper instance with defaults applied, .env loaded and
// environment variables bound. Callers may bind command-line flags onto it
// before handing it to FromViper.
func NewViper() *viper.Viper {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from .env and the environment.
func Load() (*Config, error) {
	return FromViper(NewViper())
}

// FromViper builds and validates a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		NASAAPIKey:     strings.TrimSpace(v.GetString("nasa_api_key")),
		Port:           strings.TrimSpace(v.GetString("port")),
		FetchTimeout:   v.GetDuration("fetch_timeout"),
		LogLevel:       strings.ToLower(v.GetString("log_level")),
		LogFormat:      strings.ToLower(v.GetString("log_format")),
		LogFile:        v.GetString("log_file"),
		AllowedOrigins: splitList(v.GetString("allowed_origins")),
		Endpoints: Endpoints{
			APOD:        v.GetString("apod_url"),
			NEO:         v.GetString("neo_url"),
			Exoplanets:  v.GetString("exoplanet_url"),
			MarsWeather: v.GetString("mars_weather_url"),
			EPIC:        v.GetString("epic_url"),
			SolarWind:   v.GetString("solar_wind_url"),
			KIndex:      v.GetString("k_index_url"),
			SpaceAlerts: v.GetString("space_alerts_url"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields the server cannot run without.
func (c *Config) Validate() error {
	if c.NASAAPIKey == "" {
		c.NASAAPIKey = DemoAPIKey
	}
	if c.NASAAPIKey == DemoAPIKey {
		slog.Warn("NASA_API_KEY not set, using the shared demo key (30 requests/hour)")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	return nil
}

// ParseLevel maps LOG_LEVEL values onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown LOG_LEVEL %q", s)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
