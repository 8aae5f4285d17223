package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	DriverSupabase = "supabase"
	DriverMongo    = "mongo"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Env             string        `mapstructure:"env"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig selects the record store
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// MongoConfig holds MongoDB connection settings
type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// CORSConfig holds the browser origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// AnalyticsConfig holds analysis windows and limits
type AnalyticsConfig struct {
	OverviewMonths     int `mapstructure:"overview_months"`
	PremiumMonths      int `mapstructure:"premium_months"`
	MaxPremiumMonths   int `mapstructure:"max_premium_months"`
	PredictionCycles   int `mapstructure:"prediction_cycles"`
	PeriodHistoryLimit int `mapstructure:"period_history_limit"`
	MoodWindowDays     int `mapstructure:"mood_window_days"`
}

// IsProduction reports whether the server runs with production settings
func (s ServerConfig) IsProduction() bool {
	return s.Env == "production"
}

// Load reads configuration from a .env file, environment variables and an
// optional config.yaml, in increasing order of precedence for the env vars
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SYMMUSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Non-prefixed names shared with the rest of the stack
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("supabase.url", "SUPABASE_URL")
	_ = v.BindEnv("supabase.service_key", "SUPABASE_SERVICE_KEY")
	_ = v.BindEnv("mongo.uri", "MONGODB_URI")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("storage.driver", DriverSupabase)

	v.SetDefault("mongo.database", "symmuse")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("ratelimit.requests", 100)
	v.SetDefault("ratelimit.window", time.Minute)

	v.SetDefault("analytics.overview_months", 6)
	v.SetDefault("analytics.premium_months", 12)
	v.SetDefault("analytics.max_premium_months", 24)
	v.SetDefault("analytics.prediction_cycles", 3)
	v.SetDefault("analytics.period_history_limit", 12)
	v.SetDefault("analytics.mood_window_days", 30)
}

// Validate checks that auth and the selected storage driver are fully configured.
// Supabase is always required since it verifies access tokens.
func (c *Config) Validate() error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.Supabase.ServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}

	switch c.Storage.Driver {
	case DriverSupabase:
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGODB_URI is required")
		}
		if c.Mongo.Database == "" {
			return fmt.Errorf("mongo.database is required")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	a := c.Analytics
	if a.OverviewMonths < 1 || a.PremiumMonths < 1 || a.MaxPremiumMonths < a.PremiumMonths {
		return fmt.Errorf("invalid analytics windows: overview=%d premium=%d max=%d",
			a.OverviewMonths, a.PremiumMonths, a.MaxPremiumMonths)
	}
	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid rate limit: %d per %s", c.RateLimit.Requests, c.RateLimit.Window)
	}
	return nil
}
