package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	MongoDB   MongoDBConfig   `mapstructure:"mongodb"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
	// TimeZone is the IANA zone used to interpret date-only query parameters.
	TimeZone string `mapstructure:"timezone"`
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connectTimeout"`
	ConnectRetries int           `mapstructure:"connectRetries"`
}

// JWTConfig holds JWT-specific configuration. An empty secret disables
// bearer-token identities.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// RateLimitConfig bounds lead submissions per client IP
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond"`
	Burst             int     `mapstructure:"burst"`
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig loads configuration from a .env file, an optional config.yaml
// and environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if cfg.MongoDB.URI == "" {
		return nil, fmt.Errorf("mongodb.uri (MONGODB_URI) is required")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("invalid server.timezone %q: %w", cfg.Server.TimeZone, err)
	}

	return &cfg, nil
}

// Location resolves the configured time zone. An empty zone means the
// process-local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Server.TimeZone == "" || c.Server.TimeZone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Server.TimeZone)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "4000")
	v.SetDefault("server.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("server.timezone", "Local")
	v.SetDefault("mongodb.database", "leads-app")
	v.SetDefault("mongodb.connectTimeout", 20*time.Second)
	v.SetDefault("mongodb.connectRetries", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerSecond", 20.0)
	v.SetDefault("rateLimit.burst", 40)
	v.SetDefault("metrics.enabled", true)
}

// bindEnvs maps the conventional flat variable names onto config keys.
func bindEnvs(v *viper.Viper) {
	bindings := map[string][]string{
		"server.port":      {"PORT", "SERVER_PORT"},
		"server.timezone":  {"TZ_NAME", "SERVER_TIMEZONE"},
		"mongodb.uri":      {"MONGODB_URI", "MONGO_URI"},
		"mongodb.database": {"MONGODB_DATABASE"},
		"jwt.secret":       {"JWT_SECRET"},
		"log.level":        {"LOG_LEVEL"},
		"log.file":         {"LOG_FILE"},
	}
	for key, envs := range bindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}
}
