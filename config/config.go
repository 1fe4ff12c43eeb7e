// Package config loads settings from a YAML file with environment
// variable overrides, so a container can tweak a single knob without
// shipping a new file.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Booking   BookingConfig   `mapstructure:"booking"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" envconfig:"SERVER_PORT"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" envconfig:"SERVER_REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" envconfig:"SERVER_SHUTDOWN_TIMEOUT"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret" envconfig:"JWT_SECRET"`
	Expiry time.Duration `mapstructure:"expiry" envconfig:"JWT_EXPIRY"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" envconfig:"RATE_LIMIT_RPS"`
	Burst int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" envconfig:"CORS_ALLOWED_ORIGINS"`
}

type CalendarConfig struct {
	SlotUnit float64 `mapstructure:"slot_unit" envconfig:"CALENDAR_SLOT_UNIT"`
}

type BookingConfig struct {
	RefundCreditOnCancel bool `mapstructure:"refund_credit_on_cancel" envconfig:"BOOKING_REFUND_CREDIT_ON_CANCEL"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host" envconfig:"SMTP_HOST"`
	Port     int    `mapstructure:"port" envconfig:"SMTP_PORT"`
	Username string `mapstructure:"username" envconfig:"SMTP_USERNAME"`
	Password string `mapstructure:"password" envconfig:"SMTP_PASSWORD"`
	From     string `mapstructure:"from" envconfig:"SMTP_FROM"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace" envconfig:"METRICS_NAMESPACE"`
}

// Load reads the YAML file at path (optional), then applies SALON_*
// environment overrides on top.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.request_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("jwt.secret", "dev-secret-change-me")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("rate_limit.rps", 20.0)
	v.SetDefault("rate_limit.burst", 40)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("calendar.slot_unit", 3.0)
	v.SetDefault("booking.refund_credit_on_cancel", false)
	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "no-reply@bellezapura.com")
	v.SetDefault("metrics.namespace", "salon")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := envconfig.Process("salon", &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return &cfg, nil
}
