// Package config loads the service settings from the environment.
package config

import (
	"fmt"
	"strings"

	"lumina/internal/payment"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Supported DATABASE_DRIVER values.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds every setting of the service.
type Config struct {
	AppPort string

	DatabaseDriver string
	DatabaseDSN    string

	RabbitMQURL string

	AdminPasscode string
	JWTSecret     string

	PaymentProvider      string
	PaymentCurrency      string
	PaystackSecretKey    string
	PaystackBaseURL      string
	FlutterwaveSecretKey string
	FlutterwaveBaseURL   string

	GeminiAPIKey string
	GeminiModel  string

	DefaultMaxPrice decimal.Decimal
	LogLevel        logrus.Level
}

// Load reads the configuration from environment variables, falling back
// to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "lumina.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("ADMIN_PASSCODE", "lumina-admin")
	v.SetDefault("JWT_SECRET", "lumina-dev-secret")
	v.SetDefault("PAYMENT_PROVIDER", payment.PaystackName)
	v.SetDefault("PAYMENT_CURRENCY", "USD")
	v.SetDefault("PAYSTACK_SECRET_KEY", "")
	v.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	v.SetDefault("FLUTTERWAVE_SECRET_KEY", "")
	v.SetDefault("FLUTTERWAVE_BASE_URL", "https://api.flutterwave.com")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	v.SetDefault("DEFAULT_MAX_PRICE", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	maxPrice, err := decimal.NewFromString(v.GetString("DEFAULT_MAX_PRICE"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_MAX_PRICE: %w", err)
	}
	if maxPrice.IsNegative() {
		return nil, fmt.Errorf("invalid DEFAULT_MAX_PRICE: must not be negative")
	}

	level, err := logrus.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		AppPort:              v.GetString("APP_PORT"),
		DatabaseDriver:       strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:          v.GetString("DATABASE_DSN"),
		RabbitMQURL:          v.GetString("RABBITMQ_URL"),
		AdminPasscode:        v.GetString("ADMIN_PASSCODE"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		PaymentProvider:      strings.ToLower(v.GetString("PAYMENT_PROVIDER")),
		PaymentCurrency:      strings.ToUpper(v.GetString("PAYMENT_CURRENCY")),
		PaystackSecretKey:    v.GetString("PAYSTACK_SECRET_KEY"),
		PaystackBaseURL:      v.GetString("PAYSTACK_BASE_URL"),
		FlutterwaveSecretKey: v.GetString("FLUTTERWAVE_SECRET_KEY"),
		FlutterwaveBaseURL:   v.GetString("FLUTTERWAVE_BASE_URL"),
		GeminiAPIKey:         v.GetString("GEMINI_API_KEY"),
		GeminiModel:          v.GetString("GEMINI_MODEL"),
		DefaultMaxPrice:      maxPrice,
		LogLevel:             level,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	switch c.PaymentProvider {
	case payment.PaystackName, payment.FlutterwaveName:
	default:
		return fmt.Errorf("unsupported PAYMENT_PROVIDER %q", c.PaymentProvider)
	}
	if c.AdminPasscode == "" {
		return fmt.Errorf("ADMIN_PASSCODE must not be empty")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	return nil
}

// PaymentConfig returns the settings of the selected payment provider.
func (c *Config) PaymentConfig() payment.Config {
	pc := payment.Config{Provider: c.PaymentProvider}
	switch c.PaymentProvider {
	case payment.FlutterwaveName:
		pc.SecretKey, pc.BaseURL = c.FlutterwaveSecretKey, c.FlutterwaveBaseURL
	default:
		pc.SecretKey, pc.BaseURL = c.PaystackSecretKey, c.PaystackBaseURL
	}
	return pc
}
