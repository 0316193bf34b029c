package config_test

import (
	"testing"

	"lumina/internal/config"
	"lumina/internal/payment"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "lumina.db", cfg.DatabaseDSN)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, payment.PaystackName, cfg.PaymentProvider)
	assert.Equal(t, "USD", cfg.PaymentCurrency)
	assert.Equal(t, "gemini-3-flash-preview", cfg.GeminiModel)
	assert.Equal(t, "5000", cfg.DefaultMaxPrice.String())
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "Memory")
	t.Setenv("PAYMENT_PROVIDER", "flutterwave")
	t.Setenv("PAYMENT_CURRENCY", "ngn")
	t.Setenv("FLUTTERWAVE_SECRET_KEY", "FLWSECK-test")
	t.Setenv("FLUTTERWAVE_BASE_URL", "http://flw.local")
	t.Setenv("DEFAULT_MAX_PRICE", "2500.50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, cfg.DatabaseDriver)
	assert.Equal(t, "NGN", cfg.PaymentCurrency)
	assert.Equal(t, "2500.5", cfg.DefaultMaxPrice.String())
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)

	pc := cfg.PaymentConfig()
	assert.Equal(t, payment.FlutterwaveName, pc.Provider)
	assert.Equal(t, "FLWSECK-test", pc.SecretKey)
	assert.Equal(t, "http://flw.local", pc.BaseURL)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	cases := map[string][2]string{
		"driver":    {"DATABASE_DRIVER", "mongo"},
		"provider":  {"PAYMENT_PROVIDER", "stripe"},
		"max price": {"DEFAULT_MAX_PRICE", "cheap"},
		"negative":  {"DEFAULT_MAX_PRICE", "-1"},
		"log level": {"LOG_LEVEL", "loud"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
