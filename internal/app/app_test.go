package app_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lumina/internal/app"
	"lumina/internal/config"
	"lumina/internal/payment"
	"lumina/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, store repositories.SlotStore) *app.App {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		AdminPasscode:   "pass",
		JWTSecret:       "secret",
		PaymentCurrency: "USD",
		DefaultMaxPrice: decimal.NewFromInt(5000),
	}
	a, err := app.New(context.Background(), cfg, logger, app.Options{
		Store:    store,
		Provider: payment.NewFlutterwave("http://127.0.0.1:1", "sk", http.DefaultClient, logger),
	})
	require.NoError(t, err)
	return a
}

func TestHealth(t *testing.T) {
	a := newApp(t, repositories.NewMemorySlotStore())

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["events"])
	assert.Equal(t, payment.FlutterwaveName, body["provider"])
}

func TestMetricsEndpoint(t *testing.T) {
	a := newApp(t, repositories.NewMemorySlotStore())

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "go_goroutines")
}

func TestNewRejectsCorruptStore(t *testing.T) {
	store := repositories.NewMemorySlotStore()
	require.NoError(t, store.Save(context.Background(), repositories.SlotOrders, []byte(`{`)))

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	_, err := app.New(context.Background(), &config.Config{AdminPasscode: "p", JWTSecret: "s"}, logger, app.Options{
		Store:    store,
		Provider: payment.NewPaystack("", "", http.DefaultClient, logger),
	})
	assert.Error(t, err)
}

func TestNewRequiresCollaborators(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	_, err := app.New(context.Background(), &config.Config{}, logger, app.Options{})
	assert.Error(t, err)
}

func TestSweepSessionsStopsWithContext(t *testing.T) {
	a := newApp(t, repositories.NewMemorySlotStore())
	a.Sessions.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.SweepSessions(ctx, 10*time.Millisecond, time.Hour)
		close(done)
	}()
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
	assert.Equal(t, 1, a.Sessions.Len())
}

func TestPricesAreServedAsJSONNumbers(t *testing.T) {
	a := newApp(t, repositories.NewMemorySlotStore())

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products/s1", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Regexp(t, `"price":[0-9]`, string(raw))
}
