// Package payment verifies charges with the hosted payment gateways. Every
// gateway is reached through the same Provider contract.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Status is the outcome of a charge.
type Status int

const (
	// StatusClosed covers declines, cancellations and anything short of success.
	StatusClosed Status = iota
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Request describes the charge the customer completed in the gateway widget.
type Request struct {
	Reference string
	Amount    decimal.Decimal
	Currency  string
	Email     string
	Name      string
}

// Result is what the gateway reported for a Request.
type Result struct {
	Status    Status
	Reference string
	Message   string
}

// Provider is a payment gateway.
type Provider interface {
	Name() string
	Charge(ctx context.Context, req Request) (Result, error)
}

// ErrMissingReference is returned when a request carries no transaction reference.
var ErrMissingReference = errors.New("payment reference is required")

// Config selects and configures a Provider.
type Config struct {
	Provider   string
	SecretKey  string
	BaseURL    string
	HTTPClient *http.Client
}

// New builds the provider named by cfg.Provider.
func New(cfg Config, logger *logrus.Logger) (Provider, error) {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	switch strings.ToLower(cfg.Provider) {
	case PaystackName:
		return NewPaystack(cfg.BaseURL, cfg.SecretKey, client, logger), nil
	case FlutterwaveName:
		return NewFlutterwave(cfg.BaseURL, cfg.SecretKey, client, logger), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Provider)
	}
}

// verify performs an authenticated GET against a gateway and decodes the
// JSON body into out.
func verify(ctx context.Context, client *http.Client, url, secret string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+secret)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func closed(reference, format string, args ...interface{}) Result {
	return Result{Status: StatusClosed, Reference: reference, Message: fmt.Sprintf(format, args...)}
}
