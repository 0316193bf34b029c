package payment

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	FlutterwaveName    = "flutterwave"
	flutterwaveBaseURL = "https://api.flutterwave.com"
)

// Flutterwave verifies transactions through the Flutterwave v3 API. Amounts
// are reported in major units.
type Flutterwave struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *logrus.Logger
}

type flutterwaveVerifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string          `json:"status"`
		TxRef    string          `json:"tx_ref"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		Customer struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"customer"`
	} `json:"data"`
}

// NewFlutterwave creates a Flutterwave provider. An empty baseURL selects
// the public API.
func NewFlutterwave(baseURL, secretKey string, client *http.Client, logger *logrus.Logger) *Flutterwave {
	if baseURL == "" {
		baseURL = flutterwaveBaseURL
	}
	return &Flutterwave{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: client,
		logger:     logger,
	}
}

func (f *Flutterwave) Name() string { return FlutterwaveName }

// Charge confirms that the referenced transaction succeeded for at least the
// requested amount in the requested currency.
func (f *Flutterwave) Charge(ctx context.Context, req Request) (Result, error) {
	if req.Reference == "" {
		return Result{}, ErrMissingReference
	}

	var body flutterwaveVerifyResponse
	endpoint := fmt.Sprintf("%s/v3/transactions/verify_by_reference?tx_ref=%s", f.baseURL, url.QueryEscape(req.Reference))
	code, err := verify(ctx, f.httpClient, endpoint, f.secretKey, &body)
	if err != nil {
		return Result{}, fmt.Errorf("flutterwave verify %s: %w", req.Reference, err)
	}

	log := f.logger.WithFields(logrus.Fields{
		"provider":  FlutterwaveName,
		"reference": req.Reference,
		"status":    body.Data.Status,
	})

	if code != http.StatusOK || body.Status != "success" {
		log.WithField("http_status", code).Warn("Flutterwave rejected verification")
		return closed(req.Reference, "verification rejected: %s", body.Message), nil
	}
	if body.Data.Status != "successful" {
		log.Info("Flutterwave transaction not successful")
		return closed(req.Reference, "transaction %s", body.Data.Status), nil
	}
	if !strings.EqualFold(body.Data.Currency, req.Currency) {
		log.WithField("currency", body.Data.Currency).Warn("Flutterwave currency mismatch")
		return closed(req.Reference, "currency %s does not match %s", body.Data.Currency, req.Currency), nil
	}
	if body.Data.Amount.LessThan(req.Amount) {
		log.WithField("amount", body.Data.Amount.String()).Warn("Flutterwave amount below order total")
		return closed(req.Reference, "paid %s, expected %s", body.Data.Amount, req.Amount), nil
	}

	log.Info("Flutterwave transaction verified")
	return Result{Status: StatusSuccess, Reference: body.Data.TxRef, Message: body.Message}, nil
}
