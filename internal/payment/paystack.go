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
	PaystackName    = "paystack"
	paystackBaseURL = "https://api.paystack.co"
)

// Paystack verifies transactions through the Paystack REST API. Amounts are
// reported in the currency's minor unit.
type Paystack struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *logrus.Logger
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string          `json:"status"`
		Reference string          `json:"reference"`
		Amount    decimal.Decimal `json:"amount"`
		Currency  string          `json:"currency"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

// NewPaystack creates a Paystack provider. An empty baseURL selects the
// public API.
func NewPaystack(baseURL, secretKey string, client *http.Client, logger *logrus.Logger) *Paystack {
	if baseURL == "" {
		baseURL = paystackBaseURL
	}
	return &Paystack{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: client,
		logger:     logger,
	}
}

func (p *Paystack) Name() string { return PaystackName }

// Charge confirms that the referenced transaction succeeded for at least the
// requested amount in the requested currency.
func (p *Paystack) Charge(ctx context.Context, req Request) (Result, error) {
	if req.Reference == "" {
		return Result{}, ErrMissingReference
	}

	var body paystackVerifyResponse
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", p.baseURL, url.PathEscape(req.Reference))
	code, err := verify(ctx, p.httpClient, endpoint, p.secretKey, &body)
	if err != nil {
		return Result{}, fmt.Errorf("paystack verify %s: %w", req.Reference, err)
	}

	log := p.logger.WithFields(logrus.Fields{
		"provider":  PaystackName,
		"reference": req.Reference,
		"status":    body.Data.Status,
	})

	if code != http.StatusOK || !body.Status {
		log.WithField("http_status", code).Warn("Paystack rejected verification")
		return closed(req.Reference, "verification rejected: %s", body.Message), nil
	}
	if body.Data.Status != "success" {
		log.Info("Paystack transaction not successful")
		return closed(req.Reference, "transaction %s", body.Data.Status), nil
	}
	if !strings.EqualFold(body.Data.Currency, req.Currency) {
		log.WithField("currency", body.Data.Currency).Warn("Paystack currency mismatch")
		return closed(req.Reference, "currency %s does not match %s", body.Data.Currency, req.Currency), nil
	}
	expected := req.Amount.Mul(decimal.NewFromInt(100))
	if body.Data.Amount.LessThan(expected) {
		log.WithField("amount", body.Data.Amount.String()).Warn("Paystack amount below order total")
		return closed(req.Reference, "paid %s, expected %s", body.Data.Amount, expected), nil
	}

	log.Info("Paystack transaction verified")
	return Result{Status: StatusSuccess, Reference: body.Data.Reference, Message: body.Message}, nil
}
