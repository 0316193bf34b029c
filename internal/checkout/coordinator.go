// Package checkout drives a cart through identification and payment to a
// recorded order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"lumina/internal/cart"
	"lumina/internal/metrics"
	"lumina/internal/models"
	"lumina/internal/payment"
	"lumina/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// State is a step of the checkout flow.
type State int

const (
	StateBrowsing State = iota
	StateIdentification
	StatePayment
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateIdentification:
		return "identification"
	case StatePayment:
		return "payment"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{StateBrowsing, StateIdentification, StatePayment, StateConfirmed} {
		if string(text) == candidate.String() {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown checkout state %q", string(text))
}

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrWrongState          = errors.New("checkout is not at the required step")
	ErrPaymentInProgress   = errors.New("payment already in progress")
	ErrPaymentNotCompleted = errors.New("payment not completed")
)

// ValidationError reports missing customer details.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return "invalid customer details: " + e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// Customer identifies the buyer. Only presence is checked.
type Customer struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// OrderRecorder persists a completed order.
type OrderRecorder interface {
	Record(ctx context.Context, order *models.Order) error
}

// Config holds the collaborators shared by every coordinator.
type Config struct {
	Provider payment.Provider
	Recorder OrderRecorder
	Currency string
	Logger   *logrus.Logger
	Metrics  *metrics.Metrics
	Now      func() time.Time
	NewID    func() string
}

// Status is a point-in-time view of a coordinator.
type Status struct {
	State    State           `json:"state"`
	Customer Customer        `json:"customer"`
	Paying   bool            `json:"paying"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
	Order    *models.Order   `json:"order,omitempty"`
}

// Coordinator is the checkout state machine of one session.
type Coordinator struct {
	cfg      Config
	cart     *cart.Cart
	validate *validator.Validate

	mu       sync.Mutex
	state    State
	customer Customer
	paying   bool
	order    *models.Order
}

// New creates a coordinator for c.
func New(c *cart.Cart, cfg Config) *Coordinator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = func() string { return uuid.New().String() }
	}
	return &Coordinator{
		cfg:      cfg,
		cart:     c,
		validate: validation.New(),
	}
}

// Status reports the current step.
func (co *Coordinator) Status() Status {
	co.mu.Lock()
	defer co.mu.Unlock()
	return Status{
		State:    co.state,
		Customer: co.customer,
		Paying:   co.paying,
		Total:    co.cart.Total(),
		Currency: co.cfg.Currency,
		Order:    co.order,
	}
}

// Paying reports whether a payment call is outstanding.
func (co *Coordinator) Paying() bool {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.paying
}

// MutateCart applies fn to the cart unless a payment is outstanding. The
// paying check and fn run under the coordinator's lock.
func (co *Coordinator) MutateCart(fn func(*cart.Cart)) error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.paying {
		return ErrPaymentInProgress
	}
	fn(co.cart)
	return nil
}

// Begin enters identification. It is refused, without a state change, when
// the cart is empty.
func (co *Coordinator) Begin() error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.paying {
		return ErrPaymentInProgress
	}
	if co.cart.Len() == 0 {
		return ErrEmptyCart
	}
	co.state = StateIdentification
	co.customer = Customer{}
	co.order = nil
	return nil
}

// Identify records the buyer and moves to payment.
func (co *Coordinator) Identify(customer Customer) error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.paying {
		return ErrPaymentInProgress
	}
	if co.state != StateIdentification && co.state != StatePayment {
		return ErrWrongState
	}
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)
	if err := co.validate.Struct(customer); err != nil {
		return &ValidationError{Err: err}
	}
	co.customer = customer
	co.state = StatePayment
	return nil
}

// Cancel records that the customer closed the payment widget. The state
// stays at payment and no order is created.
func (co *Coordinator) Cancel() error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.state != StatePayment {
		return ErrWrongState
	}
	co.cfg.Logger.WithField("customer_email", co.customer.Email).Info("Payment closed by customer")
	co.cfg.Metrics.ObservePayment(co.cfg.Provider.Name(), "cancelled")
	return nil
}

// Pay asks the provider to confirm the charge identified by reference. On
// success the order is recorded, the cart cleared and the checkout
// confirmed. Any other outcome leaves the state, the cart and the ledger
// untouched.
func (co *Coordinator) Pay(ctx context.Context, reference string) (*models.Order, error) {
	co.mu.Lock()
	if co.paying {
		co.mu.Unlock()
		return nil, ErrPaymentInProgress
	}
	if co.state != StatePayment {
		co.mu.Unlock()
		return nil, ErrWrongState
	}
	lines := co.cart.Lines()
	if len(lines) == 0 {
		co.mu.Unlock()
		return nil, ErrEmptyCart
	}
	customer := co.customer
	co.paying = true
	co.mu.Unlock()

	defer func() {
		co.mu.Lock()
		co.paying = false
		co.mu.Unlock()
	}()

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}

	provider := co.cfg.Provider
	log := co.cfg.Logger.WithFields(logrus.Fields{
		"provider":  provider.Name(),
		"reference": reference,
		"total":     total.String(),
	})

	res, err := provider.Charge(ctx, payment.Request{
		Reference: reference,
		Amount:    total,
		Currency:  co.cfg.Currency,
		Email:     customer.Email,
		Name:      customer.Name,
	})
	if err != nil {
		log.WithError(err).Warn("Payment provider call failed")
		co.cfg.Metrics.ObservePayment(provider.Name(), "error")
		return nil, fmt.Errorf("%w: %w", ErrPaymentNotCompleted, err)
	}
	if res.Status != payment.StatusSuccess {
		log.WithField("message", res.Message).Info("Payment closed without success")
		co.cfg.Metrics.ObservePayment(provider.Name(), res.Status.String())
		return nil, fmt.Errorf("%w: %s", ErrPaymentNotCompleted, res.Message)
	}
	co.cfg.Metrics.ObservePayment(provider.Name(), res.Status.String())

	order := &models.Order{
		ID:               co.cfg.NewID(),
		CustomerName:     customer.Name,
		CustomerEmail:    customer.Email,
		Items:            lines,
		Total:            total,
		Currency:         co.cfg.Currency,
		CreatedAt:        co.cfg.Now().UTC(),
		Status:           models.OrderStatusCompleted,
		PaymentMethod:    provider.Name(),
		PaymentReference: reference,
	}
	if err := co.cfg.Recorder.Record(ctx, order); err != nil {
		log.WithError(err).Error("Payment succeeded but the order could not be recorded")
		return nil, fmt.Errorf("record order: %w", err)
	}

	co.cart.Clear()

	co.mu.Lock()
	co.state = StateConfirmed
	co.order = order
	co.mu.Unlock()

	log.WithField("order_id", order.ID).Info("Checkout confirmed")
	return order, nil
}
