// Package gifts provides the gift-card catalog and a simulated checkout.
// Data is static and delays are artificial: there is no real inventory,
// payment processing, or fulfilment behind this service.
package gifts

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmathew/go-giftsmart/internal/config"
	"github.com/dmathew/go-giftsmart/internal/recur"
)

// OrderStatus tracks a simulated order through its lifecycle.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusDelivered  OrderStatus = "delivered"
	StatusFailed     OrderStatus = "failed"
)

// DisplayName is the user-facing label for the status.
func (s OrderStatus) DisplayName() string {
	switch s {
	case StatusProcessing:
		return "Processing"
	case StatusConfirmed:
		return "Confirmed"
	case StatusDelivered:
		return "Delivered"
	case StatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}

// Order is a confirmed simulated purchase.
type Order struct {
	ID             string      `json:"id"`
	Gift           CardOption  `json:"gift"`
	Amount         float64     `json:"amount"`
	Message        string      `json:"message"`
	Design         string      `json:"design"`
	RecipientEmail string      `json:"recipient_email"`
	RecipientPhone string      `json:"recipient_phone"`
	DeliveryDate   time.Time   `json:"delivery_date"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Total is the charged amount including the flat service fee.
func (o Order) Total() float64 {
	return o.Amount + config.OrderServiceFee
}

// OrderRequest carries everything the checkout flow collects.
type OrderRequest struct {
	GiftID         string
	Amount         float64
	Message        string
	Design         string
	RecipientEmail string
	RecipientPhone string
	// DeliveryDate is optional; zero means deliver immediately.
	DeliveryDate time.Time
}

// Service is the stub gift-card aggregator client.
type Service struct {
	Clock recur.Clock

	// Delays default to the configured simulated latencies; tests zero them.
	CatalogDelay time.Duration
	OrderDelay   time.Duration
}

// NewService constructs a Service with the standard simulated latencies.
func NewService(clock recur.Clock) *Service {
	return &Service{
		Clock:        clock,
		CatalogDelay: config.CatalogFetchDelay,
		OrderDelay:   config.OrderCreationDelay,
	}
}

// Options returns the catalog slice for a category after the simulated
// upstream delay. An unknown category yields an empty list, not an error.
func (s *Service) Options(ctx context.Context, category string) ([]CardOption, error) {
	if err := sleep(ctx, s.CatalogDelay); err != nil {
		return nil, err
	}

	options := catalog[strings.ToLower(category)]
	out := append([]CardOption(nil), options...)

	slog.Debug(config.MsgCatalogFetch,
		config.LogKeyComponent, config.CompGifts,
		config.LogKeyCategory, category,
		config.LogKeyCount, len(out),
	)
	return out, nil
}

// AllOptions returns the full catalog across every category.
func (s *Service) AllOptions(ctx context.Context) ([]CardOption, error) {
	var out []CardOption
	for _, cat := range Categories() {
		opts, err := s.Options(ctx, cat)
		if err != nil {
			return nil, err
		}
		out = append(out, opts...)
	}
	return out, nil
}

// CreateOrder validates the request and returns a simulated order in the
// processing state. Validation failures are the only errors besides
// context cancellation.
func (s *Service) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	gift, ok := findOption(req.GiftID)
	if !ok {
		return Order{}, errors.New(config.ErrGiftNotFound)
	}
	if err := validateRecipient(req); err != nil {
		return Order{}, err
	}
	if req.Amount < gift.MinAmount || req.Amount > gift.MaxAmount {
		return Order{}, errors.New(config.ErrAmountRange)
	}

	if err := sleep(ctx, s.OrderDelay); err != nil {
		return Order{}, err
	}

	now := s.Clock.Now()
	delivery := req.DeliveryDate
	if delivery.IsZero() {
		delivery = now
	}

	order := Order{
		ID:             uuid.NewString(),
		Gift:           gift,
		Amount:         req.Amount,
		Message:        req.Message,
		Design:         req.Design,
		RecipientEmail: req.RecipientEmail,
		RecipientPhone: req.RecipientPhone,
		DeliveryDate:   delivery,
		Status:         StatusProcessing,
		CreatedAt:      now,
	}

	slog.Info(config.MsgOrderCreated,
		config.LogKeyComponent, config.CompGifts,
		config.LogKeyOrderID, order.ID,
		config.LogKeyBrand, gift.BrandName,
		config.LogKeyAmount, req.Amount,
	)
	return order, nil
}

func findOption(id string) (CardOption, bool) {
	for _, options := range catalog {
		for _, o := range options {
			if o.ID == id {
				return o, true
			}
		}
	}
	return CardOption{}, false
}

// validateRecipient requires either a plausible email or a phone number.
func validateRecipient(req OrderRequest) error {
	hasEmail := strings.Contains(req.RecipientEmail, "@")
	digits := 0
	for _, r := range req.RecipientPhone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	hasPhone := digits >= config.MinRecipientPhoneLen

	if !hasEmail && !hasPhone {
		return errors.New(config.ErrRecipientMissing)
	}
	return nil
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
