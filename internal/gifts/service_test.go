package gifts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmathew/go-giftsmart/internal/config"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// newTestService returns a Service with the simulated latencies zeroed so
// tests run instantly.
func newTestService(now time.Time) *Service {
	s := NewService(fixedClock{now: now})
	s.CatalogDelay = 0
	s.OrderDelay = 0
	return s
}

func TestOptionsKnownCategory(t *testing.T) {
	svc := newTestService(time.Now())

	opts, err := svc.Options(context.Background(), config.CategoryFood)

	require.NoError(t, err)
	require.NotEmpty(t, opts)
	for _, o := range opts {
		assert.Equal(t, config.CategoryFood, o.Category)
		assert.Greater(t, o.MaxAmount, o.MinAmount, "brand %s", o.BrandName)
	}
}

func TestOptionsUnknownCategoryIsEmpty(t *testing.T) {
	svc := newTestService(time.Now())

	opts, err := svc.Options(context.Background(), "crypto")

	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestOptionsCaseInsensitive(t *testing.T) {
	svc := newTestService(time.Now())

	lower, err := svc.Options(context.Background(), config.CategoryRetail)
	require.NoError(t, err)
	upper, err := svc.Options(context.Background(), "Retail")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestOptionsReturnsCopy(t *testing.T) {
	svc := newTestService(time.Now())

	first, err := svc.Options(context.Background(), config.CategoryFood)
	require.NoError(t, err)
	first[0].BrandName = "Tampered"

	second, err := svc.Options(context.Background(), config.CategoryFood)
	require.NoError(t, err)
	assert.NotEqual(t, "Tampered", second[0].BrandName)
}

func TestOptionsCancelledContext(t *testing.T) {
	svc := newTestService(time.Now())
	svc.CatalogDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Options(ctx, config.CategoryFood)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAllOptionsCoversEveryCategory(t *testing.T) {
	svc := newTestService(time.Now())

	opts, err := svc.AllOptions(context.Background())
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, o := range opts {
		seen[o.Category] = true
	}
	for _, cat := range Categories() {
		assert.True(t, seen[cat], "category %s missing", cat)
	}
}

func TestCreateOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	order, err := svc.CreateOrder(context.Background(), OrderRequest{
		GiftID:         "1",
		Amount:         50,
		Message:        "Happy birthday!",
		Design:         config.DefaultCardStyle,
		RecipientEmail: "alice@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Uber Eats", order.Gift.BrandName)
	assert.Equal(t, StatusProcessing, order.Status)
	assert.Equal(t, now, order.CreatedAt)
	assert.Equal(t, now, order.DeliveryDate, "zero delivery date defaults to now")
	assert.InDelta(t, 50+config.OrderServiceFee, order.Total(), 0.001)
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     OrderRequest
		wantErr string
	}{
		{
			name:    "unknown gift",
			req:     OrderRequest{GiftID: "999", Amount: 50, RecipientEmail: "a@b.c"},
			wantErr: config.ErrGiftNotFound,
		},
		{
			name:    "amount below minimum",
			req:     OrderRequest{GiftID: "1", Amount: 5, RecipientEmail: "a@b.c"},
			wantErr: config.ErrAmountRange,
		},
		{
			name:    "amount above maximum",
			req:     OrderRequest{GiftID: "1", Amount: 500, RecipientEmail: "a@b.c"},
			wantErr: config.ErrAmountRange,
		},
		{
			name:    "no recipient at all",
			req:     OrderRequest{GiftID: "1", Amount: 50},
			wantErr: config.ErrRecipientMissing,
		},
		{
			name:    "email without at sign",
			req:     OrderRequest{GiftID: "1", Amount: 50, RecipientEmail: "not-an-email"},
			wantErr: config.ErrRecipientMissing,
		},
		{
			name:    "phone too short",
			req:     OrderRequest{GiftID: "1", Amount: 50, RecipientPhone: "555-1234"},
			wantErr: config.ErrRecipientMissing,
		},
		{
			name: "phone with formatting accepted",
			req:  OrderRequest{GiftID: "1", Amount: 50, RecipientPhone: "(555) 123-4567"},
		},
		{
			name: "amount at exact bounds accepted",
			req:  OrderRequest{GiftID: "1", Amount: 15, RecipientEmail: "a@b.c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(time.Now())
			_, err := svc.CreateOrder(context.Background(), tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestCreateOrderCancelledContext(t *testing.T) {
	svc := newTestService(time.Now())
	svc.OrderDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateOrder(ctx, OrderRequest{
		GiftID:         "1",
		Amount:         50,
		RecipientEmail: "a@b.c",
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateOrderKeepsExplicitDeliveryDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	delivery := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	order, err := svc.CreateOrder(context.Background(), OrderRequest{
		GiftID:         "2",
		Amount:         25,
		RecipientEmail: "a@b.c",
		DeliveryDate:   delivery,
	})

	require.NoError(t, err)
	assert.Equal(t, delivery, order.DeliveryDate)
}

func TestStatusDisplayName(t *testing.T) {
	assert.Equal(t, "Processing", StatusProcessing.DisplayName())
	assert.Equal(t, "Confirmed", StatusConfirmed.DisplayName())
	assert.Equal(t, "Delivered", StatusDelivered.DisplayName())
	assert.Equal(t, "Failed", StatusFailed.DisplayName())
}

func TestCatalogIntegrity(t *testing.T) {
	svc := newTestService(time.Now())
	opts, err := svc.AllOptions(context.Background())
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, o := range opts {
		assert.NotEmpty(t, o.ID)
		assert.False(t, ids[o.ID], "duplicate gift id %s", o.ID)
		ids[o.ID] = true
		assert.NotEmpty(t, o.BrandName)
		assert.NotEmpty(t, o.ImageURL)
		assert.Greater(t, o.MinAmount, 0.0)
	}
}

func TestPriceRange(t *testing.T) {
	opt := CardOption{MinAmount: 15, MaxAmount: 200}
	assert.Equal(t, "$15 - $200", opt.PriceRange())
}
