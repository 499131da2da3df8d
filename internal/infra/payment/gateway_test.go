package payment

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(now time.Time) *simulatedGateway {
	cfg := &config.Config{
		Payment: &config.PaymentConfig{Currency: "usd"},
	}
	gw := NewSimulatedGateway(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*simulatedGateway)
	gw.now = func() time.Time { return now }

	return gw
}

func validCard() service.CardDetails {
	return service.CardDetails{
		Number:   "4242 4242 4242 4242",
		Name:     "Jamie Doe",
		ExpMonth: "12",
		ExpYear:  "30",
		CVV:      "123",
	}
}

func TestAuthorize_Approved(t *testing.T) {
	gw := newTestGateway(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))

	res, err := gw.Authorize(context.Background(), 99.99, "usd", validCard(), service.CustomerInfo{Email: "jamie@example.com"})
	require.NoError(t, err)

	assert.True(t, res.Approved)
	assert.Regexp(t, `^txn_[0-9a-f]{16}$`, res.TransactionID)
	assert.Empty(t, res.Reason)
}

func TestAuthorize_InvalidCardDetails(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(*service.CardDetails)
	}{
		{"short number", func(c *service.CardDetails) { c.Number = "4242" }},
		{"non numeric number", func(c *service.CardDetails) { c.Number = "4242abcd42424242" }},
		{"empty name", func(c *service.CardDetails) { c.Name = "   " }},
		{"month out of range", func(c *service.CardDetails) { c.ExpMonth = "13" }},
		{"month not a number", func(c *service.CardDetails) { c.ExpMonth = "dec" }},
		{"year not a number", func(c *service.CardDetails) { c.ExpYear = "next" }},
		{"cvv too short", func(c *service.CardDetails) { c.CVV = "12" }},
		{"cvv not digits", func(c *service.CardDetails) { c.CVV = "12a" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := newTestGateway(now)
			card := validCard()
			tc.mutate(&card)

			res, err := gw.Authorize(context.Background(), 10, "usd", card, service.CustomerInfo{})
			require.NoError(t, err)

			assert.False(t, res.Approved)
			assert.Equal(t, "Invalid card details", res.Reason)
			assert.Empty(t, res.TransactionID)
		})
	}
}

func TestAuthorize_CardExpired(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		expMonth string
		expYear  string
	}{
		{"previous year", "12", "25"},
		{"same year earlier month", "05", "26"},
		{"four digit previous year", "12", "2025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := newTestGateway(now)
			card := validCard()
			card.ExpMonth = tc.expMonth
			card.ExpYear = tc.expYear

			res, err := gw.Authorize(context.Background(), 10, "usd", card, service.CustomerInfo{})
			require.NoError(t, err)

			assert.False(t, res.Approved)
			assert.Equal(t, "Card expired", res.Reason)
		})
	}
}

func TestAuthorize_SameMonthStillValid(t *testing.T) {
	gw := newTestGateway(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	card := validCard()
	card.ExpMonth = "06"
	card.ExpYear = "26"

	res, err := gw.Authorize(context.Background(), 10, "usd", card, service.CustomerInfo{})
	require.NoError(t, err)
	assert.True(t, res.Approved)
}

func TestAuthorize_AmexLengthAccepted(t *testing.T) {
	gw := newTestGateway(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	card := validCard()
	card.Number = "378282246310005" // 15 digits
	card.CVV = "1234"

	res, err := gw.Authorize(context.Background(), 10, "usd", card, service.CustomerInfo{})
	require.NoError(t, err)
	assert.True(t, res.Approved)
}

func TestAuthorize_CancelledContext(t *testing.T) {
	gw := newTestGateway(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	gw.cfg = &config.PaymentConfig{Currency: "usd", Timeout: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := gw.Authorize(ctx, 99.99, "usd", validCard(), service.CustomerInfo{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRefund(t *testing.T) {
	gw := newTestGateway(time.Now())

	res, err := gw.Refund(context.Background(), "txn_0011223344556677", 25)
	require.NoError(t, err)

	assert.True(t, res.Refunded)
	assert.Regexp(t, `^ref_[0-9a-f]{16}$`, res.RefundID)
}
