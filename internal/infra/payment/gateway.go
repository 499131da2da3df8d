// Package payment implements the card gateway adapter. The backend is
// simulated: card validation happens locally and approved charges receive a
// synthetic transaction id, so no real charge API is ever called.
package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
)

const (
	reasonInvalidCard = "Invalid card details"
	reasonCardExpired = "Card expired"

	txnIDBytes = 8
)

type simulatedGateway struct {
	cfg    *config.PaymentConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewSimulatedGateway constructs the card gateway adapter.
func NewSimulatedGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	return &simulatedGateway{
		cfg:    cfg.Payment,
		logger: logger,
		now:    time.Now,
	}
}

// Authorize validates the card details and simulates a single charge
// authorization. A validation failure declines immediately; it is never an
// error, since a decline is a normal business outcome.
func (g *simulatedGateway) Authorize(ctx context.Context, amount float64, currency string, card service.CardDetails, customer service.CustomerInfo) (*service.AuthorizationResult, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if reason, ok := g.validateCard(card); !ok {
		g.logger.LogAttrs(ctx, slog.LevelInfo, "payment declined",
			slog.String("reason", reason),
			slog.String("customer", customer.Email),
		)

		return &service.AuthorizationResult{Approved: false, Reason: reason}, nil
	}

	txnID, err := generateID("txn")
	if err != nil {
		return nil, err
	}

	g.logger.LogAttrs(ctx, slog.LevelInfo, "payment authorized",
		slog.String("transactionId", txnID),
		slog.Float64("amount", amount),
		slog.String("currency", currency),
	)

	return &service.AuthorizationResult{Approved: true, TransactionID: txnID}, nil
}

// Refund simulates reversing a prior authorization.
func (g *simulatedGateway) Refund(ctx context.Context, transactionID string, amount float64) (*service.RefundResult, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	refundID, err := generateID("ref")
	if err != nil {
		return nil, err
	}

	g.logger.LogAttrs(ctx, slog.LevelInfo, "payment refunded",
		slog.String("transactionId", transactionID),
		slog.String("refundId", refundID),
		slog.Float64("amount", amount),
	)

	return &service.RefundResult{Refunded: true, RefundID: refundID}, nil
}

// withTimeout bounds a charge attempt by the configured gateway timeout,
// the same deadline a networked backend would honor.
func (g *simulatedGateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.cfg != nil && g.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, g.cfg.Timeout)
	}

	return ctx, func() {}
}

// validateCard applies the gateway's acceptance rules. The reason strings are
// part of the API contract and surface verbatim to the caller.
func (g *simulatedGateway) validateCard(card service.CardDetails) (string, bool) {
	number := strings.NewReplacer(" ", "", "-", "").Replace(card.Number)
	if !isDigits(number) || (len(number) != 15 && len(number) != 16) {
		return reasonInvalidCard, false
	}

	if strings.TrimSpace(card.Name) == "" {
		return reasonInvalidCard, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(card.ExpMonth))
	if err != nil || month < 1 || month > 12 {
		return reasonInvalidCard, false
	}

	year, err := strconv.Atoi(strings.TrimSpace(card.ExpYear))
	if err != nil {
		return reasonInvalidCard, false
	}

	cvv := strings.TrimSpace(card.CVV)
	if !isDigits(cvv) || (len(cvv) != 3 && len(cvv) != 4) {
		return reasonInvalidCard, false
	}

	// Two-digit year comparison: the month only matters when the years match.
	now := g.now()
	curYear := now.Year() % 100
	expYear := year % 100
	if expYear < curYear || (expYear == curYear && month < int(now.Month())) {
		return reasonCardExpired, false
	}

	return "", true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// generateID produces an opaque id like "txn_1a2b3c4d5e6f7a8b".
func generateID(prefix string) (string, error) {
	buf := make([]byte, txnIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return prefix + "_" + hex.EncodeToString(buf), nil
}
