package service

import "context"

// CardDetails carries the card-like input supplied at checkout.
type CardDetails struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"`
	CVV      string `json:"cvv"`
}

// CustomerInfo identifies the paying customer to the gateway.
type CustomerInfo struct {
	Name  string
	Email string
}

// AuthorizationResult is the outcome of a single authorize attempt.
// Exactly one of TransactionID or Reason is meaningful.
type AuthorizationResult struct {
	Approved      bool
	TransactionID string
	Reason        string
}

// RefundResult is the outcome of a refund attempt.
type RefundResult struct {
	Refunded bool
	RefundID string
	Reason   string
}

// PaymentGateway wraps the external charge API behind a stable local
// interface. One authorize attempt per checkout; no retries.
type PaymentGateway interface {
	// Authorize validates the card details and attempts a single charge
	// authorization. Validation failures decline without any network call.
	Authorize(ctx context.Context, amount float64, currency string, card CardDetails, customer CustomerInfo) (*AuthorizationResult, error)

	// Refund reverses a prior authorization, fully when amount is zero.
	// Not reachable from any HTTP route; kept as a callable capability for
	// future reconciliation.
	Refund(ctx context.Context, transactionID string, amount float64) (*RefundResult, error)
}
