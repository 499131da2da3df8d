package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CheckoutItemInput is one line of a checkout request.
type CheckoutItemInput struct {
	ID       string  `json:"id" validate:"required"`
	Type     string  `json:"type" validate:"required,oneof=course product"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CheckoutInput defines the data required to run a checkout.
type CheckoutInput struct {
	UserID uuid.UUID
	Items  []CheckoutItemInput
	Amount float64
	Card   service.CardDetails
}

// --- Output DTOs ---

// CheckoutOutput returns the identifiers of a completed checkout.
type CheckoutOutput struct {
	OrderID       uuid.UUID
	TransactionID string
}

// DownloadOutput carries a course artifact stream and its attachment name.
type DownloadOutput struct {
	Content  io.ReadCloser
	Filename string
}

// CheckoutUsecase defines the interface for purchase operations: running a
// checkout, listing order history, and the purchase-gated course download.
type CheckoutUsecase interface {
	// Checkout authorizes payment and, only on approval, records the order
	// and grants access to every course line item in one transaction.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)

	// ListOrders returns the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListCourseGrants returns every course entitlement held by the user.
	ListCourseGrants(ctx context.Context, userID uuid.UUID) ([]*entity.CourseAccessGrant, error)

	// DownloadCourse checks the user's entitlement and opens the course
	// artifact. Denied access and missing content are distinct domain errors,
	// checked in that order.
	DownloadCourse(ctx context.Context, userID uuid.UUID, courseID string) (*DownloadOutput, error)
}
