// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderUserMissing is returned when an order references a user id that
// does not exist (foreign key violation surfaced as a domain error).
var ErrOrderUserMissing = errors.New("order references missing user")

// OrderRepository defines the standard operations for order persistence.
// Orders are immutable after creation; there is no update or delete.
type OrderRepository interface {
	// Create persists a new order and fills in the generated id and timestamp.
	Create(ctx context.Context, order *entity.Order) error

	// ListByUserID returns the user's orders, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}

// EntitlementRepository defines the operations for course access grants.
type EntitlementRepository interface {
	// Grant records course access for a user. Granting an already-held
	// entitlement is a silent no-op; the store suppresses the duplicate,
	// not the caller.
	Grant(ctx context.Context, userID uuid.UUID, courseID string) error

	// HasAccess reports whether the user holds a grant for the course.
	HasAccess(ctx context.Context, userID uuid.UUID, courseID string) (bool, error)

	// ListByUserID returns every grant held by the user.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CourseAccessGrant, error)
}
