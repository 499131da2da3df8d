package entity

import (
	"time"

	"github.com/google/uuid"
)

// Line item types. Only course items gate downloadable content.
const (
	ItemTypeCourse  = "course"
	ItemTypeProduct = "product"
)

// OrderStatusCompleted is the only persisted order status: a declined
// payment never creates an order row.
const OrderStatusCompleted = "completed"

// OrderItem is one purchased line of an order.
type OrderItem struct {
	ID       string  `json:"id"`   // Catalog item id (product or course).
	Type     string  `json:"type"` // "course" or "product".
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// Order records one completed checkout. Orders are immutable after creation
// and always reference exactly one existing user.
type Order struct {
	ID            uuid.UUID   // The unique identifier for the order.
	UserID        uuid.UUID   // The user who placed the order.
	Items         []OrderItem // The purchased line items, in request order.
	Amount        float64     // Total charged amount.
	Status        string      // Always "completed" once persisted.
	TransactionID string      // Opaque gateway transaction id.
	CreatedAt     time.Time   // Timestamp of the checkout.
}

// CourseAccessGrant records that a user may download a course's content.
// Grants are idempotent: one row per (user, course) pair.
type CourseAccessGrant struct {
	ID        uuid.UUID // The unique identifier for the grant row.
	UserID    uuid.UUID // The user holding the entitlement.
	CourseID  string    // The course the user may download.
	GrantedAt time.Time // Timestamp of when access was granted.
}
