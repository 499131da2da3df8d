package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Items is a JSONB snapshot of the
// purchased line items so orders stay readable after catalog edits.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Items         string    `gorm:"type:jsonb;not null"`
	Amount        float64   `gorm:"type:numeric(10,2);not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	TransactionID string    `gorm:"type:varchar(64);not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
