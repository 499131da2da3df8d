package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider the store supports.
const ProviderTypeEmail = "email"

// Credential represents a user's stored login secret. The password is kept
// only as a bcrypt hash; the plaintext never reaches persistence.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	Provider     string    // The credential provider, currently always "email".
	PasswordHash string    // The bcrypt-hashed password.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}

// Session represents a server-held, authorized login. The raw token lives
// only on the client; the database stores a SHA-256 hash of it.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // The exact time when this session becomes invalid.
	CreatedAt time.Time // Timestamp of when the user logged in.
}
