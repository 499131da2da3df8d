// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrCredentialNotFound is returned when no stored credential matches.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrSessionNotFound is returned when a session row is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session row exists but is past its expiry.
	ErrSessionExpired = errors.New("session expired")
)

// AuthRepository defines the standard operations for credential persistence.
type AuthRepository interface {
	// CreateCredential persists a new stored credential for a user.
	CreateCredential(ctx context.Context, cred *entity.Credential) error

	// FindCredentialByUserID retrieves the stored credential for a user.
	FindCredentialByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
}

// SessionRepository defines the standard operations for session persistence.
type SessionRepository interface {
	// CreateSession persists a new session row, representing a login.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByHash retrieves a session by its stored token hash.
	// Expired sessions are reported as ErrSessionExpired.
	FindSessionByHash(ctx context.Context, hash string) (*entity.Session, error)

	// DeleteSessionByHash deletes a session by its token hash, ending the login.
	DeleteSessionByHash(ctx context.Context, hash string) error

	// DeleteSessionsByUserID removes every session for a user.
	DeleteSessionsByUserID(ctx context.Context, userID uuid.UUID) error
}
