// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LogoutInput carries the refresh token whose session should end.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token" query:"refresh_token"`
}

// RefreshInput carries the refresh token to exchange for a new token pair.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the token pair issued after registration or login.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and logs it in, issuing a token pair.
	// A duplicate email is a conflict, regardless of the submitted password.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair and
	// rotates the stored session. A well-formed token whose session row is
	// gone counts as a replay and revokes every session for that user.
	Refresh(ctx context.Context, input *RefreshInput) (*AuthOutput, error)

	// Logout ends the session held by the given refresh token. Logging out
	// an unknown or already-ended session is not an error.
	Logout(ctx context.Context, input *LogoutInput) error
}
