// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account.
// RequireActivation distinguishes the API flow (mail an activation key,
// account starts inactive) from the web flow (active and logged in at once).
type SignupInput struct {
	Email             string
	Password          string
	Profile           entity.Profile
	RequireActivation bool
}

// LoginInput defines the data required for an email/password login.
type LoginInput struct {
	Email    string
	Password string
}

// ForgotInput starts a password reset for the given email.
type ForgotInput struct {
	Email string
}

// ResetPasswordInput finishes a password reset with the mailed token.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// UpdateProfileInput replaces the account's profile subset.
type UpdateProfileInput struct {
	UserID  uuid.UUID
	Email   string
	Profile entity.Profile
}

// UpdatePasswordInput replaces the account's password.
type UpdatePasswordInput struct {
	UserID   uuid.UUID
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the created account. Token is set only when the
// signup flow logs the user in immediately.
type SignupOutput struct {
	User  *entity.User
	Token string
}

// LoginOutput returns the session token issued by a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// ProfileOutput is the account page projection: the user plus their
// award history, newest first.
type ProfileOutput struct {
	User       *entity.User
	RealAwards []*entity.Lottery
	TryAwards  []*entity.Recommendation
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type AccountUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, token string) error
	Activate(ctx context.Context, key string) error
	Forgot(ctx context.Context, input ForgotInput) error
	CheckResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
	UpdatePassword(ctx context.Context, input UpdatePasswordInput) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	UnlinkProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error
}
