// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no authentication record matches.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines operations for credential persistence.
// A user can hold one record per provider: the email credential plus linked social accounts.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and the provider's user ID.
	// For the email provider the provider user ID is the email address itself.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// FindByUserID retrieves every credential linked to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Authentication, error)

	// CreateAuthentication persists a new credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// UpdateAuthentication modifies an existing credential, e.g. a rotated password hash or provider token.
	UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// DeleteAuthentication unlinks the given provider from a user.
	DeleteAuthentication(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error

	// CountByUserID returns how many credentials a user holds.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
