// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecommendationNotFound is returned when a recommendation is not found.
var ErrRecommendationNotFound = errors.New("recommendation not found")

// RecommendationRepository defines operations for recommended ticket persistence.
// Implementations normalize the nums array into descending rate order on every write.
type RecommendationRepository interface {
	// Create persists a new recommendation.
	Create(ctx context.Context, rec *entity.Recommendation) error

	// FindByID retrieves a single recommendation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recommendation, error)

	// FindByUser retrieves all recommendations owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Recommendation, error)

	// List returns one page of recommendations, newest first, with the total count.
	List(ctx context.Context, page Pagination) ([]*entity.Recommendation, int64, error)

	// Update replaces the mutable fields of a recommendation.
	Update(ctx context.Context, rec *entity.Recommendation) error

	// Delete removes a recommendation by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
