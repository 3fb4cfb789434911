// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRateNotFound is returned when a rate document is not found.
var ErrRateNotFound = errors.New("rate not found")

// RateRepository defines operations for per-draw weight persistence.
// Implementations normalize the rates array into descending rate order on every write.
type RateRepository interface {
	// Create persists a new rate document.
	Create(ctx context.Context, rate *entity.Rate) error

	// FindByID retrieves a single rate document by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rate, error)

	// FindByResultID retrieves the rate document for a draw.
	FindByResultID(ctx context.Context, resultID uuid.UUID) (*entity.Rate, error)

	// List returns one page of rate documents, newest first, with the total count.
	List(ctx context.Context, page Pagination) ([]*entity.Rate, int64, error)

	// Update replaces the mutable fields of a rate document.
	Update(ctx context.Context, rate *entity.Rate) error

	// Delete removes a rate document by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
