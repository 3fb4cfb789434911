// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for result persistence.
var (
	// ErrResultNotFound is returned when a result is not found.
	ErrResultNotFound = errors.New("result not found")
	// ErrResultCodeTaken is returned when a result with the same code already exists.
	ErrResultCodeTaken = errors.New("result code already exists")
)

// ResultRepository defines operations for draw result persistence.
// Implementations normalize the nums array into descending rate order on every write.
type ResultRepository interface {
	// Create persists a new result. Fails with ErrResultCodeTaken on a duplicate code.
	Create(ctx context.Context, result *entity.Result) error

	// FindByID retrieves a single result by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Result, error)

	// FindLatest retrieves the most recent result by draw date.
	FindLatest(ctx context.Context) (*entity.Result, error)

	// List returns one page of results, newest draw first, with the total count.
	List(ctx context.Context, page Pagination) ([]*entity.Result, int64, error)

	// Update replaces the mutable fields of a result. The code is immutable.
	Update(ctx context.Context, result *entity.Result) error

	// Delete removes a result by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
