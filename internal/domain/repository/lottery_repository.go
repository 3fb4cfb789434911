// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLotteryNotFound is returned when a lottery ticket is not found.
var ErrLotteryNotFound = errors.New("lottery not found")

// LotteryRepository defines operations for played ticket persistence.
// Implementations normalize the nums array into descending rate order on every write.
type LotteryRepository interface {
	// Create persists a new lottery ticket.
	Create(ctx context.Context, lottery *entity.Lottery) error

	// FindByID retrieves a single ticket by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lottery, error)

	// FindByUser retrieves all tickets owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Lottery, error)

	// List returns one page of tickets, newest first, with the total count.
	List(ctx context.Context, page Pagination) ([]*entity.Lottery, int64, error)

	// CountByResultID returns how many tickets reference the given draw.
	CountByResultID(ctx context.Context, resultID uuid.UUID) (int64, error)

	// Update replaces the mutable fields of a ticket.
	Update(ctx context.Context, lottery *entity.Lottery) error

	// Delete removes a ticket by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
