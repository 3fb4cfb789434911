package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rate stores computed per-number weights for a draw.
type Rate struct {
	ID        uuid.UUID
	ResultID  uuid.UUID
	Rates     []NumberPick // Weighted numbers, ordered by descending rate.
	CreatedAt time.Time
	UpdatedAt time.Time
}
