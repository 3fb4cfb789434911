package entity

import (
	"time"

	"github.com/google/uuid"
)

// Result represents one official lottery draw outcome.
// Code is the draw's unique identifier and is immutable once created.
type Result struct {
	ID         uuid.UUID
	Code       string // Unique draw code, e.g. "16042". Never changed by updates.
	Budget     int64  // Prize pool of the draw.
	ResultDate time.Time
	Nums       []NumberPick // Drawn numbers, at most MaxTicketPicks, ordered by descending rate.
	Award1     int64        // Tier 1 prize amount.
	Award2     int64
	Award3     int64
	Award4     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
