package entity

import (
	"time"

	"github.com/google/uuid"
)

// Award tiers for played tickets. Zero means no award.
const (
	AwardNone = 0
	AwardMax  = 4
)

// Lottery is a real ticket a user played, optionally settled against a Result.
type Lottery struct {
	ID        uuid.UUID
	UserID    uuid.UUID  // The account that owns this ticket.
	ResultID  *uuid.UUID // The draw this ticket was settled against. Nil until settled.
	Condition []string   // Free-form play conditions captured at creation.
	Status    bool       // Whether the ticket is still open.
	Award     int        // Award tier 0..4.
	Nums      []NumberPick
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidAwardTier reports whether the tier is within the allowed range.
func ValidAwardTier(tier int) bool {
	return tier >= AwardNone && tier <= AwardMax
}
