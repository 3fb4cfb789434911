package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is a "dry run" ticket: the same shape as Lottery but the
// numbers were recommended rather than actually played.
type Recommendation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ResultID  *uuid.UUID
	Condition []string
	Status    bool
	Award     int
	Nums      []NumberPick
	CreatedAt time.Time
	UpdatedAt time.Time
}
