package model

import (
	"time"

	"github.com/google/uuid"
)

// RateModel mirrors the 'rates' table.
type RateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ResultID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Rates     PickList  `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RateModel) TableName() string {
	return "rates"
}
