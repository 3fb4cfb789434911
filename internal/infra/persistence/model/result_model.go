package model

import (
	"time"

	"github.com/google/uuid"
)

// ResultModel mirrors the 'results' table. The draw code is unique and immutable.
type ResultModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code       string    `gorm:"type:varchar(50);unique;not null"`
	Budget     int64
	ResultDate time.Time `gorm:"not null;index"`
	Nums       PickList  `gorm:"type:jsonb"`
	Award1     int64
	Award2     int64
	Award3     int64
	Award4     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResultModel) TableName() string {
	return "results"
}
