package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// LotteryModel mirrors the 'lotteries' table.
type LotteryModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	ResultID  *uuid.UUID     `gorm:"type:uuid;index"`
	Condition pq.StringArray `gorm:"type:text[]"`
	Status    bool           `gorm:"not null;default:true"`
	Award     int            `gorm:"not null;default:0"`
	Nums      PickList       `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LotteryModel) TableName() string {
	return "lotteries"
}
