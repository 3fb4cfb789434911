package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	Role                 string    `gorm:"type:varchar(20);not null;default:'user'"`
	Active               bool      `gorm:"not null;default:false"`
	ActiveKey            string    `gorm:"type:varchar(64)"`
	PasswordResetToken   string    `gorm:"type:varchar(64);index"`
	PasswordResetExpires *time.Time
	ProfileName          string `gorm:"type:varchar(100)"`
	ProfileFirstName     string `gorm:"type:varchar(100)"`
	ProfileLastName      string `gorm:"type:varchar(100)"`
	ProfileGender        string `gorm:"type:varchar(20)"`
	ProfileDOB           string `gorm:"type:varchar(20)"`
	ProfileAddress       string `gorm:"type:varchar(255)"`
	ProfileCity          string `gorm:"type:varchar(100)"`
	ProfileLocation      string `gorm:"type:varchar(255)"`
	ProfileWebsite       string `gorm:"type:varchar(255)"`
	ProfilePicture       string `gorm:"type:varchar(255)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sessions        []SessionModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
