package postgres

import (
	"time"

	"github.com/google/uuid"
)

// UserDTO is the profile row owned by the identity service. This module only
// reads it when rendering owners and counterparties.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nickname     string    `gorm:"type:varchar(50);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	ProfileImage string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}
