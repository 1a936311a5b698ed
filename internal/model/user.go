package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	Username       string    `gorm:"not null"`
	HashedPassword string    `gorm:"not null"`
	IsAdmin        bool      `gorm:"not null;default:false"`
	Avatar         string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
