package model

import (
	"time"

	"github.com/google/uuid"
)

// Column owns both the membership and the display order of its cards:
// CardIDs is the single source of truth, cards carry no back-reference.
type Column struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string      `gorm:"not null"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	CardIDs   []uuid.UUID `gorm:"type:jsonb;serializer:json;not null;default:'[]'"`
	Position  int         `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
