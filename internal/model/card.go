package model

import (
	"time"

	"github.com/google/uuid"
)

type Card struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	Color     string    `gorm:"not null;default:'#ffffff'"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	Comments  []Comment `gorm:"type:jsonb;serializer:json;not null;default:'[]'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment is embedded in the card's comments array; relative order is
// append order and there is no reordering operation.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
