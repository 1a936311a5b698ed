package service

import (
	"context"

	"cardboard/internal/model"

	"github.com/google/uuid"
)

// Store interfaces cover exactly what the services need from the
// repositories; the gorm repositories satisfy them as-is.

type ColumnStore interface {
	Create(ctx context.Context, column *model.Column) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Column, error)
	GetAll(ctx context.Context) ([]model.Column, error)
	Update(ctx context.Context, column *model.Column) error
	Delete(ctx context.Context, id uuid.UUID) error
	NextPosition(ctx context.Context, ownerID uuid.UUID) (int, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, position int) error
	UpdateCardIDs(ctx context.Context, id uuid.UUID, cardIDs []uuid.UUID) error
}

type CardStore interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Card, error)
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserStore interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error)
}
