package repository

import (
	"context"
	"errors"

	"cardboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create adds a new card to the database
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// GetByID retrieves a card by its ID
func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).First(&card, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

// GetByIDs retrieves the cards for a column's reference array. The caller
// reassembles display order from the array; the query does not preserve it.
func (r *CardRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var cards []model.Card
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

// Update updates an existing card
func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).Save(card)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete removes a card by its ID
func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
