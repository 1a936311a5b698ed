package repository

import (
	"context"
	"errors"

	"cardboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) Create(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Create(column).Error
}

func (r *ColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

// GetByOwner returns a single owner's columns in canonical display order.
// updated_at breaks transient position ties left by racing moves.
func (r *ColumnRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).
		Order("position, updated_at").Find(&columns).Error
	return columns, err
}

// GetAll returns every column across all owners as one flat ordered space,
// used when an administrator operates across scopes.
func (r *ColumnRepository) GetAll(ctx context.Context) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Order("position, updated_at").Find(&columns).Error
	return columns, err
}

func (r *ColumnRepository) Update(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Save(column).Error
}

func (r *ColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Column{}, "id = ?", id).Error
}

// NextPosition returns the position a newly created column takes within an
// owner's scope: one past the current maximum, or 0 for an empty scope.
func (r *ColumnRepository) NextPosition(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var next struct {
		Next int
	}
	err := r.db.WithContext(ctx).Model(&model.Column{}).
		Select("COALESCE(MAX(position) + 1, 0) as next").
		Where("user_id = ?", ownerID).
		Scan(&next).Error

	return next.Next, err
}

// UpdatePosition writes a single column's position. Each row is written
// independently; a racing move is resolved last-write-wins and the next
// whole-range rewrite restores a dense sequence.
func (r *ColumnRepository) UpdatePosition(ctx context.Context, id uuid.UUID, position int) error {
	return r.db.WithContext(ctx).Model(&model.Column{}).Where("id = ?", id).
		Update("position", position).Error
}

// UpdateCardIDs rewrites a column's card-reference array as one atomic
// single-row write.
func (r *ColumnRepository) UpdateCardIDs(ctx context.Context, id uuid.UUID, cardIDs []uuid.UUID) error {
	if cardIDs == nil {
		cardIDs = []uuid.UUID{}
	}
	return r.db.WithContext(ctx).Model(&model.Column{}).Where("id = ?", id).
		Update("card_ids", cardIDs).Error
}
