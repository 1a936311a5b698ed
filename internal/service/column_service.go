package service

import (
	"context"
	"errors"
	"log"

	"cardboard/internal/model"
	"cardboard/internal/ordering"
	"cardboard/internal/repository"

	"github.com/google/uuid"
)

// ColumnService owns the column ordering within a scope: a single owner's
// columns, or all columns as one flat space when the subject is an admin.
type ColumnService struct {
	columns ColumnStore
	cards   CardStore
	users   UserStore
}

func NewColumnService(columns ColumnStore, cards CardStore, users UserStore) *ColumnService {
	return &ColumnService{
		columns: columns,
		cards:   cards,
		users:   users,
	}
}

// UserSummary is the creator info attached to cards and comments.
type UserSummary struct {
	ID       uuid.UUID
	Username string
	Avatar   string
}

// CardView is a card plus its creator summary.
type CardView struct {
	Card    model.Card
	Creator *UserSummary
}

// ColumnView is a column with its cards resolved in array order.
type ColumnView struct {
	Column model.Column
	Cards  []CardView
}

// List returns the subject's columns in canonical order with their cards
// nested in array order. Admins see every column across all owners.
func (s *ColumnService) List(ctx context.Context, subject Subject) ([]ColumnView, error) {
	columns, err := s.scoped(ctx, subject)
	if err != nil {
		return nil, err
	}

	var cardIDs []uuid.UUID
	for _, column := range columns {
		cardIDs = append(cardIDs, column.CardIDs...)
	}

	cards, err := s.cards.GetByIDs(ctx, cardIDs)
	if err != nil {
		return nil, err
	}

	cardsByID := make(map[uuid.UUID]model.Card, len(cards))
	var creatorIDs []uuid.UUID
	for _, card := range cards {
		cardsByID[card.ID] = card
		creatorIDs = append(creatorIDs, card.CreatedBy)
	}

	creators, err := s.creators(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ColumnView, len(columns))
	for i, column := range columns {
		view := ColumnView{Column: column, Cards: make([]CardView, 0, len(column.CardIDs))}
		for _, id := range column.CardIDs {
			card, ok := cardsByID[id]
			if !ok {
				// Dangling reference from an interrupted delete; skip it.
				continue
			}
			view.Cards = append(view.Cards, CardView{Card: card, Creator: creators[card.CreatedBy]})
		}
		views[i] = view
	}
	return views, nil
}

// Create adds a column at the end of the subject's own scope. Creation is
// always scope-local, admins included.
func (s *ColumnService) Create(ctx context.Context, subject Subject, name string) (*model.Column, error) {
	position, err := s.columns.NextPosition(ctx, subject.ID)
	if err != nil {
		return nil, err
	}

	column := &model.Column{
		Name:     name,
		UserID:   subject.ID,
		CardIDs:  []uuid.UUID{},
		Position: position,
	}

	if err := s.columns.Create(ctx, column); err != nil {
		return nil, err
	}
	return column, nil
}

// Rename overwrites the column name in place. Only the owner or an admin
// may rename; position is untouched.
func (s *ColumnService) Rename(ctx context.Context, subject Subject, columnID uuid.UUID, newName string) error {
	column, err := s.columns.GetByID(ctx, columnID)
	if err != nil {
		return err
	}
	if column == nil {
		return repository.ErrColumnNotFound
	}
	if !subject.CanMutate(column.UserID) {
		return ErrForbidden
	}

	column.Name = newName
	return s.columns.Update(ctx, column)
}

// Delete removes a column and every card it references. Cards go first so
// an interruption leaves at worst an already-empty column, never orphans.
func (s *ColumnService) Delete(ctx context.Context, columnID uuid.UUID) error {
	column, err := s.columns.GetByID(ctx, columnID)
	if err != nil {
		return err
	}
	if column == nil {
		return repository.ErrColumnNotFound
	}

	for _, cardID := range column.CardIDs {
		if err := s.cards.Delete(ctx, cardID); err != nil && !errors.Is(err, repository.ErrCardNotFound) {
			return err
		}
	}

	return s.columns.Delete(ctx, columnID)
}

// Move relocates a column to targetIndex within the subject's scope and
// rewrites every position to its new index, so the scope's positions are
// exactly 0..N-1 afterwards. Out-of-range targets are clamped, not
// rejected: drag clients race against concurrent edits and a hard failure
// would surface as a broken drop.
func (s *ColumnService) Move(ctx context.Context, subject Subject, columnID uuid.UUID, targetIndex int) error {
	columns, err := s.scoped(ctx, subject)
	if err != nil {
		return err
	}

	from := -1
	for i, column := range columns {
		if column.ID == columnID {
			from = i
			break
		}
	}
	if from == -1 {
		return repository.ErrColumnNotFound
	}

	if clamped := ordering.ClampIndex(targetIndex, len(columns)-1); clamped != targetIndex {
		log.Printf("column move: clamped target index %d to %d for column %s", targetIndex, clamped, columnID)
	}

	reordered := ordering.Reorder(columns, from, targetIndex)
	for i := range reordered {
		if reordered[i].Position == i {
			continue
		}
		if err := s.columns.UpdatePosition(ctx, reordered[i].ID, i); err != nil {
			return err
		}
	}
	return nil
}

func (s *ColumnService) scoped(ctx context.Context, subject Subject) ([]model.Column, error) {
	if subject.IsAdmin {
		return s.columns.GetAll(ctx)
	}
	return s.columns.GetByOwner(ctx, subject.ID)
}

func (s *ColumnService) creators(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*UserSummary, error) {
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	summaries := make(map[uuid.UUID]*UserSummary, len(users))
	for _, user := range users {
		summaries[user.ID] = &UserSummary{ID: user.ID, Username: user.Username, Avatar: user.Avatar}
	}
	return summaries, nil
}
