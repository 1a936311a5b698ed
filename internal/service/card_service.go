package service

import (
	"context"
	"log"
	"strings"

	"cardboard/internal/model"
	"cardboard/internal/ordering"
	"cardboard/internal/repository"

	"github.com/google/uuid"
)

const defaultCardColor = "#ffffff"

// CardService owns card placement. A card's position is never stored on
// the card itself: the holding column's reference array defines both
// membership and order, so a move is always "pull from wherever it is,
// push to exactly where asked" regardless of whether it crosses columns.
type CardService struct {
	columns ColumnStore
	cards   CardStore
	users   UserStore
}

func NewCardService(columns ColumnStore, cards CardStore, users UserStore) *CardService {
	return &CardService{
		columns: columns,
		cards:   cards,
		users:   users,
	}
}

// CommentView is a comment plus its author summary.
type CommentView struct {
	Comment model.Comment
	Creator *UserSummary
}

// CardDetail is a card with its creator and comment authors resolved.
type CardDetail struct {
	Card     model.Card
	Creator  *UserSummary
	Comments []CommentView
}

// Get returns a single card with creator summaries for the card and each
// of its comments.
func (s *CardService) Get(ctx context.Context, cardID uuid.UUID) (*CardDetail, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	creatorIDs := []uuid.UUID{card.CreatedBy}
	for _, comment := range card.Comments {
		creatorIDs = append(creatorIDs, comment.CreatedBy)
	}

	users, err := s.users.GetByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}
	summaries := make(map[uuid.UUID]*UserSummary, len(users))
	for _, user := range users {
		summaries[user.ID] = &UserSummary{ID: user.ID, Username: user.Username, Avatar: user.Avatar}
	}

	detail := &CardDetail{
		Card:     *card,
		Creator:  summaries[card.CreatedBy],
		Comments: make([]CommentView, len(card.Comments)),
	}
	for i, comment := range card.Comments {
		detail.Comments[i] = CommentView{Comment: comment, Creator: summaries[comment.CreatedBy]}
	}
	return detail, nil
}

// Create stores a new card and appends its reference to the end of the
// target column's array.
func (s *CardService) Create(ctx context.Context, subject Subject, columnID uuid.UUID, title, content, color string) (*model.Card, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}
	if color == "" {
		color = defaultCardColor
	}

	column, err := s.columns.GetByID(ctx, columnID)
	if err != nil {
		return nil, err
	}
	if column == nil {
		return nil, repository.ErrColumnNotFound
	}

	card := &model.Card{
		Title:     title,
		Content:   content,
		Color:     color,
		CreatedBy: subject.ID,
		Comments:  []model.Comment{},
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}

	if err := s.columns.UpdateCardIDs(ctx, column.ID, append(column.CardIDs, card.ID)); err != nil {
		return nil, err
	}
	return card, nil
}

// CardUpdate carries the optional fields of an edit; nil means unchanged.
type CardUpdate struct {
	Title   *string
	Content *string
}

// Edit applies a partial update. Only the creator or an admin may edit,
// and supplied fields must be non-empty after trimming.
func (s *CardService) Edit(ctx context.Context, subject Subject, cardID uuid.UUID, update CardUpdate) (*model.Card, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if !subject.CanMutate(card.CreatedBy) {
		return nil, ErrForbidden
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, ErrInvalidInput
		}
		card.Title = title
	}
	if update.Content != nil {
		content := strings.TrimSpace(*update.Content)
		if content == "" {
			return nil, ErrInvalidInput
		}
		card.Content = content
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// Delete removes the card record and pulls its reference from every column
// holding it. The scan covers all columns even though the reference should
// exist in exactly one.
func (s *CardService) Delete(ctx context.Context, cardID uuid.UUID) error {
	if _, err := s.cards.GetByID(ctx, cardID); err != nil {
		return err
	}
	if err := s.cards.Delete(ctx, cardID); err != nil {
		return err
	}

	columns, err := s.columns.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, column := range columns {
		if ids, removed := ordering.Remove(column.CardIDs, cardID); removed {
			if err := s.columns.UpdateCardIDs(ctx, column.ID, ids); err != nil {
				return err
			}
		}
	}
	return nil
}

// Move removes the card's reference from whichever column currently holds
// it and inserts it at targetIndex in the target column's array. A
// same-column reorder is the same remove+reinsert, just without the second
// write target. Out-of-range indices clamp to the array bounds.
func (s *CardService) Move(ctx context.Context, cardID, targetColumnID uuid.UUID, targetIndex int) error {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return err
	}

	columns, err := s.columns.GetAll(ctx)
	if err != nil {
		return err
	}

	var target *model.Column
	for i := range columns {
		column := &columns[i]
		if column.ID == targetColumnID {
			target = column
		}

		ids, removed := ordering.Remove(column.CardIDs, card.ID)
		if !removed {
			continue
		}
		column.CardIDs = ids
		if column.ID == targetColumnID {
			// Reinserted below in the same write.
			continue
		}
		if err := s.columns.UpdateCardIDs(ctx, column.ID, ids); err != nil {
			return err
		}
	}

	if target == nil {
		return repository.ErrColumnNotFound
	}

	if clamped := ordering.ClampIndex(targetIndex, len(target.CardIDs)); clamped != targetIndex {
		log.Printf("card move: clamped target index %d to %d for card %s", targetIndex, clamped, cardID)
	}

	return s.columns.UpdateCardIDs(ctx, target.ID, ordering.InsertAt(target.CardIDs, card.ID, targetIndex))
}
