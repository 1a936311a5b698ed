package service

import (
	"context"
	"strings"
	"time"

	"cardboard/internal/model"

	"github.com/google/uuid"
)

// CommentService owns the ordered comment list embedded in a card. The
// list is append-only-by-default: comments are edited or removed by id,
// never reordered, so their order stays strictly chronological.
type CommentService struct {
	cards CardStore
}

func NewCommentService(cards CardStore) *CommentService {
	return &CommentService{cards: cards}
}

// Add appends a comment to the card. Text must be non-empty after
// trimming.
func (s *CommentService) Add(ctx context.Context, subject Subject, cardID uuid.UUID, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidInput
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := model.Comment{
		ID:        uuid.New(),
		Text:      text,
		CreatedBy: subject.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	card.Comments = append(card.Comments, comment)

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Edit replaces a comment's text in place. Only the comment's author or
// an admin may edit.
func (s *CommentService) Edit(ctx context.Context, subject Subject, cardID, commentID uuid.UUID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrInvalidInput
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return err
	}

	i := commentIndex(card.Comments, commentID)
	if i == -1 {
		return ErrCommentNotFound
	}
	if !subject.CanMutate(card.Comments[i].CreatedBy) {
		return ErrForbidden
	}

	card.Comments[i].Text = text
	card.Comments[i].UpdatedAt = time.Now().UTC()
	return s.cards.Update(ctx, card)
}

// Delete filters the comment out of the card's list. Only the comment's
// author or an admin may delete.
func (s *CommentService) Delete(ctx context.Context, subject Subject, cardID, commentID uuid.UUID) error {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return err
	}

	i := commentIndex(card.Comments, commentID)
	if i == -1 {
		return ErrCommentNotFound
	}
	if !subject.CanMutate(card.Comments[i].CreatedBy) {
		return ErrForbidden
	}

	card.Comments = append(card.Comments[:i], card.Comments[i+1:]...)
	return s.cards.Update(ctx, card)
}

func commentIndex(comments []model.Comment, id uuid.UUID) int {
	for i, comment := range comments {
		if comment.ID == id {
			return i
		}
	}
	return -1
}
