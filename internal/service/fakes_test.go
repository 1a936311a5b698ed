package service_test

import (
	"context"
	"sort"
	"time"

	"cardboard/internal/model"
	"cardboard/internal/repository"
	"cardboard/internal/service"

	"github.com/google/uuid"
)

// In-memory stores implementing the service store interfaces. Writes are
// copy-in/copy-out so tests observe only what was persisted, and listing
// applies the same (position, updated_at) order as the real repositories.

type clock struct {
	now time.Time
}

func (c *clock) tick() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

type fakeColumnStore struct {
	clock   *clock
	columns map[uuid.UUID]model.Column
}

func newFakeColumnStore(clock *clock) *fakeColumnStore {
	return &fakeColumnStore{clock: clock, columns: make(map[uuid.UUID]model.Column)}
}

var _ service.ColumnStore = (*fakeColumnStore)(nil)

func (f *fakeColumnStore) Create(_ context.Context, column *model.Column) error {
	if column.ID == uuid.Nil {
		column.ID = uuid.New()
	}
	column.CreatedAt = f.clock.tick()
	column.UpdatedAt = column.CreatedAt
	f.columns[column.ID] = *column
	return nil
}

func (f *fakeColumnStore) GetByID(_ context.Context, id uuid.UUID) (*model.Column, error) {
	column, ok := f.columns[id]
	if !ok {
		return nil, nil
	}
	return &column, nil
}

func (f *fakeColumnStore) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Column, error) {
	var out []model.Column
	for _, column := range f.columns {
		if column.UserID == ownerID {
			out = append(out, column)
		}
	}
	sortColumns(out)
	return out, nil
}

func (f *fakeColumnStore) GetAll(_ context.Context) ([]model.Column, error) {
	var out []model.Column
	for _, column := range f.columns {
		out = append(out, column)
	}
	sortColumns(out)
	return out, nil
}

func (f *fakeColumnStore) Update(_ context.Context, column *model.Column) error {
	column.UpdatedAt = f.clock.tick()
	f.columns[column.ID] = *column
	return nil
}

func (f *fakeColumnStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.columns, id)
	return nil
}

func (f *fakeColumnStore) NextPosition(_ context.Context, ownerID uuid.UUID) (int, error) {
	next := 0
	for _, column := range f.columns {
		if column.UserID == ownerID && column.Position+1 > next {
			next = column.Position + 1
		}
	}
	return next, nil
}

func (f *fakeColumnStore) UpdatePosition(_ context.Context, id uuid.UUID, position int) error {
	column, ok := f.columns[id]
	if !ok {
		return repository.ErrColumnNotFound
	}
	column.Position = position
	column.UpdatedAt = f.clock.tick()
	f.columns[id] = column
	return nil
}

func (f *fakeColumnStore) UpdateCardIDs(_ context.Context, id uuid.UUID, cardIDs []uuid.UUID) error {
	column, ok := f.columns[id]
	if !ok {
		return repository.ErrColumnNotFound
	}
	column.CardIDs = append([]uuid.UUID{}, cardIDs...)
	column.UpdatedAt = f.clock.tick()
	f.columns[id] = column
	return nil
}

func sortColumns(columns []model.Column) {
	sort.SliceStable(columns, func(i, j int) bool {
		if columns[i].Position != columns[j].Position {
			return columns[i].Position < columns[j].Position
		}
		return columns[i].UpdatedAt.Before(columns[j].UpdatedAt)
	})
}

type fakeCardStore struct {
	clock *clock
	cards map[uuid.UUID]model.Card
}

func newFakeCardStore(clock *clock) *fakeCardStore {
	return &fakeCardStore{clock: clock, cards: make(map[uuid.UUID]model.Card)}
}

var _ service.CardStore = (*fakeCardStore)(nil)

func (f *fakeCardStore) Create(_ context.Context, card *model.Card) error {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	card.CreatedAt = f.clock.tick()
	card.UpdatedAt = card.CreatedAt
	f.cards[card.ID] = *card
	return nil
}

func (f *fakeCardStore) GetByID(_ context.Context, id uuid.UUID) (*model.Card, error) {
	card, ok := f.cards[id]
	if !ok {
		return nil, repository.ErrCardNotFound
	}
	return &card, nil
}

func (f *fakeCardStore) GetByIDs(_ context.Context, ids []uuid.UUID) ([]model.Card, error) {
	var out []model.Card
	for _, id := range ids {
		if card, ok := f.cards[id]; ok {
			out = append(out, card)
		}
	}
	return out, nil
}

func (f *fakeCardStore) Update(_ context.Context, card *model.Card) error {
	if _, ok := f.cards[card.ID]; !ok {
		return repository.ErrCardNotFound
	}
	card.UpdatedAt = f.clock.tick()
	f.cards[card.ID] = *card
	return nil
}

func (f *fakeCardStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.cards[id]; !ok {
		return repository.ErrCardNotFound
	}
	delete(f.cards, id)
	return nil
}

type fakeUserStore struct {
	users map[uuid.UUID]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]model.User)}
}

var _ service.UserStore = (*fakeUserStore)(nil)

func (f *fakeUserStore) add(username string) uuid.UUID {
	id := uuid.New()
	f.users[id] = model.User{ID: id, Username: username, Avatar: "/avatars/" + username + ".png"}
	return id
}

func (f *fakeUserStore) GetByIDs(_ context.Context, ids []uuid.UUID) ([]model.User, error) {
	seen := make(map[uuid.UUID]bool)
	var out []model.User
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if user, ok := f.users[id]; ok {
			out = append(out, user)
		}
	}
	return out, nil
}

// fixture wires the three services over shared fakes.
type fixture struct {
	columns  *fakeColumnStore
	cards    *fakeCardStore
	users    *fakeUserStore
	columnSv *service.ColumnService
	cardSv   *service.CardService
	comments *service.CommentService
}

func newFixture() *fixture {
	clock := newClock()
	columns := newFakeColumnStore(clock)
	cards := newFakeCardStore(clock)
	users := newFakeUserStore()
	return &fixture{
		columns:  columns,
		cards:    cards,
		users:    users,
		columnSv: service.NewColumnService(columns, cards, users),
		cardSv:   service.NewCardService(columns, cards, users),
		comments: service.NewCommentService(cards),
	}
}
