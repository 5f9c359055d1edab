package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
)

// ShowRepository はレジストリ上の上映リポジトリ実装
type ShowRepository struct {
	store *Store
}

// NewShowRepository は新しいShowRepositoryを作成する
func NewShowRepository(store *Store) *ShowRepository {
	return &ShowRepository{store: store}
}

// Create は上映を登録する
// IDが空の場合は採番する
func (r *ShowRepository) Create(ctx context.Context, sh *show.Show) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if sh.ID == "" {
		sh.ID = uuid.New().String()
	}
	for _, existing := range r.store.shows {
		if existing.ID == sh.ID {
			return show.ErrShowAlreadyExists
		}
	}
	r.store.shows = append(r.store.shows, sh)
	return nil
}

// GetByID はIDから上映を取得する
func (r *ShowRepository) GetByID(ctx context.Context, id string) (*show.Show, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, sh := range r.store.shows {
		if sh.ID == id {
			return sh, nil
		}
	}
	return nil, show.ErrShowNotFound
}

// List は上映一覧を登録順で返す
func (r *ShowRepository) List(ctx context.Context) ([]*show.Show, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	shows := make([]*show.Show, len(r.store.shows))
	copy(shows, r.store.shows)
	return shows, nil
}

// Delete は上映を登録から外す
func (r *ShowRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, sh := range r.store.shows {
		if sh.ID == id {
			r.store.shows = append(r.store.shows[:i], r.store.shows[i+1:]...)
			return nil
		}
	}
	return show.ErrShowNotFound
}
