package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/theatre"
)

// TheatreRepository はレジストリ上の劇場リポジトリ実装
// 劇場は所在地をキーとして保持される
type TheatreRepository struct {
	store *Store
}

// NewTheatreRepository は新しいTheatreRepositoryを作成する
func NewTheatreRepository(store *Store) *TheatreRepository {
	return &TheatreRepository{store: store}
}

// Save は劇場を所在地キーで登録する
// 同じ所在地の既存劇場は黙って置き換えられる
func (r *TheatreRepository) Save(ctx context.Context, t *theatre.Theatre) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	_, replaced := r.store.theatresByLocation[t.Location]
	r.store.theatresByLocation[t.Location] = t
	if !replaced {
		r.store.theatreOrder = append(r.store.theatreOrder, t.Location)
	}
	return replaced, nil
}

// GetByLocation は所在地から劇場を取得する
func (r *TheatreRepository) GetByLocation(ctx context.Context, location string) (*theatre.Theatre, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.theatresByLocation[location]
	if !ok {
		return nil, theatre.ErrTheatreNotFound
	}
	return t, nil
}

// List は劇場一覧を登録順で返す
func (r *TheatreRepository) List(ctx context.Context) ([]*theatre.Theatre, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	theatres := make([]*theatre.Theatre, 0, len(r.store.theatreOrder))
	for _, location := range r.store.theatreOrder {
		theatres = append(theatres, r.store.theatresByLocation[location])
	}
	return theatres, nil
}

// Delete は所在地の劇場を登録から外す
// 劇場に属していた上映のレジストリ登録はそのまま残る
func (r *TheatreRepository) Delete(ctx context.Context, location string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.theatresByLocation[location]; !ok {
		return theatre.ErrTheatreNotFound
	}
	delete(r.store.theatresByLocation, location)
	for i, loc := range r.store.theatreOrder {
		if loc == location {
			r.store.theatreOrder = append(r.store.theatreOrder[:i], r.store.theatreOrder[i+1:]...)
			break
		}
	}
	return nil
}
