package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/movie"
)

// MovieRepository はレジストリ上の映画リポジトリ実装
type MovieRepository struct {
	store *Store
}

// NewMovieRepository は新しいMovieRepositoryを作成する
func NewMovieRepository(store *Store) *MovieRepository {
	return &MovieRepository{store: store}
}

// Create は映画を登録する
// IDが空の場合は採番する
func (r *MovieRepository) Create(ctx context.Context, m *movie.Movie) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	for _, existing := range r.store.movies {
		if existing.ID == m.ID {
			return movie.ErrMovieAlreadyExists
		}
	}
	r.store.movies = append(r.store.movies, m)
	return nil
}

// GetByID はIDから映画を取得する
func (r *MovieRepository) GetByID(ctx context.Context, id string) (*movie.Movie, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, movie.ErrMovieNotFound
}

// List は映画一覧を登録順で返す
func (r *MovieRepository) List(ctx context.Context) ([]*movie.Movie, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	movies := make([]*movie.Movie, len(r.store.movies))
	copy(movies, r.store.movies)
	return movies, nil
}
