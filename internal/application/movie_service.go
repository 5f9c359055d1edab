package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/movie"
)

// MovieService は映画カタログの登録と照会を行う
type MovieService struct {
	movieRepo    movie.Repository
	customerRepo customer.Repository
	notifier     Notifier
}

// NewMovieService は新しいMovieServiceを作成する
func NewMovieService(mr movie.Repository, cr customer.Repository, n Notifier) *MovieService {
	return &MovieService{movieRepo: mr, customerRepo: cr, notifier: n}
}

// RegisterMovieInput は映画登録の入力
type RegisterMovieInput struct {
	ID          string
	Title       string
	Genre       string
	DurationMin int
	Language    string
	ReleaseDate time.Time
}

// RegisterMovie は映画を登録し、登録済みの全顧客へ新作を通知する
func (s *MovieService) RegisterMovie(ctx context.Context, input RegisterMovieInput) (*movie.Movie, error) {
	m := movie.NewMovie(input.ID, input.Title, input.Genre, input.DurationMin, input.Language, input.ReleaseDate)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}
	if err := s.movieRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("映画登録に失敗: %w", err)
	}

	// 通知は投げっぱなしで、失敗しても登録は成立している
	customers, err := s.customerRepo.List(ctx)
	if err == nil {
		for _, c := range customers {
			s.notifier.NotifyNewMovie(c, m)
		}
	}
	return m, nil
}

// GetMovie はIDから映画を取得する
func (s *MovieService) GetMovie(ctx context.Context, id string) (*movie.Movie, error) {
	return s.movieRepo.GetByID(ctx, id)
}

// ListMovies は映画一覧を登録順で取得する
func (s *MovieService) ListMovies(ctx context.Context) ([]*movie.Movie, error) {
	return s.movieRepo.List(ctx)
}
