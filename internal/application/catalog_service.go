package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/movie"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/theatre"
)

// SearchCriteria はカタログ検索の条件種別を表す
type SearchCriteria string

const (
	CriteriaTitle    SearchCriteria = "title"
	CriteriaLocation SearchCriteria = "location"
	CriteriaGenre    SearchCriteria = "genre"
	CriteriaLanguage SearchCriteria = "language"
)

// CatalogService は登録済み上映の線形走査による検索を提供する
// すべての条件は大文字小文字を区別しない完全一致で、結果は登録順を保つ
type CatalogService struct {
	showRepo    show.Repository
	movieRepo   movie.Repository
	theatreRepo theatre.Repository
}

// NewCatalogService は新しいCatalogServiceを作成する
func NewCatalogService(sr show.Repository, mr movie.Repository, tr theatre.Repository) *CatalogService {
	return &CatalogService{showRepo: sr, movieRepo: mr, theatreRepo: tr}
}

// Search は条件種別に応じた検索へ振り分ける
// 未知の条件種別は空の結果を返す
func (s *CatalogService) Search(ctx context.Context, criteria SearchCriteria, value string) ([]*show.Show, error) {
	switch criteria {
	case CriteriaTitle:
		return s.SearchByTitle(ctx, value)
	case CriteriaLocation:
		return s.SearchByLocation(ctx, value)
	case CriteriaGenre:
		return s.SearchByGenre(ctx, value)
	case CriteriaLanguage:
		return s.SearchByLanguage(ctx, value)
	default:
		return []*show.Show{}, nil
	}
}

// SearchByTitle は映画タイトルで上映を検索する
func (s *CatalogService) SearchByTitle(ctx context.Context, title string) ([]*show.Show, error) {
	return s.filterByMovie(ctx, func(m *movie.Movie) bool {
		return strings.EqualFold(m.Title, title)
	})
}

// SearchByGenre はジャンルで上映を検索する
func (s *CatalogService) SearchByGenre(ctx context.Context, genre string) ([]*show.Show, error) {
	return s.filterByMovie(ctx, func(m *movie.Movie) bool {
		return strings.EqualFold(m.Genre, genre)
	})
}

// SearchByLanguage は言語で上映を検索する
func (s *CatalogService) SearchByLanguage(ctx context.Context, language string) ([]*show.Show, error) {
	return s.filterByMovie(ctx, func(m *movie.Movie) bool {
		return strings.EqualFold(m.Language, language)
	})
}

// SearchByLocation は劇場の所在地で上映を検索する
func (s *CatalogService) SearchByLocation(ctx context.Context, location string) ([]*show.Show, error) {
	shows, err := s.showRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("上映一覧の取得に失敗: %w", err)
	}
	theatres, err := s.theatreRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("劇場一覧の取得に失敗: %w", err)
	}

	locationByID := make(map[string]string, len(theatres))
	for _, t := range theatres {
		locationByID[t.ID] = t.Location
	}

	matched := make([]*show.Show, 0)
	for _, sh := range shows {
		loc, ok := locationByID[sh.TheatreID]
		if !ok {
			continue
		}
		if strings.EqualFold(loc, location) {
			matched = append(matched, sh)
		}
	}
	return matched, nil
}

// filterByMovie は映画の属性で上映を絞り込む
// 映画が未登録の上映はスキップする
func (s *CatalogService) filterByMovie(ctx context.Context, match func(*movie.Movie) bool) ([]*show.Show, error) {
	shows, err := s.showRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("上映一覧の取得に失敗: %w", err)
	}

	matched := make([]*show.Show, 0)
	for _, sh := range shows {
		m, err := s.movieRepo.GetByID(ctx, sh.MovieID)
		if err != nil {
			continue
		}
		if match(m) {
			matched = append(matched, sh)
		}
	}
	return matched, nil
}
