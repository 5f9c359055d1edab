package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/theatre"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/pkg/logger"
)

// TheatreService は劇場の登録と削除を行う
type TheatreService struct {
	theatreRepo theatre.Repository
}

// NewTheatreService は新しいTheatreServiceを作成する
func NewTheatreService(tr theatre.Repository) *TheatreService {
	return &TheatreService{theatreRepo: tr}
}

// RegisterTheatreInput は劇場登録の入力
type RegisterTheatreInput struct {
	ID       string
	Location string
	HallIDs  []string
}

// RegisterTheatre は劇場を所在地キーで登録する
// 同じ所在地に既存の劇場がある場合は黙って置き換わる
func (s *TheatreService) RegisterTheatre(ctx context.Context, input RegisterTheatreInput) (*theatre.Theatre, error) {
	t := theatre.NewTheatre(input.ID, input.Location)
	for _, hallID := range input.HallIDs {
		if err := t.AddHall(theatre.NewHall(hallID)); err != nil {
			return nil, err
		}
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}

	replaced, err := s.theatreRepo.Save(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("劇場登録に失敗: %w", err)
	}
	if replaced {
		logger.Warn("同一所在地の劇場を置き換え",
			zap.String("location", t.Location),
			zap.String("theatre_id", t.ID),
		)
	}
	return t, nil
}

// GetTheatre は所在地から劇場を取得する
func (s *TheatreService) GetTheatre(ctx context.Context, location string) (*theatre.Theatre, error) {
	return s.theatreRepo.GetByLocation(ctx, location)
}

// ListTheatres は劇場一覧を取得する
func (s *TheatreService) ListTheatres(ctx context.Context) ([]*theatre.Theatre, error) {
	return s.theatreRepo.List(ctx)
}

// RemoveTheatre は所在地の劇場を登録から外す
// 劇場に属していた上映は全体の上映一覧には残り続ける（カスケード削除なし）
func (s *TheatreService) RemoveTheatre(ctx context.Context, location string) error {
	return s.theatreRepo.Delete(ctx, location)
}
