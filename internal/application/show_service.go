package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/theatre"
)

// ShowService は上映の登録と座席管理を行う
type ShowService struct {
	showRepo    show.Repository
	theatreRepo theatre.Repository
}

// NewShowService は新しいShowServiceを作成する
func NewShowService(sr show.Repository, tr theatre.Repository) *ShowService {
	return &ShowService{showRepo: sr, theatreRepo: tr}
}

// RegisterShowInput は上映登録の入力
type RegisterShowInput struct {
	ID              string
	StartAt         time.Time
	EndAt           time.Time
	MovieID         string
	TheatreLocation string
	HallID          string
}

// RegisterShow は上映を登録する
// 劇場の所在地とホールIDが指定された場合はそのホールにも紐付ける
func (s *ShowService) RegisterShow(ctx context.Context, input RegisterShowInput) (*show.Show, error) {
	var theatreID string
	var hall *theatre.Hall

	if input.TheatreLocation != "" {
		t, err := s.theatreRepo.GetByLocation(ctx, input.TheatreLocation)
		if err != nil {
			return nil, fmt.Errorf("劇場取得に失敗: %w", err)
		}
		theatreID = t.ID
		if input.HallID != "" {
			h, err := t.Hall(input.HallID)
			if err != nil {
				return nil, err
			}
			hall = h
		}
	}

	sh := show.NewShow(input.ID, input.StartAt, input.EndAt, input.HallID, input.MovieID, theatreID)
	if err := sh.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}
	if err := s.showRepo.Create(ctx, sh); err != nil {
		return nil, fmt.Errorf("上映登録に失敗: %w", err)
	}

	if hall != nil {
		if err := hall.AddShow(sh.ID); err != nil {
			return nil, err
		}
	}
	return sh, nil
}

// GetShow はIDから上映を取得する
func (s *ShowService) GetShow(ctx context.Context, id string) (*show.Show, error) {
	return s.showRepo.GetByID(ctx, id)
}

// ListShows は上映一覧を登録順で取得する
func (s *ShowService) ListShows(ctx context.Context) ([]*show.Show, error) {
	return s.showRepo.List(ctx)
}

// AddSeatInput は座席追加の入力
type AddSeatInput struct {
	ShowID string
	SeatID string
	Type   seat.Type
	Status seat.Status
}

// AddSeat は上映に座席を1つ追加する
func (s *ShowService) AddSeat(ctx context.Context, input AddSeatInput) (*seat.Seat, error) {
	sh, err := s.showRepo.GetByID(ctx, input.ShowID)
	if err != nil {
		return nil, fmt.Errorf("上映取得に失敗: %w", err)
	}
	status := input.Status
	if status == "" {
		status = seat.StatusAvailable
	}
	se := seat.NewSeat(input.SeatID, input.Type, status)
	if err := sh.AddSeat(se); err != nil {
		return nil, err
	}
	return se, nil
}

// AddSeatRowInput は座席列の一括追加の入力
type AddSeatRowInput struct {
	ShowID string
	Prefix string
	Count  int
	Type   seat.Type
}

// AddSeatRow は連番の座席を一括で追加する
func (s *ShowService) AddSeatRow(ctx context.Context, input AddSeatRowInput) ([]*seat.Seat, error) {
	sh, err := s.showRepo.GetByID(ctx, input.ShowID)
	if err != nil {
		return nil, fmt.Errorf("上映取得に失敗: %w", err)
	}
	seats := make([]*seat.Seat, 0, input.Count)
	for i := 1; i <= input.Count; i++ {
		se := seat.NewSeat(fmt.Sprintf("%s%d", input.Prefix, i), input.Type, seat.StatusAvailable)
		if err := sh.AddSeat(se); err != nil {
			return nil, err
		}
		seats = append(seats, se)
	}
	return seats, nil
}

// GetSeats は上映の全座席のスナップショットを返す
func (s *ShowService) GetSeats(ctx context.Context, showID string) ([]seat.Details, error) {
	sh, err := s.showRepo.GetByID(ctx, showID)
	if err != nil {
		return nil, err
	}
	return sh.Seats(), nil
}

// GetAvailableSeats は上映の空席のスナップショットを追加順で返す
func (s *ShowService) GetAvailableSeats(ctx context.Context, showID string) ([]seat.Details, error) {
	sh, err := s.showRepo.GetByID(ctx, showID)
	if err != nil {
		return nil, err
	}
	return sh.AvailableSeats(), nil
}
