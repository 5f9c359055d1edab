package show

import (
	"time"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/seat"
)

// Show は上映エンティティを表す
// 上映は自身の座席リストを所有し、座席は追加順に保持される
type Show struct {
	ID        string
	StartAt   time.Time
	EndAt     time.Time
	HallID    string
	MovieID   string
	TheatreID string
	seats     []*seat.Seat
}

// NewShow は新しい上映を作成する
func NewShow(id string, startAt, endAt time.Time, hallID, movieID, theatreID string) *Show {
	return &Show{
		ID:        id,
		StartAt:   startAt,
		EndAt:     endAt,
		HallID:    hallID,
		MovieID:   movieID,
		TheatreID: theatreID,
		seats:     make([]*seat.Seat, 0),
	}
}

// AddSeat は座席を上映に追加する
func (s *Show) AddSeat(se *seat.Seat) error {
	if err := se.Validate(); err != nil {
		return err
	}
	if _, ok := s.findSeat(se.ID); ok {
		return ErrSeatAlreadyAdded
	}
	s.seats = append(s.seats, se)
	return nil
}

// RemoveSeat は座席を上映から取り除く
func (s *Show) RemoveSeat(seatID string) error {
	idx, ok := s.findSeat(seatID)
	if !ok {
		return seat.ErrSeatNotFound
	}
	s.seats = append(s.seats[:idx], s.seats[idx+1:]...)
	return nil
}

// Seat はIDから座席を取得する
func (s *Show) Seat(seatID string) (*seat.Seat, error) {
	idx, ok := s.findSeat(seatID)
	if !ok {
		return nil, seat.ErrSeatNotFound
	}
	return s.seats[idx], nil
}

// IsAvailable は座席がこの上映に属し、かつ予約可能かを返す
func (s *Show) IsAvailable(seatID string) bool {
	idx, ok := s.findSeat(seatID)
	if !ok {
		return false
	}
	return s.seats[idx].IsAvailable()
}

// Seats は全座席のスナップショットを追加順で返す
func (s *Show) Seats() []seat.Details {
	details := make([]seat.Details, 0, len(s.seats))
	for _, se := range s.seats {
		details = append(details, se.Details())
	}
	return details
}

// AvailableSeats は予約可能な座席のスナップショットを追加順で返す
// ライブビューではなく呼び出し時点のコピーを返す
func (s *Show) AvailableSeats() []seat.Details {
	details := make([]seat.Details, 0, len(s.seats))
	for _, se := range s.seats {
		if se.IsAvailable() {
			details = append(details, se.Details())
		}
	}
	return details
}

// CountAvailable は予約可能な座席数を返す
func (s *Show) CountAvailable() int {
	count := 0
	for _, se := range s.seats {
		if se.IsAvailable() {
			count++
		}
	}
	return count
}

// Validate は上映の検証を行う
func (s *Show) Validate() error {
	if s.ID == "" {
		return ErrShowIDRequired
	}
	// 終了時刻は開始時刻より後でなければならない（同時刻は不可）
	if !s.EndAt.After(s.StartAt) {
		return ErrInvalidShowTime
	}
	return nil
}

func (s *Show) findSeat(seatID string) (int, bool) {
	for i, se := range s.seats {
		if se.ID == seatID {
			return i, true
		}
	}
	return 0, false
}
