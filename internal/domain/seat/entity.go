package seat

// Type は座席の種別を表す
type Type string

const (
	TypeEconomy Type = "economy"
	TypePremium Type = "premium"
)

// Status は座席の状態を表す
type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
)

// Seat は座席エンティティを表す
// 座席は1つの上映にのみ属し、上映をまたいで共有されない
type Seat struct {
	ID     string
	Type   Type
	Status Status
}

// Details は座席のスナップショットを表す
type Details struct {
	ID     string `json:"seat_id"`
	Type   Type   `json:"seat_type"`
	Status Status `json:"status"`
}

// NewSeat は新しい座席を作成する
func NewSeat(id string, seatType Type, status Status) *Seat {
	return &Seat{
		ID:     id,
		Type:   seatType,
		Status: status,
	}
}

// IsAvailable は座席が予約可能かを返す
func (s *Seat) IsAvailable() bool {
	return s.Status == StatusAvailable
}

// Reserve は座席を占有状態にする
// 既に占有されている場合は状態を変更せずエラーを返す
func (s *Seat) Reserve() error {
	if s.Status != StatusAvailable {
		return ErrSeatNotAvailable
	}
	s.Status = StatusOccupied
	return nil
}

// Release は座席を解放する
// 占有されていない場合は状態を変更せずエラーを返す
func (s *Seat) Release() error {
	if s.Status != StatusOccupied {
		return ErrSeatNotOccupied
	}
	s.Status = StatusAvailable
	return nil
}

// Details は座席のスナップショットを返す
func (s *Seat) Details() Details {
	return Details{
		ID:     s.ID,
		Type:   s.Type,
		Status: s.Status,
	}
}

// Validate は座席の検証を行う
func (s *Seat) Validate() error {
	if s.ID == "" {
		return ErrSeatIDRequired
	}
	switch s.Type {
	case TypeEconomy, TypePremium:
	default:
		return ErrInvalidSeatType
	}
	switch s.Status {
	case StatusAvailable, StatusOccupied:
	default:
		return ErrInvalidSeatStatus
	}
	return nil
}
