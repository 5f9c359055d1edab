package seat

import "errors"

// Seat ドメインのエラー定義
var (
	ErrSeatNotFound      = errors.New("座席が見つかりません")
	ErrSeatNotAvailable  = errors.New("座席は予約できません")
	ErrSeatNotOccupied   = errors.New("座席は占有されていません")
	ErrSeatIDRequired    = errors.New("座席IDは必須です")
	ErrInvalidSeatType   = errors.New("座席種別が不正です")
	ErrInvalidSeatStatus = errors.New("座席状態が不正です")
)
