package show

import "errors"

// Show ドメインのエラー定義
var (
	ErrShowNotFound      = errors.New("上映が見つかりません")
	ErrShowAlreadyExists = errors.New("上映は既に登録されています")
	ErrShowIDRequired    = errors.New("上映IDは必須です")
	ErrInvalidShowTime   = errors.New("終了時刻は開始時刻より後である必要があります")
	ErrSeatAlreadyAdded  = errors.New("座席は既に追加されています")
)
