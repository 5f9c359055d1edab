package theatre

import "errors"

// Theatre ドメインのエラー定義
var (
	ErrTheatreNotFound   = errors.New("劇場が見つかりません")
	ErrTheatreIDRequired = errors.New("劇場IDは必須です")
	ErrLocationRequired  = errors.New("所在地は必須です")
	ErrHallNotFound      = errors.New("ホールが見つかりません")
	ErrHallAlreadyAdded  = errors.New("ホールは既に追加されています")
	ErrShowAlreadyInHall = errors.New("上映は既にホールに追加されています")
	ErrShowNotInHall     = errors.New("上映はホールに存在しません")
)
