package movie

import "errors"

// Movie ドメインのエラー定義
var (
	ErrMovieNotFound      = errors.New("映画が見つかりません")
	ErrMovieAlreadyExists = errors.New("映画は既に登録されています")
	ErrMovieIDRequired    = errors.New("映画IDは必須です")
	ErrMovieTitleRequired = errors.New("映画タイトルは必須です")
	ErrInvalidDuration    = errors.New("上映時間は1分以上である必要があります")
)
