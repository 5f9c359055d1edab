package booking

import "errors"

// Booking ドメインのエラー定義
var (
	ErrUnknownPaymentMethod = errors.New("未知の支払方法です")
	ErrPaymentFailed        = errors.New("支払処理に失敗しました")
)
