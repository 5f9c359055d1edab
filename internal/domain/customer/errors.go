package customer

import "errors"

// Customer ドメインのエラー定義
var (
	ErrCustomerNotFound      = errors.New("顧客が見つかりません")
	ErrCustomerAlreadyExists = errors.New("顧客は既に登録されています")
	ErrCustomerIDRequired    = errors.New("顧客IDは必須です")
	ErrCustomerNameRequired  = errors.New("顧客名は必須です")
	ErrInvalidEmail          = errors.New("メールアドレスが不正です")
	ErrInvalidCash           = errors.New("現金残高は0以上である必要があります")
	ErrInsufficientFunds     = errors.New("現金残高が不足しています")
	ErrBookingNotFound       = errors.New("予約が見つかりません")
)
