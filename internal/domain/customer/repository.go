package customer

import "context"

// Repository は顧客リポジトリのインターフェース
type Repository interface {
	// Create は新しい顧客を登録する
	Create(ctx context.Context, customer *Customer) error

	// GetByID はIDから顧客を取得する
	GetByID(ctx context.Context, id string) (*Customer, error)

	// List は顧客一覧を登録順で取得する
	List(ctx context.Context) ([]*Customer, error)

	// Delete は顧客を削除する
	Delete(ctx context.Context, id string) error
}
