package show

import "context"

// Repository は上映リポジトリのインターフェース
type Repository interface {
	// Create は新しい上映を登録する
	Create(ctx context.Context, show *Show) error

	// GetByID はIDから上映を取得する
	GetByID(ctx context.Context, id string) (*Show, error)

	// List は上映一覧を登録順で取得する
	List(ctx context.Context) ([]*Show, error)

	// Delete は上映を削除する
	Delete(ctx context.Context, id string) error
}
