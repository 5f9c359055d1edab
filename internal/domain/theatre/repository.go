package theatre

import "context"

// Repository は劇場リポジトリのインターフェース
// 劇場は所在地をキーとして登録される
type Repository interface {
	// Save は劇場を所在地キーで登録する
	// 同じ所在地に既存の劇場がある場合は置き換える
	Save(ctx context.Context, theatre *Theatre) (replaced bool, err error)

	// GetByLocation は所在地から劇場を取得する
	GetByLocation(ctx context.Context, location string) (*Theatre, error)

	// List は劇場一覧を取得する
	List(ctx context.Context) ([]*Theatre, error)

	// Delete は所在地の劇場を削除する
	// 登録済みの上映は削除されない（カスケード削除なし）
	Delete(ctx context.Context, location string) error
}
