package memory

import (
	"sync"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/movie"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/theatre"
)

// Store は単一プロセス内の中央レジストリを表す
//
// ドメインモデル自体は同時に1つの論理的な呼び出し元しか想定していない。
// リポジトリ経由の登録・取得と、WithLockで囲まれた予約・キャンセルの
// 状態遷移はこの単一ミューテックスで直列化される。
// それ以外のエンティティ読み取りはロックを取らず、
// エンティティ単位の排他やトランザクションは提供しない。
type Store struct {
	mu sync.Mutex

	theatresByLocation map[string]*theatre.Theatre
	theatreOrder       []string

	shows     []*show.Show
	customers []*customer.Customer
	movies    []*movie.Movie
}

// WithLock はレジストリのミューテックスを保持したままfnを実行する
// 空席確認から台帳記録までの遷移を1つの臨界区間にまとめるために使う。
// fn内からリポジトリを呼ぶとデッドロックする
func (s *Store) WithLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// NewStore は空のレジストリを作成する
func NewStore() *Store {
	return &Store{
		theatresByLocation: make(map[string]*theatre.Theatre),
		theatreOrder:       make([]string, 0),
		shows:              make([]*show.Show, 0),
		customers:          make([]*customer.Customer, 0),
		movies:             make([]*movie.Movie, 0),
	}
}
