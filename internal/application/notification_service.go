package application

import (
	"go.uber.org/zap"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/movie"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/pkg/logger"
)

// Notifier は顧客への通知インターフェース
// 通知は投げっぱなしで、失敗しても予約処理には影響しない
type Notifier interface {
	NotifyBooking(c *customer.Customer, showID, seatID string)
	NotifyCancellation(c *customer.Customer, showID, seatID string)
	NotifyNewMovie(c *customer.Customer, m *movie.Movie)
}

// LogNotificationService は構造化ログへ通知を出力するNotifier実装
type LogNotificationService struct{}

// NewLogNotificationService は新しいLogNotificationServiceを作成する
func NewLogNotificationService() *LogNotificationService {
	return &LogNotificationService{}
}

// NotifyBooking は予約確定を通知する
func (s *LogNotificationService) NotifyBooking(c *customer.Customer, showID, seatID string) {
	logger.Info("予約確定通知",
		zap.String("email", c.Email),
		zap.String("show_id", showID),
		zap.String("seat_id", seatID),
	)
}

// NotifyCancellation は予約キャンセルを通知する
func (s *LogNotificationService) NotifyCancellation(c *customer.Customer, showID, seatID string) {
	logger.Info("予約キャンセル通知",
		zap.String("email", c.Email),
		zap.String("show_id", showID),
		zap.String("seat_id", seatID),
	)
}

// NotifyNewMovie は新作映画の追加を通知する
func (s *LogNotificationService) NotifyNewMovie(c *customer.Customer, m *movie.Movie) {
	logger.Info("新作映画通知",
		zap.String("email", c.Email),
		zap.String("movie_id", m.ID),
		zap.String("title", m.Title),
	)
}
