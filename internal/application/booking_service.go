package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/booking"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/pkg/metrics"
)

// Pricing は座席種別ごとの固定料金を表す
// 2段階の固定料金のみで、需要連動の価格変動はない
type Pricing struct {
	Economy int
	Premium int
}

// PriceFor は座席種別の料金を返す
// エコノミー以外はすべてプレミアム料金になる
func (p Pricing) PriceFor(t seat.Type) int {
	if t == seat.TypeEconomy {
		return p.Economy
	}
	return p.Premium
}

// Locker は予約・キャンセルの状態遷移を直列化する
// インメモリレジストリではStoreのミューテックスがこれを提供する
type Locker interface {
	WithLock(fn func() error) error
}

// BookingService は予約・キャンセルの状態遷移を司る
//
// 予約の流れは 空席確認 → 座席確保 → 請求 → 台帳記録 の順で、
// 請求に失敗しても座席は確保されたまま残る（支払待ちの悲観的ホールド）。
// 確保された座席はキャンセルによってのみ解放される。
// 空席確認から台帳記録までは1つの臨界区間として実行され、
// 並行する予約が同じ座席を二重に確保することはない。
type BookingService struct {
	customerRepo   customer.Repository
	showRepo       show.Repository
	paymentService *PaymentService
	notifier       Notifier
	locker         Locker
	pricing        Pricing
	metrics        *metrics.Metrics
}

// NewBookingService は新しいBookingServiceを作成する
func NewBookingService(
	cr customer.Repository,
	sr show.Repository,
	ps *PaymentService,
	n Notifier,
	l Locker,
	pricing Pricing,
	m *metrics.Metrics,
) *BookingService {
	return &BookingService{
		customerRepo:   cr,
		showRepo:       sr,
		paymentService: ps,
		notifier:       n,
		locker:         l,
		pricing:        pricing,
		metrics:        m,
	}
}

func (s *BookingService) withLock(fn func() error) error {
	if s.locker == nil {
		return fn()
	}
	return s.locker.WithLock(fn)
}

// MakeBookingInput は予約作成の入力
type MakeBookingInput struct {
	CustomerID string
	ShowID     string
	SeatID     string
	Method     booking.Method
}

// BookingResult は予約作成の結果
// 請求金額は0以上の値を取り、失敗はエラーで表現される
type BookingResult struct {
	CustomerID string
	ShowID     string
	SeatID     string
	SeatType   seat.Type
	Amount     int
}

// MakeBooking は座席を予約する
func (s *BookingService) MakeBooking(ctx context.Context, input MakeBookingInput) (*BookingResult, error) {
	c, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		s.record("customer_not_found")
		return nil, fmt.Errorf("顧客取得に失敗: %w", err)
	}

	sh, err := s.showRepo.GetByID(ctx, input.ShowID)
	if err != nil {
		s.record("show_not_found")
		return nil, fmt.Errorf("上映取得に失敗: %w", err)
	}

	var (
		se     *seat.Seat
		amount int
	)
	err = s.withLock(func() error {
		// 座席がこの上映に属し、かつ空席であること
		if !sh.IsAvailable(input.SeatID) {
			s.record("seat_unavailable")
			return seat.ErrSeatNotAvailable
		}

		se, err = sh.Seat(input.SeatID)
		if err != nil {
			s.record("seat_unavailable")
			return err
		}
		if err := se.Reserve(); err != nil {
			s.record("seat_unavailable")
			return err
		}

		amount = s.pricing.PriceFor(se.Type)

		if err := s.paymentService.ProcessPayment(ctx, c, amount, input.Method); err != nil {
			// 請求失敗後も座席は解放しない
			// 座席は支払待ちのまま確保され、キャンセルで明示的に解放される
			logger.Warn("請求に失敗、座席は確保されたまま",
				zap.String("customer_id", c.ID),
				zap.String("show_id", sh.ID),
				zap.String("seat_id", se.ID),
				zap.Error(err),
			)
			s.record("payment_failed")
			return fmt.Errorf("%w: %w", booking.ErrPaymentFailed, err)
		}

		c.AddBooking(sh.ID, se.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyBooking(c, sh.ID, se.ID)
	s.record("success")

	return &BookingResult{
		CustomerID: c.ID,
		ShowID:     sh.ID,
		SeatID:     se.ID,
		SeatType:   se.Type,
		Amount:     amount,
	}, nil
}

// CancelBookingInput は予約キャンセルの入力
type CancelBookingInput struct {
	CustomerID string
	ShowID     string
	SeatID     string
}

// CancelBooking は予約をキャンセルし、座席を解放する
// 返金は行わない（現金残高と支払累計は変化しない）
func (s *BookingService) CancelBooking(ctx context.Context, input CancelBookingInput) error {
	c, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		s.recordCancel("customer_not_found")
		return fmt.Errorf("顧客取得に失敗: %w", err)
	}

	sh, err := s.showRepo.GetByID(ctx, input.ShowID)
	if err != nil {
		s.recordCancel("show_not_found")
		return fmt.Errorf("上映取得に失敗: %w", err)
	}

	err = s.withLock(func() error {
		if !c.HasBooking(sh.ID, input.SeatID) {
			s.recordCancel("booking_not_found")
			return customer.ErrBookingNotFound
		}

		se, err := sh.Seat(input.SeatID)
		if err != nil {
			s.recordCancel("seat_not_found")
			return err
		}
		if err := se.Release(); err != nil {
			s.recordCancel("release_failed")
			return err
		}

		if err := c.RemoveBooking(sh.ID, se.ID); err != nil {
			// HasBooking 確認済みのため通常は到達しない
			s.recordCancel("error")
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.NotifyCancellation(c, sh.ID, input.SeatID)
	s.recordCancel("success")
	return nil
}

func (s *BookingService) record(status string) {
	if s.metrics != nil {
		s.metrics.BookingsTotal.WithLabelValues(status).Inc()
	}
}

func (s *BookingService) recordCancel(status string) {
	if s.metrics != nil {
		s.metrics.CancellationsTotal.WithLabelValues(status).Inc()
	}
}
