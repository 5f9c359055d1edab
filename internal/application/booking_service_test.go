package application

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/booking"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/movie"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/infrastructure/memory"
)

// === Mock implementations ===

// MockNotifier implements Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyBooking(c *customer.Customer, showID, seatID string) {
	m.Called(c, showID, seatID)
}

func (m *MockNotifier) NotifyCancellation(c *customer.Customer, showID, seatID string) {
	m.Called(c, showID, seatID)
}

func (m *MockNotifier) NotifyNewMovie(c *customer.Customer, mv *movie.Movie) {
	m.Called(c, mv)
}

func testPricing() Pricing {
	return Pricing{Economy: 100, Premium: 190}
}

type bookingTestEnv struct {
	service      *BookingService
	customerRepo customer.Repository
	showRepo     show.Repository
	notifier     *MockNotifier
}

func setupBookingTest(t *testing.T) *bookingTestEnv {
	t.Helper()

	store := memory.NewStore()
	customerRepo := memory.NewCustomerRepository(store)
	showRepo := memory.NewShowRepository(store)
	notifier := new(MockNotifier)
	notifier.On("NotifyBooking", mock.Anything, mock.Anything, mock.Anything).Maybe()
	notifier.On("NotifyCancellation", mock.Anything, mock.Anything, mock.Anything).Maybe()

	service := NewBookingService(
		customerRepo, showRepo, NewPaymentService(nil), notifier, store, testPricing(), nil,
	)

	return &bookingTestEnv{
		service:      service,
		customerRepo: customerRepo,
		showRepo:     showRepo,
		notifier:     notifier,
	}
}

func (env *bookingTestEnv) registerShow(t *testing.T, ctx context.Context) *show.Show {
	t.Helper()
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	sh := show.NewShow("SH1", start, start.Add(2*time.Hour), "H1", "M1", "T1")
	require.NoError(t, sh.AddSeat(seat.NewSeat("A12", seat.TypeEconomy, seat.StatusAvailable)))
	require.NoError(t, sh.AddSeat(seat.NewSeat("A13", seat.TypeEconomy, seat.StatusAvailable)))
	require.NoError(t, sh.AddSeat(seat.NewSeat("A14", seat.TypePremium, seat.StatusOccupied)))
	require.NoError(t, env.showRepo.Create(ctx, sh))
	return sh
}

func (env *bookingTestEnv) registerCustomer(t *testing.T, ctx context.Context, cash int) *customer.Customer {
	t.Helper()
	c := customer.NewCustomer("C1", "山田太郎", "taro@example.com", cash)
	require.NoError(t, env.customerRepo.Create(ctx, c))
	return c
}

func TestBookingService_MakeBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("エコノミー座席を現金で予約できる", func(t *testing.T) {
		env := setupBookingTest(t)
		env.registerShow(t, ctx)
		c := env.registerCustomer(t, ctx, 1000)

		result, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12", Method: booking.MethodCash,
		})

		require.NoError(t, err)
		assert.Equal(t, 100, result.Amount)
		assert.Equal(t, seat.TypeEconomy, result.SeatType)
		assert.Equal(t, 900, c.Cash)
		assert.Equal(t, 100, c.TotalPayable)
		assert.True(t, c.HasBooking("SH1", "A12"))
	})

	t.Run("プレミアム座席は残高に関わらずクレジットカードで予約できる", func(t *testing.T) {
		env := setupBookingTest(t)
		sh := env.registerShow(t, ctx)
		se, err := sh.Seat("A14")
		require.NoError(t, err)
		require.NoError(t, se.Release())
		c := env.registerCustomer(t, ctx, 0)

		result, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A14", Method: booking.MethodCreditCard,
		})

		require.NoError(t, err)
		assert.Equal(t, 190, result.Amount)
		assert.Equal(t, seat.TypePremium, result.SeatType)
		assert.Equal(t, 0, c.Cash)
		assert.Equal(t, 190, c.TotalPayable)
	})

	t.Run("占有済みの座席は予約できない", func(t *testing.T) {
		env := setupBookingTest(t)
		env.registerShow(t, ctx)
		env.registerCustomer(t, ctx, 1000)

		_, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A14", Method: booking.MethodCash,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, seat.ErrSeatNotAvailable)
	})

	t.Run("上映に属さない座席は予約できない", func(t *testing.T) {
		env := setupBookingTest(t)
		env.registerShow(t, ctx)
		env.registerCustomer(t, ctx, 1000)

		_, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "Z99", Method: booking.MethodCash,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, seat.ErrSeatNotAvailable)
	})

	t.Run("存在しない顧客はエラーになる", func(t *testing.T) {
		env := setupBookingTest(t)
		env.registerShow(t, ctx)

		_, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C9", ShowID: "SH1", SeatID: "A12", Method: booking.MethodCash,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	})

	t.Run("存在しない上映はエラーになる", func(t *testing.T) {
		env := setupBookingTest(t)
		env.registerCustomer(t, ctx, 1000)

		_, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH9", SeatID: "A12", Method: booking.MethodCash,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, show.ErrShowNotFound)
	})

	t.Run("請求に失敗しても座席は確保されたまま残る", func(t *testing.T) {
		env := setupBookingTest(t)
		sh := env.registerShow(t, ctx)
		c := env.registerCustomer(t, ctx, 50)

		_, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12", Method: booking.MethodCash,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, booking.ErrPaymentFailed)
		assert.ErrorIs(t, err, customer.ErrInsufficientFunds)

		// 座席は解放されず、台帳にも記録されない
		assert.False(t, sh.IsAvailable("A12"))
		assert.False(t, c.HasBooking("SH1", "A12"))
		assert.Equal(t, 50, c.Cash)
		assert.Equal(t, 0, c.TotalPayable)
	})

	t.Run("予約確定時に通知される", func(t *testing.T) {
		env := setupBookingTest(t)
		env.registerShow(t, ctx)
		env.registerCustomer(t, ctx, 1000)

		_, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12", Method: booking.MethodCash,
		})

		require.NoError(t, err)
		env.notifier.AssertCalled(t, "NotifyBooking", mock.Anything, "SH1", "A12")
	})
}

func TestBookingService_ConcurrentBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("10並行リクエストで1席のみ予約成功", func(t *testing.T) {
		env := setupBookingTest(t)
		env.registerShow(t, ctx)

		const numGoroutines = 10
		for i := 0; i < numGoroutines; i++ {
			c := customer.NewCustomer(fmt.Sprintf("C%d", i+1), "山田太郎", "taro@example.com", 1000)
			require.NoError(t, env.customerRepo.Create(ctx, c))
		}

		var successCount int32
		var unavailableCount int32
		var wg sync.WaitGroup

		for i := 0; i < numGoroutines; i++ {
			wg.Add(1)
			go func(num int) {
				defer wg.Done()
				_, err := env.service.MakeBooking(ctx, MakeBookingInput{
					CustomerID: fmt.Sprintf("C%d", num+1),
					ShowID:     "SH1",
					SeatID:     "A12",
					Method:     booking.MethodCash,
				})
				if err == nil {
					atomic.AddInt32(&successCount, 1)
				} else if assert.ErrorIs(t, err, seat.ErrSeatNotAvailable) {
					atomic.AddInt32(&unavailableCount, 1)
				}
			}(i)
		}
		wg.Wait()

		// 二重販売は起きない
		assert.Equal(t, int32(1), successCount, "成功は1つだけ")
		assert.Equal(t, int32(numGoroutines-1), unavailableCount, "残りは全て空席なし")

		sh, err := env.showRepo.GetByID(ctx, "SH1")
		require.NoError(t, err)
		assert.False(t, sh.IsAvailable("A12"))

		// 台帳に記録されたのは成功した1人だけ
		booked := 0
		for i := 0; i < numGoroutines; i++ {
			c, err := env.customerRepo.GetByID(ctx, fmt.Sprintf("C%d", i+1))
			require.NoError(t, err)
			if c.HasBooking("SH1", "A12") {
				booked++
				assert.Equal(t, 900, c.Cash)
			}
		}
		assert.Equal(t, 1, booked)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("キャンセルで座席が解放され台帳から消える", func(t *testing.T) {
		env := setupBookingTest(t)
		sh := env.registerShow(t, ctx)
		c := env.registerCustomer(t, ctx, 1000)

		_, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12", Method: booking.MethodCash,
		})
		require.NoError(t, err)

		err = env.service.CancelBooking(ctx, CancelBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12",
		})

		require.NoError(t, err)
		assert.True(t, sh.IsAvailable("A12"))
		assert.False(t, c.HasBooking("SH1", "A12"))
		_, ok := c.Bookings()["SH1"]
		assert.False(t, ok)
	})

	t.Run("キャンセルしても返金されない", func(t *testing.T) {
		env := setupBookingTest(t)
		env.registerShow(t, ctx)
		c := env.registerCustomer(t, ctx, 1000)

		_, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12", Method: booking.MethodCash,
		})
		require.NoError(t, err)

		err = env.service.CancelBooking(ctx, CancelBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12",
		})

		require.NoError(t, err)
		assert.Equal(t, 900, c.Cash)
		assert.Equal(t, 100, c.TotalPayable)
	})

	t.Run("予約していない座席のキャンセルは何も変えない", func(t *testing.T) {
		env := setupBookingTest(t)
		sh := env.registerShow(t, ctx)
		env.registerCustomer(t, ctx, 1000)

		err := env.service.CancelBooking(ctx, CancelBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, customer.ErrBookingNotFound)
		assert.True(t, sh.IsAvailable("A12"))
	})

	t.Run("他人が確保した座席はキャンセルできない", func(t *testing.T) {
		env := setupBookingTest(t)
		sh := env.registerShow(t, ctx)
		env.registerCustomer(t, ctx, 1000)

		// A14 は別経路で占有済み
		err := env.service.CancelBooking(ctx, CancelBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A14",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, customer.ErrBookingNotFound)
		assert.False(t, sh.IsAvailable("A14"))
	})

	t.Run("キャンセル時に通知される", func(t *testing.T) {
		env := setupBookingTest(t)
		env.registerShow(t, ctx)
		env.registerCustomer(t, ctx, 1000)

		_, err := env.service.MakeBooking(ctx, MakeBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12", Method: booking.MethodCash,
		})
		require.NoError(t, err)

		err = env.service.CancelBooking(ctx, CancelBookingInput{
			CustomerID: "C1", ShowID: "SH1", SeatID: "A12",
		})

		require.NoError(t, err)
		env.notifier.AssertCalled(t, "NotifyCancellation", mock.Anything, "SH1", "A12")
	})
}

func TestPricing_PriceFor(t *testing.T) {
	pricing := testPricing()

	assert.Equal(t, 100, pricing.PriceFor(seat.TypeEconomy))
	assert.Equal(t, 190, pricing.PriceFor(seat.TypePremium))
}
