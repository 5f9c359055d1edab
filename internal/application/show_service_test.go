package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/theatre"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/infrastructure/memory"
)

func setupShowTest(t *testing.T) (*ShowService, *TheatreService) {
	t.Helper()
	store := memory.NewStore()
	showRepo := memory.NewShowRepository(store)
	theatreRepo := memory.NewTheatreRepository(store)
	return NewShowService(showRepo, theatreRepo), NewTheatreService(theatreRepo)
}

func showStart() time.Time {
	return time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
}

func TestShowService_RegisterShow(t *testing.T) {
	ctx := context.Background()

	t.Run("上映を登録できる", func(t *testing.T) {
		showService, _ := setupShowTest(t)

		sh, err := showService.RegisterShow(ctx, RegisterShowInput{
			ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour), MovieID: "M1",
		})

		require.NoError(t, err)
		assert.Equal(t, "SH1", sh.ID)

		got, err := showService.GetShow(ctx, "SH1")
		require.NoError(t, err)
		assert.Equal(t, sh, got)
	})

	t.Run("IDを省略すると採番される", func(t *testing.T) {
		showService, _ := setupShowTest(t)

		sh, err := showService.RegisterShow(ctx, RegisterShowInput{
			StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour), MovieID: "M1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, sh.ID)
	})

	t.Run("劇場とホールを指定するとホールに紐付く", func(t *testing.T) {
		showService, theatreService := setupShowTest(t)
		th, err := theatreService.RegisterTheatre(ctx, RegisterTheatreInput{
			ID: "T1", Location: "Shibuya", HallIDs: []string{"H1"},
		})
		require.NoError(t, err)

		sh, err := showService.RegisterShow(ctx, RegisterShowInput{
			ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour),
			MovieID: "M1", TheatreLocation: "Shibuya", HallID: "H1",
		})

		require.NoError(t, err)
		assert.Equal(t, "T1", sh.TheatreID)
		hall, err := th.Hall("H1")
		require.NoError(t, err)
		assert.Equal(t, []string{"SH1"}, hall.ShowIDs())
	})

	t.Run("存在しない劇場を指定するとエラーになる", func(t *testing.T) {
		showService, _ := setupShowTest(t)

		_, err := showService.RegisterShow(ctx, RegisterShowInput{
			ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour),
			MovieID: "M1", TheatreLocation: "Nowhere",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, theatre.ErrTheatreNotFound)
	})

	t.Run("存在しないホールを指定するとエラーになる", func(t *testing.T) {
		showService, theatreService := setupShowTest(t)
		_, err := theatreService.RegisterTheatre(ctx, RegisterTheatreInput{
			ID: "T1", Location: "Shibuya", HallIDs: []string{"H1"},
		})
		require.NoError(t, err)

		_, err = showService.RegisterShow(ctx, RegisterShowInput{
			ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour),
			MovieID: "M1", TheatreLocation: "Shibuya", HallID: "H9",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, theatre.ErrHallNotFound)
	})

	t.Run("同じIDの上映は登録できない", func(t *testing.T) {
		showService, _ := setupShowTest(t)
		_, err := showService.RegisterShow(ctx, RegisterShowInput{
			ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour), MovieID: "M1",
		})
		require.NoError(t, err)

		_, err = showService.RegisterShow(ctx, RegisterShowInput{
			ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour), MovieID: "M1",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, show.ErrShowAlreadyExists)
	})

	t.Run("終了時刻が開始時刻より前だと登録できない", func(t *testing.T) {
		showService, _ := setupShowTest(t)

		_, err := showService.RegisterShow(ctx, RegisterShowInput{
			ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(-time.Hour), MovieID: "M1",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, show.ErrInvalidShowTime)
	})
}

func TestShowService_AddSeat(t *testing.T) {
	ctx := context.Background()

	t.Run("状態を省略すると空席になる", func(t *testing.T) {
		showService, _ := setupShowTest(t)
		_, err := showService.RegisterShow(ctx, RegisterShowInput{
			ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour), MovieID: "M1",
		})
		require.NoError(t, err)

		se, err := showService.AddSeat(ctx, AddSeatInput{ShowID: "SH1", SeatID: "A12", Type: seat.TypeEconomy})

		require.NoError(t, err)
		assert.Equal(t, seat.StatusAvailable, se.Status)
	})

	t.Run("同じ座席は二重に追加できない", func(t *testing.T) {
		showService, _ := setupShowTest(t)
		_, err := showService.RegisterShow(ctx, RegisterShowInput{
			ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour), MovieID: "M1",
		})
		require.NoError(t, err)
		_, err = showService.AddSeat(ctx, AddSeatInput{ShowID: "SH1", SeatID: "A12", Type: seat.TypeEconomy})
		require.NoError(t, err)

		_, err = showService.AddSeat(ctx, AddSeatInput{ShowID: "SH1", SeatID: "A12", Type: seat.TypeEconomy})

		require.Error(t, err)
		assert.ErrorIs(t, err, show.ErrSeatAlreadyAdded)
	})

	t.Run("存在しない上映への追加はエラーになる", func(t *testing.T) {
		showService, _ := setupShowTest(t)

		_, err := showService.AddSeat(ctx, AddSeatInput{ShowID: "SH9", SeatID: "A12", Type: seat.TypeEconomy})

		require.Error(t, err)
		assert.ErrorIs(t, err, show.ErrShowNotFound)
	})
}

func TestShowService_AddSeatRow(t *testing.T) {
	ctx := context.Background()
	showService, _ := setupShowTest(t)
	_, err := showService.RegisterShow(ctx, RegisterShowInput{
		ID: "SH1", StartAt: showStart(), EndAt: showStart().Add(2 * time.Hour), MovieID: "M1",
	})
	require.NoError(t, err)

	seats, err := showService.AddSeatRow(ctx, AddSeatRowInput{
		ShowID: "SH1", Prefix: "B", Count: 3, Type: seat.TypePremium,
	})

	require.NoError(t, err)
	require.Len(t, seats, 3)
	assert.Equal(t, "B1", seats[0].ID)
	assert.Equal(t, "B3", seats[2].ID)

	details, err := showService.GetSeats(ctx, "SH1")
	require.NoError(t, err)
	assert.Len(t, details, 3)
}
