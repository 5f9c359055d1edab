package seat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeat(t *testing.T) {
	seat := NewSeat("A12", TypeEconomy, StatusAvailable)

	assert.Equal(t, "A12", seat.ID)
	assert.Equal(t, TypeEconomy, seat.Type)
	assert.Equal(t, StatusAvailable, seat.Status)
}

func TestSeat_IsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected bool
	}{
		{"空席", StatusAvailable, true},
		{"占有済み", StatusOccupied, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seat := &Seat{Status: tt.status}
			assert.Equal(t, tt.expected, seat.IsAvailable())
		})
	}
}

func TestSeat_Reserve(t *testing.T) {
	t.Run("空席を確保できる", func(t *testing.T) {
		seat := NewSeat("A12", TypeEconomy, StatusAvailable)

		err := seat.Reserve()

		require.NoError(t, err)
		assert.Equal(t, StatusOccupied, seat.Status)
		assert.False(t, seat.IsAvailable())
	})

	t.Run("連続して確保すると2回目は失敗する", func(t *testing.T) {
		seat := NewSeat("A12", TypeEconomy, StatusAvailable)

		require.NoError(t, seat.Reserve())
		err := seat.Reserve()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSeatNotAvailable)
		assert.Equal(t, StatusOccupied, seat.Status)
	})

	t.Run("占有済みの座席は状態が変化しない", func(t *testing.T) {
		seat := NewSeat("A14", TypePremium, StatusOccupied)

		err := seat.Reserve()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSeatNotAvailable)
		assert.Equal(t, StatusOccupied, seat.Status)
	})
}

func TestSeat_Release(t *testing.T) {
	t.Run("占有済みの座席を解放できる", func(t *testing.T) {
		seat := NewSeat("A12", TypeEconomy, StatusOccupied)

		err := seat.Release()

		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, seat.Status)
	})

	t.Run("空席を解放すると失敗し状態は変化しない", func(t *testing.T) {
		seat := NewSeat("A12", TypeEconomy, StatusAvailable)

		err := seat.Release()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSeatNotOccupied)
		assert.Equal(t, StatusAvailable, seat.Status)
	})
}

func TestSeat_Details(t *testing.T) {
	seat := NewSeat("A14", TypePremium, StatusOccupied)

	d := seat.Details()

	assert.Equal(t, "A14", d.ID)
	assert.Equal(t, TypePremium, d.Type)
	assert.Equal(t, StatusOccupied, d.Status)

	// スナップショットであり、後の状態変化を反映しない
	require.NoError(t, seat.Release())
	assert.Equal(t, StatusOccupied, d.Status)
}

func TestSeat_Validate(t *testing.T) {
	tests := []struct {
		name        string
		seat        *Seat
		expectedErr error
	}{
		{
			name:        "有効な座席",
			seat:        &Seat{ID: "A12", Type: TypeEconomy, Status: StatusAvailable},
			expectedErr: nil,
		},
		{
			name:        "IDが空",
			seat:        &Seat{ID: "", Type: TypeEconomy, Status: StatusAvailable},
			expectedErr: ErrSeatIDRequired,
		},
		{
			name:        "座席種別が列挙外",
			seat:        &Seat{ID: "A12", Type: Type("vip"), Status: StatusAvailable},
			expectedErr: ErrInvalidSeatType,
		},
		{
			name:        "座席状態が列挙外",
			seat:        &Seat{ID: "A12", Type: TypePremium, Status: Status("held")},
			expectedErr: ErrInvalidSeatStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seat.Validate()
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
