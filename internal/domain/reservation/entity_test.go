//go:build unit

package reservation_test

import (
	"errors"
	"strings"
	"testing"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct{ id string }

func (f fixedIDs) NewReservationID() string { return f.id }

type failingGateway struct{}

func (failingGateway) Charge(_ *room.Room, _ reservation.Guest, _ int64) (string, error) {
	return "", errors.New("card declined")
}

func TestFactory(t *testing.T) {
	standard := builder.NewRoomBuilder().MustBuildDomain()
	guest := reservation.NewGuest("Jane Doe", "555-1234")

	t.Run("paid booking", func(t *testing.T) {
		f := reservation.NewDefaultFactory()

		actual, err := f.CreateReservation(standard, guest, period("2024-06-01", "2024-06-03"), true)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(actual.ID(), "RES-"))
		assert.Equal(t, 101, actual.RoomID())
		assert.Equal(t, "4000.0", actual.Amount().String())
		assert.True(t, actual.IsPaid())
		assert.True(t, strings.HasPrefix(actual.Payment().Ref(), "TXN-"))
	})

	t.Run("unpaid booking has no payment reference", func(t *testing.T) {
		f := reservation.NewDefaultFactory()

		actual, err := f.CreateReservation(standard, guest, period("2024-06-01", "2024-06-02"), false)
		require.NoError(t, err)

		assert.False(t, actual.IsPaid())
		assert.Empty(t, actual.Payment().Ref())
	})

	t.Run("amount is nights times nightly price", func(t *testing.T) {
		f := reservation.NewDefaultFactory()
		cases := []struct {
			name   string
			p      reservation.StayPeriod
			amount string
		}{
			{name: "one night", p: period("2024-05-01", "2024-05-02"), amount: "2000.0"},
			{name: "degenerate range billed one night", p: period("2024-05-01", "2024-05-01"), amount: "2000.0"},
			{name: "five nights", p: period("2024-05-01", "2024-05-06"), amount: "10000.0"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := f.CreateReservation(standard, guest, tc.p, false)
				require.NoError(t, err)
				assert.Equal(t, tc.amount, actual.Amount().String())
			})
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		f := reservation.NewDefaultFactory()
		seen := map[string]bool{}
		for range 500 {
			r, err := f.CreateReservation(standard, guest, period("2024-05-01", "2024-05-02"), true)
			require.NoError(t, err)
			require.False(t, seen[r.ID()], "duplicate id %s", r.ID())
			seen[r.ID()] = true
		}
	})

	t.Run("injected id generator", func(t *testing.T) {
		f := reservation.NewFactory(fixedIDs{id: "RES-FIXED"}, reservation.SimulatedGateway{}, reservation.NewNightlyPriceCalculator())

		actual, err := f.CreateReservation(standard, guest, period("2024-05-01", "2024-05-02"), false)
		require.NoError(t, err)
		assert.Equal(t, "RES-FIXED", actual.ID())
	})

	t.Run("payment failure aborts creation", func(t *testing.T) {
		f := reservation.NewFactory(reservation.UUIDGenerator{}, failingGateway{}, reservation.NewNightlyPriceCalculator())

		actual, err := f.CreateReservation(standard, guest, period("2024-05-01", "2024-05-02"), true)
		assert.Error(t, err)
		assert.Nil(t, actual)
	})

	t.Run("amount overflow aborts creation", func(t *testing.T) {
		penthouse, err := room.NewRoom(901, "Penthouse", money.NewMoney(9_000_000_000_000_000_000))
		require.NoError(t, err)

		actual, err := reservation.NewDefaultFactory().CreateReservation(penthouse, guest, period("2024-05-01", "2024-05-03"), false)
		assert.ErrorIs(t, err, money.ErrOverflow)
		assert.Nil(t, actual)
	})
}

func TestReservation(t *testing.T) {
	r := builder.NewReservationBuilder().WithID("RES-abc").BuildDomain()

	t.Run("id match is case-insensitive", func(t *testing.T) {
		assert.True(t, r.HasID("res-ABC"))
		assert.True(t, r.HasID(" RES-abc "))
		assert.False(t, r.HasID("RES-abd"))
	})

	t.Run("conflict requires same room and overlapping stay", func(t *testing.T) {
		assert.True(t, r.ConflictsWith(101, period("2024-05-02", "2024-05-04")))
		assert.False(t, r.ConflictsWith(102, period("2024-05-02", "2024-05-04")))
		assert.False(t, r.ConflictsWith(101, period("2024-05-03", "2024-05-04")))
	})

	t.Run("new reservation rejects an empty id", func(t *testing.T) {
		_, err := reservation.NewReservation(" ", builder.NewRoomBuilder().MustBuildDomain(),
			reservation.NewGuest("a", "b"), period("2024-05-01", "2024-05-02"),
			builder.NewRoomBuilder().MustBuildDomain().PricePerNight(), reservation.Unpaid())
		assert.ErrorIs(t, err, reservation.ErrEmptyID)
	})
}
