//go:build unit

package shared_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/testutil/builder"
	"hotel-reservation/internal/testutil/fakestore"
	"hotel-reservation/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func ids(rs []*reservation.Reservation) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID())
	}
	return out
}

func snapshot(l *shared.Ledger) []string {
	var out []string
	l.Read(func(view shared.LedgerView) {
		out = ids(view.Reservations())
	})
	return out
}

func TestNewLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the stored reservations in order", func(t *testing.T) {
		store := fakestore.NewReservationStore(
			builder.NewReservationBuilder().WithID("RES-1").BuildDomain(),
			builder.NewReservationBuilder().WithID("RES-2").WithRoom(201).BuildDomain(),
		)

		l, err := shared.NewLedger(ctx, store, discard)
		require.NoError(t, err)
		assert.Equal(t, []string{"RES-1", "RES-2"}, snapshot(l))
	})

	t.Run("load failure is a persistence error", func(t *testing.T) {
		store := fakestore.NewReservationStore()
		store.LoadErr = fakestore.ErrInjected

		_, err := shared.NewLedger(ctx, store, discard)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPersistence))
		assert.True(t, errors.Is(err, fakestore.ErrInjected))
	})
}

func TestLedgerView(t *testing.T) {
	store := fakestore.NewReservationStore(
		builder.NewReservationBuilder().WithID("RES-abc").BuildDomain(),
	)
	l, err := shared.NewLedger(context.Background(), store, discard)
	require.NoError(t, err)

	l.Read(func(view shared.LedgerView) {
		found, ok := view.Find("  res-ABC ")
		require.True(t, ok)
		assert.Equal(t, "RES-abc", found.ID())

		_, ok = view.Find("RES-missing")
		assert.False(t, ok)

		stay := builder.NewReservationBuilder()
		assert.True(t, view.Conflicts(101, stay.Period()))
		assert.False(t, view.Conflicts(102, stay.Period()))
		assert.False(t, view.Conflicts(101, stay.WithStay("2024-05-03", "2024-05-04").Period()))
	})
}

func TestLedgerInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("persists before the ledger changes", func(t *testing.T) {
		store := fakestore.NewReservationStore()
		l, err := shared.NewLedger(ctx, store, discard)
		require.NoError(t, err)

		err = l.Within(ctx, func(ctx context.Context, tx shared.LedgerTx) error {
			return tx.Insert(ctx, builder.NewReservationBuilder().WithID("RES-1").BuildDomain())
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"RES-1"}, snapshot(l))
		assert.Equal(t, []string{"RES-1"}, store.IDs())
	})

	t.Run("store failure leaves the ledger unchanged", func(t *testing.T) {
		var buf bytes.Buffer
		store := fakestore.NewReservationStore(builder.NewReservationBuilder().WithID("RES-1").BuildDomain())
		l, err := shared.NewLedger(ctx, store, slog.New(slog.NewTextHandler(&buf, nil)))
		require.NoError(t, err)
		buf.Reset()
		store.AppendErr = fakestore.ErrInjected

		err = l.Within(ctx, func(ctx context.Context, tx shared.LedgerTx) error {
			return tx.Insert(ctx, builder.NewReservationBuilder().WithID("RES-2").WithRoom(201).BuildDomain())
		})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPersistence))
		assert.Equal(t, []string{"RES-1"}, snapshot(l))
		assert.Empty(t, buf.String(), "the store logs its own failures")
	})

	t.Run("cancelled context never reaches the callback", func(t *testing.T) {
		l, err := shared.NewLedger(ctx, fakestore.NewReservationStore(), discard)
		require.NoError(t, err)

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		err = l.Within(cctx, func(context.Context, shared.LedgerTx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestLedgerRemove(t *testing.T) {
	ctx := context.Background()

	newLedger := func(t *testing.T) (*shared.Ledger, *fakestore.ReservationStore) {
		t.Helper()
		store := fakestore.NewReservationStore(
			builder.NewReservationBuilder().WithID("RES-1").BuildDomain(),
			builder.NewReservationBuilder().WithID("RES-2").WithRoom(201).BuildDomain(),
		)
		l, err := shared.NewLedger(ctx, store, discard)
		require.NoError(t, err)
		return l, store
	}

	remove := func(l *shared.Ledger, id string) (bool, error) {
		var removed bool
		err := l.Within(ctx, func(ctx context.Context, tx shared.LedgerTx) error {
			var err error
			removed, err = tx.Remove(ctx, id)
			return err
		})
		return removed, err
	}

	t.Run("matches ids case-insensitively", func(t *testing.T) {
		l, store := newLedger(t)

		removed, err := remove(l, "res-1")
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, []string{"RES-2"}, snapshot(l))
		assert.Equal(t, []string{"RES-2"}, store.IDs())
	})

	t.Run("unknown id is a miss without touching the store", func(t *testing.T) {
		l, store := newLedger(t)

		removed, err := remove(l, "RES-404")
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 0, store.Removes)
		assert.Equal(t, []string{"RES-1", "RES-2"}, snapshot(l))
	})

	t.Run("store failure keeps the reservation", func(t *testing.T) {
		l, store := newLedger(t)
		store.RemoveErr = fakestore.ErrInjected

		removed, err := remove(l, "RES-1")
		require.Error(t, err)
		assert.False(t, removed)
		assert.True(t, errs.Is(err, errs.ErrPersistence))
		assert.Equal(t, []string{"RES-1", "RES-2"}, snapshot(l))
	})
}

func TestLedgerWithinSerializesCheckThenInsert(t *testing.T) {
	ctx := context.Background()
	store := fakestore.NewReservationStore()
	l, err := shared.NewLedger(ctx, store, discard)
	require.NoError(t, err)

	stay := builder.NewReservationBuilder().Period()

	const workers = 32
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.Within(ctx, func(ctx context.Context, tx shared.LedgerTx) error {
				if tx.Conflicts(101, stay) {
					return errs.ErrRoomUnavailable
				}
				id := "RES-" + string(rune('A'+i))
				return tx.Insert(ctx, builder.NewReservationBuilder().WithID(id).BuildDomain())
			})
			if err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Len(t, snapshot(l), 1)
	assert.Equal(t, 1, store.Appends)
}
