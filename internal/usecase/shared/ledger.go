package shared

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/errs"
)

// Ledger is the authoritative in-memory reservation list.
// Mutations run inside Within and reach memory only after the store accepted them.
type Ledger struct {
	mu           sync.RWMutex
	store        ReservationStore
	reservations []*reservation.Reservation
}

func NewLedger(ctx context.Context, store ReservationStore, logger *slog.Logger) (*Ledger, error) {
	loaded, err := store.Load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to load reservations"), errs.ErrPersistence)
	}

	logger.Info("reservation ledger loaded", "reservations", len(loaded))

	return &Ledger{
		store:        store,
		reservations: loaded,
	}, nil
}

// LedgerView is the read-only side handed to queries.
type LedgerView interface {
	Reservations() []*reservation.Reservation
	Find(id string) (*reservation.Reservation, bool)
	Conflicts(roomID int, period reservation.StayPeriod) bool
}

// LedgerTx is only valid inside the Within callback.
type LedgerTx interface {
	LedgerView
	Insert(ctx context.Context, res *reservation.Reservation) error
	Remove(ctx context.Context, id string) (bool, error)
}

// Within serializes check-then-mutate sequences. fn must not retain tx.
func (l *Ledger) Within(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &ledgerTx{l: l})
}

func (l *Ledger) Read(fn func(view LedgerView)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(&ledgerTx{l: l})
}

type ledgerTx struct {
	l *Ledger
}

func (t *ledgerTx) Reservations() []*reservation.Reservation {
	return slices.Clone(t.l.reservations)
}

func (t *ledgerTx) Find(id string) (*reservation.Reservation, bool) {
	for _, r := range t.l.reservations {
		if r.HasID(id) {
			return r, true
		}
	}
	return nil, false
}

func (t *ledgerTx) Conflicts(roomID int, period reservation.StayPeriod) bool {
	for _, r := range t.l.reservations {
		if r.ConflictsWith(roomID, period) {
			return true
		}
	}
	return false
}

func (t *ledgerTx) Insert(ctx context.Context, res *reservation.Reservation) error {
	if err := t.l.store.Append(ctx, res); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to save reservation"), errs.ErrPersistence)
	}
	t.l.reservations = append(t.l.reservations, res)
	return nil
}

// Remove drops the first case-insensitive id match. A miss is (false, nil).
func (t *ledgerTx) Remove(ctx context.Context, id string) (bool, error) {
	idx := slices.IndexFunc(t.l.reservations, func(r *reservation.Reservation) bool {
		return r.HasID(id)
	})
	if idx < 0 {
		return false, nil
	}

	target := t.l.reservations[idx]
	if err := t.l.store.Remove(ctx, target.ID()); err != nil {
		return false, errs.Mark(errs.Wrap(err, "failed to update reservation store"), errs.ErrPersistence)
	}
	t.l.reservations = slices.Delete(t.l.reservations, idx, idx+1)
	return true, nil
}
