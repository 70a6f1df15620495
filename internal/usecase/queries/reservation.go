package queries

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../mock/queries/reservation.go -package=queriesmock

type ReservationQueries interface {
	// SearchAvailable keeps catalog order. Inverted ranges are not rejected here.
	SearchAvailable(ctx context.Context, category string, period reservation.StayPeriod) ([]*RoomView, error)
	IsAvailable(ctx context.Context, roomID int, period reservation.StayPeriod) (bool, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
	GetByID(ctx context.Context, id string) (*ReservationView, error)
}

type LedgerReader interface {
	Read(fn func(view shared.LedgerView))
}

type reservationQueriesImpl struct {
	ledger LedgerReader
	rooms  shared.RoomLookup
}

func NewReservationQueries(ledger LedgerReader, rooms shared.RoomLookup) ReservationQueries {
	return &reservationQueriesImpl{ledger: ledger, rooms: rooms}
}

func (q *reservationQueriesImpl) SearchAvailable(
	ctx context.Context,
	category string,
	period reservation.StayPeriod,
) ([]*RoomView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := []*RoomView{}
	q.ledger.Read(func(view shared.LedgerView) {
		for _, r := range q.rooms.All() {
			if !r.Category().Matches(category) {
				continue
			}
			if view.Conflicts(r.ID(), period) {
				continue
			}
			result = append(result, ToRoomView(r))
		}
	})
	return result, nil
}

func (q *reservationQueriesImpl) IsAvailable(ctx context.Context, roomID int, period reservation.StayPeriod) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	available := true
	q.ledger.Read(func(view shared.LedgerView) {
		available = !view.Conflicts(roomID, period)
	})
	return available, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var all []*reservation.Reservation
	q.ledger.Read(func(view shared.LedgerView) {
		all = view.Reservations()
	})

	out := make([]*ReservationView, 0, len(all))
	for _, r := range all {
		out = append(out, ToReservationView(r, q.rooms))
	}
	return out, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id string) (*ReservationView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *reservation.Reservation
	q.ledger.Read(func(view shared.LedgerView) {
		found, _ = view.Find(id)
	})
	if found == nil {
		return nil, errs.ErrReservationNotFound
	}
	return ToReservationView(found, q.rooms), nil
}
