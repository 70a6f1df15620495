package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../mock/commands/reservation.go -package=commandsmock

type ReservationCommands interface {
	Book(ctx context.Context, params BookParams) (*queries.ReservationView, error)
	// Cancel returns false without an error when no reservation matches id.
	Cancel(ctx context.Context, id string) (bool, error)
}

type reservationCommandsImpl struct {
	ledger  LedgerWriter
	rooms   shared.RoomLookup
	factory *reservation.Factory
	logger  *slog.Logger
}

func NewReservationCommands(
	ledger LedgerWriter,
	rooms shared.RoomLookup,
	factory *reservation.Factory,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		ledger:  ledger,
		rooms:   rooms,
		factory: factory,
		logger:  logger,
	}
}

// Book re-checks availability inside the ledger's critical section, so two callers racing
// for the same room and dates cannot both succeed.
func (c *reservationCommandsImpl) Book(ctx context.Context, params BookParams) (*queries.ReservationView, error) {
	roomEntity, ok := c.rooms.FindByID(params.RoomID)
	if !ok {
		return nil, errs.ErrRoomNotFound
	}

	var created *reservation.Reservation
	err := c.ledger.Within(ctx, func(ctx context.Context, tx shared.LedgerTx) error {
		if tx.Conflicts(roomEntity.ID(), params.Period) {
			return errs.ErrRoomUnavailable
		}

		res, err := c.factory.CreateReservation(roomEntity, params.Guest, params.Period, params.SimulatePayment)
		if err != nil {
			return errs.Wrap(err, "failed to create reservation")
		}

		if err := tx.Insert(ctx, res); err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("reservation booked",
		"reservation_id", created.ID(),
		"room_id", created.RoomID(),
		"check_in", created.Period().CheckIn().String(),
		"check_out", created.Period().CheckOut().String(),
		"amount", created.Amount().String(),
		"paid", created.IsPaid())

	return queries.ToReservationView(created, c.rooms), nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := c.ledger.Within(ctx, func(ctx context.Context, tx shared.LedgerTx) error {
		var err error
		removed, err = tx.Remove(ctx, id)
		return err
	})
	if err != nil {
		return false, err
	}

	if removed {
		c.logger.Info("reservation cancelled", "reservation_id", id)
	} else {
		c.logger.Debug("cancel requested for unknown reservation", "reservation_id", id)
	}
	return removed, nil
}
