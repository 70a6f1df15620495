package pgstore

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"

	"github.com/jackc/pgx/v5"
)

const insertReservationSQL = `
	INSERT INTO reservations
		(reservation_id, room_id, guest_name, guest_phone, check_in, check_out, amount_cents, paid, payment_ref)
	VALUES
		(@reservation_id, @room_id, @guest_name, @guest_phone, @check_in, @check_out, @amount_cents, @paid, @payment_ref)`

type reservationRow struct {
	ReservationID string    `db:"reservation_id"`
	RoomID        int       `db:"room_id"`
	GuestName     string    `db:"guest_name"`
	GuestPhone    string    `db:"guest_phone"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	AmountCents   int64     `db:"amount_cents"`
	Paid          bool      `db:"paid"`
	PaymentRef    string    `db:"payment_ref"`
}

// ReservationStore keeps reservations in insertion order via the seq column.
type ReservationStore struct {
	db     DBTX
	logger *slog.Logger
}

func NewReservationStore(db DBTX, logger *slog.Logger) *ReservationStore {
	return &ReservationStore{db: db, logger: logger}
}

func (s *ReservationStore) Load(ctx context.Context) ([]*reservation.Reservation, error) {
	const q = `
		SELECT reservation_id, room_id, guest_name, guest_phone, check_in, check_out,
		       amount_cents, paid, payment_ref
		FROM reservations
		ORDER BY seq`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to query reservations", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[reservationRow])
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan reservations", err)
	}

	out := make([]*reservation.Reservation, 0, len(collected))
	for _, row := range collected {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (s *ReservationStore) Append(ctx context.Context, res *reservation.Reservation) error {
	if _, err := s.db.Exec(ctx, insertReservationSQL, reservationArgs(res)); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to insert reservation", err)
	}
	return nil
}

// Remove is a no-op when id is unknown.
func (s *ReservationStore) Remove(ctx context.Context, id string) error {
	const q = `DELETE FROM reservations WHERE upper(reservation_id) = upper(@id)`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"id": id}); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to delete reservation", err)
	}
	return nil
}

func (s *ReservationStore) ReplaceAll(ctx context.Context, all []*reservation.Reservation) error {
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM reservations`); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, r := range all {
			batch.Queue(insertReservationSQL, reservationArgs(r))
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to replace reservations", err)
	}
	return nil
}

func reservationArgs(r *reservation.Reservation) pgx.NamedArgs {
	return pgx.NamedArgs{
		"reservation_id": r.ID(),
		"room_id":        r.RoomID(),
		"guest_name":     r.Guest().Name(),
		"guest_phone":    r.Guest().Phone(),
		"check_in":       r.Period().CheckIn().Time(),
		"check_out":      r.Period().CheckOut().Time(),
		"amount_cents":   r.Amount().Cents(),
		"paid":           r.IsPaid(),
		"payment_ref":    r.Payment().Ref(),
	}
}

func (row reservationRow) toDomain() *reservation.Reservation {
	payment := reservation.ReconstructPayment(row.Paid, row.PaymentRef)
	return reservation.ReconstructReservation(
		row.ReservationID,
		row.RoomID,
		reservation.NewGuest(row.GuestName, row.GuestPhone),
		reservation.NewStayPeriod(reservation.DateOf(row.CheckIn), reservation.DateOf(row.CheckOut)),
		money.NewMoney(row.AmountCents),
		payment,
	)
}
