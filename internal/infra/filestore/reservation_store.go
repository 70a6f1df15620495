package filestore

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
)

const reservationHeader = "#reservationId,roomId,name,phone,checkIn,checkOut,amount,paid,paymentRef"

// ReservationStore remembers the last persisted list so Append and Remove can rewrite
// the file without reading it back. Call Load before mutating.
type ReservationStore struct {
	path   string
	logger *slog.Logger

	mu      sync.Mutex
	records []*reservation.Reservation
}

func NewReservationStore(path string, logger *slog.Logger) *ReservationStore {
	return &ReservationStore{path: path, logger: logger}
}

// Load creates an empty store file when none exists.
func (s *ReservationStore) Load(ctx context.Context) ([]*reservation.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, exists, err := readRecords(s.path)
	if err != nil {
		var malformed *MalformedRecordError
		if errors.As(err, &malformed) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindMalformed, "failed to parse reservation store", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to read reservation store", err)
	}

	if !exists {
		if err := s.writeLocked(nil); err != nil {
			return nil, err
		}
		s.records = nil
		return []*reservation.Reservation{}, nil
	}

	loaded := make([]*reservation.Reservation, 0, len(records))
	for _, rec := range records {
		r, err := s.decode(rec)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindMalformed, "failed to decode reservation", err)
		}
		loaded = append(loaded, r)
	}

	s.records = loaded
	return slices.Clone(loaded), nil
}

func (s *ReservationStore) Append(ctx context.Context, res *reservation.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.records), res)
	if err := s.writeLocked(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

// Remove is a no-op when id is unknown.
func (s *ReservationStore) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.records, func(r *reservation.Reservation) bool { return r.HasID(id) })
	if idx < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(s.records), idx, idx+1)
	if err := s.writeLocked(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

func (s *ReservationStore) ReplaceAll(ctx context.Context, all []*reservation.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(all)
	if err := s.writeLocked(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

func (s *ReservationStore) writeLocked(all []*reservation.Reservation) error {
	rows := make([][]string, 0, len(all))
	for _, r := range all {
		rows = append(rows, encodeReservation(r))
	}
	if err := writeRecords(s.path, reservationHeader, rows); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to write reservation store", err)
	}
	return nil
}

func encodeReservation(r *reservation.Reservation) []string {
	return []string{
		r.ID(),
		strconv.Itoa(r.RoomID()),
		r.Guest().Name(),
		r.Guest().Phone(),
		r.Period().CheckIn().String(),
		r.Period().CheckOut().String(),
		r.Amount().String(),
		strconv.FormatBool(r.IsPaid()),
		r.Payment().Ref(),
	}
}

func (s *ReservationStore) decode(rec record) (*reservation.Reservation, error) {
	malformed := func(field, value string, err error) error {
		return &MalformedRecordError{Path: s.path, Line: rec.line, Field: field, Value: value, Err: err}
	}

	if len(rec.fields) < 8 {
		return nil, malformed("row", strings.Join(rec.fields, ","), errors.New("expected at least 8 fields"))
	}

	id := strings.TrimSpace(rec.field(0))
	if id == "" {
		return nil, malformed("reservationId", rec.field(0), reservation.ErrEmptyID)
	}

	rawRoomID := strings.TrimSpace(rec.field(1))
	roomID, err := strconv.Atoi(rawRoomID)
	if err != nil {
		return nil, malformed("roomId", rawRoomID, nil)
	}

	checkIn, err := reservation.ParseDate(rec.field(4))
	if err != nil {
		return nil, malformed("checkIn", rec.field(4), err)
	}
	checkOut, err := reservation.ParseDate(rec.field(5))
	if err != nil {
		return nil, malformed("checkOut", rec.field(5), err)
	}

	amount, err := money.Parse(rec.field(6))
	if err != nil {
		return nil, malformed("amount", rec.field(6), err)
	}
	if amount.IsNegative() {
		return nil, malformed("amount", rec.field(6), reservation.ErrNegativePrice)
	}

	rawPaid := strings.ToLower(strings.TrimSpace(rec.field(7)))
	paid, err := strconv.ParseBool(rawPaid)
	if err != nil {
		return nil, malformed("paid", rec.field(7), nil)
	}

	payment := reservation.ReconstructPayment(paid, strings.TrimSpace(rec.field(8)))

	return reservation.ReconstructReservation(
		id,
		roomID,
		reservation.NewGuest(rec.field(2), rec.field(3)),
		reservation.NewStayPeriod(checkIn, checkOut),
		amount,
		payment,
	), nil
}
