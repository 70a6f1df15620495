package reservation

import (
	"errors"
	"strings"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
)

var (
	ErrInvalidStayPeriod = errors.New("check-out must be after check-in")
	ErrEmptyGuestName    = errors.New("guest name cannot be empty")
	ErrEmptyGuestPhone   = errors.New("guest phone cannot be empty")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrEmptyID           = errors.New("reservation id cannot be empty")
)

type Reservation struct {
	id      string
	roomID  int
	guest   Guest
	period  StayPeriod
	amount  money.Money
	payment Payment
}

func NewReservation(
	id string,
	res *room.Room,
	guest Guest,
	period StayPeriod,
	amount money.Money,
	payment Payment,
) (*Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	if amount.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:      id,
		roomID:  res.ID(),
		guest:   guest,
		period:  period,
		amount:  amount,
		payment: payment,
	}, nil
}

// ReconstructReservation rebuilds a persisted record as-is. The room reference is not checked.
func ReconstructReservation(
	id string,
	roomID int,
	guest Guest,
	period StayPeriod,
	amount money.Money,
	payment Payment,
) *Reservation {
	return &Reservation{
		id:      id,
		roomID:  roomID,
		guest:   guest,
		period:  period,
		amount:  amount,
		payment: payment,
	}
}

// HasID matches case-insensitively.
func (r *Reservation) HasID(id string) bool {
	return strings.EqualFold(r.id, strings.TrimSpace(id))
}

func (r *Reservation) ConflictsWith(roomID int, period StayPeriod) bool {
	return r.roomID == roomID && r.period.Overlaps(period)
}

func (r *Reservation) ID() string          { return r.id }
func (r *Reservation) RoomID() int         { return r.roomID }
func (r *Reservation) Guest() Guest        { return r.guest }
func (r *Reservation) Period() StayPeriod  { return r.period }
func (r *Reservation) Amount() money.Money { return r.amount }
func (r *Reservation) Payment() Payment    { return r.payment }
func (r *Reservation) IsPaid() bool        { return r.payment.IsPaid() }
