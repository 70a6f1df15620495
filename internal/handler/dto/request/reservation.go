package request

import (
	"regexp"
	"strings"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
)

var (
	ErrMissingDates = errs.New("check-in and check-out dates are required")
	ErrInvalidCard  = errs.New("card number must be 4 digits")
)

var cardLast4Pattern = regexp.MustCompile(`^\d{4}$`)

type BookReservationRequest struct {
	RoomID     int    `json:"roomId" binding:"required,gt=0"`
	GuestName  string `json:"guestName" binding:"required"`
	GuestPhone string `json:"guestPhone" binding:"required"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	// CardLast4 triggers the simulated payment; without it the booking stays unpaid.
	CardLast4 string `json:"cardLast4,omitempty"`
}

// ToParams returns errors marked with errs.ErrValidation.
func (r BookReservationRequest) ToParams() (commands.BookParams, error) {
	guest := reservation.NewGuest(r.GuestName, r.GuestPhone)
	if err := guest.Validate(); err != nil {
		return commands.BookParams{}, errs.Mark(err, errs.ErrValidation)
	}

	period, err := ParseStay(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.BookParams{}, err
	}

	card := strings.TrimSpace(r.CardLast4)
	if card != "" && !cardLast4Pattern.MatchString(card) {
		return commands.BookParams{}, errs.Mark(ErrInvalidCard, errs.ErrValidation)
	}

	return commands.BookParams{
		RoomID:          r.RoomID,
		Guest:           guest,
		Period:          period,
		SimulatePayment: card != "",
	}, nil
}

type SearchRoomsQuery struct {
	Category string `form:"category"`
	CheckIn  string `form:"checkIn"`
	CheckOut string `form:"checkOut"`
}

func (q SearchRoomsQuery) CategoryOrAny() string {
	if c := strings.TrimSpace(q.Category); c != "" {
		return c
	}
	return room.CategoryAny
}

func (q SearchRoomsQuery) Period() (reservation.StayPeriod, error) {
	return ParseStay(q.CheckIn, q.CheckOut)
}

// ParseStay requires both dates and a check-out strictly after check-in.
func ParseStay(checkIn, checkOut string) (reservation.StayPeriod, error) {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return reservation.StayPeriod{}, errs.Mark(ErrMissingDates, errs.ErrValidation)
	}

	in, err := reservation.ParseDate(checkIn)
	if err != nil {
		return reservation.StayPeriod{}, errs.Mark(errs.Wrapf(err, "check-in %q", checkIn), errs.ErrValidation)
	}
	out, err := reservation.ParseDate(checkOut)
	if err != nil {
		return reservation.StayPeriod{}, errs.Mark(errs.Wrapf(err, "check-out %q", checkOut), errs.ErrValidation)
	}

	period := reservation.NewStayPeriod(in, out)
	if err := period.Validate(); err != nil {
		return reservation.StayPeriod{}, errs.Mark(err, errs.ErrValidation)
	}
	return period, nil
}
