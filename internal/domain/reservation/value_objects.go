package reservation

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must use the YYYY-MM-DD form")

// Date is a calendar day without time of day, anchored at UTC midnight.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic("reservation.MustParseDate: " + s)
	}
	return d
}

func (d Date) String() string         { return d.t.Format(DateLayout) }
func (d Date) Time() time.Time        { return d.t }
func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) AddDays(n int) Date     { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysUntil is negative when other precedes d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// StayPeriod is the half-open night range [checkIn, checkOut).
// Construction does not reject inverted ranges; callers use Validate for that.
type StayPeriod struct {
	checkIn  Date
	checkOut Date
}

func NewStayPeriod(checkIn, checkOut Date) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}
}

func (p StayPeriod) CheckIn() Date  { return p.checkIn }
func (p StayPeriod) CheckOut() Date { return p.checkOut }

func (p StayPeriod) Validate() error {
	if p.checkIn.IsZero() || p.checkOut.IsZero() {
		return ErrInvalidStayPeriod
	}
	if !p.checkOut.After(p.checkIn) {
		return ErrInvalidStayPeriod
	}
	return nil
}

// Nights is floored at one so a degenerate range is still billed.
func (p StayPeriod) Nights() int {
	n := p.checkIn.DaysUntil(p.checkOut)
	if n < 1 {
		return 1
	}
	return n
}

// Overlaps treats both periods as half-open, so checking out and checking in on the same day do not overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return !(!p.checkOut.After(other.checkIn) || !p.checkIn.Before(other.checkOut))
}

type Guest struct {
	name  string
	phone string
}

func NewGuest(name, phone string) Guest {
	return Guest{name: strings.TrimSpace(name), phone: strings.TrimSpace(phone)}
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Phone() string { return g.phone }

func (g Guest) Validate() error {
	if g.name == "" {
		return ErrEmptyGuestName
	}
	if g.phone == "" {
		return ErrEmptyGuestPhone
	}
	return nil
}

type Payment struct {
	paid bool
	ref  string
}

func Unpaid() Payment {
	return Payment{}
}

func PaidWith(ref string) Payment {
	return Payment{paid: true, ref: ref}
}

// ReconstructPayment restores a stored payment as-is, including a reference kept on an unpaid record.
func ReconstructPayment(paid bool, ref string) Payment {
	return Payment{paid: paid, ref: ref}
}

func (p Payment) IsPaid() bool { return p.paid }
func (p Payment) Ref() string  { return p.ref }
