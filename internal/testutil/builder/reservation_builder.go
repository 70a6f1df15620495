//go:build unit || e2e

package builder

import (
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID         string
	RoomID     int
	GuestName  string
	GuestPhone string
	CheckIn    string
	CheckOut   string
	Amount     int64
	Paid       bool
	PaymentRef string
	CardLast4  string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         "RES-1700000000000",
		RoomID:     101,
		GuestName:  "Jane Doe",
		GuestPhone: "555-1234",
		CheckIn:    "2024-05-01",
		CheckOut:   "2024-05-03",
		Amount:     4000,
		Paid:       true,
		PaymentRef: "TXN123456",
		CardLast4:  "4242",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithRoom(roomID int) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut string) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) Unpaid() *ReservationBuilder {
	b.Paid = false
	b.PaymentRef = ""
	b.CardLast4 = ""
	return b
}

func (b *ReservationBuilder) Period() reservation.StayPeriod {
	return reservation.NewStayPeriod(
		reservation.MustParseDate(b.CheckIn),
		reservation.MustParseDate(b.CheckOut),
	)
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	payment := reservation.Unpaid()
	if b.Paid {
		payment = reservation.PaidWith(b.PaymentRef)
	}
	return reservation.ReconstructReservation(
		b.ID,
		b.RoomID,
		reservation.NewGuest(b.GuestName, b.GuestPhone),
		b.Period(),
		money.FromUnits(b.Amount),
		payment,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           b.ID,
		RoomID:       b.RoomID,
		RoomCategory: "Standard",
		GuestName:    b.GuestName,
		GuestPhone:   b.GuestPhone,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Nights:       b.Period().Nights(),
		Amount:       float64(b.Amount),
		Paid:         b.Paid,
		PaymentRef:   b.PaymentRef,
	}
}

func (b *ReservationBuilder) BuildBookRequestDTO() request.BookReservationRequest {
	return request.BookReservationRequest{
		RoomID:     b.RoomID,
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		CardLast4:  b.CardLast4,
	}
}
