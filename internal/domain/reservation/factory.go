package reservation

import (
	"strings"

	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewReservationID() string
}

// PaymentGateway settles a booking and returns an opaque reference.
type PaymentGateway interface {
	Charge(res *room.Room, guest Guest, amountCents int64) (string, error)
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewReservationID() string {
	return "RES-" + strings.ToUpper(uuid.NewString())
}

// SimulatedGateway accepts every charge.
type SimulatedGateway struct{}

func (SimulatedGateway) Charge(_ *room.Room, _ Guest, _ int64) (string, error) {
	return "TXN-" + strings.ToUpper(uuid.NewString()), nil
}

type Factory struct {
	IDs             IDGenerator
	Payments        PaymentGateway
	PriceCalculator PriceCalculator
}

func NewFactory(ids IDGenerator, payments PaymentGateway, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		IDs:             ids,
		Payments:        payments,
		PriceCalculator: priceCalculator,
	}
}

func NewDefaultFactory() *Factory {
	return NewFactory(UUIDGenerator{}, SimulatedGateway{}, NewNightlyPriceCalculator())
}

func (f *Factory) CreateReservation(
	roomEntity *room.Room,
	guest Guest,
	period StayPeriod,
	simulatePayment bool,
) (*Reservation, error) {
	amount, err := f.PriceCalculator.Calculate(roomEntity, period)
	if err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, ErrNegativePrice
	}

	payment := Unpaid()
	if simulatePayment {
		ref, err := f.Payments.Charge(roomEntity, guest, amount.Cents())
		if err != nil {
			return nil, err
		}
		payment = PaidWith(ref)
	}

	return NewReservation(
		f.IDs.NewReservationID(),
		roomEntity,
		guest,
		period,
		amount,
		payment,
	)
}
