package reservation

import (
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
)

type PriceCalculator interface {
	Calculate(res *room.Room, period StayPeriod) (money.Money, error)
}

type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) Calculate(res *room.Room, period StayPeriod) (money.Money, error) {
	return res.PricePerNight().Times(int64(period.Nights()))
}
