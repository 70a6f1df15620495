package room

import (
	"errors"

	"hotel-reservation/internal/domain/money"
)

var (
	ErrInvalidRoomID = errors.New("room id must be a positive integer")
	ErrEmptyCategory = errors.New("room category cannot be empty")
	ErrNegativePrice = errors.New("price per night cannot be negative")
	ErrDuplicateRoom = errors.New("duplicate room id")
)

type Room struct {
	id            int
	category      Category
	pricePerNight money.Money
}

func NewRoom(id int, category string, pricePerNight money.Money) (*Room, error) {
	if id <= 0 {
		return nil, ErrInvalidRoomID
	}

	cat, err := NewCategory(category)
	if err != nil {
		return nil, err
	}

	if pricePerNight.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:            id,
		category:      cat,
		pricePerNight: pricePerNight,
	}, nil
}

// DefaultRooms is the seed used when no room store exists yet.
func DefaultRooms() []*Room {
	seed := []struct {
		id       int
		category string
		price    int64
	}{
		{101, "Standard", 2000},
		{102, "Standard", 2000},
		{201, "Deluxe", 3500},
		{202, "Deluxe", 3600},
		{301, "Suite", 6000},
	}

	rooms := make([]*Room, 0, len(seed))
	for _, s := range seed {
		rooms = append(rooms, &Room{
			id:            s.id,
			category:      Category{value: s.category},
			pricePerNight: money.FromUnits(s.price),
		})
	}
	return rooms
}

func (r *Room) ID() int                    { return r.id }
func (r *Room) Category() Category         { return r.category }
func (r *Room) PricePerNight() money.Money { return r.pricePerNight }
