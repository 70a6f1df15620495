//go:build unit || e2e

package builder

import (
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/usecase/queries"
)

type RoomBuilder struct {
	ID            int
	Category      string
	PricePerNight int64
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:            101,
		Category:      "Standard",
		PricePerNight: 2000,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithID(id int) *RoomBuilder {
	b.ID = id
	return b
}

func (b *RoomBuilder) WithCategory(category string) *RoomBuilder {
	b.Category = category
	return b
}

func (b *RoomBuilder) WithPrice(units int64) *RoomBuilder {
	b.PricePerNight = units
	return b
}

// Build methods
func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.ID, b.Category, money.FromUnits(b.PricePerNight))
}

func (b *RoomBuilder) MustBuildDomain() *room.Room {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:            b.ID,
		Category:      b.Category,
		PricePerNight: float64(b.PricePerNight),
	}
}

// ScenarioRooms is the two-room catalog used across ledger tests.
func ScenarioRooms() []*room.Room {
	return []*room.Room{
		NewRoomBuilder().MustBuildDomain(),
		NewRoomBuilder().WithID(201).WithCategory("Deluxe").WithPrice(3500).MustBuildDomain(),
	}
}
