package shared

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
)

type RoomStore interface {
	// Load reports exists=false when the store has never been written.
	Load(ctx context.Context) (rooms []*room.Room, exists bool, err error)
	Save(ctx context.Context, rooms []*room.Room) error
}

// ReservationStore persists the ledger. Each mutating call is durable when it returns nil.
type ReservationStore interface {
	Load(ctx context.Context) ([]*reservation.Reservation, error)
	Append(ctx context.Context, res *reservation.Reservation) error
	Remove(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, all []*reservation.Reservation) error
}

// RoomLookup is the read side of the catalog the ledger depends on.
type RoomLookup interface {
	FindByID(id int) (*room.Room, bool)
	All() []*room.Room
}
