// Package catalog holds the bookable rooms. It is loaded once at startup and read-only afterwards.
package catalog

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"
)

type Catalog struct {
	rooms []*room.Room
	byID  map[int]*room.Room
}

// Load reads the room store, seeding and persisting room.DefaultRooms when the store does not exist yet.
func Load(ctx context.Context, store shared.RoomStore, logger *slog.Logger) (*Catalog, error) {
	rooms, exists, err := store.Load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to load rooms"), errs.ErrPersistence)
	}

	if !exists {
		rooms = room.DefaultRooms()
		if err := store.Save(ctx, rooms); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to seed rooms"), errs.ErrPersistence)
		}
		logger.Info("room store not found, seeded default rooms", "rooms", len(rooms))
	}

	c, err := New(rooms)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	logger.Info("room catalog loaded", "rooms", len(c.rooms), "categories", c.Categories())
	return c, nil
}

// New builds a catalog from an in-memory list. Room ids must be unique.
func New(rooms []*room.Room) (*Catalog, error) {
	byID := make(map[int]*room.Room, len(rooms))
	for _, r := range rooms {
		if _, dup := byID[r.ID()]; dup {
			return nil, errs.Wrapf(room.ErrDuplicateRoom, "room %d", r.ID())
		}
		byID[r.ID()] = r
	}
	return &Catalog{rooms: slices.Clone(rooms), byID: byID}, nil
}

// FindByID reports absence with ok=false; a missing room is not an error.
func (c *Catalog) FindByID(id int) (*room.Room, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// All returns the rooms in catalog order.
func (c *Catalog) All() []*room.Room {
	return slices.Clone(c.rooms)
}

// Categories lists distinct categories in first-seen order, compared case-insensitively.
func (c *Catalog) Categories() []string {
	var out []string
	seen := map[string]bool{}
	for _, r := range c.rooms {
		key := strings.ToLower(r.Category().String())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r.Category().String())
	}
	return out
}
