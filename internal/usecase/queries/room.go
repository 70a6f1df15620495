package queries

import (
	"context"

	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=room.go -destination=../../mock/queries/room.go -package=queriesmock

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	GetRoom(ctx context.Context, id int) (*RoomView, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type CategoryLister interface {
	Categories() []string
}

type RoomCatalog interface {
	shared.RoomLookup
	CategoryLister
}

type roomQueriesImpl struct {
	catalog RoomCatalog
}

func NewRoomQueries(catalog RoomCatalog) RoomQueries {
	return &roomQueriesImpl{catalog: catalog}
}

func (q *roomQueriesImpl) ListRooms(_ context.Context) ([]*RoomView, error) {
	rooms := q.catalog.All()
	out := make([]*RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, ToRoomView(r))
	}
	return out, nil
}

func (q *roomQueriesImpl) GetRoom(_ context.Context, id int) (*RoomView, error) {
	r, ok := q.catalog.FindByID(id)
	if !ok {
		return nil, errs.ErrRoomNotFound
	}
	return ToRoomView(r), nil
}

func (q *roomQueriesImpl) ListCategories(_ context.Context) ([]string, error) {
	return q.catalog.Categories(), nil
}
