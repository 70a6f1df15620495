package filestore

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra"
)

const roomHeader = "#id,category,pricePerNight"

type RoomStore struct {
	path   string
	logger *slog.Logger
}

func NewRoomStore(path string, logger *slog.Logger) *RoomStore {
	return &RoomStore{path: path, logger: logger}
}

func (s *RoomStore) Load(ctx context.Context) ([]*room.Room, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	records, exists, err := readRecords(s.path)
	if err != nil {
		return nil, exists, s.wrapReadErr(err)
	}
	if !exists {
		return nil, false, nil
	}

	rooms := make([]*room.Room, 0, len(records))
	for _, rec := range records {
		r, err := s.decode(rec)
		if err != nil {
			return nil, true, infra.WrapRepoErr(s.logger, infra.KindMalformed, "failed to decode room", err)
		}
		rooms = append(rooms, r)
	}
	return rooms, true, nil
}

func (s *RoomStore) Save(ctx context.Context, rooms []*room.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, []string{
			strconv.Itoa(r.ID()),
			r.Category().String(),
			r.PricePerNight().String(),
		})
	}

	if err := writeRecords(s.path, roomHeader, rows); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to write room store", err)
	}
	return nil
}

func (s *RoomStore) decode(rec record) (*room.Room, error) {
	malformed := func(field, value string, err error) error {
		return &MalformedRecordError{Path: s.path, Line: rec.line, Field: field, Value: value, Err: err}
	}

	if len(rec.fields) < 3 {
		return nil, malformed("row", strings.Join(rec.fields, ","), errors.New("expected 3 fields"))
	}

	rawID := strings.TrimSpace(rec.field(0))
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, malformed("id", rawID, nil)
	}

	rawPrice := strings.TrimSpace(rec.field(2))
	price, err := money.Parse(rawPrice)
	if err != nil {
		return nil, malformed("pricePerNight", rawPrice, err)
	}

	r, err := room.NewRoom(id, rec.field(1), price)
	if err != nil {
		switch {
		case errors.Is(err, room.ErrInvalidRoomID):
			return nil, malformed("id", rawID, err)
		case errors.Is(err, room.ErrEmptyCategory):
			return nil, malformed("category", rec.field(1), err)
		default:
			return nil, malformed("pricePerNight", rawPrice, err)
		}
	}
	return r, nil
}

func (s *RoomStore) wrapReadErr(err error) error {
	var malformed *MalformedRecordError
	if errors.As(err, &malformed) {
		return infra.WrapRepoErr(s.logger, infra.KindMalformed, "failed to parse room store", err)
	}
	return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to read room store", err)
}
