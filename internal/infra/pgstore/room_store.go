package pgstore

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra"

	"github.com/jackc/pgx/v5"
)

type roomRow struct {
	ID         int    `db:"id"`
	Category   string `db:"category"`
	PriceCents int64  `db:"price_cents"`
}

type RoomStore struct {
	db     DBTX
	logger *slog.Logger
}

func NewRoomStore(db DBTX, logger *slog.Logger) *RoomStore {
	return &RoomStore{db: db, logger: logger}
}

// Load treats an empty rooms table as a store that was never written.
func (s *RoomStore) Load(ctx context.Context) ([]*room.Room, bool, error) {
	const q = `
		SELECT id, category, price_cents
		FROM rooms
		ORDER BY position`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to query rooms", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[roomRow])
	if err != nil {
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan rooms", err)
	}
	if len(collected) == 0 {
		return nil, false, nil
	}

	rooms := make([]*room.Room, 0, len(collected))
	for _, row := range collected {
		r, err := room.NewRoom(row.ID, row.Category, money.NewMoney(row.PriceCents))
		if err != nil {
			return nil, true, infra.WrapRepoErr(s.logger, infra.KindMalformed, "invalid room row", err)
		}
		rooms = append(rooms, r)
	}
	return rooms, true, nil
}

// Save replaces the catalog in one transaction.
func (s *RoomStore) Save(ctx context.Context, rooms []*room.Room) error {
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM rooms`); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for i, r := range rooms {
			batch.Queue(`
				INSERT INTO rooms (id, category, price_cents, position)
				VALUES (@id, @category, @price_cents, @position)`,
				pgx.NamedArgs{
					"id":          r.ID(),
					"category":    r.Category().String(),
					"price_cents": r.PricePerNight().Cents(),
					"position":    i,
				})
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to save rooms", err)
	}
	return nil
}
