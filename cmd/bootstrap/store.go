package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/infra/filestore"
	"hotel-reservation/internal/infra/pgstore"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

const storeSetupTimeout = 30 * time.Second

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStores,
	),
)

type Stores struct {
	fx.Out

	Rooms        shared.RoomStore
	Reservations shared.ReservationStore
}

// NewStores selects the persistence backend from STORE_DRIVER.
func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverFile:
		logger.Info("using flat-file store",
			"rooms", cfg.Store.RoomsPath,
			"reservations", cfg.Store.ReservationsPath)
		return Stores{
			Rooms:        filestore.NewRoomStore(cfg.Store.RoomsPath, logger),
			Reservations: filestore.NewReservationStore(cfg.Store.ReservationsPath, logger),
		}, nil
	case config.StoreDriverPostgres:
		return newPostgresStores(lc, cfg, logger)
	default:
		return Stores{}, errs.Newf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newPostgresStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeSetupTimeout)
	defer cancel()

	pool, cleanup, err := pgstore.Connect(ctx, cfg.DB)
	if err != nil {
		return Stores{}, err
	}
	if err := pgstore.Migrate(ctx, pool, logger); err != nil {
		cleanup()
		return Stores{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return Stores{
		Rooms:        pgstore.NewRoomStore(pool, logger),
		Reservations: pgstore.NewReservationStore(pool, logger),
	}, nil
}
