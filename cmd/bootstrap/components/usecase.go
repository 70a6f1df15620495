package components

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/usecase/catalog"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

const loadTimeout = 30 * time.Second

var UseCaseModule = fx.Module("usecase",
	usecaseStateModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseStateModule = fx.Module("usecase/state",
	fx.Provide(
		fx.Annotate(
			NewCatalog,
			fx.As(new(shared.RoomLookup)),
			fx.As(new(queries.RoomCatalog)),
		),
		fx.Annotate(
			NewLedger,
			fx.As(new(commands.LedgerWriter)),
			fx.As(new(queries.LedgerReader)),
		),
		reservation.NewDefaultFactory,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

func NewCatalog(store shared.RoomStore, logger *slog.Logger) (*catalog.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	return catalog.Load(ctx, store, logger)
}

func NewLedger(store shared.ReservationStore, logger *slog.Logger) (*shared.Ledger, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	return shared.NewLedger(ctx, store, logger)
}
