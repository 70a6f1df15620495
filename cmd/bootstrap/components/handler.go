package components

import (
	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		handler.NewEngine,
		api.NewRoomHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
