package components

import (
	"hotel-console/internal/handler"
	"hotel-console/internal/handler/api"
	"hotel-console/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGuestHandler,
		api.NewRoomHandler,
		api.NewAccountHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		middleware.NewConsoleMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	guests *api.GuestHandler,
	rooms *api.RoomHandler,
	accounts *api.AccountHandler,
	reservations *api.ReservationHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Guests:       guests,
		Rooms:        rooms,
		Accounts:     accounts,
		Reservations: reservations,
	}
}
