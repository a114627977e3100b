package components

import (
	"hotel-backend/internal/handler"
	"hotel-backend/internal/handler/api"
	"hotel-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCustomerHandler,
		api.NewProvisioningHandler,
		api.NewReservationHandler,
		api.NewRoomHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	customer *api.CustomerHandler,
	provisioning *api.ProvisioningHandler,
	reservation *api.ReservationHandler,
	room *api.RoomHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Customer:     customer,
		Provisioning: provisioning,
		Reservation:  reservation,
		Room:         room,
	}
}
