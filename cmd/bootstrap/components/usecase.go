package components

import (
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProvisioningUseCase,
		commands.NewCustomerUseCase,
		commands.NewReservationUseCase,
		commands.NewRoomUseCase,
		commands.NewAdminUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCustomerQueries,
		queries.NewHotelQueries,
		queries.NewProvisioningQueries,
		queries.NewReservationQueries,
		queries.NewRoomQueries,
	),
)
