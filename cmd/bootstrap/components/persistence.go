package components

import (
	"hotel-backend/internal/infra/readstore"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/infra/uow"
	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are built per transaction inside the unit of work,
// so only the read side and the UoW itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	fx.Annotate(
		NewSQLQueries,
		fx.As(
			fx.Self(),
			new(readstore.CustomerReadQueries),
			new(readstore.HotelReadQueries),
			new(readstore.ProvisioningReadQueries),
			new(readstore.ReservationViewQueries),
			new(readstore.RoomReadQueries),
			new(readstore.UserReadQueries),
		),
	),
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Customer
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		// Hotel
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore), new(readstore.HotelDirectorySource)),
		),
		fx.Annotate(
			NewHotelDirectory,
			fx.As(new(shared.HotelDirectory)),
		),
		// Provisioning
		fx.Annotate(
			readstore.NewProvisioningReadStore,
			fx.As(new(queries.ProvisioningReadStore)),
		),
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Room
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewHotelDirectory(source readstore.HotelDirectorySource, cfg config.Config) *readstore.CachedHotelDirectory {
	return readstore.NewCachedHotelDirectory(source, cfg.Cache.HotelTTL)
}
