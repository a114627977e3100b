package shared

import (
	"context"
	"time"

	"hotel-backend/internal/domain/customer"
	"hotel-backend/internal/domain/hotel"
	"hotel-backend/internal/domain/provisioning"
	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/domain/room"
	"hotel-backend/internal/domain/user"
	sqlc "hotel-backend/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Same as Within at SERIALIZABLE isolation
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Hotels() HotelRepository
	Rooms() RoomRepository
	Customers() CustomerRepository
	Provisioning() ProvisioningRepository
	Reservations() ReservationRepository
	Idempotency() IdempotencyRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	HotelByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	Hotels(ctx context.Context) ([]HotelSnapshot, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	RoomNumberTaken(ctx context.Context, hotelID uuid.UUID, number int32) (bool, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	CustomerIdentityTaken(ctx context.Context, document, username string) (bool, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, actorID uuid.UUID) (*IdempotencyRecord, error)
}

type HotelRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, h *hotel.Hotel) error
	CreateCategory(ctx context.Context, tx sqlc.DBTX, c *hotel.Category) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *room.Room) error
	Update(ctx context.Context, tx sqlc.DBTX, r *room.Room) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type CustomerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error
	UpdateContact(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error
	Lock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ProvisioningRepository interface {
	CreateIntents(ctx context.Context, tx sqlc.DBTX, intents []*provisioning.Intent) error
	ListIntents(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) ([]*provisioning.Intent, error)
	SaveIntent(ctx context.Context, tx sqlc.DBTX, in *provisioning.Intent) error
	DeleteIntents(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) (int64, error)
	OutstandingCustomers(ctx context.Context, tx sqlc.DBTX, maxAttempts, limit int32) ([]uuid.UUID, error)
	UpsertLink(ctx context.Context, tx sqlc.DBTX, link CustomerHotelLink) error
	ListLinks(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) ([]CustomerHotelLink, error)
	DeleteLinks(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) (int64, error)
}

type ReservationRepository interface {
	LockRoom(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) error
	StaysByRoom(ctx context.Context, tx sqlc.DBTX, roomID, hotelID uuid.UUID) ([]reservation.Stay, error)
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, actorID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, actorID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, key, actorID uuid.UUID, responseHash string, reservationID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
