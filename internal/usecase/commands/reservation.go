package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/clock"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrInvalidStay           = errs.New("invalid stay")
	ErrDateNotCompatible     = errs.New("dates not compatible with existing reservations")
	ErrRoomOutOfService      = errs.New("room out of service")
	ErrDuplicateReservation  = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
)

const (
	idempotencyTTL            = 24 * time.Hour
	createReservationEndpoint = "POST /api/reservations"
)

type CreateReservationRequest struct {
	HotelID    uuid.UUID `json:"hotel_id"`
	RoomID     uuid.UUID `json:"room_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
	IsReplayed    bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest, actor shared.Actor, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	DeleteReservation(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) error
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, clock: clk}
}

// CreateReservation books a room. The conflict check and the insert run in
// one serializable transaction holding the room's advisory lock; the
// exclusion constraint backs it up. A zero idempotencyKey disables replay.
func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	req CreateReservationRequest,
	actor shared.Actor,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	stay, err := reservation.ParseStay(req.StartDate, req.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}
	if !actor.CanAccessCustomer(req.CustomerID) || !actor.CanAccessHotel(req.HotelID) {
		return nil, ErrAccessDenied
	}

	requestHash := r.calculateRequestHash(req)

	var result *CreateReservationResult
	err = r.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		if idempotencyKey != uuid.Nil {
			replayID, derr := r.handleIdempotency(ctx, tx, idempotencyKey, actor.ID, requestHash, now)
			if derr != nil {
				return derr
			}
			if replayID != nil {
				result = &CreateReservationResult{ReservationID: *replayID, IsReplayed: true}
				return nil
			}
		}

		res, derr := r.book(ctx, tx, req, stay)
		if derr != nil {
			return derr
		}

		if idempotencyKey != uuid.Nil {
			if derr = tx.Idempotency().MarkCompleted(ctx, tx.DB(), idempotencyKey, actor.ID, r.calculateIDHash(res.ID()), res.ID()); derr != nil {
				return derr
			}
		}
		result = &CreateReservationResult{ReservationID: res.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// handleIdempotency claims key for this request. It returns the reservation
// to replay when the key already completed with the same request.
func (r *reservationUseCaseImpl) handleIdempotency(
	ctx context.Context,
	tx shared.Tx,
	key, actorID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	expiresAt := now.Add(idempotencyTTL)
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, actorID, createReservationEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, actorID)
	if err != nil {
		return nil, err
	}

	if !existing.ExpiresAt.After(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, actorID, requestHash, expiresAt)
		if err != nil {
			return nil, err
		}
		if claimed {
			return nil, nil
		}
		return nil, ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash {
		return nil, ErrDuplicateReservation
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return nil, errs.New("completed request missing result reservation ID")
		}
		return existing.ResultReservationID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (r *reservationUseCaseImpl) book(
	ctx context.Context,
	tx shared.Tx,
	req CreateReservationRequest,
	stay reservation.Stay,
) (*reservation.Reservation, error) {
	room, err := tx.Reads().RoomByID(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if room.HotelID != req.HotelID {
		return nil, ErrRoomNotFound
	}

	if _, err = tx.Reads().CustomerByID(ctx, req.CustomerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if err = tx.Reservations().LockRoom(ctx, tx.DB(), room.ID); err != nil {
		return nil, err
	}
	booked, err := tx.Reservations().StaysByRoom(ctx, tx.DB(), room.ID, req.HotelID)
	if err != nil {
		return nil, err
	}

	res, err := reservation.NewReservation(req.HotelID, room.Spec(), req.CustomerID, stay, booked)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrRoomOutOfService):
			return nil, errs.Mark(err, ErrRoomOutOfService)
		case errors.Is(err, reservation.ErrStayConflict):
			return nil, errs.Mark(err, ErrDateNotCompatible)
		case errors.Is(err, reservation.ErrRoomNotInHotel):
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, err
	}

	if err = tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, ErrDateNotCompatible)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, err
	}
	return res, nil
}

func (r *reservationUseCaseImpl) DeleteReservation(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, reservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return derr
		}
		if !actor.CanAccessHotel(snap.HotelID) || !actor.CanAccessCustomer(snap.CustomerID) {
			return ErrAccessDenied
		}

		if derr = tx.Reservations().Delete(ctx, tx.DB(), reservationID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return derr
		}
		return nil
	})
	if err == nil || errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrAccessDenied) {
		return err
	}
	return errs.Mark(err, ErrDeleteFailed)
}

func (r *reservationUseCaseImpl) calculateRequestHash(req CreateReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (r *reservationUseCaseImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
