package commands

import (
	"context"
	"errors"

	"hotel-backend/internal/domain/room"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/clock"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoom      = errs.New("invalid room")
	ErrCategoryNotFound = errs.New("category not found")
	ErrRoomNumberTaken  = errs.New("room number already taken")
)

type CreateRoomRequest struct {
	CategoryID   uuid.UUID
	Number       int32
	Description  string
	AreaSqm      float64
	OutOfService bool
}

// UpdateRoomRequest holds the mutable room fields. Nil leaves a field as is.
type UpdateRoomRequest struct {
	Description  *string
	OutOfService *bool
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, hotelID uuid.UUID, req CreateRoomRequest, actor shared.Actor) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, req UpdateRoomRequest, actor shared.Actor) error
	DeleteRoom(ctx context.Context, roomID uuid.UUID, actor shared.Actor) error
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{uow: uow, clock: clk}
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, hotelID uuid.UUID, req CreateRoomRequest, actor shared.Actor) (uuid.UUID, error) {
	if !actor.CanAccessHotel(hotelID) {
		return uuid.Nil, ErrAccessDenied
	}

	rm, err := room.NewRoom(hotelID, req.CategoryID, req.Number, req.Description, req.AreaSqm, req.OutOfService)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRoom)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().HotelByID(ctx, hotelID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrHotelNotFound
			}
			return derr
		}

		category, derr := tx.Reads().CategoryByID(ctx, req.CategoryID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCategoryNotFound
			}
			return derr
		}
		if category.HotelID != hotelID {
			return ErrCategoryNotFound
		}

		taken, derr := tx.Reads().RoomNumberTaken(ctx, hotelID, req.Number)
		if derr != nil {
			return derr
		}
		if taken {
			return ErrRoomNumberTaken
		}

		if derr = tx.Rooms().Create(ctx, tx.DB(), rm); derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindDuplicateKey):
				return errs.Mark(derr, ErrRoomNumberTaken)
			case infra.IsKind(derr, infra.KindForeignKeyViolated):
				return errs.Mark(derr, ErrCategoryNotFound)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rm.ID(), nil
}

func (uc *roomUseCaseImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, req UpdateRoomRequest, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.loadRoom(ctx, tx, roomID, actor)
		if derr != nil {
			return derr
		}

		rm := room.ReconstructRoom(snap.ID, snap.HotelID, snap.CategoryID, snap.Number, snap.OutOfService,
			snap.Description, snap.AreaSqm, snap.CreatedAt, uc.clock.Now())
		if derr = rm.Update(req.Description, req.OutOfService); derr != nil {
			return errs.Mark(derr, ErrInvalidRoom)
		}

		if derr = tx.Rooms().Update(ctx, tx.DB(), rm); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}
		return nil
	})
}

// DeleteRoom fails with ErrDeleteFailed while reservations still reference
// the room; the foreign key error stays in the chain.
func (uc *roomUseCaseImpl) DeleteRoom(ctx context.Context, roomID uuid.UUID, actor shared.Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := uc.loadRoom(ctx, tx, roomID, actor); derr != nil {
			return derr
		}

		if derr := tx.Rooms().Delete(ctx, tx.DB(), roomID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}
		return nil
	})
	if err == nil || errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrAccessDenied) {
		return err
	}
	return errs.Mark(err, ErrDeleteFailed)
}

func (uc *roomUseCaseImpl) loadRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID, actor shared.Actor) (*shared.RoomSnapshot, error) {
	snap, err := tx.Reads().RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if !actor.CanAccessHotel(snap.HotelID) {
		return nil, ErrAccessDenied
	}
	return snap, nil
}
