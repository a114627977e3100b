package commands

import (
	"context"

	"hotel-backend/internal/domain/hotel"
	"hotel-backend/internal/domain/user"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/pkg/password"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidHotel       = errs.New("invalid hotel")
	ErrHotelAlreadyExists = errs.New("hotel already exists")
	ErrInvalidUser        = errs.New("invalid user")
	ErrUserAlreadyExists  = errs.New("user already exists")
)

type RegisterStaffRequest struct {
	Email    string
	Password string
	Role     string
	HotelID  *uuid.UUID
}

// AdminCommands manage reference data and staff accounts. They back the
// admin CLI and have no HTTP route.
type AdminCommands interface {
	CreateHotel(ctx context.Context, name, providerKey string) (uuid.UUID, error)
	CreateCategory(ctx context.Context, hotelID uuid.UUID, name string, priceCents int64, description string) (uuid.UUID, error)
	RegisterStaff(ctx context.Context, req RegisterStaffRequest) (uuid.UUID, error)
}

type adminUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAdminUseCase(uow shared.UnitOfWork) AdminCommands {
	return &adminUseCaseImpl{uow: uow}
}

func (uc *adminUseCaseImpl) CreateHotel(ctx context.Context, name, providerKey string) (uuid.UUID, error) {
	h, err := hotel.NewHotel(name, providerKey)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidHotel)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Hotels().Create(ctx, tx.DB(), h); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrHotelAlreadyExists)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return h.ID(), nil
}

func (uc *adminUseCaseImpl) CreateCategory(ctx context.Context, hotelID uuid.UUID, name string, priceCents int64, description string) (uuid.UUID, error) {
	c, err := hotel.NewCategory(hotelID, name, priceCents, description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidHotel)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Hotels().CreateCategory(ctx, tx.DB(), c); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrHotelNotFound)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *adminUseCaseImpl) RegisterStaff(ctx context.Context, req RegisterStaffRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUser)
	}
	if _, err = user.NewPassword(req.Password); err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUser)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUser)
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUser)
	}
	u, err := user.NewUser(email, hash, role, req.HotelID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUser)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.HotelID != nil {
			if _, derr := tx.Reads().HotelByID(ctx, *req.HotelID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrHotelNotFound
				}
				return derr
			}
		}

		created, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrUserAlreadyExists)
			}
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
