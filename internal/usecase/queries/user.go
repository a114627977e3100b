package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	// GetPrincipal describes the caller, staff user or customer.
	GetPrincipal(ctx context.Context, actor shared.Actor) (*PrincipalView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore     UserReadStore
	customerStore CustomerReadStore
}

func NewUserQueries(readStore UserReadStore, customerStore CustomerReadStore) UserQueries {
	return &userQueriesImpl{
		readStore:     readStore,
		customerStore: customerStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) GetPrincipal(ctx context.Context, actor shared.Actor) (*PrincipalView, error) {
	if actor.IsCustomer() {
		c, err := q.customerStore.FindByID(ctx, actor.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return &PrincipalView{
			ID:       c.ID,
			Role:     actor.Role.String(),
			Username: &c.Username,
			Name:     &c.Name,
		}, nil
	}

	user, err := q.GetCurrentUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &PrincipalView{
		ID:      user.ID,
		Role:    user.Role,
		HotelID: user.HotelID,
		Email:   &user.Email,
	}, nil
}
