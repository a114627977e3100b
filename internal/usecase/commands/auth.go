package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"hotel-backend/internal/domain/auth"
	"hotel-backend/internal/domain/user"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/pkg/jwt"
	"hotel-backend/internal/pkg/password"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	HotelID   *uuid.UUID
	TokenPair *TokenPair
}

func (r *LoginResult) Actor() shared.Actor {
	return shared.Actor{ID: r.UserID, Role: r.Role, HotelID: r.HotelID}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	CustomerLogin(ctx context.Context, credentials auth.CustomerCredentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow           shared.UnitOfWork
	readStore     queries.UserReadStore
	customerStore queries.CustomerReadStore
	jwtService    *jwt.Service
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	customerStore queries.CustomerReadStore,
	jwtService *jwt.Service,
) AuthCommands {
	return &authCommandsImpl{
		uow:           uow,
		readStore:     readStore,
		customerStore: customerStore,
		jwtService:    jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil || !role.IsStaff() {
		return nil, errs.Mark(user.ErrInvalidRole, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issue(jwt.Principal{ID: userReadModel.ID, Role: role.String(), HotelID: userReadModel.HotelID})
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &LoginResult{UserID: userReadModel.ID, Role: role, HotelID: userReadModel.HotelID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) CustomerLogin(ctx context.Context, credentials auth.CustomerCredentials) (*LoginResult, error) {
	customerView, hashedPassword, err := a.customerStore.FindByUsername(ctx, credentials.Username())
	if err != nil {
		// same answer as a wrong password so usernames cannot be probed
		return nil, errs.Mark(auth.ErrInvalidCredentials, ErrInvalidCredentials)
	}
	if err = password.ComparePassword(hashedPassword, credentials.Password()); err != nil {
		return nil, errs.Mark(auth.ErrInvalidCredentials, ErrInvalidCredentials)
	}

	tokenPair, err := a.issue(jwt.Principal{ID: customerView.ID, Role: user.RoleCustomer.String()})
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: customerView.ID, Role: user.RoleCustomer, TokenPair: tokenPair}, nil
}

// RefreshToken re-reads the principal so a refreshed token reflects the
// current role, hotel and active flag.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if role == user.RoleCustomer {
		if _, err = a.customerStore.FindByID(ctx, claims.UserID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return a.issue(jwt.Principal{ID: claims.UserID, Role: role.String()})
	}

	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	return a.issue(jwt.Principal{ID: userReadModel.ID, Role: userReadModel.Role, HotelID: userReadModel.HotelID})
}

func (a *authCommandsImpl) issue(p jwt.Principal) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(p)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(p)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}
