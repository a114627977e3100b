package bootstrap

import (
	"fmt"
	"time"

	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService is shared by the staff and customer logins; both token
// kinds carry the principal's role.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}

	refreshTokenDuration, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_DURATION: %w", err)
	}
	if refreshTokenDuration <= accessTokenDuration {
		return nil, fmt.Errorf("JWT_REFRESH_TOKEN_DURATION (%s) must exceed JWT_ACCESS_TOKEN_DURATION (%s)",
			refreshTokenDuration, accessTokenDuration)
	}

	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration, refreshTokenDuration), nil
}
