package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-backend/internal/domain/user"
	"hotel-backend/internal/handler/httperr"
	"hotel-backend/internal/pkg/cookie"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/pkg/jwt"
	"hotel-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const ctxActorKey = "actor"

var (
	errTokenMissing    = errs.New("access token missing")
	errNotAccessToken  = errs.New("not an access token")
	errInvalidClaims   = errs.New("invalid token claims")
	errRoleTooLow      = errs.New("insufficient role")
	errActorNotInScope = errs.New("actor missing from context")
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err == nil && claims.TokenType != jwt.TokenTypeAccess {
			err = errNotAccessToken
		}
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errActorNotInScope, "Internal server error", nil)
			return
		}

		if actor.Role.Level() < minRole.Level() {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleTooLow, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// RequireStaff admits staff and admins.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return m.RequireRoleAtLeast(user.RoleStaff)
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func actorFromClaims(claims *jwt.Claims) (shared.Actor, error) {
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, errInvalidClaims)
	}
	if claims.UserID == uuid.Nil {
		return shared.Actor{}, errInvalidClaims
	}
	if role == user.RoleStaff && claims.HotelID == nil {
		return shared.Actor{}, errs.Wrap(errInvalidClaims, "staff token without hotel")
	}
	return shared.Actor{ID: claims.UserID, Role: role, HotelID: claims.HotelID}, nil
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return actor.ID, true
}

// SetActor is used by tests that bypass token validation.
func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxActorKey, actor)
}
