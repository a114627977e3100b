//go:build unit

package api_test

import (
	"hotel-backend/internal/domain/user"
	"hotel-backend/internal/handler/middleware"
	"hotel-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withActor stands in for the auth middleware.
func withActor(actor *shared.Actor, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			middleware.SetActor(c, *actor)
		}
		h(c)
	}
}

func staffActor(hotelID uuid.UUID) shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: user.RoleStaff, HotelID: &hotelID}
}

func customerActor(id uuid.UUID) shared.Actor {
	return shared.Actor{ID: id, Role: user.RoleCustomer}
}
