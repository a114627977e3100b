package api

import (
	"errors"
	"net/http"

	"hotel-backend/internal/handler/httperr"
	"hotel-backend/internal/handler/middleware"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errActorMissing = errors.New("actor missing from context")
	errInvalidID    = errors.New("invalid id")
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first matching sentinel wins.
var usecaseErrors = []errorMapping{
	{commands.ErrAccessDenied, http.StatusForbidden, "Access denied"},
	{queries.ErrAccessDenied, http.StatusForbidden, "Access denied"},

	{commands.ErrHotelNotFound, http.StatusNotFound, "Hotel not found"},
	{queries.ErrHotelNotFound, http.StatusNotFound, "Hotel not found"},
	{commands.ErrCategoryNotFound, http.StatusNotFound, "Category not found"},
	{commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{queries.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{commands.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
	{queries.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},

	{commands.ErrCustomerAlreadyExists, http.StatusConflict, "Customer already exists"},
	{commands.ErrRoomNumberTaken, http.StatusConflict, "Room number already taken"},
	{commands.ErrDateNotCompatible, http.StatusConflict, "Dates not compatible with existing reservations"},
	{commands.ErrDuplicateReservation, http.StatusConflict, "Idempotency key reused with a different request"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "Reservation request is currently being processed"},
	{commands.ErrProvisioningBusy, http.StatusConflict, "Provisioning already running for customer"},
	{commands.ErrRoomOutOfService, http.StatusConflict, "Room out of service"},

	{queries.ErrInvalidQuery, http.StatusBadRequest, "Invalid query"},
	{commands.ErrInvalidStay, http.StatusBadRequest, "Invalid stay"},
	{commands.ErrInvalidCustomer, http.StatusBadRequest, "Invalid customer"},
	{commands.ErrInvalidRoom, http.StatusBadRequest, "Invalid room"},

	{commands.ErrProviderError, http.StatusBadGateway, "Payment provider error"},
}

// abortWithUsecaseError maps use case sentinels to HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	if errors.Is(err, commands.ErrDeleteFailed) {
		abortWithDeleteError(c, err)
		return
	}
	for _, m := range usecaseErrors {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// A delete blocked by a reference or a concurrent provisioning run is a
// conflict; a provider failure is reported as such.
func abortWithDeleteError(c *gin.Context, err error) {
	switch {
	case commands.IsReferenced(err):
		httperr.AbortWithError(c, http.StatusConflict, err, "Delete failed: still referenced", nil)
	case errors.Is(err, commands.ErrProvisioningBusy):
		httperr.AbortWithError(c, http.StatusConflict, err, "Delete failed: provisioning running", nil)
	case errors.Is(err, commands.ErrProviderError):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Delete failed: payment provider error", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
	}
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errActorMissing, "Internal server error", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errInvalidID, err), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
