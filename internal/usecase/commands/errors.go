package commands

import (
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
)

// Sentinels shared by several command use cases.
var (
	ErrAccessDenied     = errs.New("access denied")
	ErrHotelNotFound    = errs.New("hotel not found")
	ErrRoomNotFound     = errs.New("room not found")
	ErrCustomerNotFound = errs.New("customer not found")
	ErrDeleteFailed     = errs.New("delete failed")
	ErrProviderError    = errs.New("payment provider error")
)

// IsReferenced reports whether err stems from rows still referencing the
// deleted one.
func IsReferenced(err error) bool {
	return infra.IsKind(err, infra.KindForeignKeyViolated)
}
