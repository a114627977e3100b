package shared

import "hotel-backend/internal/pkg/errs"

var ErrLockHeld = errs.New("lock held by another owner")
