//go:build unit

package repository

import (
	sqlc "hotel-backend/internal/infra/sqlc/generated"
)

// mockDBTX stands in for a transaction handle; queries are mocked, so it is never used.
type mockDBTX struct {
	sqlc.DBTX
}
