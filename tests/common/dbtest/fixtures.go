//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	// TestPassword is the plain text behind testPasswordHash.
	TestPassword     = "password123"
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

	DefaultHotelName = "Default Hotel"
	SecondHotelName  = "Second Hotel"
)

func HotelID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM hotels WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestHotel(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO hotels (id, name, provider_key) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		hotelID, name, "sk_test_"+strings.ReplaceAll(strings.ToLower(name), " ", "_"))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		return HotelID(t, db, name)
	}
	return hotelID
}

func CreateTestCategory(t *testing.T, db DBLike, hotelID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO categories (id, hotel_id, name, price_cents, description) VALUES ($1, $2, $3, $4, $5)",
		categoryID, hotelID, name, priceCents, name+" room")
	require.NoError(t, err)
	return categoryID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID, categoryID uuid.UUID, number int32) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, hotel_id, category_id, number, description, area_sqm) VALUES ($1, $2, $3, $4, $5, $6)",
		roomID, hotelID, categoryID, number, fmt.Sprintf("Room %d", number), 22.5)
	require.NoError(t, err)
	return roomID
}

// CreateTestUser inserts an active staff or admin account. Staff need a
// hotel; pass nil for admins.
func CreateTestUser(t *testing.T, db DBLike, email, role string, hotelID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, hotel_id, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, testPasswordHash, role, hotelID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

// CreateTestCustomer inserts a customer without provisioning state.
func CreateTestCustomer(t *testing.T, db DBLike, username string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO customers (id, name, surname, document, username, password_hash, phone) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		customerID, "Test", "Customer", "DOC-"+customerID.String()[:8], username, testPasswordHash, "+34600000000")
	require.NoError(t, err)
	return customerID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hotels (id, name, provider_key) VALUES
		    (gen_random_uuid(), $1, 'sk_test_default'),
		    (gen_random_uuid(), $2, 'sk_test_second')
		ON CONFLICT (name) DO NOTHING;
	`, DefaultHotelName, SecondHotelName)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
