//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-backend/cmd/bootstrap"
	"hotel-backend/cmd/bootstrap/components"
	"hotel-backend/internal/infra/db"
	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/pkg/retry"
	"hotel-backend/internal/usecase/shared"
	"hotel-backend/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

// One postgres container serves every suite in the process; each suite gets
// its own database inside it.
var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgAddr      ContainerInfo
	pgErr       error
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, c.Host, c.Port.Port(), database)
}

// SharedSuite boots the whole API against a fresh database with the payment
// provider replaced by FakePaymentProvider.
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	DB       *pgxpool.Pool
	Config   config.Config
	Payments *FakePaymentProvider
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	addr := postgres(t)
	dbConfig := createDatabase(t, addr)

	pool, closePool, err := db.Connect(dbConfig)
	require.NoError(t, err, "connect to suite database")
	t.Cleanup(closePool)

	require.NoError(t, applyMigrations(t.Context(), pool), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")

	s.Payments = NewFakePaymentProvider()
	s.DB = pool
	s.Config = testConfig(dbConfig)
	s.Router = startApp(t, pool, s.Config, s.Payments)

	slog.Debug("e2e suite ready", "database", dbConfig.DBName, "postgres", addr.Host+":"+addr.Port.Port())
}

// SetupSubTest truncates every table, reseeds and forgets provider records.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
	s.Payments.Reset()
}

func postgres(t *testing.T) ContainerInfo {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// durability is irrelevant for throwaway data
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return ContainerInfo{Host: host, Port: port}.dsn("postgres")
				}).WithStartupTimeout(60 * time.Second),
				Name:   "hotel-postgres-e2e",
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
		if pgErr != nil {
			return
		}

		host, err := pgContainer.Host(ctx)
		if err != nil {
			pgErr = err
			return
		}
		port, err := pgContainer.MappedPort(ctx, "5432/tcp")
		if err != nil {
			pgErr = err
			return
		}
		pgAddr = ContainerInfo{Host: host, Port: port}
	})

	require.NoError(t, pgErr, "start postgres container")
	return pgAddr
}

// createDatabase makes a database private to the calling suite and drops it
// when the suite ends.
func createDatabase(t *testing.T, addr ContainerInfo) config.DBConfig {
	t.Helper()

	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, addr.dsn("postgres"))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// postgres can refuse CREATE DATABASE while another one copies template1
	policy := retry.Policy{MaxRetries: 4, Base: 250 * time.Millisecond, Name: "e2e.create_database"}
	err = retry.Do(ctx, policy, func(error) bool { return true }, func(ctx context.Context) error {
		_, cerr := admin.Exec(ctx, "CREATE DATABASE "+name)
		return cerr
	})
	require.NoError(t, err, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, addr.dsn("postgres"))
		if err != nil {
			slog.Warn("e2e database left behind", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("e2e database left behind", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     addr.Host,
		Port:     addr.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Europe/Rome",
	}
}

// applyMigrations runs migrations/*.sql in name order.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations under %s", root)
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// repoRoot walks up from the test's package directory to go.mod.
func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above working directory")
		}
		dir = parent
	}
}

func testConfig(dbConfig config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	// ResetDB re-creates hotels between subtests
	cfg.Cache.HotelTTL = 0
	return cfg
}

// startApp wires the production modules around the suite's pool and config
// and stops the app when the suite ends.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config, payments *FakePaymentProvider) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.ConfigSections,
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.InfraModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Decorate(func(shared.PaymentProvider) shared.PaymentProvider { return payments }),
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start app")
	require.NotNil(t, router, "router not populated")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("app did not stop cleanly", "error", err.Error())
		}
	})
	return router
}
