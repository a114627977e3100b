// Package cli implements the hotel-admin command line: schema migrations,
// reference data and provisioning maintenance.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-backend/cmd/bootstrap"
	"hotel-backend/cmd/bootstrap/components"
	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// App holds the use cases the admin commands drive.
type App struct {
	Admin        commands.AdminCommands
	Provisioning commands.ProvisioningCommands
}

type Options struct {
	// LoadApp starts the dependency graph. The returned func stops it.
	LoadApp func(ctx context.Context) (*App, func(), error)
	// LoadMigrator needs only configuration, not a running app.
	LoadMigrator func() (Migrator, error)
}

func DefaultOptions() Options {
	return Options{
		LoadApp: loadApp,
		LoadMigrator: func() (Migrator, error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return nil, fmt.Errorf("failed to load configuration: %w", err)
			}
			return NewAtlasMigrator(cfg.DB, ""), nil
		},
	}
}

func NewRootCmd(opts Options) *cobra.Command {
	root := &cobra.Command{
		Use:          "hotel-admin",
		Short:        "Administration CLI for the hotel backend",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(opts),
		newHotelCmd(opts),
		newCategoryCmd(opts),
		newUserCmd(opts),
		newProvisioningCmd(opts),
	)
	return root
}

// withApp runs fn against a started app and always stops it afterwards.
func withApp(cmd *cobra.Command, opts Options, fn func(ctx context.Context, app *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, stop, err := opts.LoadApp(ctx)
	if err != nil {
		return err
	}
	defer stop()
	return fn(ctx, app)
}

func loadApp(ctx context.Context) (*App, func(), error) {
	var app App
	fxApp := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		bootstrap.InfraModule,
		components.PersistenceModule,
		components.UseCaseModule,
		fx.Populate(&app.Admin, &app.Provisioning),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return nil, nil, fmt.Errorf("failed to start application: %w", err)
	}

	stop := func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer stopCancel()
		if err := fxApp.Stop(stopCtx); err != nil {
			slog.Warn("Failed to stop application", "error", err.Error())
		}
	}
	return &app, stop, nil
}
