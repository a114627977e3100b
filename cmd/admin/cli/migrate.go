package cli

import (
	"context"
	"fmt"
	"net/url"

	"hotel-backend/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

const defaultMigrationsDir = "file://migrations"

type MigrationResult struct {
	Current string
	Target  string
	Applied []string
}

type Migrator interface {
	Apply(ctx context.Context, dirURL string) (*MigrationResult, error)
}

// AtlasMigrator shells out to the atlas binary found on PATH unless
// execPath is set.
type AtlasMigrator struct {
	db       config.DBConfig
	execPath string
}

func NewAtlasMigrator(db config.DBConfig, execPath string) *AtlasMigrator {
	if execPath == "" {
		execPath = "atlas"
	}
	return &AtlasMigrator{db: db, execPath: execPath}
}

func (m *AtlasMigrator) Apply(ctx context.Context, dirURL string) (*MigrationResult, error) {
	client, err := atlasexec.NewClient(".", m.execPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    databaseURL(m.db),
		DirURL: dirURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	out := &MigrationResult{Current: res.Current, Target: res.Target}
	for _, f := range res.Applied {
		out.Applied = append(out.Applied, f.Name)
	}
	return out, nil
}

func databaseURL(db config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     db.Host + ":" + db.Port,
		Path:     "/" + db.DBName,
		RawQuery: url.Values{"sslmode": []string{db.SSLMode}}.Encode(),
	}
	return u.String()
}

func newMigrateCmd(opts Options) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := opts.LoadMigrator()
			if err != nil {
				return err
			}
			res, err := m.Apply(cmd.Context(), dir)
			if err != nil {
				return err
			}
			if len(res.Applied) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date (version %s)\n", res.Current)
				return nil
			}
			for _, name := range res.Applied {
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated to version %s\n", res.Target)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", defaultMigrationsDir, "migration directory URL")
	return cmd
}
