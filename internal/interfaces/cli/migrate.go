package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/dicky/portfolio/internal/infrastructure/logger"
	"github.com/dicky/portfolio/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNeedsPostgres = errors.New("SQL migrations need the postgres driver; sqlite schemas are created when the server starts")

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres schema",
		Long: `Apply, roll back and author the numbered SQL migrations.

Database settings come from config.toml or PORTFOLIO_DATABASE_* variables.`,
	}
	cmd.PersistentFlags().StringVar(&dir, "path", "migrations", "Migrations directory")

	withMigrator := func(run func(cmd *cobra.Command, m *migration.Migrator, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			m, closeAll, err := openMigrator(dir)
			if err != nil {
				return err
			}
			defer closeAll()
			return run(cmd, m, args)
		}
	}

	var confirmed bool
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(cmd *cobra.Command, m *migration.Migrator, _ []string) error {
			return m.Down()
		}),
		PreRunE: func(*cobra.Command, []string) error {
			if !confirmed {
				return errors.New("down drops every content table; pass --yes to continue")
			}
			return nil
		},
	}
	down.Flags().BoolVar(&confirmed, "yes", false, "Confirm rolling back the whole schema")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(_ *cobra.Command, m *migration.Migrator, _ []string) error {
				return m.Up()
			}),
		},
		down,
		&cobra.Command{
			Use:   "step <n>",
			Short: "Apply n migrations; negative n rolls back",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(_ *cobra.Command, m *migration.Migrator, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid step count %q", args[0])
				}
				return m.Steps(n)
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the applied schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *migration.Migrator, _ []string) error {
				st, err := m.Status()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d", st.Version)
				if st.Dirty {
					fmt.Fprint(cmd.OutOrStdout(), " (dirty)")
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}),
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Record a version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(_ *cobra.Command, m *migration.Migrator, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q", args[0])
				}
				return m.Force(v)
			}),
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create the next numbered up/down pair",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := migration.Create(dir, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), f.UpPath)
				fmt.Fprintln(cmd.OutOrStdout(), f.DownPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List migrations on disk",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				files, err := migration.List(dir)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "%06d  %s\n", f.Version, f.Name)
				}
				return nil
			},
		},
	)
	return cmd
}

// openMigrator connects to the configured postgres database
func openMigrator(dir string) (*migration.Migrator, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	if cfg.Database.Driver != "postgres" {
		return nil, nil, errNeedsPostgres
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console", Output: "stderr"})
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	m, err := migration.New(db, abs, log)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	log.Debug("Migrator ready", zap.String("path", abs))
	return m, func() {
		_ = m.Close()
		_ = log.Sync()
	}, nil
}
