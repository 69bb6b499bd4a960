// Package migration applies the versioned SQL files under migrations/ with
// golang-migrate.
package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Status is the schema state recorded in schema_migrations
type Status struct {
	Version uint
	Dirty   bool
}

// Migrator runs schema migrations against a postgres database
type Migrator struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

// New binds a Migrator to an open postgres connection and the migration
// files in dir
func New(db *sql.DB, dir string, logger *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations in %s: %w", dir, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Migrator{m: m, logger: logger}, nil
}

// Up applies every pending migration
func (mg *Migrator) Up() error {
	return mg.apply("up", mg.m.Up)
}

// Down rolls back every migration
func (mg *Migrator) Down() error {
	return mg.apply("down", mg.m.Down)
}

// Steps applies n migrations; negative n rolls back
func (mg *Migrator) Steps(n int) error {
	return mg.apply(fmt.Sprintf("step %d", n), func() error { return mg.m.Steps(n) })
}

// Force records version without running anything, clearing a dirty state
func (mg *Migrator) Force(version int) error {
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	mg.logger.Warn("Schema version forced", zap.Int("version", version))
	return nil
}

// Status reports the applied version. A fresh database is at version 0.
func (mg *Migrator) Status() (Status, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("read schema version: %w", err)
	}
	return Status{Version: v, Dirty: dirty}, nil
}

// Close releases the source and database handles
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

// apply runs op, treating "nothing to do" as success, and logs the
// resulting schema version
func (mg *Migrator) apply(name string, op func() error) error {
	err := op()
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("Schema unchanged", zap.String("op", name))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", name, err)
	}
	st, err := mg.Status()
	if err != nil {
		return err
	}
	mg.logger.Info("Schema migrated", zap.String("op", name), zap.Uint("version", st.Version), zap.Bool("dirty", st.Dirty))
	return nil
}
