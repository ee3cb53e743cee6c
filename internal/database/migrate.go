package database

import (
	"bufio"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"trivia-api/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	versionTableExistsQuery = `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`
	createVersionTableQuery = `CREATE TABLE schema_migrations (version NUMBER(19) NOT NULL, dirty NUMBER(1) NOT NULL)`
	selectVersionQuery      = `SELECT version, dirty FROM schema_migrations`
	clearVersionQuery       = `DELETE FROM schema_migrations`
	insertVersionQuery      = `INSERT INTO schema_migrations (version, dirty) VALUES (:1, :2)`
)

// ErrDirty is returned when a previous migration failed halfway and needs manual repair.
var ErrDirty = errors.New("database is in a dirty migration state")

type versionRow struct {
	Version uint `db:"VERSION"`
	Dirty   int  `db:"DIRTY"`
}

// Migrator applies versioned SQL files read through golang-migrate's iofs source.
// golang-migrate ships no Oracle database driver, so statements are executed here.
type Migrator struct {
	db  *sqlx.DB
	src source.Driver
}

// NewMigrator uses the migrations embedded in this package.
func NewMigrator(db *sqlx.DB) (*Migrator, error) {
	return NewMigratorFromFS(db, migrationsFS, "migrations")
}

func NewMigratorFromFS(db *sqlx.DB, fsys fs.FS, dir string) (*Migrator, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations: %w", err)
	}
	return &Migrator{db: db, src: src}, nil
}

func (m *Migrator) Close() error {
	return m.src.Close()
}

// Version returns the applied version, 0 when nothing has been applied.
func (m *Migrator) Version(ctx context.Context) (uint, bool, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, false, err
	}
	return m.readVersion(ctx)
}

// Up applies every pending migration and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	current, err := m.cleanVersion(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for {
		var next uint
		if current == 0 {
			next, err = m.src.First()
		} else {
			next, err = m.src.Next(current)
		}
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return applied, fmt.Errorf("could not find migration after %d: %w", current, err)
		}

		r, identifier, err := m.src.ReadUp(next)
		if err != nil {
			return applied, fmt.Errorf("could not read up migration %d: %w", next, err)
		}
		if err := m.apply(ctx, next, next, r); err != nil {
			return applied, err
		}
		logger.Get().Info("Applied migration", zap.Uint("version", next), zap.String("name", identifier))
		current = next
		applied++
	}
	return applied, nil
}

// Down reverts the most recently applied migration. It returns false when nothing was applied.
func (m *Migrator) Down(ctx context.Context) (bool, error) {
	current, err := m.cleanVersion(ctx)
	if err != nil {
		return false, err
	}
	if current == 0 {
		return false, nil
	}

	target, err := m.src.Prev(current)
	if errors.Is(err, fs.ErrNotExist) {
		target = 0
	} else if err != nil {
		return false, fmt.Errorf("could not find migration before %d: %w", current, err)
	}

	r, identifier, err := m.src.ReadDown(current)
	if err != nil {
		return false, fmt.Errorf("could not read down migration %d: %w", current, err)
	}
	if err := m.apply(ctx, current, target, r); err != nil {
		return false, err
	}
	logger.Get().Info("Reverted migration", zap.Uint("version", current), zap.String("name", identifier))
	return true, nil
}

func (m *Migrator) cleanVersion(ctx context.Context) (uint, error) {
	version, dirty, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("%w at version %d", ErrDirty, version)
	}
	return version, nil
}

// apply marks version dirty, runs the statements in r, then records target as clean.
func (m *Migrator) apply(ctx context.Context, version, target uint, r io.ReadCloser) error {
	defer r.Close()
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}

	if err := m.setVersion(ctx, version, true); err != nil {
		return err
	}
	for _, stmt := range SplitStatements(string(body)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %d: %w", version, err)
		}
	}
	return m.setVersion(ctx, target, false)
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var count int
	if err := m.db.GetContext(ctx, &count, versionTableExistsQuery); err != nil {
		return fmt.Errorf("could not inspect schema_migrations: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := m.db.ExecContext(ctx, createVersionTableQuery); err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

func (m *Migrator) readVersion(ctx context.Context) (uint, bool, error) {
	var row versionRow
	err := m.db.GetContext(ctx, &row, selectVersionQuery)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("could not read schema version: %w", err)
	}
	return row.Version, row.Dirty != 0, nil
}

func (m *Migrator) setVersion(ctx context.Context, version uint, dirty bool) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin version update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearVersionQuery); err != nil {
		tx.Rollback()
		return fmt.Errorf("could not clear schema version: %w", err)
	}
	if version > 0 {
		dirtyFlag := 0
		if dirty {
			dirtyFlag = 1
		}
		if _, err := tx.ExecContext(ctx, insertVersionQuery, int64(version), dirtyFlag); err != nil {
			tx.Rollback()
			return fmt.Errorf("could not record schema version: %w", err)
		}
	}
	return tx.Commit()
}

// SplitStatements splits a migration file into statements terminated by ';' at end of line.
// Oracle rejects the trailing ';' through the driver, so it is dropped.
func SplitStatements(body string) []string {
	var (
		stmts []string
		cur   strings.Builder
	)
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		if strings.HasSuffix(trimmed, ";") {
			cur.WriteString(strings.TrimSuffix(strings.TrimRight(line, " \t\r"), ";"))
			stmts = append(stmts, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteString(line)
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
