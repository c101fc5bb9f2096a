package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

const defaultMigrationsTable = "schema_migrations"

// Migration is one embedded *.up.sql file
type Migration struct {
	Version string // file name without ".up.sql", e.g. "0001_init"
	SQL     string
}

// AppliedMigration is a row of the bookkeeping table
type AppliedMigration struct {
	Version   string
	AppliedAt time.Time
}

// Migrator applies embedded migrations through database/sql + lib/pq.
// Each migration runs in its own transaction together with its bookkeeping row.
type Migrator struct {
	db    *sql.DB
	table string
}

// OpenMigrator opens a dedicated database/sql connection with the lib/pq driver
func OpenMigrator(dsn string) (*Migrator, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}
	return NewMigrator(db), nil
}

func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db, table: defaultMigrationsTable}
}

func (m *Migrator) Close() error {
	return m.db.Close()
}

// LoadMigrations returns embedded migrations sorted by version
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFiles, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var migrations []Migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		body, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(e.Name(), ".up.sql"),
			SQL:     string(body),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, pq.QuoteIdentifier(m.table))

	if _, err := m.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create %s: %w", m.table, err)
	}
	return nil
}

// Applied lists applied versions, oldest first
func (m *Migrator) Applied(ctx context.Context) ([]AppliedMigration, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT version, applied_at FROM %s ORDER BY version`, pq.QuoteIdentifier(m.table)))
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	var applied []AppliedMigration
	for rows.Next() {
		var a AppliedMigration
		if err := rows.Scan(&a.Version, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan applied migration: %w", err)
		}
		applied = append(applied, a)
	}
	return applied, rows.Err()
}

// Up applies every pending migration and returns the versions it applied
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return nil, err
	}

	applied, err := m.Applied(ctx)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(applied))
	for _, a := range applied {
		done[a.Version] = true
	}

	var ran []string
	for _, mig := range pending(migrations, done) {
		if err := m.apply(ctx, mig); err != nil {
			return ran, err
		}
		log.Info().Str("version", mig.Version).Msg("[MIGRATE] Applied")
		ran = append(ran, mig.Version)
	}
	return ran, nil
}

func pending(all []Migration, done map[string]bool) []Migration {
	var out []Migration
	for _, mig := range all {
		if !done[mig.Version] {
			out = append(out, mig)
		}
	}
	return out
}

func (m *Migrator) apply(ctx context.Context, mig Migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", mig.Version, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, mig.SQL); err != nil {
		return fmt.Errorf("apply %s: %w", mig.Version, err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (version) VALUES ($1)`, pq.QuoteIdentifier(m.table))
	if _, err := tx.ExecContext(ctx, insert, mig.Version); err != nil {
		return fmt.Errorf("record %s: %w", mig.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", mig.Version, err)
	}
	return nil
}
