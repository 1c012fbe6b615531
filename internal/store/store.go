// Package store persists generated zones to SQLite or PostgreSQL and to
// standalone YAML snapshot files.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/zone"
)

var (
	// ErrNotFound is returned when a named zone does not exist.
	ErrNotFound = errors.New("zone not found")

	// ErrDuplicateName is returned when saving under a name already in use.
	ErrDuplicateName = errors.New("zone name already in use")
)

// Config holds connection settings for the zone store.
type Config struct {
	// Driver selects the backend: "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// Path is the SQLite database file.
	Path string `yaml:"path"`

	// Postgres settings, used when Driver is "postgres".
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// DefaultConfig returns SQLite settings pointed at the given file.
func DefaultConfig(path string) Config {
	return Config{
		Driver:  "sqlite",
		Path:    path,
		Host:    "localhost",
		Port:    5432,
		SSLMode: "disable",
	}
}

// Store wraps a SQL connection and the dialect it speaks.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to the configured backend and runs migrations.
func Open(cfg Config) (*Store, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	var dsn string
	switch dialect.DriverName() {
	case "postgres":
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode)
	default:
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn = cfg.Path
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	s := &Store{db: db, dialect: dialect}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the schema if it does not exist.
func (s *Store) migrate() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.dialect.DriverName() == "postgres" {
		serial = "SERIAL PRIMARY KEY"
	}
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS zones (
		id %s,
		name TEXT UNIQUE NOT NULL,
		theme TEXT NOT NULL,
		family TEXT NOT NULL,
		seed BIGINT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		fingerprint TEXT NOT NULL,
		snapshot TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`, serial)
	if _, err := s.db.Exec(stmt); err != nil {
		return err
	}
	return nil
}

// ZoneRecord is one stored zone's metadata row.
type ZoneRecord struct {
	ID          int64
	Name        string
	Theme       string
	Family      string
	Seed        int64
	Width       int
	Height      int
	Fingerprint string
	CreatedAt   time.Time
}

// SaveZone stores a finished layout under a unique name.
func (s *Store) SaveZone(name string, lay *grid.Layout, report *zone.Report) (int64, error) {
	body, err := yaml.Marshal(NewSnapshot(lay, report))
	if err != nil {
		return 0, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := rebind(s.dialect,
		`INSERT INTO zones (name, theme, family, seed, width, height, fingerprint, snapshot, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	args := []any{
		name, report.Theme, report.Family, report.Seed,
		report.Width, report.Height, report.Fingerprint,
		string(body), time.Now().UTC(),
	}

	if s.dialect.SupportsLastInsertID() {
		res, err := s.db.Exec(query, args...)
		if err != nil {
			if s.dialect.IsDuplicateKeyError(err) {
				return 0, ErrDuplicateName
			}
			return 0, fmt.Errorf("failed to insert zone: %w", err)
		}
		return res.LastInsertId()
	}

	var id int64
	query += s.dialect.ReturningClause("id")
	if err := s.db.QueryRow(query, args...).Scan(&id); err != nil {
		if s.dialect.IsDuplicateKeyError(err) {
			return 0, ErrDuplicateName
		}
		return 0, fmt.Errorf("failed to insert zone: %w", err)
	}
	return id, nil
}

// LoadZone reads a stored zone back into grids by name.
func (s *Store) LoadZone(name string) (*grid.Layout, *zone.Report, error) {
	query := rebind(s.dialect, `SELECT snapshot FROM zones WHERE name = ?`)

	var body string
	err := s.db.QueryRow(query, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query zone: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal([]byte(body), &snap); err != nil {
		return nil, nil, fmt.Errorf("failed to parse stored snapshot: %w", err)
	}
	lay, err := snap.Layout()
	if err != nil {
		return nil, nil, err
	}
	report := snap.Report
	return lay, &report, nil
}

// ListZones returns metadata for every stored zone, newest first.
func (s *Store) ListZones() ([]ZoneRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, name, theme, family, seed, width, height, fingerprint, created_at
		 FROM zones ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	var out []ZoneRecord
	for rows.Next() {
		var rec ZoneRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Theme, &rec.Family, &rec.Seed,
			&rec.Width, &rec.Height, &rec.Fingerprint, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteZone removes a stored zone by name.
func (s *Store) DeleteZone(name string) error {
	query := rebind(s.dialect, `DELETE FROM zones WHERE name = ?`)
	res, err := s.db.Exec(query, name)
	if err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
