// Package catalog keeps an index of the save directories under a save root.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	_ "modernc.org/sqlite"
)

// FileName is the catalog database inside a save root.
const FileName = "catalog.db"

// Entry describes one save.
type Entry struct {
	Name         string
	Dir          string
	Planets      int
	ShipX, ShipY float64
	SavedAt      time.Time
}

// Label renders the entry for a save picker.
func (e Entry) Label() string {
	return e.LabelAt(time.Now())
}

// LabelAt is Label relative to now.
func (e Entry) LabelAt(now time.Time) string {
	noun := "planets"
	if e.Planets == 1 {
		noun = "planet"
	}
	return fmt.Sprintf("%s (%s %s, saved %s)", e.Name, humanize.Comma(int64(e.Planets)), noun,
		humanize.RelTime(e.SavedAt, now, "ago", "from now"))
}

// SaveName returns custom, or a timestamped default like save_0314261530.
func SaveName(custom string, now time.Time) string {
	if custom != "" {
		return custom
	}
	return "save_" + now.Format("0102061504")
}

// Catalog is an sqlite-backed index of saves.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return nil, errors.New("empty catalog path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initDB(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &Catalog{db: db}, nil
}

func initDB(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS saves (
			name TEXT PRIMARY KEY,
			dir TEXT NOT NULL,
			planets INTEGER NOT NULL,
			ship_x REAL NOT NULL,
			ship_y REAL NOT NULL,
			saved_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Record inserts or replaces the entry named e.Name.
func (c *Catalog) Record(ctx context.Context, e Entry) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO saves (name, dir, planets, ship_x, ship_y, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			dir=excluded.dir, planets=excluded.planets,
			ship_x=excluded.ship_x, ship_y=excluded.ship_y, saved_at=excluded.saved_at`,
		e.Name, e.Dir, e.Planets, e.ShipX, e.ShipY, e.SavedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("record %s: %w", e.Name, err)
	}
	return nil
}

// List returns all entries, most recently saved first.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT name, dir, planets, ship_x, ship_y, saved_at FROM saves ORDER BY saved_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ns int64
		if err := rows.Scan(&e.Name, &e.Dir, &e.Planets, &e.ShipX, &e.ShipY, &ns); err != nil {
			return nil, err
		}
		e.SavedAt = time.Unix(0, ns)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get returns the entry called name.
func (c *Catalog) Get(ctx context.Context, name string) (Entry, bool, error) {
	var e Entry
	var ns int64
	err := c.db.QueryRowContext(ctx,
		`SELECT name, dir, planets, ship_x, ship_y, saved_at FROM saves WHERE name = ?`, name).
		Scan(&e.Name, &e.Dir, &e.Planets, &e.ShipX, &e.ShipY, &ns)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	e.SavedAt = time.Unix(0, ns)
	return e, true, nil
}

// Forget removes the entry called name. The save directory is untouched.
func (c *Catalog) Forget(ctx context.Context, name string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM saves WHERE name = ?`, name)
	return err
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}
