// SPDX-License-Identifier: MIT
// Package: knots/store
//
// store.go - Store: open, save, get, list, delete.

package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/knots/coords"
	"github.com/katalvlaran/knots/knot"
)

//go:embed schema.sql
var schemaSQL string

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Record describes a stored curve without its points.
type Record struct {
	ID        string
	Name      string
	Kind      knot.Kind
	Crossings *int
	Samples   int
	Recipe    *knot.Recipe // nil for custom curves
	CreatedAt time.Time
}

// entry is what the cache holds: the record plus its decoded points.
type entry struct {
	rec Record
	buf *coords.Buffer
}

// curve builds a fresh Curve around a copy of the cached buffer.
func (e entry) curve() (*knot.Curve, error) {
	buf := e.buf.Clone()
	if e.rec.Recipe != nil {
		return e.rec.Recipe.Build(knot.WithCoordinates(buf))
	}
	opts := []knot.Option{knot.WithName(e.rec.Name), knot.WithCoordinates(buf)}
	if e.rec.Crossings != nil {
		opts = append(opts, knot.WithCrossings(*e.rec.Crossings))
	}

	return knot.New(opts...)
}

// Store is a SQLite-backed curve repository.
type Store struct {
	mu     sync.RWMutex
	closed bool
	db     *sql.DB
	cache  *cache.Cache
	ttl    time.Duration
	now    func() time.Time
	logger l.Wrapper
}

// Open opens (creating if needed) the database at path and ensures the
// schema. The parent directory is created when missing.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	cfg := newConfig(opts...)
	logger := cfg.logger.WithFields(l.StringField(l.ClsKey, "store"))

	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store.Open: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w", err)
	}
	// One connection: an in-memory database is per connection, and SQLite
	// serialises writers anyway.
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		logger.WithFields(l.ErrorField(err), l.StringField("path", path)).Error("schema init failed")
		return nil, fmt.Errorf("store.Open: schema: %w", err)
	}
	logger.WithFields(l.StringField("path", path)).Debug("store opened")

	return &Store{
		db:     db,
		cache:  cache.New(cfg.cacheTTL, 2*cfg.cacheTTL),
		ttl:    cfg.cacheTTL,
		now:    cfg.now,
		logger: logger,
	}, nil
}

func (s *Store) checkOpen() error {
	if s.closed {
		return ErrClosed
	}

	return nil
}

// Save persists c with its coordinates in one transaction and returns the
// new record. An ungenerated curve fails with knot.ErrUninitialized.
func (s *Store) Save(ctx context.Context, c *knot.Curve) (rec Record, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err = s.checkOpen(); err != nil {
		return Record{}, err
	}

	buf, err := c.Coordinates()
	if err != nil {
		return Record{}, fmt.Errorf("store.Save: %w", err)
	}

	rec = Record{
		ID:        uuid.NewString(),
		Name:      c.Name(),
		Kind:      c.Kind(),
		Samples:   buf.Rows(),
		CreatedAt: s.now().UTC(),
	}
	if n, ok := c.Crossings(); ok {
		rec.Crossings = &n
	}
	var recipeJSON sql.NullString
	if r, ok := c.Recipe(); ok {
		raw, err := json.Marshal(r)
		if err != nil {
			return Record{}, fmt.Errorf("store.Save: recipe: %w", err)
		}
		rec.Recipe = &r
		recipeJSON = sql.NullString{String: string(raw), Valid: true}
	}

	if err = s.insert(ctx, rec, recipeJSON, buf); err != nil {
		s.logger.WithFields(l.ErrorField(err), l.StringField("name", rec.Name)).Error("save failed")
		return Record{}, fmt.Errorf("store.Save: %w", err)
	}
	s.logger.WithFields(l.StringField("id", rec.ID), l.StringField("name", rec.Name), l.IntField("samples", rec.Samples)).
		Debug("curve saved")

	return rec, nil
}

func (s *Store) insert(ctx context.Context, rec Record, recipe sql.NullString, buf *coords.Buffer) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var crossings sql.NullInt64
	if rec.Crossings != nil {
		crossings = sql.NullInt64{Int64: int64(*rec.Crossings), Valid: true}
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO curves (id, name, kind, crossings, samples, recipe, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Kind.String(), crossings, rec.Samples, recipe, rec.CreatedAt.UnixNano())
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO points (curve_id, seq, x, y, z) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, p := range buf.Points() {
		if _, err = stmt.ExecContext(ctx, rec.ID, i, p.X, p.Y, p.Z); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Get returns the curve stored under id, with coordinates. Unknown ids fail
// with ErrNotFound. Every call returns a new Curve.
func (s *Store) Get(ctx context.Context, id string) (*knot.Curve, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	if v, ok := s.cache.Get(id); ok {
		return v.(entry).curve()
	}

	e, err := s.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.Get %s: %w", id, err)
	}
	s.cache.Set(id, e, s.ttl)

	return e.curve()
}

// Record returns the metadata stored under id.
func (s *Store) Record(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return Record{}, err
	}

	if v, ok := s.cache.Get(id); ok {
		return v.(entry).rec, nil
	}
	rec, err := scanRecord(s.db.QueryRowContext(ctx, selectRecord+` WHERE id = ?`, id))
	if err != nil {
		return Record{}, fmt.Errorf("store.Record %s: %w", id, err)
	}

	return rec, nil
}

const selectRecord = `SELECT id, name, kind, crossings, samples, recipe, created_at FROM curves`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		rec       Record
		kind      string
		crossings sql.NullInt64
		recipe    sql.NullString
		created   int64
	)
	if err := row.Scan(&rec.ID, &rec.Name, &kind, &crossings, &rec.Samples, &recipe, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.Kind, _ = knot.ParseKind(kind)
	if crossings.Valid {
		n := int(crossings.Int64)
		rec.Crossings = &n
	}
	if recipe.Valid {
		var r knot.Recipe
		if err := json.Unmarshal([]byte(recipe.String), &r); err != nil {
			return Record{}, fmt.Errorf("recipe of %s: %w", rec.ID, err)
		}
		rec.Recipe = &r
	}
	rec.CreatedAt = time.Unix(0, created).UTC()

	return rec, nil
}

func (s *Store) load(ctx context.Context, id string) (entry, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx, selectRecord+` WHERE id = ?`, id))
	if err != nil {
		return entry{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT x, y, z FROM points WHERE curve_id = ? ORDER BY seq`, id)
	if err != nil {
		return entry{}, err
	}
	defer rows.Close()

	pts := make([]coords.Point, 0, rec.Samples)
	for rows.Next() {
		var p coords.Point
		if err = rows.Scan(&p.X, &p.Y, &p.Z); err != nil {
			return entry{}, err
		}
		pts = append(pts, p)
	}
	if err = rows.Err(); err != nil {
		return entry{}, err
	}

	buf, err := coords.FromPoints(pts)
	if err != nil {
		return entry{}, fmt.Errorf("points of %s: %w", id, err)
	}

	return entry{rec: rec, buf: buf}, nil
}

// List returns every record ordered by creation time, then name.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, selectRecord+` ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("store.List: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("store.List: %w", err)
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store.List: %w", err)
	}

	return out, nil
}

// Delete removes the curve and its points. Unknown ids fail with
// ErrNotFound.
//
// Delete holds the write lock so no Get can load the row before the
// transaction commits and cache it afterwards.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.checkOpen(); err != nil {
		return err
	}
	s.cache.Delete(id)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM curves WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}
	if n == 0 {
		err = fmt.Errorf("store.Delete %s: %w", id, ErrNotFound)
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM points WHERE curve_id = ?`, id); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}
	s.logger.WithFields(l.StringField("id", id)).Debug("curve deleted")

	return nil
}

// Close releases the database. Further calls fail with ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.cache.Flush()

	return s.db.Close()
}
