// Package store persists generated curves in SQLite.
//
// A saved curve becomes one row in curves (id, name, kind, crossings,
// samples, recipe JSON, created_at) and N rows in points. Ids are random
// UUIDs. Get rebuilds the curve, shaped when a recipe was stored, with the
// persisted coordinates already in place, so no regeneration happens on
// read. Decoded curves are kept in an in-process cache keyed by id.
//
// The driver is modernc.org/sqlite (pure Go, no cgo). A Store is safe for
// concurrent use; blocking calls take a context.Context.
//
//	s, err := store.Open(ctx, "knots.db")
//	rec, err := s.Save(ctx, curve)
//	c, err := s.Get(ctx, rec.ID)
package store
