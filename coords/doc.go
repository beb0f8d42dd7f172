// Package coords holds the coordinate buffer shared by every curve generator
// and presentation adapter.
//
// A Buffer is a fixed-size, row-major N×3 array of float64 values: one row per
// sampled point ("bead"), columns X, Y and Z. Row order is generation order and
// is semantically meaningful: consecutive rows are adjacent along the curve and
// the sequence is implicitly closed, so row N-1 connects back to row 0.
//
// Buffers are plain values with bounds-checked accessors:
//
//   - NewBuffer / FromPoints   allocate (rows ≥ 1, else ErrBadShape).
//   - At / Set                 element access (ErrOutOfRange on bad indices).
//   - Point / SetPoint         whole-row access as a Point.
//   - Segment                  the closing-aware (i, i+1 mod N) neighbour pair.
//   - CheckFinite              numeric policy check (ErrNaNInf).
//   - Bounds / Clone / Points  read-only helpers.
//
// A Buffer is not safe for concurrent mutation; read-only sharing is fine.
package coords
