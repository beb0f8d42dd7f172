// Package export writes curve coordinates as whitespace-separated text and
// reads them back.
//
// Format: one row per bead, three values (x y z) with four decimal places,
// single spaces between values and "\n" line endings:
//
//	3.0000 0.0000 0.0000
//	2.9763 0.3767 -0.1253
//
// Save picks the file name <title>.<suffix> where title defaults to the
// curve name ("Knot" when the curve has none) and suffix defaults to "dat".
// Exporting a curve that has not been generated fails with
// knot.ErrUninitialized.
//
// Read accepts the same layout with any run of blank characters between
// values and skips empty lines, so a written file reads back equal to the
// source buffer within 5e-5 per value.
package export
