// Package knots is a small toolkit for sampling parametric knot curves in
// 3D and putting them to work: files, images, a terminal viewer and a
// local catalogue.
//
// 🚀 What is in the box?
//
//	• Generators: (p,q) torus knots, Lissajous knots, figure-eight & granny
//	• Curve entity: name, optional crossing number, N×3 coordinate buffer
//	• Adapters: whitespace text export, PNG plots, interactive terminal view
//	• Catalogue: SQLite store with a read-through cache, YAML batch manifests
//	• Comparison: Dynamic Time Warping between two sampled curves
//
// Layout:
//
//	coords/   row-major N×3 coordinate buffer
//	knot/     shapes, Curve, recipes
//	export/   "%.4f %.4f %.4f" text files
//	plot/     orthographic PNG renderer
//	view/     bubbletea scatter viewer
//	store/    SQLite persistence
//	manifest/ YAML batch definitions
//	dtw/      curve-to-curve DTW distance
//	cmd/knots command-line front end
//
// Quick start:
//
//	c, _ := knot.NewTorus(3, 2, knot.WithChiralityName("left"))
//	if _, err := c.Generate(); err != nil { ... }
//	path, _ := export.Save(c)           // "(3-2)-Torus-lefthanded.100.dat"
//	_, png, _ := plot.Plot(c, plot.WithSave("."))
package knots
