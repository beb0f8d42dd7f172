// Package view is an interactive terminal scatter view of a generated curve.
//
// Every bead is drawn as a marker with no connecting lines. The cloud spins
// about the z axis until paused, and marker glyphs encode depth (nearer beads
// are heavier). A side panel shows the curve name, sample count, bounds and
// a z-profile chart along the curve.
//
// Keys:
//
//	←/→ h/l   azimuth        ↑/↓ k/j   elevation
//	+ / -     zoom           space     pause
//	r         reset view     q         quit
//
// Model follows the bubbletea Elm architecture and can be driven directly in
// tests; Run wires it to a terminal program bound to a context.
package view
