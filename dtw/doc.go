// Package dtw computes Dynamic Time Warping (DTW) distances between two
// sampled curves.
//
// 🚀 What is it for?
//
//	Two curves generated from the same knot rarely line up bead for bead:
//	sample counts differ, one may be a stored copy, another a re-run with
//	new radii. DTW warps the bead index of one curve against the other and
//	sums Euclidean distances along the cheapest alignment.
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, alignment path available
//   - two-row mode: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty to discourage excessive stretching
//   - cyclic mode for closed curves: the start bead of b is free
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Cyclic = true
//	dist, _, err := dtw.Curves(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M), times M in cyclic mode
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
