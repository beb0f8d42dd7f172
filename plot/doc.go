// Package plot renders a generated curve as a static 3D line plot and can
// save it as PNG.
//
// Every call draws on its own canvas; nothing is kept between calls. The
// view is an orthographic projection with elevation and azimuth in degrees
// (30 and -60 by default). The polyline is closed (the last bead connects
// back to the first), an X/Y/Z axis triad sits in the lower-left corner and
// the curve name is written near the top-left.
//
// Lines are drawn at a supersampling factor and scaled down with a Lanczos3
// filter, which gives antialiased output without a vector rasteriser.
//
//	img, path, err := plot.Plot(c, plot.WithSave("out"))
//	// path == "out/(3-2)-Torus-righthanded.100_knot.png"
//
// A curve without coordinates fails with knot.ErrUninitialized.
package plot
