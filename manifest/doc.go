// Package manifest reads batch curve definitions from YAML.
//
// A manifest lists curves under a top-level "curves" key; an optional
// top-level "samples" applies to entries that do not set their own:
//
//	samples: 200
//	curves:
//	  - kind: torus
//	    p: 3
//	    q: 2
//	    chirality: left
//	  - kind: lissajous
//	    n: [3, 2, 7]
//	    phi: [0.7, 0.2, 0]
//	    amplitude: "1.5"
//	  - kind: special
//	    id: granny
//	    crossings: 6
//
// Numbers may be written as ints, floats or numeric strings. Unknown kinds
// fail with ErrUnknownKind; unknown keys and values that do not convert fail
// with ErrBadField, naming the entry index and key.
package manifest
