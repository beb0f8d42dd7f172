// SPDX-License-Identifier: MIT
// Package: knots/export

package export

import "errors"

// ErrMalformedRow indicates a line that does not hold exactly three
// parseable numbers.
var ErrMalformedRow = errors.New("export: malformed row")
