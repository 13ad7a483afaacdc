// SPDX-License-Identifier: MIT
// Package: sccrank/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); no string comparisons.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, count, size)
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")
