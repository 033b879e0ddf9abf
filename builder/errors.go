// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "<Method>: <detail>: %w".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not complete a topology,
// e.g. a nil constructor or more extra edges than free vertex pairs.
var ErrConstructFailed = errors.New("builder: construction failed")
