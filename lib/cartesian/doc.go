// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

// Package cartesian provides fixed-arity Cartesian value aggregates:
// three-component vectors, 3×3 dyadic tensors, and symmetric dyadic
// tensors stored as their six independent components.
//
// All three types are plain comparable value types with component-wise
// arithmetic and explicitly expanded linear algebra (no generic matrix
// loops). Inverse returns a second boolean result instead of an error:
// a matrix is treated as singular exactly when its determinant is
// zero, with no epsilon tolerance. Every other numeric edge case
// follows IEEE-754 propagation.
//
// Vector.Magnitude uses numeric.SquareRoot so magnitudes are
// bit-identical across platforms.
package cartesian
