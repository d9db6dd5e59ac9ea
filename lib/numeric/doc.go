// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

// Package numeric provides dependency-free numeric routines shared by
// the value and quantity packages.
//
// SquareRoot is a pure, allocation-free square root built from exact
// power-of-two range reduction and Newton–Raphson iteration. Unlike
// math.Sqrt it has no platform-specific assembly path, so results are
// bit-identical everywhere, which keeps fingerprints of derived values
// (vector magnitudes in particular) stable across architectures.
package numeric
