// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides small test helpers shared across the
// repository's package tests, chiefly floating-point comparison with
// an explicit relative tolerance. Helpers accept a minimal testing
// interface rather than *testing.T so they also work with *testing.B
// and fake recorders in their own tests.
package testutil
