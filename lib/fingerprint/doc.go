// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint computes stable 32-byte BLAKE3 digests of
// dimension sets, Cartesian value aggregates, and quantities.
//
// Every type in this repository is a plain comparable struct, so Go
// map keys need no help; fingerprints exist for the cases native
// comparability cannot serve: stable identity across processes and
// architectures, content addressing in caches, and change detection
// in serialized output. Digests are keyed per domain so the same
// bytes never collide across contexts (a dimension set digest can
// never equal a quantity digest).
//
// Equal inputs always produce equal fingerprints. Distinct inputs
// collide only with cryptographically negligible probability.
package fingerprint
