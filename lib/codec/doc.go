// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the repository's canonical CBOR encoding.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// The same quantity record always produces identical bytes, which is
// what makes CBOR-encoded records safe to fingerprint and compare.
//
// Decoding accepts standard CBOR and silently ignores unknown fields
// for forward compatibility.
package codec
