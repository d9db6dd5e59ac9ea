// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

// dimetric-convert converts values between the units of a category
// from the command line.
//
// Single conversion:
//
//	dimetric-convert --value 1.5 --category energy --from J --to ft·lbf
//
// Batch mode reads a JSONC jobs file (JSON extended with comments and
// trailing commas) holding an array of conversions:
//
//	dimetric-convert --jobs conversions.jsonc --format json
//
// Listing:
//
//	dimetric-convert --list
//	dimetric-convert --list --category pressure
//
// Exit codes: 0 on success, 1 when a conversion fails, 2 on usage
// errors.
package main
