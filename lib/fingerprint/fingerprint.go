// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/zeebo/blake3"

	"github.com/dimetric/dimetric/lib/cartesian"
	"github.com/dimetric/dimetric/lib/dimension"
)

// Fingerprint is a 32-byte BLAKE3 digest.
type Fingerprint [32]byte

// String returns the hex encoding of the digest.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Parse parses a 64-character hex string into a Fingerprint.
func Parse(text string) (Fingerprint, error) {
	var f Fingerprint
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return f, fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != len(f) {
		return f, fmt.Errorf("parsing fingerprint: got %d bytes, want %d", len(decoded), len(f))
	}
	copy(f[:], decoded)
	return f, nil
}

// domainKey is a 32-byte key for BLAKE3 keyed hashing. Domain
// separation ensures the same input bytes produce different digests
// in different contexts. The byte values are the ASCII encoding of
// the domain name, zero-padded to 32 bytes, so the keys stay readable
// in hex dumps without weakening the keyed mode.
type domainKey [32]byte

var (
	dimensionDomainKey = domainKey{
		'd', 'i', 'm', 'e', 't', 'r', 'i', 'c', '.',
		'd', 'i', 'm', 'e', 'n', 's', 'i', 'o', 'n', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	valueDomainKey = domainKey{
		'd', 'i', 'm', 'e', 't', 'r', 'i', 'c', '.',
		'v', 'a', 'l', 'u', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	quantityDomainKey = domainKey{
		'd', 'i', 'm', 'e', 't', 'r', 'i', 'c', '.',
		'q', 'u', 'a', 'n', 't', 'i', 't', 'y', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// keyedHash computes the BLAKE3 keyed digest of data under key.
func keyedHash(key domainKey, data []byte) Fingerprint {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		// The key length is fixed at compile time; NewKeyed can only
		// fail on a wrong-size key.
		panic("fingerprint: keyed hasher initialization failed: " + err.Error())
	}
	hasher.Write(data)

	var digest Fingerprint
	hasher.Digest().Read(digest[:])
	return digest
}

// appendFloat appends the little-endian IEEE-754 bit pattern of value.
// Bit patterns, not formatted text: +0 and -0 fingerprint differently,
// and every NaN payload is preserved.
func appendFloat(buffer []byte, value float64) []byte {
	return binary.LittleEndian.AppendUint64(buffer, math.Float64bits(value))
}

// Set fingerprints a dimension set in the dimension domain.
func Set(s dimension.Set) Fingerprint {
	data := []byte{
		byte(s.Time), byte(s.Length), byte(s.Mass), byte(s.ElectricCurrent),
		byte(s.Temperature), byte(s.SubstanceAmount), byte(s.LuminousIntensity),
	}
	return keyedHash(dimensionDomainKey, data)
}

// Scalar fingerprints a bare float64 in the value domain.
func Scalar(value float64) Fingerprint {
	return keyedHash(valueDomainKey, appendFloat(nil, value))
}

// Vector fingerprints a vector in the value domain.
func Vector(v cartesian.Vector) Fingerprint {
	buffer := make([]byte, 0, 3*8)
	buffer = appendFloat(buffer, v.X)
	buffer = appendFloat(buffer, v.Y)
	buffer = appendFloat(buffer, v.Z)
	return keyedHash(valueDomainKey, buffer)
}

// SymmetricDyad fingerprints the six independent components of a
// symmetric dyadic tensor in the value domain.
func SymmetricDyad(s cartesian.SymmetricDyad) Fingerprint {
	buffer := make([]byte, 0, 6*8)
	for _, component := range [6]float64{s.XX, s.XY, s.XZ, s.YY, s.YZ, s.ZZ} {
		buffer = appendFloat(buffer, component)
	}
	return keyedHash(valueDomainKey, buffer)
}

// Dyad fingerprints all nine components of a dyadic tensor in the
// value domain.
func Dyad(d cartesian.Dyad) Fingerprint {
	buffer := make([]byte, 0, 9*8)
	for _, component := range [9]float64{d.XX, d.XY, d.XZ, d.YX, d.YY, d.YZ, d.ZX, d.ZY, d.ZZ} {
		buffer = appendFloat(buffer, component)
	}
	return keyedHash(valueDomainKey, buffer)
}

// Quantity fingerprints a quantity in the quantity domain: the
// category name, a zero separator, then the standard-unit components.
// Including the category keeps a 1 s duration distinct from a 1 m
// length.
func Quantity(categoryName string, components ...float64) Fingerprint {
	buffer := make([]byte, 0, len(categoryName)+1+len(components)*8)
	buffer = append(buffer, categoryName...)
	buffer = append(buffer, 0)
	for _, component := range components {
		buffer = appendFloat(buffer, component)
	}
	return keyedHash(quantityDomainKey, buffer)
}
