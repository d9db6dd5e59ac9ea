// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"github.com/dimetric/dimetric/lib/unit"
)

// Memory is a scalar data-size quantity, stored in bits.
type Memory = Scalar[unit.Memory]

// NewMemory constructs a memory size from a value in the given memory
// unit.
func NewMemory(value float64, u unit.Memory) Memory {
	return NewScalar(value, u)
}

// MemoryRate is a scalar data-transfer-rate quantity, stored in bits
// per second.
type MemoryRate = Scalar[unit.MemoryRate]

// NewMemoryRate constructs a memory rate from a value in the given
// rate unit.
func NewMemoryRate(value float64, u unit.MemoryRate) MemoryRate {
	return NewScalar(value, u)
}

// MemoryRateFromMemory returns the transfer rate that moves the data
// in the given duration.
func MemoryRateFromMemory(memory Memory, duration Duration) MemoryRate {
	return ScalarFromStandard[unit.MemoryRate](memory.Value() / duration.Value())
}

// MemoryFromMemoryRate returns the data moved at a constant rate over
// the duration.
func MemoryFromMemoryRate(rate MemoryRate, duration Duration) Memory {
	return ScalarFromStandard[unit.Memory](rate.Value() * duration.Value())
}

// DurationFromMemoryRate returns the time to move the data at a
// constant rate.
func DurationFromMemoryRate(memory Memory, rate MemoryRate) Duration {
	return ScalarFromStandard[unit.Time](memory.Value() / rate.Value())
}
