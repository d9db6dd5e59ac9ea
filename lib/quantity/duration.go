// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"github.com/dimetric/dimetric/lib/unit"
)

// Duration is a scalar time quantity, stored in seconds.
type Duration = Scalar[unit.Time]

// NewDuration constructs a duration from a value in the given time
// unit.
func NewDuration(value float64, u unit.Time) Duration {
	return NewScalar(value, u)
}

// Frequency is a scalar rate quantity, stored in hertz.
type Frequency = Scalar[unit.Frequency]

// NewFrequency constructs a frequency from a value in the given
// frequency unit.
func NewFrequency(value float64, u unit.Frequency) Frequency {
	return NewScalar(value, u)
}

// DurationFromFrequency returns the period of one cycle at the given
// frequency.
func DurationFromFrequency(frequency Frequency) Duration {
	return ScalarFromStandard[unit.Time](1.0 / frequency.Value())
}

// FrequencyFromDuration returns the cycle rate whose period is the
// given duration.
func FrequencyFromDuration(duration Duration) Frequency {
	return ScalarFromStandard[unit.Frequency](1.0 / duration.Value())
}
