// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"math"
	"testing"

	"github.com/dimetric/dimetric/lib/testutil"
	"github.com/dimetric/dimetric/lib/unit"
)

func TestConstructionConvertsToStandardOnce(t *testing.T) {
	duration := NewDuration(2, unit.Minute)
	testutil.RequireExact(t, duration.Value(), 120, "two minutes in seconds")
	testutil.RequireExact(t, duration.In(unit.Second), 120, "In standard unit")
	testutil.RequireNear(t, duration.In(unit.Hour), 1.0/30.0, 1e-15, "two minutes in hours")

	length := NewLength(2500, unit.Millimetre)
	testutil.RequireNear(t, length.Value(), 2.5, 1e-15, "millimetres to metres")
}

func TestStandardUnitConstructionIsExact(t *testing.T) {
	// Wrapping a standard-unit value must not perturb a single bit.
	const value = 1.234567890123456789
	testutil.RequireExact(t, NewEnergy(value, unit.Joule).Value(), value, "joules through NewEnergy")
	testutil.RequireExact(t, ScalarFromStandard[unit.Energy](value).Value(), value, "joules through ScalarFromStandard")
}

func TestScalarArithmetic(t *testing.T) {
	a := NewDuration(90, unit.Second)
	b := NewDuration(0.5, unit.Minute)

	testutil.RequireExact(t, a.Add(b).Value(), 120, "sum")
	testutil.RequireExact(t, a.Subtract(b).Value(), 60, "difference")
	testutil.RequireExact(t, a.Multiply(2).Value(), 180, "scaled")
	testutil.RequireExact(t, a.Divide(3).Value(), 30, "divided")
	testutil.RequireExact(t, a.Ratio(b), 3, "ratio")
}

func TestSetValueStoresStandardUnit(t *testing.T) {
	mass := NewMass(1, unit.Pound)
	mass.SetValue(3)
	testutil.RequireExact(t, mass.Value(), 3, "kilograms after SetValue")
	testutil.RequireNear(t, mass.In(unit.Gram), 3000, 1e-15, "grams after SetValue")
}

func TestTemperatureScales(t *testing.T) {
	boiling := NewTemperature(100, unit.Celsius)
	testutil.RequireNear(t, boiling.Value(), 373.15, 1e-15, "100 °C in kelvins")
	testutil.RequireNear(t, boiling.In(unit.Fahrenheit), 212, 1e-13, "100 °C in Fahrenheit")

	difference := TemperatureDifferenceBetween(boiling, NewTemperature(0, unit.Celsius))
	testutil.RequireNear(t, difference.Value(), 100, 1e-13, "boiling minus freezing in kelvins")
	testutil.RequireNear(t, difference.In(unit.DeltaFahrenheit), 180, 1e-13, "difference in Fahrenheit degrees")

	shifted := TemperatureOffsetBy(NewTemperature(0, unit.Celsius), NewTemperatureDifference(50, unit.DeltaKelvin))
	testutil.RequireNear(t, shifted.In(unit.Celsius), 50, 1e-12, "freezing shifted by 50 K")
}

func TestDimensionless(t *testing.T) {
	mach := NewDimensionless(0.85)
	testutil.RequireExact(t, mach.Value(), 0.85, "wrapped value")
	if got := mach.String(); got != "0.85" {
		t.Errorf("String: got %q, want %q", got, "0.85")
	}
	mach.SetValue(2)
	if got := mach.Format(SinglePrecision); got != "2" {
		t.Errorf("Format: got %q, want %q", got, "2")
	}
}

func TestFingerprintSeparatesCategories(t *testing.T) {
	// One second and one metre share the raw bytes 1.0 and must still
	// digest differently.
	second := NewDuration(1, unit.Second)
	metre := NewLength(1, unit.Metre)
	if second.Fingerprint() == metre.Fingerprint() {
		t.Error("duration and length fingerprints collide")
	}
	if second.Fingerprint() != NewDuration(1, unit.Second).Fingerprint() {
		t.Error("equal durations fingerprint differently")
	}
}

func TestRelationshipsAreInverses(t *testing.T) {
	duration := NewDuration(0.25, unit.Second)
	frequency := FrequencyFromDuration(duration)
	testutil.RequireExact(t, frequency.Value(), 4, "4 Hz from 250 ms period")
	testutil.RequireExact(t, DurationFromFrequency(frequency).Value(), 0.25, "period round trip")

	speed := SpeedFromLength(NewLength(100, unit.Metre), NewDuration(8, unit.Second))
	testutil.RequireExact(t, speed.Value(), 12.5, "100 m in 8 s")
	testutil.RequireExact(t, LengthFromSpeed(speed, NewDuration(8, unit.Second)).Value(), 100, "distance round trip")
	testutil.RequireExact(t, DurationFromLength(NewLength(100, unit.Metre), speed).Value(), 8, "time round trip")

	force := ForceFromMass(NewMass(2, unit.Kilogram), NewAcceleration(1, unit.StandardGravity))
	testutil.RequireNear(t, force.Value(), 2*9.80665, 1e-15, "weight of two kilograms")
	testutil.RequireNear(t, force.In(unit.PoundForce), 2/0.45359237, 1e-15, "weight in pounds-force")

	energy := EnergyFromForce(NewForce(3, unit.Newton), NewLength(4, unit.Metre))
	testutil.RequireExact(t, energy.Value(), 12, "work done")
	power := PowerFromEnergy(energy, NewDuration(6, unit.Second))
	testutil.RequireExact(t, power.Value(), 2, "power delivered")
	testutil.RequireExact(t, EnergyFromPower(power, NewDuration(6, unit.Second)).Value(), 12, "energy round trip")
	testutil.RequireExact(t, DurationFromEnergy(energy, power).Value(), 6, "duration round trip")

	pressure := PressureFromForce(NewForce(10, unit.Newton), AreaFromLengths(NewLength(2, unit.Metre), NewLength(1, unit.Metre)))
	testutil.RequireExact(t, pressure.Value(), 5, "force over area")
}

func TestMemoryRelationships(t *testing.T) {
	memory := NewMemory(1, unit.Gigabyte)
	rate := NewMemoryRate(100, unit.MegabitPerSecond)
	duration := DurationFromMemoryRate(memory, rate)
	testutil.RequireExact(t, duration.Value(), 80, "8 Gb at 100 Mb/s")
	testutil.RequireExact(t, MemoryFromMemoryRate(rate, duration).Value(), 8e9, "bits round trip")
	testutil.RequireExact(t, MemoryRateFromMemory(memory, duration).Value(), 1e8, "rate round trip")
}

func TestDivisionByZeroFollowsIEEE(t *testing.T) {
	frequency := FrequencyFromDuration(NewDuration(0, unit.Second))
	if got := frequency.Value(); !math.IsInf(got, 1) {
		t.Errorf("1/0 s: got %v, want +Inf", got)
	}
	testutil.RequireNaN(t, NewDuration(0, unit.Second).Ratio(NewDuration(0, unit.Second)), "0/0 ratio")
}
