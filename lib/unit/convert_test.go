// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import (
	"testing"

	"github.com/dimetric/dimetric/lib/cartesian"
	"github.com/dimetric/dimetric/lib/testutil"
)

func TestConvertIdentityIsBitExact(t *testing.T) {
	// A→A must return the input untouched, even for offset transforms
	// where a pivot round-trip would lose bits.
	values := []float64{0.0, 1.0, -273.15, 1.1102230246251565e-16, 9.87654321e300}
	for _, value := range values {
		testutil.RequireExact(t, Convert(value, Fahrenheit, Fahrenheit), value, "F→F")
		testutil.RequireExact(t, Convert(value, Joule, Joule), value, "J→J")
		testutil.RequireExact(t, Convert(value, Kelvin, Kelvin), value, "K→K")
	}
}

func TestConvertStandardToStandardIsExact(t *testing.T) {
	testutil.RequireExact(t, Convert(1.23456789, Metre, Metre), 1.23456789, "m→m")
	testutil.RequireExact(t, Convert(1.23456789, Second, Second), 1.23456789, "s→s")
}

func TestConvertScalar(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"kilometres to metres", Convert(1.0, Kilometre, Metre), 1000.0},
		{"metres to feet", Convert(0.3048, Metre, Foot), 1.0},
		{"hours to seconds", Convert(2.0, Hour, Second), 7200.0},
		{"joules to kilojoules", Convert(1500.0, Joule, Kilojoule), 1.5},
		{"pounds to kilograms", Convert(1.0, Pound, Kilogram), 0.45359237},
		{"bytes to bits", Convert(1.0, Byte, Bit), 8.0},
		{"kibibytes to bytes", Convert(1.0, Kibibyte, Byte), 1024.0},
		{"megabits per second to bits per second", Convert(1.0, MegabitPerSecond, BitPerSecond), 1e6},
		{"degrees to radians", Convert(180.0, Degree, Radian), 3.14159265358979323846},
		{"revolutions to degrees", Convert(1.0, Revolution, Degree), 360.0},
		{"litres to cubic metres", Convert(1.0, Litre, CubicMetre), 1e-3},
		{"standard gravity to m/s²", Convert(1.0, StandardGravity, MetrePerSquareSecond), 9.80665},
		{"atmospheres to pascals", Convert(1.0, Atmosphere, Pascal), 101325.0},
		{"horsepower to watts", Convert(1.0, Horsepower, Watt), 550.0 * 0.3048 * 0.45359237 * 9.80665},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testutil.RequireNear(t, test.got, test.want, 1e-15, test.name)
		})
	}
}

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"0°C to kelvin", Convert(0.0, Celsius, Kelvin), 273.15},
		{"100°C to fahrenheit", Convert(100.0, Celsius, Fahrenheit), 212.0},
		{"32°F to celsius", Convert(32.0, Fahrenheit, Celsius), 0.0},
		{"0 K to rankine", Convert(0.0, Kelvin, Rankine), 0.0},
		{"absolute zero in fahrenheit", Convert(0.0, Kelvin, Fahrenheit), -459.67},
		{"rankine to fahrenheit offset", Convert(491.67, Rankine, Fahrenheit), 32.0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testutil.RequireNear(t, test.got, test.want, 1e-12, test.name)
		})
	}

	// Differences transform with scale only: a 10° fahrenheit
	// difference is 10/1.8 kelvins.
	testutil.RequireNear(t, Convert(10.0, DeltaFahrenheit, DeltaKelvin), 10.0/1.8, 1e-15, "ΔF→ΔK")
	testutil.RequireNear(t, Convert(10.0, DeltaCelsius, DeltaKelvin), 10.0, 0, "ΔC→ΔK")
}

func TestConvertJouleToFootPound(t *testing.T) {
	// The foot-pound factor decomposes into its defining primitives:
	// 1 ft·lbf = 0.3048 m · 0.45359237 kg · 9.80665 m/s².
	const value = 1.234567890123456789
	want := value / (0.3048 * 0.45359237 * 9.80665)
	testutil.RequireNear(t, Convert(value, Joule, FootPound), want, 1e-15, "J→ft·lbf")
}

func TestConvertRoundTrip(t *testing.T) {
	// Converting A→B→A must restore the value to within float64
	// round-trip error for every unit pair in a category.
	value := 1.2345678901234567

	timeUnits := []Time{Second, Minute, Hour, Millisecond, Microsecond, Nanosecond}
	for _, a := range timeUnits {
		for _, b := range timeUnits {
			testutil.RequireNear(t, Convert(Convert(value, a, b), b, a), value, 1e-14,
				"time round trip "+a.String()+"→"+b.String())
		}
	}

	temperatureUnits := []Temperature{Kelvin, Celsius, Rankine, Fahrenheit}
	for _, a := range temperatureUnits {
		for _, b := range temperatureUnits {
			testutil.RequireNear(t, Convert(Convert(value, a, b), b, a), value, 1e-12,
				"temperature round trip "+a.String()+"→"+b.String())
		}
	}

	energyUnits := []Energy{Joule, Nanojoule, KilowattHour, FootPound, InchPound, Electronvolt, BritishThermalUnit}
	for _, a := range energyUnits {
		for _, b := range energyUnits {
			testutil.RequireNear(t, Convert(Convert(value, a, b), b, a), value, 1e-14,
				"energy round trip "+a.String()+"→"+b.String())
		}
	}
}

func TestConvertSlice(t *testing.T) {
	values := []float64{1.0, 2.0, 3.0}
	ConvertSlice(values, Kilometre, Metre)
	want := []float64{1000.0, 2000.0, 3000.0}
	for i := range values {
		testutil.RequireExact(t, values[i], want[i], "slice element")
	}

	// Identity leaves the slice untouched.
	values = []float64{1.5, -2.5}
	ConvertSlice(values, Fahrenheit, Fahrenheit)
	testutil.RequireExact(t, values[0], 1.5, "identity slice")
	testutil.RequireExact(t, values[1], -2.5, "identity slice")
}

func TestConvertValueAggregates(t *testing.T) {
	v := ConvertVector(cartesian.Vector{X: 1, Y: 2, Z: 3}, Kilometre, Metre)
	if v != (cartesian.Vector{X: 1000, Y: 2000, Z: 3000}) {
		t.Errorf("ConvertVector = %v", v)
	}

	s := ConvertSymmetricDyad(cartesian.SymmetricDyad{XX: 1, XY: 2, XZ: 3, YY: 4, YZ: 5, ZZ: 6}, Kilopascal, Pascal)
	if s != (cartesian.SymmetricDyad{XX: 1000, XY: 2000, XZ: 3000, YY: 4000, YZ: 5000, ZZ: 6000}) {
		t.Errorf("ConvertSymmetricDyad = %v", s)
	}

	d := ConvertDyad(cartesian.Dyad{XX: 1, YY: 2, ZZ: 3}, Kilohertz, Hertz)
	if d != (cartesian.Dyad{XX: 1000, YY: 2000, ZZ: 3000}) {
		t.Errorf("ConvertDyad = %v", d)
	}
}
