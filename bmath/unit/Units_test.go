package unit_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
)

type quantity interface {
	Value(units byte) (float64, error)
	In(units byte) float64
}

func backAndForth(t *testing.T, name string, create func(float64, byte) (quantity, error), value float64, units byte) {
	t.Helper()
	u, err := create(value, units)
	if err != nil {
		t.Errorf("%s: creation failed for %d: %v", name, units, err)
		return
	}
	v, err := u.Value(units)
	if err != nil || math.Abs(v-value) > 1e-7 || math.Abs(v-u.In(units)) > 1e-7 {
		t.Errorf("%s: read back failed for %d (%f)", name, units, v)
	}
}

func TestBackAndForth(t *testing.T) {
	distance := func(v float64, u byte) (quantity, error) { return unit.CreateDistance(v, u) }
	velocity := func(v float64, u byte) (quantity, error) { return unit.CreateVelocity(v, u) }
	weight := func(v float64, u byte) (quantity, error) { return unit.CreateWeight(v, u) }
	temperature := func(v float64, u byte) (quantity, error) { return unit.CreateTemperature(v, u) }
	pressure := func(v float64, u byte) (quantity, error) { return unit.CreatePressure(v, u) }
	energy := func(v float64, u byte) (quantity, error) { return unit.CreateEnergy(v, u) }
	angular := func(v float64, u byte) (quantity, error) { return unit.CreateAngular(v, u) }

	for _, u := range []byte{unit.DistanceInch, unit.DistanceFoot, unit.DistanceYard, unit.DistanceMile,
		unit.DistanceMillimeter, unit.DistanceCentimeter, unit.DistanceMeter, unit.DistanceKilometer} {
		backAndForth(t, "Distance", distance, 3, u)
	}
	for _, u := range []byte{unit.VelocityFPS, unit.VelocityMPS, unit.VelocityKMH, unit.VelocityMPH, unit.VelocityKT} {
		backAndForth(t, "Velocity", velocity, 3, u)
	}
	for _, u := range []byte{unit.WeightGrain, unit.WeightOunce, unit.WeightGram, unit.WeightPound, unit.WeightKilogram} {
		backAndForth(t, "Weight", weight, 3, u)
	}
	for _, u := range []byte{unit.TemperatureFahrenheit, unit.TemperatureCelsius, unit.TemperatureKelvin, unit.TemperatureRankin} {
		backAndForth(t, "Temperature", temperature, 3, u)
	}
	for _, u := range []byte{unit.PressurePSI, unit.PressureInHg, unit.PressureMmHg, unit.PressureBar, unit.PressureHP} {
		backAndForth(t, "Pressure", pressure, 3, u)
	}
	for _, u := range []byte{unit.EnergyFootPound, unit.EnergyJoule} {
		backAndForth(t, "Energy", energy, 3, u)
	}
	for _, u := range []byte{unit.AngularRadian, unit.AngularDegree, unit.AngularMOA, unit.AngularMil, unit.AngularMRad} {
		backAndForth(t, "Angular", angular, 3, u)
	}
}

func TestUnsupportedUnit(t *testing.T) {
	if _, err := unit.CreateDistance(1, unit.VelocityFPS); err == nil {
		t.Error("distance accepted a velocity unit")
	}
	if _, err := unit.CreateTemperature(1, unit.DistanceInch); err == nil {
		t.Error("temperature accepted a distance unit")
	}
	if unit.MustCreateWeight(1, unit.WeightGrain).In(unit.DistanceFoot) != 0 {
		t.Error("In must return 0 for an unsupported unit")
	}
}

func TestConversions(t *testing.T) {
	cases := []struct {
		name     string
		got, exp float64
	}{
		{"yard in feet", unit.MustCreateDistance(1, unit.DistanceYard).In(unit.DistanceFoot), 3},
		{"foot in inches", unit.MustCreateDistance(1, unit.DistanceFoot).In(unit.DistanceInch), 12},
		{"mph in fps", unit.MustCreateVelocity(60, unit.VelocityMPH).In(unit.VelocityFPS), 88},
		{"pound in grains", unit.MustCreateWeight(1, unit.WeightPound).In(unit.WeightGrain), 7000},
		{"ounce in grains", unit.MustCreateWeight(1.125, unit.WeightOunce).In(unit.WeightGrain), 492.1875},
		{"freezing in celsius", unit.MustCreateTemperature(32, unit.TemperatureFahrenheit).In(unit.TemperatureCelsius), 0},
		{"sea level in inHg", unit.MustCreatePressure(14.7, unit.PressurePSI).In(unit.PressureInHg), 29.93},
		{"joules", unit.MustCreateEnergy(1, unit.EnergyFootPound).In(unit.EnergyJoule), 1.3558},
		{"moa in degrees", unit.MustCreateAngular(60, unit.AngularMOA).In(unit.AngularDegree), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if math.Abs(c.got-c.exp) > 0.001 {
				t.Errorf("got %f, want %f", c.got, c.exp)
			}
		})
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		got, exp string
	}{
		{unit.MustCreateVelocity(1350, unit.VelocityFPS).String(), "1350ft/s"},
		{unit.MustCreateDistance(40, unit.DistanceYard).String(), "40.0yd"},
		{unit.MustCreateWeight(1.26, unit.WeightGrain).String(), "1.26gr"},
		{unit.MustCreateTemperature(70, unit.TemperatureFahrenheit).String(), "70.0°F"},
		{unit.MustCreatePressure(14.7, unit.PressurePSI).String(), "14.700psi"},
		{unit.MustCreateDistance(3, unit.DistanceFoot).Convert(unit.DistanceYard).String(), "1.0yd"},
	}
	for _, c := range cases {
		if c.got != c.exp {
			t.Errorf("String() = %q, want %q", c.got, c.exp)
		}
	}
}
