// Package input keeps the shot settings chosen by the user and validates every
// value before it is accepted. A rejected value never changes the settings.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
)

// Field names, also used as labels by the front ends.
const (
	FieldShotSize             = "Shot size"
	FieldDiameter             = "Diameter"
	FieldMaterial             = "Shot type"
	FieldDensity              = "Density"
	FieldWeight               = "Weight"
	FieldMuzzleVelocity       = "MV"
	FieldCrosswind            = "Wind"
	FieldAltitude             = "Altitude"
	FieldTemperature          = "Temp."
	FieldBallisticCoefficient = "BC"
)

// Fields lists the editable fields in display order.
func Fields() []string {
	return []string{
		FieldShotSize, FieldMaterial, FieldWeight, FieldMuzzleVelocity, FieldCrosswind,
		FieldAltitude, FieldTemperature, FieldBallisticCoefficient, FieldDiameter, FieldDensity,
	}
}

// Accepted ranges.
const (
	MinMuzzleVelocity = 100.0
	MaxMuzzleVelocity = 4000.0
	MinCrosswind      = 0.0
	MaxCrosswind      = 60.0
	MinTemperature    = -10.0
	MaxTemperature    = 120.0
	MinWeight         = 1.0
	MaxWeight         = 7000.0
	MinDiameter       = 0.01
	MaxDiameter       = 1.0
	MinDensity        = 0.05
	MaxDensity        = 1.0
	MinBC             = 0.1
	MaxBC             = 5.0
)

// Range is the accepted interval of a numeric field, bounds included.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Limits returns the accepted range of every numeric field.
func Limits() map[string]Range {
	return map[string]Range{
		FieldDiameter:             {MinDiameter, MaxDiameter},
		FieldDensity:              {MinDensity, MaxDensity},
		FieldWeight:               {MinWeight, MaxWeight},
		FieldMuzzleVelocity:       {MinMuzzleVelocity, MaxMuzzleVelocity},
		FieldCrosswind:            {MinCrosswind, MaxCrosswind},
		FieldTemperature:          {MinTemperature, MaxTemperature},
		FieldBallisticCoefficient: {MinBC, MaxBC},
	}
}

// FieldError reports a rejected value.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

// ErrUnknownField is returned by Set for a field that does not exist.
var ErrUnknownField = errors.New("unknown field")

// Settings is the current set of choices. The zero value is not usable, use New.
type Settings struct {
	shotSize       go_shotcalc.ShotSize
	diameter       float64 // inches
	customDiameter bool
	material       go_shotcalc.ShotMaterial
	density        float64 // lb/cu.in.
	customDensity  bool
	weight         float64 // grains
	weightOverride bool
	muzzleVelocity float64 // fps
	crosswind      float64 // mph
	altitude       float64 // feet
	temperature    float64 // °F
	bc             float64
}

// New returns the default settings: #7 1/2 chilled shot at 1350 fps, no wind,
// sea level and 70 °F.
func New() Settings {
	s := Settings{
		shotSize:       go_shotcalc.Shot7Half,
		material:       go_shotcalc.MaterialChilled,
		muzzleVelocity: 1350,
		temperature:    70,
		bc:             1,
	}
	s.diameter = s.shotSize.Diameter().In(unit.DistanceInch)
	s.density = s.material.Density()
	s.deriveWeight()
	return s
}

func (s *Settings) deriveWeight() {
	s.weight = go_shotcalc.PelletWeight(unit.MustCreateDistance(s.diameter, unit.DistanceInch), s.density).In(unit.WeightGrain)
	s.weightOverride = false
}

func parseNumber(field, text string) (float64, error) {
	val, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, &FieldError{Field: field, Value: text, Reason: "is not a valid number"}
	}
	return val, nil
}

func parseInRange(field, text string, lo, hi float64, units string) (float64, error) {
	val, err := parseNumber(field, text)
	if err != nil {
		return 0, err
	}
	if val < lo {
		return 0, &FieldError{Field: field, Value: text, Reason: fmt.Sprintf("must be greater than %s%s", formatNumber(lo), units)}
	}
	if val > hi {
		return 0, &FieldError{Field: field, Value: text, Reason: fmt.Sprintf("must be less than %s%s", formatNumber(hi), units)}
	}
	return val, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SetShotSize selects one of the standard shot sizes by name. The weight is
// derived again from the new diameter.
func (s *Settings) SetShotSize(name string) error {
	size, err := go_shotcalc.ParseShotSize(name)
	if err != nil {
		return &FieldError{Field: FieldShotSize, Value: name, Reason: "is not a known shot size"}
	}
	s.shotSize = size
	s.diameter = size.Diameter().In(unit.DistanceInch)
	s.customDiameter = false
	s.deriveWeight()
	return nil
}

// SetDiameter enters the pellet diameter in inches directly.
func (s *Settings) SetDiameter(text string) error {
	val, err := parseInRange(FieldDiameter, text, MinDiameter, MaxDiameter, " in.")
	if err != nil {
		return err
	}
	s.diameter = val
	s.customDiameter = true
	s.deriveWeight()
	return nil
}

// SetMaterial selects the shot material by name. The weight is derived again.
func (s *Settings) SetMaterial(name string) error {
	material, err := go_shotcalc.ParseShotMaterial(name)
	if err != nil {
		return &FieldError{Field: FieldMaterial, Value: name, Reason: "is not a known shot type"}
	}
	s.material = material
	s.density = material.Density()
	s.customDensity = false
	s.deriveWeight()
	return nil
}

// SetDensity enters the material density in lb/cu.in. directly.
func (s *Settings) SetDensity(text string) error {
	val, err := parseInRange(FieldDensity, text, MinDensity, MaxDensity, " lb/cu.in.")
	if err != nil {
		return err
	}
	s.density = val
	s.customDensity = true
	s.deriveWeight()
	return nil
}

// SetWeight overrides the pellet weight in grains.
func (s *Settings) SetWeight(text string) error {
	val, err := parseInRange(FieldWeight, text, MinWeight, MaxWeight, " gr.")
	if err != nil {
		return err
	}
	s.weight = val
	s.weightOverride = true
	return nil
}

// SetMuzzleVelocity sets the muzzle velocity in fps.
func (s *Settings) SetMuzzleVelocity(text string) error {
	val, err := parseInRange(FieldMuzzleVelocity, text, MinMuzzleVelocity, MaxMuzzleVelocity, " fps")
	if err != nil {
		return err
	}
	s.muzzleVelocity = val
	return nil
}

// SetCrosswind sets the crosswind in mph.
func (s *Settings) SetCrosswind(text string) error {
	val, err := parseInRange(FieldCrosswind, text, MinCrosswind, MaxCrosswind, " mph")
	if err != nil {
		return err
	}
	s.crosswind = val
	return nil
}

// SetTemperature sets the air temperature in °F.
func (s *Settings) SetTemperature(text string) error {
	val, err := parseInRange(FieldTemperature, text, MinTemperature, MaxTemperature, " deg.")
	if err != nil {
		return err
	}
	s.temperature = val
	return nil
}

// SetAltitude selects one of the altitude choices, given in feet or as
// "sea level". The temperature is reset to the standard temperature at the
// new altitude.
func (s *Settings) SetAltitude(text string) error {
	var alt float64
	if strings.EqualFold(strings.TrimSpace(text), "sea level") {
		alt = 0
	} else {
		val, err := parseNumber(FieldAltitude, text)
		if err != nil {
			return err
		}
		alt = val
	}

	for _, choice := range go_shotcalc.AltitudeChoices() {
		if choice.In(unit.DistanceFoot) == alt {
			s.altitude = alt
			s.temperature = go_shotcalc.StandardTemperatureAt(choice).In(unit.TemperatureFahrenheit)
			return nil
		}
	}
	return &FieldError{Field: FieldAltitude, Value: text, Reason: "must be sea level or a multiple of 500 ft up to 10000 ft"}
}

// SetBallisticCoefficient sets the relative ballistic coefficient.
func (s *Settings) SetBallisticCoefficient(text string) error {
	val, err := parseInRange(FieldBallisticCoefficient, text, MinBC, MaxBC, "")
	if err != nil {
		return err
	}
	s.bc = val
	return nil
}

// Set changes the field specified.
func (s *Settings) Set(field, text string) error {
	switch field {
	case FieldShotSize:
		return s.SetShotSize(text)
	case FieldDiameter:
		return s.SetDiameter(text)
	case FieldMaterial:
		return s.SetMaterial(text)
	case FieldDensity:
		return s.SetDensity(text)
	case FieldWeight:
		return s.SetWeight(text)
	case FieldMuzzleVelocity:
		return s.SetMuzzleVelocity(text)
	case FieldCrosswind:
		return s.SetCrosswind(text)
	case FieldAltitude:
		return s.SetAltitude(text)
	case FieldTemperature:
		return s.SetTemperature(text)
	case FieldBallisticCoefficient:
		return s.SetBallisticCoefficient(text)
	default:
		return fmt.Errorf("%w %q", ErrUnknownField, field)
	}
}

// applyOrder lists the fields so that no value is overwritten by one set later:
// the shot size and material derive the weight and the altitude resets the
// temperature.
var applyOrder = []string{
	FieldShotSize, FieldDiameter, FieldMaterial, FieldDensity, FieldWeight,
	FieldMuzzleVelocity, FieldCrosswind, FieldAltitude, FieldTemperature, FieldBallisticCoefficient,
}

// SetAll sets several fields at once. The settings are changed only when every
// value is accepted; otherwise the first error is returned.
func (s *Settings) SetAll(values map[string]string) error {
	for field := range values {
		if !isField(field) {
			return fmt.Errorf("%w %q", ErrUnknownField, field)
		}
	}
	c := *s
	for _, field := range applyOrder {
		if text, ok := values[field]; ok {
			if err := c.Set(field, text); err != nil {
				return err
			}
		}
	}
	*s = c
	return nil
}

func isField(field string) bool {
	for _, f := range applyOrder {
		if f == field {
			return true
		}
	}
	return false
}

// Value returns the text shown for the field.
func (s Settings) Value(field string) string {
	switch field {
	case FieldShotSize:
		if s.customDiameter {
			return "custom"
		}
		return s.shotSize.String()
	case FieldDiameter:
		return strconv.FormatFloat(s.diameter, 'f', 3, 64)
	case FieldMaterial:
		if s.customDensity {
			return "custom"
		}
		return s.material.String()
	case FieldDensity:
		return strconv.FormatFloat(s.density, 'f', 4, 64)
	case FieldWeight:
		if s.weight < 10 {
			return strconv.FormatFloat(s.weight, 'f', 2, 64)
		}
		return strconv.FormatFloat(s.weight, 'f', 1, 64)
	case FieldMuzzleVelocity:
		return strconv.FormatFloat(s.muzzleVelocity, 'f', 0, 64)
	case FieldCrosswind:
		return strconv.FormatFloat(s.crosswind, 'f', 0, 64)
	case FieldAltitude:
		return go_shotcalc.AltitudeChoiceName(s.Altitude())
	case FieldTemperature:
		return strconv.FormatFloat(s.temperature, 'f', 0, 64)
	case FieldBallisticCoefficient:
		return strconv.FormatFloat(s.bc, 'f', 2, 64)
	default:
		return ""
	}
}

// Diameter returns the pellet diameter.
func (s Settings) Diameter() unit.Distance {
	return unit.MustCreateDistance(s.diameter, unit.DistanceInch)
}

// Density returns the material density in lb/cu.in.
func (s Settings) Density() float64 { return s.density }

// Weight returns the pellet weight.
func (s Settings) Weight() unit.Weight {
	return unit.MustCreateWeight(s.weight, unit.WeightGrain)
}

// WeightOverridden reports whether the weight was entered directly.
func (s Settings) WeightOverridden() bool { return s.weightOverride }

// MuzzleVelocity returns the muzzle velocity.
func (s Settings) MuzzleVelocity() unit.Velocity {
	return unit.MustCreateVelocity(s.muzzleVelocity, unit.VelocityFPS)
}

// Crosswind returns the crosswind speed.
func (s Settings) Crosswind() unit.Velocity {
	return unit.MustCreateVelocity(s.crosswind, unit.VelocityMPH)
}

// Altitude returns the selected altitude.
func (s Settings) Altitude() unit.Distance {
	return unit.MustCreateDistance(s.altitude, unit.DistanceFoot)
}

// Temperature returns the air temperature.
func (s Settings) Temperature() unit.Temperature {
	return unit.MustCreateTemperature(s.temperature, unit.TemperatureFahrenheit)
}

// BallisticCoefficient returns the relative ballistic coefficient.
func (s Settings) BallisticCoefficient() float64 { return s.bc }

// Build creates the engine inputs from the settings.
func (s Settings) Build() (go_shotcalc.Pellet, go_shotcalc.LaunchConditions, go_shotcalc.Atmosphere, error) {
	var pellet go_shotcalc.Pellet
	var err error
	if s.weightOverride {
		pellet, err = go_shotcalc.CreatePelletWithWeight(s.Diameter(), s.density, s.Weight())
	} else {
		pellet, err = go_shotcalc.CreatePellet(s.Diameter(), s.density)
	}
	if err != nil {
		return go_shotcalc.Pellet{}, go_shotcalc.LaunchConditions{}, go_shotcalc.Atmosphere{}, err
	}

	launch, err := go_shotcalc.CreateLaunchConditions(s.MuzzleVelocity(), s.Crosswind())
	if err != nil {
		return go_shotcalc.Pellet{}, go_shotcalc.LaunchConditions{}, go_shotcalc.Atmosphere{}, err
	}

	atmosphere, err := go_shotcalc.CreateAtmosphere(s.Altitude(), s.Temperature())
	if err != nil {
		return go_shotcalc.Pellet{}, go_shotcalc.LaunchConditions{}, go_shotcalc.Atmosphere{}, err
	}
	return pellet, launch, atmosphere, nil
}

// Calculator returns the trajectory calculator configured with the ballistic coefficient.
func (s Settings) Calculator() (go_shotcalc.TrajectoryCalculator, error) {
	calc := go_shotcalc.CreateTrajectoryCalculator()
	if err := calc.SetBallisticCoefficient(s.bc); err != nil {
		return calc, err
	}
	return calc, nil
}

// Simulate runs the trajectory calculation for the settings.
func (s Settings) Simulate() (go_shotcalc.TrajectoryResult, error) {
	pellet, launch, atmosphere, err := s.Build()
	if err != nil {
		return go_shotcalc.TrajectoryResult{}, err
	}
	calc, err := s.Calculator()
	if err != nil {
		return go_shotcalc.TrajectoryResult{}, err
	}
	return calc.Trajectory(pellet, launch, atmosphere), nil
}

// String describes the settings on one line.
func (s Settings) String() string {
	return fmt.Sprintf("%s %s %sgr @ %sfps, wind %smph, alt %s, %s°F",
		s.Value(FieldShotSize), s.Value(FieldMaterial), s.Value(FieldWeight), s.Value(FieldMuzzleVelocity),
		s.Value(FieldCrosswind), s.Value(FieldAltitude), s.Value(FieldTemperature))
}
