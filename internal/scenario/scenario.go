// Package scenario reads shot settings from YAML files.
//
// A file holds either one scenario at the top level or a list of them under
// "scenarios". Every value goes through the validating setters of package input.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gehtsoft-usa/go_shotcalc/internal/input"
)

// Scenario is a set of optional values applied over the default settings.
// Absent values leave the corresponding setting as it is. Diameter is in
// inches, density in lb/cu.in., weight in grains, velocity in fps, wind in mph,
// altitude in feet and temperature in °F.
type Scenario struct {
	Name        string   `yaml:"name,omitempty" json:"name,omitempty"`
	Shot        string   `yaml:"shot,omitempty" json:"shot,omitempty"`
	Diameter    *float64 `yaml:"diameter,omitempty" json:"diameter,omitempty"`
	Material    string   `yaml:"material,omitempty" json:"material,omitempty"`
	Density     *float64 `yaml:"density,omitempty" json:"density,omitempty"`
	Weight      *float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
	Velocity    *float64 `yaml:"velocity,omitempty" json:"velocity,omitempty"`
	Wind        *float64 `yaml:"wind,omitempty" json:"wind,omitempty"`
	Altitude    *float64 `yaml:"altitude,omitempty" json:"altitude,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	BC          *float64 `yaml:"bc,omitempty" json:"bc,omitempty"`
}

type document struct {
	Scenario  `yaml:",inline"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// ErrEmpty is returned for a document without any scenario.
var ErrEmpty = errors.New("scenario: no scenarios found")

// Parse decodes the YAML document. Unknown keys are rejected.
func Parse(data []byte) ([]Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}

	single := doc.Scenario != (Scenario{})
	switch {
	case single && len(doc.Scenarios) > 0:
		return nil, errors.New("scenario: top-level values and a scenario list cannot be mixed")
	case single:
		return []Scenario{doc.Scenario}, nil
	case len(doc.Scenarios) > 0:
		return doc.Scenarios, nil
	default:
		return nil, ErrEmpty
	}
}

// Load reads and decodes the file.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Values returns the values present in the scenario as field texts.
func (sc Scenario) Values() map[string]string {
	values := make(map[string]string)
	text := func(field, v string) {
		if v != "" {
			values[field] = v
		}
	}
	num := func(field string, v *float64) {
		if v != nil {
			values[field] = formatValue(*v)
		}
	}
	text(input.FieldShotSize, sc.Shot)
	num(input.FieldDiameter, sc.Diameter)
	text(input.FieldMaterial, sc.Material)
	num(input.FieldDensity, sc.Density)
	num(input.FieldWeight, sc.Weight)
	num(input.FieldMuzzleVelocity, sc.Velocity)
	num(input.FieldCrosswind, sc.Wind)
	num(input.FieldAltitude, sc.Altitude)
	num(input.FieldTemperature, sc.Temperature)
	num(input.FieldBallisticCoefficient, sc.BC)
	return values
}

// Apply sets the values present in the scenario. The settings are changed only
// when every value is accepted; otherwise the first *input.FieldError is returned.
func (sc Scenario) Apply(settings *input.Settings) error {
	return settings.SetAll(sc.Values())
}

// Settings returns the default settings with the scenario applied.
func (sc Scenario) Settings() (input.Settings, error) {
	s := input.New()
	if err := sc.Apply(&s); err != nil {
		return input.Settings{}, err
	}
	return s, nil
}

// Title returns the scenario name, or the settings description when the name is empty.
func (sc Scenario) Title(s input.Settings) string {
	if sc.Name != "" {
		return sc.Name
	}
	return s.String()
}
