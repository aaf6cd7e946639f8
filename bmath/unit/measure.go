//Package unit keeps the physical values used by the shot calculator together
//with the units they were entered in.
//
//Each value is stored in the default unit of its kind (inches, feet per second,
//grains, ...) and converted on request. Units are selected by the byte
//constants declared next to each type.
package unit

import "fmt"

//measure describes a linear unit: one unit is factor default units, and the
//zero of the unit sits at offset default units
type measure struct {
	name     string
	accuracy int
	factor   float64
	offset   float64
}

func (m measure) toDefault(value float64) float64 {
	return value*m.factor + m.offset
}

func (m measure) fromDefault(value float64) float64 {
	return (value - m.offset) / m.factor
}

type measureTable map[byte]measure

func (t measureTable) toDefault(kind string, value float64, units byte) (float64, error) {
	m, ok := t[units]
	if !ok {
		return 0, fmt.Errorf("%s: unit %d is not supported", kind, units)
	}
	return m.toDefault(value), nil
}

func (t measureTable) fromDefault(kind string, value float64, units byte) (float64, error) {
	m, ok := t[units]
	if !ok {
		return 0, fmt.Errorf("%s: unit %d is not supported", kind, units)
	}
	return m.fromDefault(value), nil
}

func (t measureTable) format(value float64, units byte) string {
	m, ok := t[units]
	if !ok {
		return "!error: default units aren't correct"
	}
	return fmt.Sprintf("%.*f%s", m.accuracy, m.fromDefault(value), m.name)
}
