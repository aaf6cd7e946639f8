package unit

import "math"

//Angular units, radians are the default
const (
	AngularRadian byte = 0
	AngularDegree byte = 1
	AngularMOA    byte = 2
	AngularMil    byte = 3
	AngularMRad   byte = 4
)

var angularUnits = measureTable{
	AngularRadian: {name: "rad", accuracy: 6, factor: 1},
	AngularDegree: {name: "°", accuracy: 4, factor: math.Pi / 180},
	AngularMOA:    {name: "moa", accuracy: 2, factor: math.Pi / 180 / 60},
	AngularMil:    {name: "mil", accuracy: 2, factor: math.Pi / 3200},
	AngularMRad:   {name: "mrad", accuracy: 2, factor: 0.001},
}

//Angular keeps an angle, e.g. the hold-over needed to compensate drop or drift
type Angular struct {
	value        float64
	defaultUnits byte
}

func CreateAngular(value float64, units byte) (Angular, error) {
	v, err := angularUnits.toDefault("Angular", value, units)
	if err != nil {
		return Angular{}, err
	}
	return Angular{value: v, defaultUnits: units}, nil
}

func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Angular) Value(units byte) (float64, error) {
	return angularUnits.fromDefault("Angular", v.value, units)
}

func (v Angular) Convert(units byte) Angular {
	return Angular{value: v.value, defaultUnits: units}
}

//In returns the angle in the units requested or 0 for an unknown unit
func (v Angular) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Angular) String() string {
	return angularUnits.format(v.value, v.defaultUnits)
}

func (v Angular) Units() byte {
	return v.defaultUnits
}
