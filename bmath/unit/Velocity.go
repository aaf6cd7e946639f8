package unit

//Velocity units, feet per second are the default
const (
	VelocityFPS byte = 60
	VelocityMPS byte = 61
	VelocityKMH byte = 62
	VelocityMPH byte = 63
	VelocityKT  byte = 64
)

var velocityUnits = measureTable{
	VelocityFPS: {name: "ft/s", accuracy: 0, factor: 1},
	VelocityMPS: {name: "m/s", accuracy: 1, factor: 1 / 0.3048},
	VelocityKMH: {name: "km/h", accuracy: 1, factor: 1 / 1.09728},
	VelocityMPH: {name: "mph", accuracy: 1, factor: 5280.0 / 3600.0},
	VelocityKT:  {name: "kt", accuracy: 1, factor: 1.68780986},
}

//Velocity is a speed, kept in feet per second
type Velocity struct {
	value        float64
	defaultUnits byte
}

//CreateVelocity creates a velocity in one of the unit.Velocity* units
func CreateVelocity(value float64, units byte) (Velocity, error) {
	v, err := velocityUnits.toDefault("Velocity", value, units)
	if err != nil {
		return Velocity{}, err
	}
	return Velocity{value: v, defaultUnits: units}, nil
}

//MustCreateVelocity is CreateVelocity that panics on an unknown unit
func MustCreateVelocity(value float64, units byte) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the velocity in the units requested
func (v Velocity) Value(units byte) (float64, error) {
	return velocityUnits.fromDefault("Velocity", v.value, units)
}

//Convert returns the same velocity shown in other units
func (v Velocity) Convert(units byte) Velocity {
	return Velocity{value: v.value, defaultUnits: units}
}

//In returns the velocity in the units requested or 0 for an unknown unit
func (v Velocity) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Velocity) String() string {
	return velocityUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the velocity was created in
func (v Velocity) Units() byte {
	return v.defaultUnits
}
