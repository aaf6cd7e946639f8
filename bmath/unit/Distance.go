package unit

//Distance units, inches are the default
const (
	DistanceInch       byte = 10
	DistanceFoot       byte = 11
	DistanceYard       byte = 12
	DistanceMile       byte = 13
	DistanceMillimeter byte = 15
	DistanceCentimeter byte = 16
	DistanceMeter      byte = 17
	DistanceKilometer  byte = 18
)

var distanceUnits = measureTable{
	DistanceInch:       {name: "\"", accuracy: 3, factor: 1},
	DistanceFoot:       {name: "'", accuracy: 2, factor: 12},
	DistanceYard:       {name: "yd", accuracy: 1, factor: 36},
	DistanceMile:       {name: "mi", accuracy: 3, factor: 63360},
	DistanceMillimeter: {name: "mm", accuracy: 2, factor: 1 / 25.4},
	DistanceCentimeter: {name: "cm", accuracy: 2, factor: 1 / 2.54},
	DistanceMeter:      {name: "m", accuracy: 2, factor: 1000 / 25.4},
	DistanceKilometer:  {name: "km", accuracy: 3, factor: 1000000 / 25.4},
}

//Distance is a length, kept in inches
type Distance struct {
	value        float64
	defaultUnits byte
}

//CreateDistance creates a distance measured in one of the unit.Distance* units
func CreateDistance(value float64, units byte) (Distance, error) {
	v, err := distanceUnits.toDefault("Distance", value, units)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance is CreateDistance that panics on an unknown unit
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the distance in the units requested
func (v Distance) Value(units byte) (float64, error) {
	return distanceUnits.fromDefault("Distance", v.value, units)
}

//Convert returns the same distance shown in other units
func (v Distance) Convert(units byte) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

//In returns the distance in the units requested or 0 for an unknown unit
func (v Distance) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Distance) String() string {
	return distanceUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the distance was created in
func (v Distance) Units() byte {
	return v.defaultUnits
}
