package unit

//Temperature units, degrees Fahrenheit are the default
const (
	TemperatureFahrenheit byte = 50
	TemperatureCelsius    byte = 51
	TemperatureKelvin     byte = 52
	TemperatureRankin     byte = 53
)

var temperatureUnits = measureTable{
	TemperatureFahrenheit: {name: "°F", accuracy: 1, factor: 1},
	TemperatureCelsius:    {name: "°C", accuracy: 1, factor: 1.8, offset: 32},
	TemperatureKelvin:     {name: "°K", accuracy: 1, factor: 1.8, offset: -459.67},
	TemperatureRankin:     {name: "°R", accuracy: 1, factor: 1, offset: -459.67},
}

//Temperature is a temperature reading on one of the supported scales
type Temperature struct {
	value        float64
	defaultUnits byte
}

//CreateTemperature creates a temperature in one of the unit.Temperature* scales
func CreateTemperature(value float64, units byte) (Temperature, error) {
	v, err := temperatureUnits.toDefault("Temperature", value, units)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{value: v, defaultUnits: units}, nil
}

//MustCreateTemperature is CreateTemperature that panics on an unknown scale
func MustCreateTemperature(value float64, units byte) Temperature {
	v, err := CreateTemperature(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the reading on the scale requested
func (v Temperature) Value(units byte) (float64, error) {
	return temperatureUnits.fromDefault("Temperature", v.value, units)
}

//Convert returns the same temperature shown on another scale
func (v Temperature) Convert(units byte) Temperature {
	return Temperature{value: v.value, defaultUnits: units}
}

//In returns the reading on the scale requested or 0 for an unknown scale
func (v Temperature) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Temperature) String() string {
	return temperatureUnits.format(v.value, v.defaultUnits)
}

//Units returns the scale the temperature was created on
func (v Temperature) Units() byte {
	return v.defaultUnits
}
