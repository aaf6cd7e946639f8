package unit

//Pressure units, psi is the default
const (
	PressurePSI  byte = 40
	PressureInHg byte = 41
	PressureMmHg byte = 42
	PressureBar  byte = 43
	PressureHP   byte = 44
)

var pressureUnits = measureTable{
	PressurePSI:  {name: "psi", accuracy: 3, factor: 1},
	PressureInHg: {name: "inHg", accuracy: 2, factor: 0.49115420},
	PressureMmHg: {name: "mmHg", accuracy: 0, factor: 0.019336775},
	PressureBar:  {name: "bar", accuracy: 3, factor: 14.503773773},
	PressureHP:   {name: "hPa", accuracy: 1, factor: 0.014503773773},
}

//Pressure keeps the atmospheric pressure
type Pressure struct {
	value        float64
	defaultUnits byte
}

//CreatePressure creates a pressure in one of the unit.Pressure* units
func CreatePressure(value float64, units byte) (Pressure, error) {
	v, err := pressureUnits.toDefault("Pressure", value, units)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{value: v, defaultUnits: units}, nil
}

//MustCreatePressure is CreatePressure that panics on an unknown unit
func MustCreatePressure(value float64, units byte) Pressure {
	v, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Pressure) Value(units byte) (float64, error) {
	return pressureUnits.fromDefault("Pressure", v.value, units)
}

func (v Pressure) Convert(units byte) Pressure {
	return Pressure{value: v.value, defaultUnits: units}
}

//In returns the pressure in the units requested or 0 for an unknown unit
func (v Pressure) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Pressure) String() string {
	return pressureUnits.format(v.value, v.defaultUnits)
}

func (v Pressure) Units() byte {
	return v.defaultUnits
}
