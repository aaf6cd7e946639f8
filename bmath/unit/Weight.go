package unit

//Weight units, grains are the default
const (
	WeightGrain    byte = 70
	WeightOunce    byte = 71
	WeightGram     byte = 72
	WeightPound    byte = 73
	WeightKilogram byte = 74
)

var weightUnits = measureTable{
	WeightGrain:    {name: "gr", accuracy: 2, factor: 1},
	WeightOunce:    {name: "oz", accuracy: 3, factor: 437.5},
	WeightGram:     {name: "g", accuracy: 3, factor: 15.4323584},
	WeightPound:    {name: "lb", accuracy: 4, factor: 7000},
	WeightKilogram: {name: "kg", accuracy: 4, factor: 15432.3584},
}

//Weight keeps the weight (mass) of a projectile or of a shot charge
type Weight struct {
	value        float64
	defaultUnits byte
}

//CreateWeight creates a weight in one of the unit.Weight* units
func CreateWeight(value float64, units byte) (Weight, error) {
	v, err := weightUnits.toDefault("Weight", value, units)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: v, defaultUnits: units}, nil
}

//MustCreateWeight is CreateWeight that panics on an unknown unit
func MustCreateWeight(value float64, units byte) Weight {
	v, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the weight in the units requested
func (v Weight) Value(units byte) (float64, error) {
	return weightUnits.fromDefault("Weight", v.value, units)
}

//Convert returns the same weight shown in other units
func (v Weight) Convert(units byte) Weight {
	return Weight{value: v.value, defaultUnits: units}
}

//In returns the weight in the units requested or 0 for an unknown unit
func (v Weight) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Weight) String() string {
	return weightUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the weight was created in
func (v Weight) Units() byte {
	return v.defaultUnits
}
