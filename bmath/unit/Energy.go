package unit

//Energy units, foot-pounds are the default
const (
	EnergyFootPound byte = 30
	EnergyJoule     byte = 31
)

var energyUnits = measureTable{
	EnergyFootPound: {name: "ft·lb", accuracy: 1, factor: 1},
	EnergyJoule:     {name: "J", accuracy: 1, factor: 0.737562149277},
}

//Energy keeps the kinetic energy of a projectile
type Energy struct {
	value        float64
	defaultUnits byte
}

//CreateEnergy creates an energy in one of the unit.Energy* units
func CreateEnergy(value float64, units byte) (Energy, error) {
	v, err := energyUnits.toDefault("Energy", value, units)
	if err != nil {
		return Energy{}, err
	}
	return Energy{value: v, defaultUnits: units}, nil
}

//MustCreateEnergy is CreateEnergy that panics on an unknown unit
func MustCreateEnergy(value float64, units byte) Energy {
	v, err := CreateEnergy(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Energy) Value(units byte) (float64, error) {
	return energyUnits.fromDefault("Energy", v.value, units)
}

func (v Energy) Convert(units byte) Energy {
	return Energy{value: v.value, defaultUnits: units}
}

//In returns the energy in the units requested or 0 for an unknown unit
func (v Energy) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

func (v Energy) String() string {
	return energyUnits.format(v.value, v.defaultUnits)
}

func (v Energy) Units() byte {
	return v.defaultUnits
}
