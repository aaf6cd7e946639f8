package go_shotcalc

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
)

const cStandardTemperature float64 = 70.0
const cTemperatureLapseRate float64 = 3.55e-3 //°F per foot
const cStandardPressure float64 = 14.7        //psi
const cPressureAltitudeFactor float64 = 6.8877e-6
const cPressureExponent float64 = 5.25588
const cFahrenheitToRankin float64 = 459.7

const cAltitudeStep float64 = 500
const cMaximumAltitudeChoice float64 = 10000

//StandardTemperatureAt returns the temperature expected at the altitude specified
//when the sea level temperature is standard
func StandardTemperatureAt(altitude unit.Distance) unit.Temperature {
	return unit.MustCreateTemperature(standardTemperature(altitude.In(unit.DistanceFoot)), unit.TemperatureFahrenheit)
}

//RelativeDensity returns the ratio of the air density at the altitude and the temperature
//specified to the density of the standard sea level air
func RelativeDensity(altitude unit.Distance, temperature unit.Temperature) float64 {
	return relativePressure(altitude.In(unit.DistanceFoot), temperature.In(unit.TemperatureFahrenheit)) / cStandardPressure
}

func standardTemperature(altitude float64) float64 {
	return cStandardTemperature - cTemperatureLapseRate*altitude
}

//relativePressure returns the pressure at the altitude adjusted for non-standard temperature, psi
func relativePressure(altitude, temperature float64) float64 {
	var pressure = cStandardPressure * math.Pow(1-cPressureAltitudeFactor*altitude, cPressureExponent)
	var correction = (cFahrenheitToRankin + standardTemperature(altitude)) / (cFahrenheitToRankin + temperature)
	return pressure * correction
}

//Atmosphere describes the atmosphere conditions
type Atmosphere struct {
	altitude        unit.Distance
	temperature     unit.Temperature
	pressure        unit.Pressure
	relativeDensity float64
}

//CreateDefaultAtmosphere creates the sea level atmosphere at the standard temperature
func CreateDefaultAtmosphere() Atmosphere {
	a, _ := CreateAtmosphere(unit.MustCreateDistance(0, unit.DistanceFoot),
		unit.MustCreateTemperature(cStandardTemperature, unit.TemperatureFahrenheit))
	return a
}

//CreateAtmosphere creates the atmosphere with the specified parameter
func CreateAtmosphere(altitude unit.Distance, temperature unit.Temperature) (Atmosphere, error) {
	var alt = altitude.In(unit.DistanceFoot)
	if alt < 0 {
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: altitude must not be below the sea level")
	}
	if 1-cPressureAltitudeFactor*alt <= 0 {
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: altitude %s is out of the model range", altitude)
	}
	if temperature.In(unit.TemperatureFahrenheit) <= -cFahrenheitToRankin {
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: temperature must be above the absolute zero")
	}

	a := Atmosphere{altitude: altitude, temperature: temperature}
	a.calculate()
	return a, nil
}

//CreateStandardAtmosphere creates the atmosphere for the altitude specified
//with the temperature lapsed from the standard sea level temperature
func CreateStandardAtmosphere(altitude unit.Distance) (Atmosphere, error) {
	return CreateAtmosphere(altitude, StandardTemperatureAt(altitude))
}

func (a *Atmosphere) calculate() {
	var p = relativePressure(a.altitude.In(unit.DistanceFoot), a.temperature.In(unit.TemperatureFahrenheit))
	a.pressure = unit.MustCreatePressure(p, unit.PressurePSI)
	a.relativeDensity = p / cStandardPressure
}

//Altitude returns the ground level altitude over the sea level
func (a Atmosphere) Altitude() unit.Distance {
	return a.altitude
}

//Temperature returns the temperature at the ground level
func (a Atmosphere) Temperature() unit.Temperature {
	return a.temperature
}

//Pressure returns the pressure adjusted for the altitude and the temperature
func (a Atmosphere) Pressure() unit.Pressure {
	return a.pressure
}

//RelativeDensity returns the air density relative to the standard sea level air
func (a Atmosphere) RelativeDensity() float64 {
	return a.relativeDensity
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Altitude:%s,Temperature:%s,Pressure:%s,RelativeDensity:%.4f",
		a.altitude, a.temperature, a.pressure, a.relativeDensity)
}

//AltitudeChoices returns the altitudes offered for selection: the sea level
//and then every 500 feet up to 10000 feet
func AltitudeChoices() []unit.Distance {
	var r []unit.Distance
	for alt := 0.0; alt <= cMaximumAltitudeChoice; alt += cAltitudeStep {
		r = append(r, unit.MustCreateDistance(alt, unit.DistanceFoot))
	}
	return r
}

//AltitudeChoiceName returns the label of the altitude choice
func AltitudeChoiceName(altitude unit.Distance) string {
	var alt = altitude.In(unit.DistanceFoot)
	if alt == 0 {
		return "Sea Level"
	}
	return fmt.Sprintf("%.0f", alt)
}
