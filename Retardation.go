package go_shotcalc

import "math"

//retardationSegment is one piece of the power law fit: below or at limit
//(feet per second) the retardation is velocity^exponent*factor
type retardationSegment struct {
	limit    float64
	exponent float64
	factor   float64
}

//1904 British retardation data for a round ball. The segments are not
//smoothed at the limits.
var retardationTable = []retardationSegment{
	retardationSegment{limit: 840, exponent: 1.6, factor: 74422e-8},
	retardationSegment{limit: 1040, exponent: 3.0, factor: 59939e-12},
	retardationSegment{limit: 1190, exponent: 6.45, factor: 23385e-22},
	retardationSegment{limit: 1460, exponent: 3.0, factor: 95408e-12},
	retardationSegment{limit: 2000, exponent: 1.8, factor: 59814e-8},
	retardationSegment{limit: 2600, exponent: 1.5, factor: 58497e-7},
	retardationSegment{limit: math.Inf(1), exponent: 1.67, factor: 15366e-7},
}

//Retardation returns the retardation of a round ball moving through the
//standard air at the velocity (feet per second) specified.
//
//The value is not a drag coefficient: the trajectory calculator multiplies it
//by the pellet cross section, the drag scale and the relative air density
//to get the drag force in pounds.
func Retardation(velocity float64) float64 {
	for _, s := range retardationTable {
		if velocity <= s.limit {
			return math.Pow(velocity, s.exponent) * s.factor
		}
	}
	//NaN only
	return math.NaN()
}
