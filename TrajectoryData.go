package go_shotcalc

import (
	"math"

	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
)

//Timespan keeps the amount of time spent
type Timespan struct {
	time float64
}

//TotalSeconds returns the total number of seconds
func (v Timespan) TotalSeconds() float64 {
	return v.time
}

//Milliseconds returns the whole number of milliseconds
func (v Timespan) Milliseconds() float64 {
	return math.Floor(v.time * 1000)
}

//TrajectoryData structure keeps information about the pellet at one yard of the range
type TrajectoryData struct {
	yard            int
	time            Timespan
	travelDistance  unit.Distance
	velocity        unit.Velocity
	drop            unit.Distance
	dropAdjustment  unit.Angular
	drift           unit.Distance
	driftAdjustment unit.Angular
	energy          unit.Energy
}

//Yard returns the yard marker the data was taken at
func (v TrajectoryData) Yard() int {
	return v.yard
}

//Time return the amount of time spent since the shot moment
func (v TrajectoryData) Time() Timespan {
	return v.time
}

//TravelledDistance returns the distance the pellet actually covered downrange
//when the yard marker was passed
func (v TrajectoryData) TravelledDistance() unit.Distance {
	return v.travelDistance
}

//Velocity returns the pellet velocity relative to the air
func (v TrajectoryData) Velocity() unit.Velocity {
	return v.velocity
}

//Drop returns the distance the pellet fell below the line of departure.
//
//The value is positive.
func (v TrajectoryData) Drop() unit.Distance {
	return v.drop
}

//DropAdjustment returns the angle between the line of departure and the line from
//the muzzle to the pellet in the vertical plane
func (v TrajectoryData) DropAdjustment() unit.Angular {
	return v.dropAdjustment
}

//Drift returns the distance to which the pellet is displaced by crosswind
func (v TrajectoryData) Drift() unit.Distance {
	return v.drift
}

//DriftAdjustment returns the angle between the line of departure and the line from
//the muzzle to the pellet in the horizontal plane
func (v TrajectoryData) DriftAdjustment() unit.Angular {
	return v.driftAdjustment
}

//Energy returns the kinetic energy of the pellet
func (v TrajectoryData) Energy() unit.Energy {
	return v.energy
}

//NoEffectiveRange is returned by TrajectoryResult.EffectiveRange when the
//pellet is below the minimum effective velocity right at the muzzle
const NoEffectiveRange int = -1

//TrajectoryResult keeps the data of one calculation: one item per yard in the yard order
type TrajectoryResult struct {
	data            []TrajectoryData
	effectiveRange  int
	minimumVelocity unit.Velocity
	weight          unit.Weight
}

//Len returns the number of yards calculated
func (v TrajectoryResult) Len() int {
	return len(v.data)
}

//At returns the data taken at the yard specified
func (v TrajectoryResult) At(yard int) (TrajectoryData, bool) {
	if yard < 0 || yard >= len(v.data) {
		return TrajectoryData{}, false
	}
	return v.data[yard], true
}

//Samples returns a copy of all the data
func (v TrajectoryResult) Samples() []TrajectoryData {
	r := make([]TrajectoryData, len(v.data))
	copy(r, v.data)
	return r
}

//EffectiveRange returns the last yard up to which the pellet keeps
//the minimum effective velocity, or NoEffectiveRange
func (v TrajectoryResult) EffectiveRange() int {
	return v.effectiveRange
}

//MinimumVelocity returns the velocity at which the pellet has one foot-pound of energy
func (v TrajectoryResult) MinimumVelocity() unit.Velocity {
	return v.minimumVelocity
}

//PelletWeight returns the weight of the pellet the trajectory was calculated for
func (v TrajectoryResult) PelletWeight() unit.Weight {
	return v.weight
}
