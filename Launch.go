package go_shotcalc

import (
	"fmt"

	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
)

//LaunchConditions keeps the velocity the pellet leaves the muzzle with and the
//full value crosswind it flies through
type LaunchConditions struct {
	muzzleVelocity unit.Velocity
	crosswind      unit.Velocity
	valid          bool
}

//CreateLaunchConditions creates launch conditions.
//
//The pellet is launched horizontally; the crosswind blows at the right angle
//to the line of departure.
func CreateLaunchConditions(muzzleVelocity unit.Velocity, crosswind unit.Velocity) (LaunchConditions, error) {
	if muzzleVelocity.In(unit.VelocityFPS) <= 0 {
		return LaunchConditions{}, fmt.Errorf("LaunchConditions: muzzle velocity must be greater than zero")
	}
	if crosswind.In(unit.VelocityFPS) < 0 {
		return LaunchConditions{}, fmt.Errorf("LaunchConditions: crosswind must not be negative")
	}
	return LaunchConditions{
		muzzleVelocity: muzzleVelocity,
		crosswind:      crosswind,
		valid:          true,
	}, nil
}

//CreateNoWindLaunch creates launch conditions without crosswind
func CreateNoWindLaunch(muzzleVelocity unit.Velocity) (LaunchConditions, error) {
	return CreateLaunchConditions(muzzleVelocity, unit.MustCreateVelocity(0, unit.VelocityMPH))
}

//MuzzleVelocity returns the velocity of the pellet at the muzzle
func (v LaunchConditions) MuzzleVelocity() unit.Velocity {
	return v.muzzleVelocity
}

//Crosswind returns the speed of the crosswind
func (v LaunchConditions) Crosswind() unit.Velocity {
	return v.crosswind
}
