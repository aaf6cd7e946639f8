package go_shotcalc

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/vector"
)

const cGravityConstant float64 = 32.174 //ft/s²
const cTimeStep float64 = 0.001         //seconds
const cMaximumSteps int = 1000
const cMphToFps float64 = 1.46667
const cInchesPerFoot float64 = 12.0
const cFeetPerYard float64 = 3.0

//cDragScale makes the British retardation data match the real world data
//for the relative ballistic coefficient of 1. Adjust the ballistic coefficient instead.
const cDragScale float64 = 0.0755

const cDefaultBallisticCoefficient float64 = 1.0

//MaximumSamples is the largest number of yards a trajectory may contain: the
//calculation is limited by one second of flight and takes one sample per step at most
const MaximumSamples = cMaximumSteps

//TrajectoryCalculator calculates the flight of a round ball launched horizontally
type TrajectoryCalculator struct {
	ballisticCoefficient float64
}

//CreateTrajectoryCalculator creates and instance of the trajectory calculator
func CreateTrajectoryCalculator() TrajectoryCalculator {
	return TrajectoryCalculator{
		ballisticCoefficient: cDefaultBallisticCoefficient,
	}
}

//BallisticCoefficient returns the relative ballistic coefficient.
//
//The drag force is divided by this value, 1 means the pellet matches the
//retardation data.
func (v TrajectoryCalculator) BallisticCoefficient() float64 {
	return v.ballisticCoefficient
}

//SetBallisticCoefficient sets the relative ballistic coefficient
func (v *TrajectoryCalculator) SetBallisticCoefficient(bc float64) error {
	if bc <= 0 || math.IsNaN(bc) || math.IsInf(bc, 0) {
		return fmt.Errorf("TrajectoryCalculator: ballistic coefficient must be greater than zero")
	}
	v.ballisticCoefficient = bc
	return nil
}

//Trajectory calculates the trajectory of the pellet.
//
//The calculation runs with the fixed time step for one second of flight and
//takes the data each time the pellet passes the next yard marker. The pellet,
//the launch conditions and the atmosphere must be created with their Create*
//functions, passing zero values is a programming error and causes a panic.
func (v TrajectoryCalculator) Trajectory(pellet Pellet, launch LaunchConditions, atmosphere Atmosphere) TrajectoryResult {
	var weight = pellet.Weight().In(unit.WeightGrain)
	if weight <= 0 || pellet.Diameter().In(unit.DistanceInch) <= 0 {
		panic(fmt.Errorf("TrajectoryCalculator: pellet must have positive weight and diameter"))
	}
	if !launch.valid {
		panic(fmt.Errorf("TrajectoryCalculator: launch conditions aren't initialized"))
	}
	if atmosphere.RelativeDensity() <= 0 {
		panic(fmt.Errorf("TrajectoryCalculator: atmosphere isn't initialized"))
	}
	var ballisticCoefficient = v.ballisticCoefficient
	if ballisticCoefficient == 0 {
		ballisticCoefficient = cDefaultBallisticCoefficient
	}

	var mass = weight / (cGrainsPerPound * cGravityConstant) //slugs
	var area = pellet.CrossSectionalArea()
	var relativeDensity = atmosphere.RelativeDensity()
	var windVelocity = launch.Crosswind().In(unit.VelocityMPH) * cMphToFps

	var forwardVelocity = launch.MuzzleVelocity().In(unit.VelocityFPS)
	var crossVelocity, time float64

	//x - distance downrange,
	//y - drop and
	//z - drift
	var rangeVector vector.Vector

	var ranges = make([]TrajectoryData, 0, 128)

	for step := 0; step < cMaximumSteps; step++ {
		//the pellet has stopped, no more yard markers can be passed
		if forwardVelocity <= 0 {
			break
		}

		time = float64(step) * cTimeStep
		rangeVector = rangeVector.Add(vector.Create(forwardVelocity, 0, crossVelocity).MultiplyByConst(cTimeStep))

		//gravity doesn't interact with the drag, so the fall is calculated directly
		rangeVector = rangeVector.WithY(0.5 * cGravityConstant * time * time)

		//velocity relative to the air is the sum of the pellet velocity and the crosswind
		var apparentWind = windVelocity - crossVelocity
		var velocity = math.Sqrt(forwardVelocity*forwardVelocity + apparentWind*apparentWind)
		var force = Retardation(velocity) * area * cDragScale * relativeDensity / ballisticCoefficient

		//the force is split proportionally to the forward velocity, not to the air velocity
		var crossForce = force * apparentWind / forwardVelocity
		var forwardForce = force * (forwardVelocity - apparentWind) / forwardVelocity

		forwardVelocity -= forwardForce / mass * cTimeStep
		crossVelocity += crossForce / mass * cTimeStep

		if rangeVector.X/cFeetPerYard > float64(len(ranges)) {
			ranges = append(ranges, createTrajectoryData(len(ranges), time, rangeVector, velocity, weight))
		}
	}

	var minimumVelocity = minimumEffectiveVelocity(weight)
	var effectiveRange = NoEffectiveRange
	for yard := 0; yard < len(ranges) && ranges[yard].velocity.In(unit.VelocityFPS) > minimumVelocity; yard++ {
		effectiveRange = yard
	}

	return TrajectoryResult{
		data:            ranges,
		effectiveRange:  effectiveRange,
		minimumVelocity: unit.MustCreateVelocity(minimumVelocity, unit.VelocityFPS),
		weight:          pellet.Weight(),
	}
}

func createTrajectoryData(yard int, time float64, rangeVector vector.Vector, velocity, weight float64) TrajectoryData {
	return TrajectoryData{
		yard:            yard,
		time:            Timespan{time: time},
		travelDistance:  unit.MustCreateDistance(rangeVector.X, unit.DistanceFoot),
		velocity:        unit.MustCreateVelocity(velocity, unit.VelocityFPS),
		drop:            unit.MustCreateDistance(rangeVector.Y*cInchesPerFoot, unit.DistanceInch),
		dropAdjustment:  unit.MustCreateAngular(getCorrection(rangeVector.X, rangeVector.Y), unit.AngularRadian),
		drift:           unit.MustCreateDistance(rangeVector.Z*cInchesPerFoot, unit.DistanceInch),
		driftAdjustment: unit.MustCreateAngular(getCorrection(rangeVector.X, rangeVector.Z), unit.AngularRadian),
		energy:          unit.MustCreateEnergy(calculateEnergy(weight, velocity), unit.EnergyFootPound),
	}
}

//MinimumEffectiveVelocity returns the velocity at which the pellet of the weight
//specified keeps one foot-pound of energy
func MinimumEffectiveVelocity(weight unit.Weight) unit.Velocity {
	return unit.MustCreateVelocity(minimumEffectiveVelocity(weight.In(unit.WeightGrain)), unit.VelocityFPS)
}

//Energy returns the kinetic energy of the pellet of the weight specified moving with the velocity specified
func Energy(weight unit.Weight, velocity unit.Velocity) unit.Energy {
	return unit.MustCreateEnergy(calculateEnergy(weight.In(unit.WeightGrain), velocity.In(unit.VelocityFPS)), unit.EnergyFootPound)
}

func minimumEffectiveVelocity(weight float64) float64 {
	return math.Sqrt(1 / (weight / (2.0 * cGravityConstant * cGrainsPerPound)))
}

func getCorrection(distance, offset float64) float64 {
	if distance == 0 {
		return 0
	}
	return math.Atan(offset / distance)
}

func calculateEnergy(weight, velocity float64) float64 {
	return velocity * velocity * weight / (2.0 * cGravityConstant * cGrainsPerPound)
}
